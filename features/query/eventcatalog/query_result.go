package eventcatalog

import (
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Catalog holds the matching Events, newest first.
type Catalog struct {
	Events []core.EventState
	Count  int
}
