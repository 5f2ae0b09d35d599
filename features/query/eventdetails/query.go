package eventdetails

import (
	"github.com/google/uuid"
)

const (
	queryType = "EventDetails"
)

// Query represents the intent to read one Event.
type Query struct {
	EventID uuid.UUID
}

// BuildQuery creates a new Query with the provided event ID.
func BuildQuery(eventID uuid.UUID) Query {
	return Query{
		EventID: eventID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
