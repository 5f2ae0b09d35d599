package eventsbyorganizer

import (
	"github.com/google/uuid"
)

const (
	queryType = "EventsByOrganizer"
)

// Query represents the intent to list the Events created by a user.
type Query struct {
	OrganizerID uuid.UUID
}

// BuildQuery creates a new Query with the provided organizer ID.
func BuildQuery(organizerID uuid.UUID) Query {
	return Query{
		OrganizerID: organizerID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
