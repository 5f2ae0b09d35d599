package userprofile

import (
	"github.com/google/uuid"
)

const (
	queryType = "UserProfile"
)

// Query represents the intent to read the current state of one user.
type Query struct {
	UserID uuid.UUID
}

// BuildQuery creates a new Query with the provided user ID.
func BuildQuery(userID uuid.UUID) Query {
	return Query{
		UserID: userID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
