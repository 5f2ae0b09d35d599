package currentsession

const (
	queryType = "CurrentSession"
)

// Query represents the intent to read the session slot.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
