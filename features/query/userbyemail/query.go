package userbyemail

const (
	queryType = "UserByEmail"
)

// Query represents the intent to find the user holding an email address.
type Query struct {
	Email string
}

// BuildQuery creates a new Query with the provided email address.
func BuildQuery(email string) Query {
	return Query{
		Email: email,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
