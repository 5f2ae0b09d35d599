package eventcatalog

const (
	queryType = "EventCatalog"
)

// Query represents the intent to browse Events.
//
// Search is matched case-insensitively against title and location, an empty Search matches all.
// Category is one of the Event categories, or core.CategoryAll or empty for all categories.
type Query struct {
	Search   string
	Category string
}

// BuildQuery creates a new Query with the provided search text and category.
func BuildQuery(search, category string) Query {
	return Query{
		Search:   search,
		Category: category,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
