// Package eventcatalog implements the browsable list of all Events, with a text search over title
// and location and a category filter.
package eventcatalog
