// Package sqlengine holds the Query/Append pipeline and its logging, metrics and tracing, shared by
// the SQL based engines. A Dialect supplies the generated SQL and the row scanning.
package sqlengine
