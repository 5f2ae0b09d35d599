// Package shell provides the imperative shell around the pure domain in package core.
//
// It converts between domain events and storable events, retries the Query -> Decide -> Append
// cycle on concurrency conflicts, classifies errors at the handler boundary, and provides the
// shared observability helpers used by the command and query handlers. Password hashing and
// session tokens live here as well because they are infrastructure, not domain rules.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
