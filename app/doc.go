// Package app is the EventHub store object.
//
// Open wires one event store (SQLite or PostgreSQL) with all command and query handlers and hands
// out four views on it: Users and the session slot, Events, Registrations and the registration
// Workflow. An App is safe for concurrent use. Close releases the database connections.
package app
