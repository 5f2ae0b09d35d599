// Package currentsession implements reading the session slot.
//
// The Session is derived from the current profile of its user on every read, so profile changes
// show up without touching the session.
package currentsession
