// Package startsession implements the Start Session use case.
//
// There is a single session slot per store. Starting a session for an existing user replaces any
// session that is active at that point.
package startsession
