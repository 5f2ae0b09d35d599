// Package userbyemail implements the lookup of a user by email address. Matching is exact and
// case-sensitive.
//
// It runs two queries: the first finds the current holder of the address among all user events
// that ever carried it, the second reads the events of that holder.
package userbyemail
