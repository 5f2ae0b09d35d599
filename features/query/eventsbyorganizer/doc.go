// Package eventsbyorganizer implements the list of Events a user created, newest first.
//
// The first query finds the ids of the Events the user created, the second reads the history of
// exactly those Events.
package eventsbyorganizer
