// Package createevent implements the Create Event use case.
//
// A signed up user creates an Event from a draft. The Event starts with zero attendees, the
// creator's full name becomes the organizer and an empty image becomes the default image.
package createevent
