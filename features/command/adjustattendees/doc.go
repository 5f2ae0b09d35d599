// Package adjustattendees implements the manual adjustment of the attendee counter of an Event.
//
// The resulting counter is clamped to [0, capacity]. The appended delta is the effective change
// after clamping, so replaying the events gives the same counter.
package adjustattendees
