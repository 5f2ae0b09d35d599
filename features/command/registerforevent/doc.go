// Package registerforevent implements the capacity checked registration for an Event.
//
// The capacity check and the registration share one consistency boundary: every event that moves
// the attendee counter of the Event. A single TicketsRegistered event both creates or merges the
// Registration and adds to the counter, so registrations and attendees cannot drift apart.
// Concurrent registrations for the same Event conflict on append and are retried, which keeps
// attendees at or below capacity.
package registerforevent
