// Package deleteevent implements the Delete Event use case. Only the creator can delete an Event.
//
// Registrations of a deleted Event are kept, their holders can still cancel them.
package deleteevent
