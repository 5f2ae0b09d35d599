package core

// EventState is the projection of one Event from its consistency boundary.
type EventState struct {
	EventCreated

	Created     bool
	Deleted     bool
	Attendees   int
	TicketsHeld int
}

// Exists is false for unknown and for deleted events.
func (s EventState) Exists() bool {
	return s.Created && !s.Deleted
}

func (s EventState) SpotsRemaining() int {
	return s.Capacity - s.Attendees
}

// ClampAttendees keeps attendees within [0, capacity].
func ClampAttendees(attendees, capacity int) int {
	return max(0, min(attendees, capacity))
}

// AdjustedAttendees is the attendee count after a manual delta, kept within [TicketsHeld, Capacity].
func (s EventState) AdjustedAttendees(delta int) int {
	return max(s.TicketsHeld, ClampAttendees(s.Attendees+delta, s.Capacity))
}

// Apply folds one event into the state. Events of other Events are ignored.
func (s EventState) Apply(event DomainEvent) EventState {
	switch e := event.(type) {
	case EventCreated:
		if s.Created {
			return s
		}

		s.EventCreated = e
		s.Created = true
		s.Attendees = 0

	case EventDeleted:
		if s.Created && e.EventID == s.EventID {
			s.Deleted = true
		}

	case EventAttendeesAdjusted:
		if s.Created && e.EventID == s.EventID {
			s.Attendees = s.AdjustedAttendees(e.Delta)
		}

	case TicketsRegistered:
		if s.Created && e.EventID == s.EventID {
			s.Attendees = ClampAttendees(s.Attendees+e.TicketCount, s.Capacity)
			s.TicketsHeld += e.TicketCount
		}

	case RegistrationCanceled:
		if s.Created && e.EventID == s.EventID {
			s.Attendees = ClampAttendees(s.Attendees-e.TicketCount, s.Capacity)
			s.TicketsHeld = max(0, s.TicketsHeld-e.TicketCount)
		}
	}

	return s
}

// ProjectEventState replays the history of eventID.
func ProjectEventState(history DomainEvents, eventID EventIDString) EventState {
	state := EventState{}

	for _, event := range history {
		if created, ok := event.(EventCreated); ok && created.EventID != eventID {
			continue
		}

		state = state.Apply(event)
	}

	return state
}

// ProjectEventStates replays a history that spans many Events, keyed by EventID.
func ProjectEventStates(history DomainEvents) map[EventIDString]EventState {
	states := make(map[EventIDString]EventState)

	for _, event := range history {
		eventID, ok := eventIDOf(event)
		if !ok {
			continue
		}

		states[eventID] = states[eventID].Apply(event)
	}

	return states
}

func eventIDOf(event DomainEvent) (EventIDString, bool) {
	switch e := event.(type) {
	case EventCreated:
		return e.EventID, true
	case EventDeleted:
		return e.EventID, true
	case EventAttendeesAdjusted:
		return e.EventID, true
	case TicketsRegistered:
		return e.EventID, true
	case RegistrationCanceled:
		return e.EventID, true
	default:
		return "", false
	}
}
