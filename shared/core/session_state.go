package core

// SessionState is the content of the single session slot.
type SessionState struct {
	SessionID SessionIDString
	UserID    UserIDString
	Active    bool
}

// ProjectSession replays SessionStarted and SessionEnded events. The last one wins.
func ProjectSession(history DomainEvents) SessionState {
	state := SessionState{}

	for _, event := range history {
		switch e := event.(type) {
		case SessionStarted:
			state = SessionState{SessionID: e.SessionID, UserID: e.UserID, Active: true}

		case SessionEnded:
			if state.Active && e.SessionID == state.SessionID {
				state = SessionState{}
			}
		}
	}

	return state
}
