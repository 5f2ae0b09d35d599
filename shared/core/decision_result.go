package core

// DecisionResult is the outcome of a Decide function.
//
// Construct it only with IdempotentDecision, SuccessDecision or ErrorDecision.
// Failed decisions carry no event, business rule violations are not recorded in the event log.
type DecisionResult struct {
	Outcome string
	Event   DomainEvent
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision means the desired state already holds, nothing is appended.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// SuccessDecision means event has to be appended.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: successOutcome, Event: event}
}

// ErrorDecision means a business rule rejected the command.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{Outcome: errorOutcome, Err: err}
}

// HasEventToAppend returns true only for a SuccessDecision.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome == successOutcome
}

func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// HasError returns the business rule violation, or nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
