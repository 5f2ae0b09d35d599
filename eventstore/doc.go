// Package eventstore contains the engine independent building blocks of the EventHub event log.
//
// Every store of the application (users, session, events, registrations) is a projection of one
// append-only log. Consistency is enforced per "dynamic event stream": the set of events matched by a
// Filter. A command handler queries that stream, decides, and appends conditionally on the max
// sequence number it saw:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.EventCreatedEventType, core.TicketsRegisteredEventType).
//		AndAnyPredicateOf(eventstore.P("EventID", eventID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// somebody else appended to the same stream, retry
//	}
//
// Engines live in the sqliteengine and postgresengine sub packages.
package eventstore
