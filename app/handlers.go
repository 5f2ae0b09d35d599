package app

import (
	"fmt"

	"github.com/AntonStoeckl/eventhub/features/command/adjustattendees"
	"github.com/AntonStoeckl/eventhub/features/command/cancelregistration"
	"github.com/AntonStoeckl/eventhub/features/command/createevent"
	"github.com/AntonStoeckl/eventhub/features/command/deleteevent"
	"github.com/AntonStoeckl/eventhub/features/command/endsession"
	"github.com/AntonStoeckl/eventhub/features/command/registerforevent"
	"github.com/AntonStoeckl/eventhub/features/command/resetpassword"
	"github.com/AntonStoeckl/eventhub/features/command/signupuser"
	"github.com/AntonStoeckl/eventhub/features/command/startsession"
	"github.com/AntonStoeckl/eventhub/features/command/updateuserprofile"
	"github.com/AntonStoeckl/eventhub/features/query/currentsession"
	"github.com/AntonStoeckl/eventhub/features/query/eventcatalog"
	"github.com/AntonStoeckl/eventhub/features/query/eventdetails"
	"github.com/AntonStoeckl/eventhub/features/query/eventsbyorganizer"
	"github.com/AntonStoeckl/eventhub/features/query/registrationsofuser"
	"github.com/AntonStoeckl/eventhub/features/query/userbyemail"
	"github.com/AntonStoeckl/eventhub/features/query/userprofile"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/observable"
)

// handlerBundle contains all command and query handlers, each wrapped with observability.
type handlerBundle struct {
	// Command handlers.
	signUpUser         shell.CoreCommandHandler[signupuser.Command, core.UserState]
	updateUserProfile  shell.CoreCommandHandler[updateuserprofile.Command, core.UserState]
	resetPassword      shell.CoreCommandHandler[resetpassword.Command, shell.NoValue]
	startSession       shell.CoreCommandHandler[startsession.Command, core.SessionState]
	endSession         shell.CoreCommandHandler[endsession.Command, shell.NoValue]
	createEvent        shell.CoreCommandHandler[createevent.Command, core.EventState]
	deleteEvent        shell.CoreCommandHandler[deleteevent.Command, shell.NoValue]
	adjustAttendees    shell.CoreCommandHandler[adjustattendees.Command, core.EventState]
	registerForEvent   shell.CoreCommandHandler[registerforevent.Command, core.RegistrationState]
	cancelRegistration shell.CoreCommandHandler[cancelregistration.Command, shell.NoValue]

	// Query handlers.
	userProfile         shell.CoreQueryHandler[userprofile.Query, core.UserState]
	userByEmail         shell.CoreQueryHandler[userbyemail.Query, core.UserState]
	currentSession      shell.CoreQueryHandler[currentsession.Query, currentsession.CurrentSession]
	eventDetails        shell.CoreQueryHandler[eventdetails.Query, eventdetails.EventDetails]
	eventCatalog        shell.CoreQueryHandler[eventcatalog.Query, eventcatalog.Catalog]
	eventsByOrganizer   shell.CoreQueryHandler[eventsbyorganizer.Query, eventsbyorganizer.OrganizerEvents]
	registrationsOfUser shell.CoreQueryHandler[registrationsofuser.Query, registrationsofuser.Dashboard]
}

// wiring remembers the first error, so the bundle can be built without an error check per handler.
type wiring struct {
	o   options
	err error
}

func wrapCommand[C shell.Command, V any](w *wiring, handler shell.CoreCommandHandler[C, V]) shell.CoreCommandHandler[C, V] {
	if w.err != nil {
		return handler
	}

	wrapper, err := observable.NewCommandWrapper[C, V](
		handler,
		observable.WithCommandMetrics[C, V](w.o.metrics),
		observable.WithCommandTracing[C, V](w.o.tracing),
		observable.WithCommandContextualLogging[C, V](w.o.contextualLogger),
	)
	if err != nil {
		var zeroCommand C
		w.err = fmt.Errorf("failed to create %s handler: %w", zeroCommand.CommandType(), err)

		return handler
	}

	return wrapper
}

func wrapQuery[Q shell.Query, R any](w *wiring, handler shell.CoreQueryHandler[Q, R]) shell.CoreQueryHandler[Q, R] {
	if w.err != nil {
		return handler
	}

	wrapper, err := observable.NewQueryWrapper[Q, R](
		handler,
		observable.WithQueryMetrics[Q, R](w.o.metrics),
		observable.WithQueryTracing[Q, R](w.o.tracing),
		observable.WithQueryContextualLogging[Q, R](w.o.contextualLogger),
	)
	if err != nil {
		var zeroQuery Q
		w.err = fmt.Errorf("failed to create %s handler: %w", zeroQuery.QueryType(), err)

		return handler
	}

	return wrapper
}

func newHandlerBundle(
	es shell.EventStore,
	hasher shell.PasswordHasher,
	pricing core.Pricing,
	retry []shell.RetryOption,
	o options,
) (handlerBundle, error) {
	w := &wiring{o: o}

	bundle := handlerBundle{
		signUpUser: wrapCommand(w, shell.CoreCommandHandler[signupuser.Command, core.UserState](
			signupuser.NewCommandHandler(es, hasher, signupuser.WithRetryOptions(retry...)))),
		updateUserProfile: wrapCommand(w, shell.CoreCommandHandler[updateuserprofile.Command, core.UserState](
			updateuserprofile.NewCommandHandler(es, updateuserprofile.WithRetryOptions(retry...)))),
		resetPassword: wrapCommand(w, shell.CoreCommandHandler[resetpassword.Command, shell.NoValue](
			resetpassword.NewCommandHandler(es, hasher, resetpassword.WithRetryOptions(retry...)))),
		startSession: wrapCommand(w, shell.CoreCommandHandler[startsession.Command, core.SessionState](
			startsession.NewCommandHandler(es, startsession.WithRetryOptions(retry...)))),
		endSession: wrapCommand(w, shell.CoreCommandHandler[endsession.Command, shell.NoValue](
			endsession.NewCommandHandler(es, endsession.WithRetryOptions(retry...)))),
		createEvent: wrapCommand(w, shell.CoreCommandHandler[createevent.Command, core.EventState](
			createevent.NewCommandHandler(es, createevent.WithRetryOptions(retry...)))),
		deleteEvent: wrapCommand(w, shell.CoreCommandHandler[deleteevent.Command, shell.NoValue](
			deleteevent.NewCommandHandler(es, deleteevent.WithRetryOptions(retry...)))),
		adjustAttendees: wrapCommand(w, shell.CoreCommandHandler[adjustattendees.Command, core.EventState](
			adjustattendees.NewCommandHandler(es, adjustattendees.WithRetryOptions(retry...)))),
		registerForEvent: wrapCommand(w, shell.CoreCommandHandler[registerforevent.Command, core.RegistrationState](
			registerforevent.NewCommandHandler(es, registerforevent.WithRetryOptions(retry...)))),
		cancelRegistration: wrapCommand(w, shell.CoreCommandHandler[cancelregistration.Command, shell.NoValue](
			cancelregistration.NewCommandHandler(es, cancelregistration.WithRetryOptions(retry...)))),

		userProfile: wrapQuery(w, shell.CoreQueryHandler[userprofile.Query, core.UserState](
			userprofile.NewQueryHandler(es))),
		userByEmail: wrapQuery(w, shell.CoreQueryHandler[userbyemail.Query, core.UserState](
			userbyemail.NewQueryHandler(es))),
		currentSession: wrapQuery(w, shell.CoreQueryHandler[currentsession.Query, currentsession.CurrentSession](
			currentsession.NewQueryHandler(es))),
		eventDetails: wrapQuery(w, shell.CoreQueryHandler[eventdetails.Query, eventdetails.EventDetails](
			eventdetails.NewQueryHandler(es))),
		eventCatalog: wrapQuery(w, shell.CoreQueryHandler[eventcatalog.Query, eventcatalog.Catalog](
			eventcatalog.NewQueryHandler(es))),
		eventsByOrganizer: wrapQuery(w, shell.CoreQueryHandler[eventsbyorganizer.Query, eventsbyorganizer.OrganizerEvents](
			eventsbyorganizer.NewQueryHandler(es))),
		registrationsOfUser: wrapQuery(w, shell.CoreQueryHandler[registrationsofuser.Query, registrationsofuser.Dashboard](
			registrationsofuser.NewQueryHandler(es, pricing))),
	}

	if w.err != nil {
		return handlerBundle{}, w.err
	}

	return bundle, nil
}
