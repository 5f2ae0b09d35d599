// Package observable decorates command and query handlers with metrics, tracing and logging.
//
//	handler, err := observable.NewCommandWrapper[registerforevent.Command, core.RegistrationState](
//		registerforevent.NewCommandHandler(eventStore),
//		observable.WithCommandMetrics[registerforevent.Command, core.RegistrationState](metrics),
//		observable.WithCommandContextualLogging[registerforevent.Command, core.RegistrationState](logger),
//	)
package observable
