// Package oteladapters implements the eventstore observability interfaces on top of OpenTelemetry.
//
// The same adapters are handed to the event store engines and to the EventHub command and query
// handlers, so one MeterProvider and one TracerProvider see the whole request:
//
//	tracer := otel.Tracer("eventhub")
//	meter := otel.Meter("eventhub")
//
//	es, _ := sqliteengine.NewEventStoreFromSQLDB(db,
//		sqliteengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		sqliteengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		sqliteengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("eventhub")),
//	)
package oteladapters
