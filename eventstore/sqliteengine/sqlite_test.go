package sqliteengine_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/sqliteengine"
)

func givenEventStore(t *testing.T, options ...sqliteengine.Option) sqliteengine.EventStore {
	t.Helper()

	db, err := sqliteengine.Open(t.Context(), filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	es, err := sqliteengine.NewEventStoreFromSQLDB(db, options...)
	require.NoError(t, err)
	require.NoError(t, es.EnsureSchema(t.Context()))

	return es
}

func givenStorableEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEvent(eventType, time.Unix(1700000000, 123456000).UTC(), []byte(payload), []byte(`{"MessageID":"m-1"}`))
	require.NoError(t, err)

	return event
}

func eventFilterFor(eventID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("EventCreated", "TicketsRegistered").
		AndAnyPredicateOf(eventstore.P("EventID", eventID)).
		Finalize()
}

func Test_SQLiteEventStore_QueryOnEmptyStore(t *testing.T) {
	// setup
	es := givenEventStore(t)

	// act
	events, maxSeq, err := es.Query(t.Context(), eventFilterFor("e-1"))

	// assert
	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
}

func Test_SQLiteEventStore_AppendThenQuery(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	filter := eventFilterFor("e-1")
	created := givenStorableEvent(t, "EventCreated", `{"EventID":"e-1","Title":"It's a meetup"}`)
	registered := givenStorableEvent(t, "TicketsRegistered", `{"EventID":"e-1","UserID":"u-1","TicketCount":2}`)

	// act
	require.NoError(t, es.Append(ctx, filter, 0, created))
	require.NoError(t, es.Append(ctx, filter, 1, registered))
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq)
	assert.Equal(t, "EventCreated", events[0].EventType)
	assert.JSONEq(t, string(created.PayloadJSON), string(events[0].PayloadJSON))
	assert.JSONEq(t, `{"MessageID":"m-1"}`, string(events[0].MetadataJSON))
	assert.True(t, created.OccurredAt.Equal(events[0].OccurredAt))
	assert.Equal(t, "TicketsRegistered", events[1].EventType)
}

func Test_SQLiteEventStore_AppendWithStaleSequenceNumber_Conflicts(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	filter := eventFilterFor("e-1")
	require.NoError(t, es.Append(ctx, filter, 0, givenStorableEvent(t, "EventCreated", `{"EventID":"e-1"}`)))

	// act
	err := es.Append(ctx, filter, 0, givenStorableEvent(t, "TicketsRegistered", `{"EventID":"e-1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	events, _, queryErr := es.Query(ctx, filter)
	assert.NoError(t, queryErr)
	assert.Len(t, events, 1)
}

func Test_SQLiteEventStore_OtherStreamsDoNotConflict(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	require.NoError(t, es.Append(ctx, eventFilterFor("e-1"), 0, givenStorableEvent(t, "EventCreated", `{"EventID":"e-1"}`)))

	// act
	err := es.Append(ctx, eventFilterFor("e-2"), 0, givenStorableEvent(t, "EventCreated", `{"EventID":"e-2"}`))

	// assert
	assert.NoError(t, err)
	events, maxSeq, queryErr := es.Query(ctx, eventFilterFor("e-2"))
	assert.NoError(t, queryErr)
	assert.Len(t, events, 1)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSeq)
}

func Test_SQLiteEventStore_AppendMultipleEvents(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	// act
	err := es.Append(
		ctx,
		filter,
		0,
		givenStorableEvent(t, "EventCreated", `{"EventID":"e-1"}`),
		givenStorableEvent(t, "EventCreated", `{"EventID":"e-2"}`),
		givenStorableEvent(t, "EventCreated", `{"EventID":"e-3"}`),
	)

	// assert
	require.NoError(t, err)
	events, maxSeq, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	assert.Len(t, events, 3)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSeq)
	assert.JSONEq(t, `{"EventID":"e-3"}`, string(events[2].PayloadJSON))
}

func Test_SQLiteEventStore_PredicateCombinations(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	all := eventstore.BuildEventFilter().MatchingAnyEvent()
	require.NoError(t, es.Append(
		ctx,
		all,
		0,
		givenStorableEvent(t, "TicketsRegistered", `{"EventID":"e-1","UserID":"u-1"}`),
		givenStorableEvent(t, "TicketsRegistered", `{"EventID":"e-1","UserID":"u-2"}`),
		givenStorableEvent(t, "TicketsRegistered", `{"EventID":"e-2","UserID":"u-1"}`),
		givenStorableEvent(t, "UserSignedUp", `{"UserID":"u-1","Email":"o'brien@example.com"}`),
	))

	tests := []struct {
		name      string
		filter    eventstore.Filter
		wantCount int
	}{
		{
			name: "all predicates must match",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("TicketsRegistered").
				AndAllPredicatesOf(eventstore.P("EventID", "e-1"), eventstore.P("UserID", "u-1")).
				Finalize(),
			wantCount: 1,
		},
		{
			name: "any predicate may match",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("TicketsRegistered").
				AndAnyPredicateOf(eventstore.P("EventID", "e-2"), eventstore.P("UserID", "u-2")).
				Finalize(),
			wantCount: 2,
		},
		{
			name: "predicate without event type",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyPredicateOf(eventstore.P("UserID", "u-1")).
				Finalize(),
			wantCount: 3,
		},
		{
			name: "quotes in values are escaped",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyPredicateOf(eventstore.P("Email", "o'brien@example.com")).
				Finalize(),
			wantCount: 1,
		},
		{
			name: "or matching of two items",
			filter: eventstore.BuildEventFilter().
				Matching().
				AnyEventTypeOf("UserSignedUp").
				OrMatching().
				AnyEventTypeOf("TicketsRegistered").
				AndAnyPredicateOf(eventstore.P("EventID", "e-2")).
				Finalize(),
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, _, err := es.Query(ctx, tt.filter)

			assert.NoError(t, err)
			assert.Len(t, events, tt.wantCount)
		})
	}
}

func Test_SQLiteEventStore_ConcurrentAppendsToSameStream_OnlyOneWins(t *testing.T) {
	// setup
	ctx := t.Context()
	es := givenEventStore(t)
	filter := eventFilterFor("e-1")
	require.NoError(t, es.Append(ctx, filter, 0, givenStorableEvent(t, "EventCreated", `{"EventID":"e-1"}`)))

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)

	candidates := make([]eventstore.StorableEvent, 10)
	for i := range candidates {
		candidates[i] = givenStorableEvent(t, "TicketsRegistered", fmt.Sprintf(`{"EventID":"e-1","UserID":"u-%d"}`, i))
	}

	// act
	for _, candidate := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := es.Append(context.Background(), filter, 1, candidate)

			switch {
			case err == nil:
				successes.Add(1)
			case assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	// assert
	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(9), conflicts.Load())
}

func Test_SQLiteEventStore_WithEmptyTableName_Fails(t *testing.T) {
	db, err := sqliteengine.Open(t.Context(), filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = sqliteengine.NewEventStoreFromSQLDB(db, sqliteengine.WithTableName(""))

	assert.ErrorIs(t, err, eventstore.ErrEmptyEventsTableName)
}

func Test_SQLiteEventStore_WithNilDB_Fails(t *testing.T) {
	_, err := sqliteengine.NewEventStoreFromSQLDB(nil)

	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)
}

func Test_SQLiteEventStore_AppendWhileAnotherConnectionHoldsTheWriteLock_Conflicts(t *testing.T) {
	// setup
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "events.db")

	holder, err := sqliteengine.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = holder.Close() })

	holderStore, err := sqliteengine.NewEventStoreFromSQLDB(holder)
	require.NoError(t, err)
	require.NoError(t, holderStore.EnsureSchema(ctx))

	tx, err := holder.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })
	_, err = tx.ExecContext(ctx, "CREATE TABLE write_lock_holder (id INTEGER)")
	require.NoError(t, err)

	other, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(50)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	otherStore, err := sqliteengine.NewEventStoreFromSQLDB(other)
	require.NoError(t, err)

	// act
	err = otherStore.Append(ctx, eventFilterFor("e-1"), 0, givenStorableEvent(t, "EventCreated", `{"EventID":"e-1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
}
