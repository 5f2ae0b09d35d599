package observable_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/observable"
	"github.com/AntonStoeckl/eventhub/testutil/observability/testdoubles"
)

type mockCommand struct {
	Name string
}

func (c mockCommand) CommandType() string {
	return "TestCommand"
}

type mockCoreHandler struct {
	value  string
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func (h *mockCoreHandler) Handle(_ context.Context, command mockCommand) (string, shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.value, h.result, h.err
}

func givenCommandWrapper(
	t *testing.T,
	handler *mockCoreHandler,
) (*observable.CommandWrapper[mockCommand, string], *testdoubles.MetricsCollectorSpy, *testdoubles.TracingCollectorSpy, *testdoubles.ContextualLoggerSpy) {
	t.Helper()

	metricsCollector := testdoubles.NewMetricsCollectorSpy()
	tracingCollector := testdoubles.NewTracingCollectorSpy()
	contextualLogger := testdoubles.NewContextualLoggerSpy()

	wrapper, err := observable.NewCommandWrapper[mockCommand, string](
		handler,
		observable.WithCommandMetrics[mockCommand, string](metricsCollector),
		observable.WithCommandTracing[mockCommand, string](tracingCollector),
		observable.WithCommandContextualLogging[mockCommand, string](contextualLogger),
	)
	require.NoError(t, err)

	return wrapper, metricsCollector, tracingCollector, contextualLogger
}

func Test_CommandWrapper_Handle_Success_NonIdempotent(t *testing.T) {
	// arrange
	expectedResult := shell.HandlerResult{RetryAttempts: 1, LastErrorType: shell.ErrorTypeNone}
	handler := &mockCoreHandler{value: "created", result: expectedResult}
	wrapper, metricsCollector, tracingCollector, contextualLogger := givenCommandWrapper(t, handler)
	command := mockCommand{Name: "one"}

	// act
	value, result, err := wrapper.Handle(context.Background(), command)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "created", value)
	assert.Equal(t, expectedResult, result)
	assert.Equal(t, []mockCommand{command}, handler.calls)

	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel(shell.LogAttrCommandType, "TestCommand").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.Zero(t, metricsCollector.CountCounterRecordsForMetric(shell.CommandHandlerRetriesMetric))

	spans := tracingCollector.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, shell.SpanNameCommandHandle, spans[0].Name)
	assert.Equal(t, shell.StatusSuccess, spans[0].Status)
	assert.Equal(t, "TestCommand", spans[0].Attributes[shell.LogAttrCommandType])

	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandCompleted))
}

func Test_CommandWrapper_Handle_Success_Idempotent(t *testing.T) {
	// arrange
	handler := &mockCoreHandler{result: shell.HandlerResult{Idempotent: true, RetryAttempts: 1}}
	wrapper, metricsCollector, _, _ := givenCommandWrapper(t, handler)

	// act
	_, result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerIdempotentMetric).
		WithLabel(shell.LogAttrCommandType, "TestCommand").
		Assert())
}

func Test_CommandWrapper_Handle_WithRetries_RecordsMetrics(t *testing.T) {
	// arrange
	handler := &mockCoreHandler{result: shell.HandlerResult{
		RetryAttempts:   3,
		TotalRetryDelay: 15 * time.Millisecond,
		LastErrorType:   shell.ErrorTypeNone,
	}}
	wrapper, metricsCollector, _, _ := givenCommandWrapper(t, handler)

	// act
	_, _, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerRetriesMetric).
		WithLabel(shell.LogAttrAttemptNumber, "2").
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerRetryDelayMetric).Assert())
	assert.Zero(t, metricsCollector.CountCounterRecordsForMetric(shell.CommandHandlerMaxRetriesReachedMetric))
}

func Test_CommandWrapper_Handle_ErrorStatuses(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		result         shell.HandlerResult
		expectedStatus string
		expectedLevel  string
	}{
		{
			name:           "business rejection",
			err:            core.ErrCapacityExceeded,
			expectedStatus: shell.StatusRejected,
			expectedLevel:  testdoubles.LevelWarn,
		},
		{
			name:           "storage failure",
			err:            shell.ClassifyError(errors.New("disk full")),
			expectedStatus: shell.StatusError,
			expectedLevel:  testdoubles.LevelError,
		},
		{
			name:           "canceled",
			err:            shell.ClassifyError(context.Canceled),
			expectedStatus: shell.StatusCanceled,
			expectedLevel:  testdoubles.LevelError,
		},
		{
			name:           "timeout",
			err:            shell.ClassifyError(context.DeadlineExceeded),
			expectedStatus: shell.StatusTimeout,
			expectedLevel:  testdoubles.LevelError,
		},
		{
			name:           "retries exhausted",
			err:            shell.ClassifyError(eventstore.ErrConcurrencyConflict),
			result:         shell.HandlerResult{RetryAttempts: 6, LastErrorType: shell.ErrorTypeConcurrencyConflict, RetriesExhausted: true},
			expectedStatus: shell.StatusConcurrencyConflict,
			expectedLevel:  testdoubles.LevelError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := &mockCoreHandler{result: tc.result, err: tc.err}
			wrapper, metricsCollector, tracingCollector, contextualLogger := givenCommandWrapper(t, handler)

			// act
			_, _, err := wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
				WithStatus(tc.expectedStatus).
				Assert())

			spans := tracingCollector.FinishedSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.expectedStatus, spans[0].Status)
			assert.Equal(t, err.Error(), spans[0].Attributes[shell.LogAttrError])

			records := contextualLogger.Records()
			require.NotEmpty(t, records)
			assert.Equal(t, tc.expectedLevel, records[len(records)-1].Level)

			if tc.result.RetriesExhausted {
				assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerMaxRetriesReachedMetric).
					WithLabel(shell.LogAttrErrorType, shell.ErrorTypeConcurrencyConflict).
					Assert())
			}
		})
	}
}

func Test_CommandWrapper_Handle_WithoutObservability_WorksCorrectly(t *testing.T) {
	handler := &mockCoreHandler{value: "ok", result: shell.HandlerResult{RetryAttempts: 1}}

	wrapper, err := observable.NewCommandWrapper[mockCommand, string](handler)
	require.NoError(t, err)

	value, _, err := wrapper.Handle(context.Background(), mockCommand{})

	assert.NoError(t, err)
	assert.Equal(t, "ok", value)
}

func Test_CommandWrapper_Handle_FallsBackToBasicLogger(t *testing.T) {
	handler := &mockCoreHandler{result: shell.HandlerResult{RetryAttempts: 1}}
	logger := testdoubles.NewContextualLoggerSpy()

	wrapper, err := observable.NewCommandWrapper[mockCommand, string](
		handler,
		observable.WithCommandLogging[mockCommand, string](logger),
	)
	require.NoError(t, err)

	_, _, err = wrapper.Handle(context.Background(), mockCommand{})

	assert.NoError(t, err)
	assert.True(t, logger.HasInfoLog(shell.LogMsgCommandCompleted))
}
