package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/observable"
	"github.com/AntonStoeckl/eventhub/testutil/observability/testdoubles"
)

type mockQuery struct {
	ID string
}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockResult struct {
	Count int
}

type mockQueryHandler struct {
	result mockResult
	err    error
}

func (h *mockQueryHandler) Handle(_ context.Context, _ mockQuery) (mockResult, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		expectedLog    string
		expectedLevel  string
	}{
		{name: "success", expectedStatus: shell.StatusSuccess, expectedLog: shell.LogMsgQueryCompleted, expectedLevel: testdoubles.LevelInfo},
		{name: "not found", err: core.NotFoundError("event"), expectedStatus: shell.StatusError, expectedLog: shell.LogMsgQueryCompleted, expectedLevel: testdoubles.LevelInfo},
		{name: "storage failure", err: shell.ClassifyError(errors.New("boom")), expectedStatus: shell.StatusError, expectedLog: shell.LogMsgQueryFailed, expectedLevel: testdoubles.LevelError},
		{name: "canceled", err: shell.ClassifyError(context.Canceled), expectedStatus: shell.StatusCanceled, expectedLog: shell.LogMsgQueryFailed, expectedLevel: testdoubles.LevelError},
		{name: "timeout", err: shell.ClassifyError(context.DeadlineExceeded), expectedStatus: shell.StatusTimeout, expectedLog: shell.LogMsgQueryFailed, expectedLevel: testdoubles.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := &mockQueryHandler{result: mockResult{Count: 3}, err: tc.err}
			metricsCollector := testdoubles.NewMetricsCollectorSpy()
			tracingCollector := testdoubles.NewTracingCollectorSpy()
			contextualLogger := testdoubles.NewContextualLoggerSpy()

			wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
				handler,
				observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
				observable.WithQueryTracing[mockQuery, mockResult](tracingCollector),
				observable.WithQueryContextualLogging[mockQuery, mockResult](contextualLogger),
			)
			require.NoError(t, err)

			// act
			result, err := wrapper.Handle(context.Background(), mockQuery{ID: "q-1"})

			// assert
			assert.Equal(t, mockResult{Count: 3}, result)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}

			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
				WithLabel(shell.LogAttrQueryType, "TestQuery").
				WithStatus(tc.expectedStatus).
				Assert())
			assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).Assert())

			spans := tracingCollector.FinishedSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, shell.SpanNameQueryHandle, spans[0].Name)
			assert.Equal(t, tc.expectedStatus, spans[0].Status)

			assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryStarted))
			assert.True(t, contextualLogger.HasLog(tc.expectedLevel, tc.expectedLog))
		})
	}
}

func Test_QueryWrapper_Handle_WithoutObservability(t *testing.T) {
	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](&mockQueryHandler{result: mockResult{Count: 1}})
	require.NoError(t, err)

	result, err := wrapper.Handle(context.Background(), mockQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}
