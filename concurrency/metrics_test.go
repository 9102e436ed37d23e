// concurrency/metrics_test.go
package concurrency

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func responseWithStatus(statusCode int, headers map[string]string) *http.Response {
	resp := &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
	}
	for key, value := range headers {
		resp.Header.Set(key, value)
	}
	return resp
}

// TestMonitorRateLimitHeaders verifies concurrency suggestions derived from rate limit headers.
func TestMonitorRateLimitHeaders(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		capacity   int
		suggestion int
	}{
		{"RetryAfterSuggestsScaleDown", map[string]string{"Retry-After": "30"}, 5, -1},
		{"LowRemainingSuggestsScaleDown", map[string]string{"X-RateLimit-Remaining": "5"}, 5, -1},
		{"HeadroomSuggestsScaleUp", nil, 5, 1},
		{"AtMaximumNoSuggestion", nil, MaxConcurrency, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(tt.capacity)
			resp := responseWithStatus(http.StatusOK, tt.headers)

			assert.Equal(t, tt.suggestion, handler.MonitorRateLimitHeaders(resp))
		})
	}
}

// TestMonitorServerResponseCodes verifies error counting and the error rate driven suggestions.
func TestMonitorServerResponseCodes(t *testing.T) {
	t.Run("HighErrorRateSuggestsScaleDown", func(t *testing.T) {
		handler := newTestHandler(5)
		handler.Metrics.TotalRequests = 2

		suggestion := handler.MonitorServerResponseCodes(responseWithStatus(http.StatusInternalServerError, nil))

		assert.Equal(t, -1, suggestion)
		assert.Equal(t, int64(1), handler.Metrics.TotalServerErrors)
		assert.InDelta(t, 0.5, handler.Metrics.ResponseCodeMetrics.ErrorRate, 0.001)
	})

	t.Run("LowErrorRateSuggestsScaleUp", func(t *testing.T) {
		handler := newTestHandler(5)
		handler.Metrics.TotalRequests = 100

		suggestion := handler.MonitorServerResponseCodes(responseWithStatus(http.StatusNotFound, nil))

		assert.Equal(t, 1, suggestion)
		assert.Equal(t, int64(1), handler.Metrics.TotalClientErrors)
	})

	t.Run("TooManyRequestsCountsRateLimitErrors", func(t *testing.T) {
		handler := newTestHandler(5)
		handler.Metrics.TotalRequests = 100

		handler.MonitorServerResponseCodes(responseWithStatus(http.StatusTooManyRequests, nil))

		assert.Equal(t, int64(1), handler.Metrics.TotalRateLimitErrors)
	})
}

// TestMonitorResponseTimeVariability verifies the first stable sample suggests growth when
// capacity remains below the maximum.
func TestMonitorResponseTimeVariability(t *testing.T) {
	handler := newTestHandler(5)

	suggestion := handler.MonitorResponseTimeVariability(100 * time.Millisecond)

	assert.Equal(t, 1, suggestion)
	assert.Equal(t, int64(1), handler.Metrics.ResponseTimeVariability.Count)
	assert.Equal(t, 100*time.Millisecond, handler.Metrics.ResponseTimeVariability.Average)
}

// TestEvaluateAndAdjustConcurrency verifies that strongly negative feedback shrinks capacity.
func TestEvaluateAndAdjustConcurrency(t *testing.T) {
	handler := newTestHandler(2)
	handler.Metrics.TotalRequests = 1

	resp := responseWithStatus(http.StatusInternalServerError, map[string]string{"Retry-After": "30"})
	handler.EvaluateAndAdjustConcurrency(resp, 5*time.Second)

	assert.Equal(t, int64(1), handler.currentCapacity, "Capacity should scale down on negative feedback")
}

// TestScaleUpRespectsMaximum verifies capacity growth halts at the maximum limit.
func TestScaleUpRespectsMaximum(t *testing.T) {
	handler := newTestHandler(MaxConcurrency)

	handler.ScaleUp()

	assert.Equal(t, int64(MaxConcurrency), handler.currentCapacity)
}

// TestScaleDownRespectsMinimum verifies capacity reduction halts at the minimum limit.
func TestScaleDownRespectsMinimum(t *testing.T) {
	handler := newTestHandler(MinConcurrency)

	handler.ScaleDown()

	assert.Equal(t, int64(MinConcurrency), handler.currentCapacity)
}

// TestUpdateTTFBMetrics verifies TTFB accumulation.
func TestUpdateTTFBMetrics(t *testing.T) {
	handler := newTestHandler(1)

	handler.UpdateTTFBMetrics(120 * time.Millisecond)
	handler.UpdateTTFBMetrics(80 * time.Millisecond)

	assert.Equal(t, int64(2), handler.Metrics.TTFB.Count)
	assert.Equal(t, 200*time.Millisecond, handler.Metrics.TTFB.Total)
}

// TestUpdateThroughputMetrics verifies throughput accumulation and that empty responses are skipped.
func TestUpdateThroughputMetrics(t *testing.T) {
	handler := newTestHandler(1)

	handler.UpdateThroughputMetrics(2048, time.Second)
	handler.UpdateThroughputMetrics(0, time.Second)

	assert.Equal(t, int64(1), handler.Metrics.Throughput.Count)
	assert.InDelta(t, 2048.0, handler.Metrics.Throughput.Total, 0.001)
}
