// concurrency/semaphore_test.go
package concurrency

import (
	"context"
	"testing"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(limit int) *ConcurrencyHandler {
	return NewConcurrencyHandler(limit, logger.NewNopLogger(), &ConcurrencyMetrics{})
}

// TestAcquireConcurrencyPermit verifies permit acquisition succeeds within capacity and
// that the derived context carries the generated request ID.
func TestAcquireConcurrencyPermit(t *testing.T) {
	handler := newTestHandler(2)

	ctx, requestID, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, requestID, ctx.Value(RequestIDKey{}), "Context should carry the request ID")

	_, secondID, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, requestID, secondID, "Each acquisition should generate a distinct request ID")

	handler.Metrics.Lock.Lock()
	assert.Equal(t, int64(2), handler.Metrics.TotalRequests)
	handler.Metrics.Lock.Unlock()
}

// TestAcquireConcurrencyPermitExhausted verifies acquisition fails once the semaphore is
// exhausted and the context is done.
func TestAcquireConcurrencyPermitExhausted(t *testing.T) {
	handler := newTestHandler(1)

	_, _, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = handler.AcquireConcurrencyPermit(cancelledCtx)
	assert.Error(t, err, "Acquisition should fail when no permit is available and the context is done")
}

// TestReleaseConcurrencyPermit verifies a released permit becomes available for reuse.
func TestReleaseConcurrencyPermit(t *testing.T) {
	handler := newTestHandler(1)

	_, requestID, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)

	handler.ReleaseConcurrencyPermit(requestID)

	_, _, err = handler.AcquireConcurrencyPermit(context.Background())
	assert.NoError(t, err, "Permit should be reusable after release")
}

// TestAverageAcquisitionTime verifies acquisition times are recorded and averaged.
func TestAverageAcquisitionTime(t *testing.T) {
	handler := newTestHandler(2)

	_, _, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)
	_, _, err = handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)

	assert.Len(t, handler.AcquisitionTimes, 2)
	assert.GreaterOrEqual(t, int64(handler.AverageAcquisitionTime()), int64(0))
}

// TestResizeSemaphorePreservesHeldPermits verifies that scaling down while permits are held
// keeps those permits accounted for in the new semaphore.
func TestResizeSemaphorePreservesHeldPermits(t *testing.T) {
	handler := newTestHandler(3)

	_, firstID, err := handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)
	_, _, err = handler.AcquireConcurrencyPermit(context.Background())
	require.NoError(t, err)

	handler.ScaleDown()
	assert.Equal(t, int64(2), handler.currentCapacity)

	// Both permits are held, so a further acquisition must fail immediately.
	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = handler.AcquireConcurrencyPermit(cancelledCtx)
	assert.Error(t, err)

	// After releasing one permit the shrunken semaphore has room again.
	handler.ReleaseConcurrencyPermit(firstID)
	_, _, err = handler.AcquireConcurrencyPermit(context.Background())
	assert.NoError(t, err)
}
