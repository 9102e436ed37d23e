// concurrency/semaphore.go
/* package provides utilities to manage concurrency control. The Concurrency Manager
ensures no more than a certain number of concurrent requests (e.g., 5 for Jamf Pro)
are sent at the same time. This is managed using a semaphore */
package concurrency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// permitAcquisitionTimeout bounds how long a request may wait for a concurrency permit.
const permitAcquisitionTimeout = 10 * time.Second

// AcquireConcurrencyPermit acquires a concurrency permit to regulate the number of concurrent
// operations within predefined limits. A unique request ID is generated for tracking purposes
// and the permit is acquired within a fixed timeout to prevent indefinite blocking. Successful
// acquisition updates the permit wait metrics and associates the request ID with the provided
// context for traceability across the request lifecycle.
//
// Returns the derived context carrying the request ID, the request ID itself, and an error when
// no permit could be acquired within the timeout.
//
// Example:
// ctx, requestID, err := concurrencyHandler.AcquireConcurrencyPermit(context.Background())
//
//	if err != nil {
//	    // Handle permit acquisition failure
//	}
//
// defer concurrencyHandler.ReleaseConcurrencyPermit(requestID)
func (ch *ConcurrencyHandler) AcquireConcurrencyPermit(ctx context.Context) (context.Context, uuid.UUID, error) {
	log := ch.logger

	// Measure the permit acquisition start time
	permitAcquisitionStart := time.Now()

	// Generate a unique request ID for this acquisition
	requestID := uuid.New()

	// Create a new context with a timeout for acquiring the concurrency permit
	ctxWithTimeout, cancel := context.WithTimeout(ctx, permitAcquisitionTimeout)
	defer cancel()

	// Attempt to acquire a permit from the semaphore within the given context timeout
	select {
	case ch.sem <- struct{}{}: // Successfully acquired a permit
		// Calculate the duration it took to acquire the permit and record it
		permitAcquisitionDuration := time.Since(permitAcquisitionStart)
		ch.lock.Lock()
		ch.AcquisitionTimes = append(ch.AcquisitionTimes, permitAcquisitionDuration)
		ch.activePermits++
		ch.Metrics.Lock.Lock()
		ch.Metrics.PermitWaitTime += permitAcquisitionDuration
		ch.Metrics.TotalRequests++ // Increment total requests count
		ch.Metrics.Lock.Unlock()
		ch.lock.Unlock()

		// Logging the acquisition
		utilizedPermits := len(ch.sem)
		availablePermits := cap(ch.sem) - utilizedPermits
		log.Debug("Acquired concurrency permit", zap.String("RequestID", requestID.String()), zap.Duration("AcquisitionTime", permitAcquisitionDuration), zap.Int("UtilizedPermits", utilizedPermits), zap.Int("AvailablePermits", availablePermits))

		// Add the acquired request ID to the context for use in subsequent operations
		ctxWithRequestID := context.WithValue(ctx, RequestIDKey{}, requestID)

		// Return the updated context, the request ID, and nil error to indicate success
		return ctxWithRequestID, requestID, nil

	case <-ctxWithTimeout.Done(): // Failed to acquire a permit within the timeout
		log.Error("Failed to acquire concurrency permit", zap.Error(ctxWithTimeout.Err()))
		return ctx, requestID, ctxWithTimeout.Err()
	}
}

// ReleaseConcurrencyPermit returns a permit back to the semaphore pool, allowing other
// operations to proceed. It uses the provided requestID for structured logging,
// aiding in tracking and debugging the release of concurrency permits.
func (ch *ConcurrencyHandler) ReleaseConcurrencyPermit(requestID uuid.UUID) {
	<-ch.sem // Release a permit back to the semaphore

	ch.lock.Lock()
	defer ch.lock.Unlock()

	ch.activePermits--

	utilizedPermits := len(ch.sem)                    // Permits currently in use
	availablePermits := cap(ch.sem) - utilizedPermits // Permits available for use

	// Log the release of the concurrency permit for auditing and debugging purposes
	ch.logger.Debug("Released concurrency permit",
		zap.String("RequestID", requestID.String()),
		zap.Int("UtilizedPermits", utilizedPermits),
		zap.Int("AvailablePermits", availablePermits),
	)
}
