// concurrency/const.go
package concurrency

import "time"

const (
	// MaxConcurrency caps the semaphore size; scaling never grows past it.
	MaxConcurrency = 10

	// MinConcurrency floors the semaphore size; scaling never shrinks below it.
	MinConcurrency = 1

	// EvaluationInterval is how often collected metrics are folded into a scaling decision.
	EvaluationInterval = 1 * time.Minute

	// MaxAcceptableTTFB is the time to first byte above which the server is considered
	// under pressure and concurrency is reduced.
	MaxAcceptableTTFB = 300 * time.Millisecond

	// MaxAcceptableThroughput is the network throughput, in bytes per second, above which
	// concurrency is reduced to avoid saturating the link.
	MaxAcceptableThroughput = 5 * 1024 * 1024

	// MaxAcceptableResponseTimeVariability is the standard deviation of observed response
	// times above which concurrency is reduced.
	MaxAcceptableResponseTimeVariability = 500 * time.Millisecond

	// ErrorRateThreshold is the fraction of failed requests (rate limit errors plus 4xx
	// plus 5xx over total requests) above which concurrency is reduced.
	ErrorRateThreshold = 0.1
)
