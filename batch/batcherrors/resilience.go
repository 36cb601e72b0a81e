package batcherrors

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrMaxAttempts is returned when every build attempt has failed.
var ErrMaxAttempts = errors.New("max build attempts exceeded")

// ErrCircuitOpen is returned when a circuit breaker is in the open state.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Retry runs build up to attempts times and returns the first successful
// batch. A build is all-or-nothing, so retrying is always safe: a failed
// attempt leaves nothing behind to clean up or deduplicate. When every
// attempt fails, the returned error wraps both ErrMaxAttempts and the last
// build error.
func Retry[T any](attempts int, build func() ([]T, error)) ([]T, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := build()
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxAttempts, lastErr)
}

// RetryWhen retries based on a predicate function. The predicate receives
// the build error and attempt number (0-indexed) and returns true to retry.
// If the predicate returns false, the error is returned as is; if attempts
// run out, the error wraps ErrMaxAttempts.
func RetryWhen[T any](attempts int, shouldRetry func(err error, attempt int) bool, build func() ([]T, error)) ([]T, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := build()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt < attempts-1 && !shouldRetry(err, attempt) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxAttempts, lastErr)
}

// BackoffStrategy defines how to calculate delay between attempts.
type BackoffStrategy func(attempt int) time.Duration

// ConstantBackoff returns a BackoffStrategy that always waits the same duration.
func ConstantBackoff(delay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		return delay
	}
}

// LinearBackoff returns a BackoffStrategy that increases delay linearly.
func LinearBackoff(initialDelay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		return time.Duration(attempt+1) * initialDelay
	}
}

// ExponentialBackoff returns a BackoffStrategy that doubles delay each attempt.
// The delay is capped at maxDelay if provided (use 0 for no cap).
func ExponentialBackoff(initialDelay, maxDelay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		delay := initialDelay * time.Duration(math.Pow(2, float64(attempt)))
		if maxDelay > 0 && delay > maxDelay {
			return maxDelay
		}
		return delay
	}
}

// RetryWithBackoff retries a failed build with a delay between attempts.
// The backoff strategy determines the delay; ctx cancels the waits, in which
// case the context error is returned.
func RetryWithBackoff[T any](ctx context.Context, attempts int, backoff BackoffStrategy, build func() ([]T, error)) ([]T, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := build()
		if err == nil {
			return out, nil
		}
		lastErr = err

		// Apply backoff delay before the next attempt (except after the last)
		if attempt < attempts-1 {
			timer := time.NewTimer(backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxAttempts, lastErr)
}

// CircuitState represents the state of a circuit breaker.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker guards repeated batch builds against a persistently
// failing source.
//   - failureThreshold: number of failed builds before opening the circuit
//   - resetTimeout: duration to wait before trying half-open state
//   - halfOpenSuccesses: number of successes in half-open before fully closing
type CircuitBreaker[T any] struct {
	build             func() ([]T, error)
	failureThreshold  int
	resetTimeout      time.Duration
	halfOpenSuccesses int
	state             CircuitState
	failures          int
	successes         int
	lastFailure       time.Time
	mu                sync.RWMutex
}

// NewCircuitBreaker creates a new circuit breaker around a batch build.
func NewCircuitBreaker[T any](
	build func() ([]T, error),
	failureThreshold int,
	resetTimeout time.Duration,
	halfOpenSuccesses int,
) *CircuitBreaker[T] {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if resetTimeout <= 0 {
		resetTimeout = 30 * time.Second
	}
	if halfOpenSuccesses <= 0 {
		halfOpenSuccesses = 1
	}

	return &CircuitBreaker[T]{
		build:             build,
		failureThreshold:  failureThreshold,
		resetTimeout:      resetTimeout,
		halfOpenSuccesses: halfOpenSuccesses,
		state:             CircuitClosed,
	}
}

// Execute runs the build through the circuit breaker.
func (cb *CircuitBreaker[T]) Execute() ([]T, error) {
	cb.mu.Lock()
	state := cb.state

	// Check if we should transition from open to half-open
	if state == CircuitOpen && time.Since(cb.lastFailure) >= cb.resetTimeout {
		cb.state = CircuitHalfOpen
		cb.successes = 0
		state = CircuitHalfOpen
	}

	if state == CircuitOpen {
		cb.mu.Unlock()
		return nil, ErrCircuitOpen
	}

	cb.mu.Unlock()

	// Run the build
	result, err := cb.build()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailure = time.Now()

		if cb.state == CircuitHalfOpen {
			// Any failure in half-open goes back to open
			cb.state = CircuitOpen
		} else if cb.failures >= cb.failureThreshold {
			cb.state = CircuitOpen
		}

		return nil, err
	}

	// Success
	if cb.state == CircuitHalfOpen {
		cb.successes++
		if cb.successes >= cb.halfOpenSuccesses {
			cb.state = CircuitClosed
			cb.failures = 0
		}
	} else {
		// Reset failures on success in closed state
		cb.failures = 0
	}

	return result, nil
}

// State returns the current circuit state.
func (cb *CircuitBreaker[T]) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}
