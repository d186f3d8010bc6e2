package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
	"time"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// RetryableError marks a failure worth retrying, such as a refused
// connection while a Redis or MongoDB server is still starting.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. Nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped with [Retryable].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// transient marks connectivity failures as retryable and returns any other
// error unchanged, so bad credentials fail on the first attempt.
func transient(err error) error {
	var ne net.Error
	if errors.As(err, &ne) || errors.Is(err, io.EOF) || errors.Is(err, syscall.ECONNREFUSED) {
		return Retryable(err)
	}
	return err
}

// Backoff schedule for RetryWithBackoff; tests shorten retryDelay.
var (
	retryAttempts = 3
	retryDelay    = time.Second
)

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable error,
// or the attempts run out. The wait doubles after each failure.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var err error
	for i := range retryAttempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay << i):
		}
	}
	return err
}
