package generate

import (
	"errors"
	"strings"
)

// Error is a generic generation failure. Required pipeline phases treat it
// as fatal.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "generation failed during " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// RateLimitError marks quota and rate-limit failures so callers can present
// backoff guidance instead of a generic error.
type RateLimitError struct {
	Op  string
	Err error
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded during " + e.Op + ": " + e.Err.Error()
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// rateLimitMarkers are substrings that identify a rate-limit failure in an
// underlying error message, regardless of which adapter produced it.
var rateLimitMarkers = []string{"429", "quota", "rate limit", "resource_exhausted"}

// Classify wraps a failure from a generation call, upgrading it to
// RateLimitError when the underlying message carries a known rate-limit
// marker. Errors already classified pass through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return err
	}
	if hasRateLimitMarker(err) {
		return &RateLimitError{Op: op, Err: err}
	}
	var ge *Error
	if errors.As(err, &ge) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// IsRateLimit reports whether err is (or wraps) a rate-limit failure.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

func hasRateLimitMarker(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
