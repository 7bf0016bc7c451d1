package planner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTimedOut marks an upstream that gave up, either by our deadline or by its own report.
	ErrTimedOut = errors.New("itinerary request timed out")
	// ErrNetwork wraps transport failures that carry no upstream message.
	ErrNetwork       = errors.New("failed to reach itinerary service")
	ErrDraftNotFound = errors.New("plan draft not found")
)

// UpstreamError is a non-timeout failure reported by the itinerary source.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func upstreamError(status int, msg string) error {
	if strings.TrimSpace(msg) == "" {
		msg = fmt.Sprintf("upstream returned status %d", status)
	}
	return &UpstreamError{Status: status, Message: msg}
}

// classifyFailure turns an upstream error message into ErrTimedOut or an *UpstreamError.
func classifyFailure(status int, msg string) error {
	if isTimeoutMessage(msg) {
		return fmt.Errorf("%w: %s", ErrTimedOut, msg)
	}
	return upstreamError(status, msg)
}

func isTimeoutMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "timeout") || strings.Contains(m, "timed out")
}
