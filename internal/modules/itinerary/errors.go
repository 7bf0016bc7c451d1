package itinerary

import "errors"

// ErrInvalidForm is returned when trip form data cannot be planned.
var ErrInvalidForm = errors.New("invalid trip form")

// MalformedResponseError reports an upstream payload that matches none of the accepted shapes.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed itinerary response: " + e.Reason
}

func malformed(reason string) error {
	return &MalformedResponseError{Reason: reason}
}
