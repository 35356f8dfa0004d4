package mpl3115a2

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDevice is returned when the WHO_AM_I register does not match a
	// MPL3115A2 signature (0xC4).
	ErrNotDevice = errors.New("mpl3115a2: device ID does not match (0xC4)")
	// ErrInvalidConfig is returned for an unknown Power or Mode value, or an
	// out of range option. The device is left untouched.
	ErrInvalidConfig = errors.New("mpl3115a2: invalid configuration")
	// ErrTimeout matches any *TimeoutError.
	ErrTimeout = errors.New("mpl3115a2: timed out waiting for data")
	// ErrAltimeterMode is returned when reading pressure while the output
	// registers hold altitude.
	ErrAltimeterMode = errors.New("mpl3115a2: pressure is not available in altimeter mode")

	errNilBus = errors.New("mpl3115a2: nil bus")
)

// TimeoutError is returned when the STATUS register did not report any of the
// awaited flags within the poll limit.
type TimeoutError struct {
	Want  Status
	Polls int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("mpl3115a2: timed out waiting for %v status after %d polls", e.Want, e.Polls)
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Timeout is always true.
func (e *TimeoutError) Timeout() bool {
	return true
}
