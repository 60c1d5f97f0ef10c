package atlas

import "errors"

// Sentinel errors for history operations.
var (
	ErrAlreadyStarted = errors.New("atlas: history has already been started")
	ErrNotStarted     = errors.New("atlas: history has not been started")
)

// IsNotStarted checks if err reports use of a history before Start.
func IsNotStarted(err error) bool {
	return errors.Is(err, ErrNotStarted)
}
