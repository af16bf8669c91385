package environment

import "errors"

// Error implements errors returned by an environment. Op is the
// operation that failed (e.g. "step") and Err the underlying error.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidAction is returned when an action outside of the
	// environment's action space is taken
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidState is returned when an environment ends up in, or
	// is asked about, a state outside of its state space
	ErrInvalidState = errors.New("invalid state")

	// ErrEpisodeOver is returned when Step is called after an episode
	// has ended and before the environment has been reset
	ErrEpisodeOver = errors.New("episode over, reset required")
)

// IsInvalidAction returns whether or not an error reports that an
// invalid action was taken
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}

// IsInvalidState returns whether or not an error reports an invalid
// state
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsEpisodeOver returns whether or not an error reports that the
// environment was stepped after the end of an episode
func IsEpisodeOver(err error) bool {
	return errors.Is(err, ErrEpisodeOver)
}
