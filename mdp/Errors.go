package mdp

import "github.com/pkg/errors"

// NotFound describes which container was queried with a key outside of
// the Sampler that built it. Every NotFound value is an error, and
// errors returned by container lookups wrap one of them so that
// callers can test for the kind with errors.Is.
type NotFound int

const (
	StateInPolicy NotFound = iota
	StateInStateValue
	StateInActionValue
	ActionInStateActionValue
)

// Error implements the error interface
func (n NotFound) Error() string {
	switch n {
	case StateInPolicy:
		return "state not found in policy"
	case StateInStateValue:
		return "state not found in state value"
	case StateInActionValue:
		return "state not found in action value"
	case ActionInStateActionValue:
		return "action not found in state action value"
	default:
		return "key not found"
	}
}

// notFound wraps kind with the key that could not be found
func notFound(kind NotFound, key interface{}) error {
	return errors.Wrapf(kind, "%v", key)
}
