// Package dp implements dynamic programming solvers for finite MDPs
// whose transition model is known: policy evaluation, policy
// improvement, policy iteration, and value iteration.
//
// All solvers are synchronous and deterministic given the MDP, the
// Config, and the random source of the MDP's Samplers (used only to
// build the initial random policy).
package dp

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Tolerance is the L∞ distance between successive state value tables
// below which policy evaluation is considered converged
const Tolerance = 1e-5

var (
	// ErrIterationCapSet is returned by PolicyIteration when the Config
	// sets a number of iterations before improvement
	ErrIterationCapSet = errors.New("policy iteration requires no " +
		"iterations before improvement cap")

	// ErrIterationCapMissing is returned by ValueIteration when the
	// Config does not set a positive number of iterations before
	// improvement
	ErrIterationCapMissing = errors.New("value iteration requires a " +
		"positive iterations before improvement cap")
)

// Option configures a dynamic programming solver
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

func newOptions(opts []Option) *options {
	o := &options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger that solvers report progress to
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
