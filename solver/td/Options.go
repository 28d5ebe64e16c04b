// Package td implements temporal-difference learning of action values
// for finite MDPs: SARSA and Q-learning. Both learn only from sampled
// transitions and share a single online training loop.
package td

import (
	"io"

	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/sirupsen/logrus"
)

// Option configures a temporal-difference solver
type Option func(*options)

type options struct {
	log      logrus.FieldLogger
	trackers []trackers.Tracker
	progress io.Writer
	width    int
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

// WithTracker registers a Tracker which is given every TimeStep of
// training
func WithTracker(t trackers.Tracker) Option {
	return func(o *options) {
		o.trackers = append(o.trackers, t)
	}
}

// WithProgress displays a progress bar of width characters on w,
// updated after every episode
func WithProgress(w io.Writer, width int) Option {
	return func(o *options) {
		o.progress = w
		o.width = width
	}
}
