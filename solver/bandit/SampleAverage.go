// Package bandit implements solvers for multi-armed bandits
package bandit

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/sirupsen/logrus"
)

// Option configures a bandit solver
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger that solvers report progress to
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// SampleAverage estimates the value of each arm of b as the average
// of the rewards observed when pulling it. Arms are chosen ε-greedily
// with respect to the current estimates for c.MaxNumSteps pulls.
func SampleAverage[A mdp.Action](b mdp.Bandit[A], c config.Config,
	opts ...Option) (*mdp.StateActionValue[A], error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "sample average")
	}
	o := &options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(o)
	}

	actions := b.Actions()
	q := mdp.NewStateActionValue(actions)
	counts := make(map[A]int, actions.Len())

	total := 0.0
	for step := 0; step < c.MaxNumSteps; step++ {
		arm := q.EpsilonGreedy(actions, c.ExplorationRate)
		reward := b.Reward(arm)
		total += reward

		counts[arm]++
		estimate, err := q.Get(arm)
		if err != nil {
			return nil, errors.Wrap(err, "sample average")
		}
		estimate += (reward - estimate) / float64(counts[arm])
		if err := q.Insert(arm, estimate); err != nil {
			return nil, errors.Wrap(err, "sample average")
		}
	}

	o.log.WithFields(logrus.Fields{
		"pulls":         c.MaxNumSteps,
		"averageReward": total / float64(c.MaxNumSteps),
		"greedy":        q.Greedy(),
	}).Debug("sample average finished")

	return q, nil
}
