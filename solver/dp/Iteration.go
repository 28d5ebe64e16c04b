package dp

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/sirupsen/logrus"
)

// PolicyIteration finds an optimal policy for m by alternating policy
// evaluation to convergence with policy improvement, starting from a
// random policy. Iteration stops once improvement returns the policy
// it was given. The final state values and policy are returned.
//
// The Config must not set a number of iterations before improvement,
// otherwise ErrIterationCapSet is returned before any work is done.
func PolicyIteration[S mdp.State, A mdp.Action](m mdp.MDP[S, A],
	c config.Config, opts ...Option) (*mdp.StateValue[S], *mdp.Policy[S, A],
	error) {
	if _, ok := c.IterationCap(); ok {
		return nil, nil, ErrIterationCapSet
	}
	return iterate(m, c, "policy iteration", opts)
}

// ValueIteration finds an optimal policy for m in the same way as
// PolicyIteration, except that each round of evaluation performs only
// the number of sweeps given by the Config's iterations before
// improvement.
//
// The Config must set a positive number of iterations before
// improvement, otherwise ErrIterationCapMissing is returned before any
// work is done.
func ValueIteration[S mdp.State, A mdp.Action](m mdp.MDP[S, A],
	c config.Config, opts ...Option) (*mdp.StateValue[S], *mdp.Policy[S, A],
	error) {
	if n, ok := c.IterationCap(); !ok || n <= 0 {
		return nil, nil, ErrIterationCapMissing
	}
	return iterate(m, c, "value iteration", opts)
}

// iterate is the outer evaluate-improve loop shared by policy and
// value iteration
func iterate[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	name string, opts []Option) (*mdp.StateValue[S], *mdp.Policy[S, A],
	error) {
	if err := c.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	o := newOptions(opts)
	log := o.log.WithField("solver", name)

	policy := mdp.NewPolicy(m.States(), m.Actions())
	values := mdp.NewStateValue(m.States())

	for round := 1; ; round++ {
		var (
			sweeps int
			err    error
		)
		values, sweeps, err = evaluate(m, c, policy, values, log)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s: round %d", name, round)
		}

		candidate, err := improve(m, c.DiscountFactor, values)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s: round %d", name, round)
		}

		stable := candidate.Equal(policy)
		log.WithFields(logrus.Fields{
			"round":  round,
			"sweeps": sweeps,
			"stable": stable,
		}).Debug("policy improved")

		if stable {
			return values, policy, nil
		}
		policy = candidate
	}
}
