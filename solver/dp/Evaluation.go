package dp

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// PolicyEvaluation estimates the state values of policy on m. If
// initial is nil, evaluation starts from a table of zeros, otherwise
// initial is used as a warm start and is not modified.
//
// Each sweep computes the new value of every state from the table of
// the previous sweep. Evaluation stops once the largest change over a
// sweep is below Tolerance, or once the Config's iterations before
// improvement cap is reached. As a safety bound, evaluation also stops
// after c.MaxNumSteps sweeps.
func PolicyEvaluation[S mdp.State, A mdp.Action](m mdp.MDP[S, A],
	c config.Config, policy *mdp.Policy[S, A], initial *mdp.StateValue[S],
	opts ...Option) (*mdp.StateValue[S], error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "policy evaluation")
	}
	o := newOptions(opts)

	values, _, err := evaluate(m, c, policy, initial, o.log)
	return values, err
}

// evaluate runs policy evaluation and returns the state values and
// the number of sweeps performed
func evaluate[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	policy *mdp.Policy[S, A], initial *mdp.StateValue[S],
	log logrus.FieldLogger) (*mdp.StateValue[S], int, error) {
	states := m.States()

	var current *mdp.StateValue[S]
	if initial == nil {
		current = mdp.NewStateValue(states)
	} else {
		current = initial.Clone()
	}

	iterations, capped := c.IterationCap()
	sweeps := 0
	for {
		if capped && sweeps >= iterations {
			return current, sweeps, nil
		}

		next, err := sweep(m, c.DiscountFactor, policy, current)
		if err != nil {
			return nil, sweeps, errors.Wrapf(err, "sweep %d", sweeps+1)
		}
		sweeps++

		delta := floats.Distance(next.Values(), current.Values(), math.Inf(1))
		current = next

		if delta < Tolerance {
			log.WithFields(logrus.Fields{
				"sweeps": sweeps,
				"delta":  delta,
			}).Debug("policy evaluation converged")
			return current, sweeps, nil
		}

		if !capped && sweeps >= c.MaxNumSteps {
			log.WithFields(logrus.Fields{
				"sweeps": sweeps,
				"delta":  delta,
			}).Warn("policy evaluation stopped before converging")
			return current, sweeps, nil
		}
	}
}

// sweep performs a single synchronous backup of every state under
// policy, reading only from current
func sweep[S mdp.State, A mdp.Action](m mdp.MDP[S, A], discount float64,
	policy *mdp.Policy[S, A], current *mdp.StateValue[S]) (*mdp.StateValue[S],
	error) {
	states := m.States()
	next := mdp.NewStateValue(states)

	for _, state := range states.Items() {
		action, err := policy.Get(state)
		if err != nil {
			return nil, err
		}

		value, err := backup(m, discount, current, state, action)
		if err != nil {
			return nil, err
		}

		if err := next.Insert(state, value); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// backup returns the one-step lookahead value r + γ·V(s') of taking
// action in state
func backup[S mdp.State, A mdp.Action](m mdp.MDP[S, A], discount float64,
	values *mdp.StateValue[S], state S, action A) (float64, error) {
	nextState, reward := m.Transition(state, action)
	nextValue, err := values.Get(nextState)
	if err != nil {
		return 0, err
	}
	return reward + discount*nextValue, nil
}
