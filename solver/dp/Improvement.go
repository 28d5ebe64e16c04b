package dp

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/mdp"
	"gonum.org/v1/gonum/floats"
)

// PolicyImprovement returns the policy which is greedy with respect to
// a one-step lookahead on values. Ties are broken in favour of the
// action which comes first in the action Sampler. Neither m nor values
// is modified.
func PolicyImprovement[S mdp.State, A mdp.Action](m mdp.MDP[S, A],
	c config.Config, values *mdp.StateValue[S]) (*mdp.Policy[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "policy improvement")
	}
	return improve(m, c.DiscountFactor, values)
}

func improve[S mdp.State, A mdp.Action](m mdp.MDP[S, A], discount float64,
	values *mdp.StateValue[S]) (*mdp.Policy[S, A], error) {
	states := m.States()
	actions := m.Actions().Items()
	policy := mdp.NewConstantPolicy(states, actions[0])

	lookahead := make([]float64, len(actions))
	for _, state := range states.Items() {
		for i, action := range actions {
			value, err := backup(m, discount, values, state, action)
			if err != nil {
				return nil, errors.Wrap(err, "policy improvement")
			}
			lookahead[i] = value
		}

		best := actions[floats.MaxIdx(lookahead)]
		if err := policy.Insert(state, best); err != nil {
			return nil, err
		}
	}

	return policy, nil
}
