package td

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/mdp"
	ts "github.com/samuelfneumann/gomdp/timestep"
	"github.com/samuelfneumann/gomdp/utils/progressbar"
	"github.com/sirupsen/logrus"
)

// Sarsa learns action values of m with on-policy TD(0) control: the
// target of each update uses the ε-greedy action actually taken in the
// next state.
func Sarsa[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	opts ...Option) (*mdp.ActionValue[S, A], error) {
	q, err := learn(m, c, false, opts)
	if err != nil {
		return nil, errors.Wrap(err, "sarsa")
	}
	return q, nil
}

// QLearning learns action values of m with off-policy TD(0) control:
// the target of each update uses the greedy action in the next state,
// regardless of the action taken next.
func QLearning[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	opts ...Option) (*mdp.ActionValue[S, A], error) {
	q, err := learn(m, c, true, opts)
	if err != nil {
		return nil, errors.Wrap(err, "q-learning")
	}
	return q, nil
}

// learn runs c.NumEpisodes episodes of TD(0) control. If
// useMaxNextAction is true, updates bootstrap from the greedy next
// action (Q-learning), otherwise from the next action taken (SARSA).
func learn[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	useMaxNextAction bool, opts []Option) (*mdp.ActionValue[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	q := mdp.NewActionValue(m.States(), m.Actions())

	var bar *progressbar.ManualProgressBar
	if o.progress != nil {
		bar = progressbar.NewManualProgressBar(o.progress, o.width,
			c.NumEpisodes)
		bar.Display()
		defer bar.Close()
	}

	for episode := 0; episode < c.NumEpisodes; episode++ {
		ret, steps, err := runEpisode(m, c, q, useMaxNextAction, o)
		if err != nil {
			return nil, errors.Wrapf(err, "episode %d", episode)
		}

		o.log.WithFields(logrus.Fields{
			"episode": episode,
			"steps":   steps,
			"return":  ret,
		}).Debug("episode finished")

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	return q, nil
}

// runEpisode runs a single episode from a uniformly random start state,
// updating q in place. The undiscounted return and the number of steps
// taken are returned.
func runEpisode[S mdp.State, A mdp.Action](m mdp.MDP[S, A], c config.Config,
	q *mdp.ActionValue[S, A], useMaxNextAction bool,
	o *options) (float64, int, error) {
	states, actions := m.States(), m.Actions()
	γ, α, ε := c.DiscountFactor, c.LearningRate, c.ExplorationRate

	state := states.Random()
	action, err := q.EpsilonGreedy(actions, state, ε)
	if err != nil {
		return 0, 0, err
	}
	o.track(ts.New(ts.First, 0, γ, 0))

	ret := 0.0
	step := 1
	for ; step <= c.MaxNumSteps; step++ {
		nextState, reward := m.Transition(state, action)
		ret += reward

		nextAction, err := q.EpsilonGreedy(actions, nextState, ε)
		if err != nil {
			return ret, step, err
		}

		targetAction := nextAction
		if useMaxNextAction {
			if targetAction, err = q.Greedy(nextState); err != nil {
				return ret, step, err
			}
		}

		nextValue, err := q.Get(nextState, targetAction)
		if err != nil {
			return ret, step, err
		}
		current, err := q.Get(state, action)
		if err != nil {
			return ret, step, err
		}

		target := reward + γ*nextValue
		if err := q.Insert(state, action, current+α*(target-current)); err != nil {
			return ret, step, err
		}

		state, action = nextState, nextAction

		terminal := m.IsTerminal(state)
		stepType := ts.Mid
		if terminal || step == c.MaxNumSteps {
			stepType = ts.Last
		}
		o.track(ts.New(stepType, reward, γ, step))

		if terminal {
			return ret, step, nil
		}
	}

	return ret, c.MaxNumSteps, nil
}

func (o *options) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
