package experiment

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/mdp"
	ts "github.com/samuelfneumann/gomdp/timestep"
)

// Online is an Experiment that follows a fixed policy on an MDP for a
// number of episodes. Rewards are tracked undiscounted.
type Online[S mdp.State, A mdp.Action] struct {
	mdp      mdp.MDP[S, A]
	policy   *mdp.Policy[S, A]
	episodes int
	maxSteps int
	trackers []trackers.Tracker
}

// NewOnline creates and returns a new online experiment following
// policy on m. Each episode runs until a terminal state is reached or
// for at most maxSteps steps, and episodes determines how many
// episodes Run runs. The t parameter determines what data is tracked.
func NewOnline[S mdp.State, A mdp.Action](m mdp.MDP[S, A],
	policy *mdp.Policy[S, A], episodes, maxSteps int,
	t ...trackers.Tracker) *Online[S, A] {
	return &Online[S, A]{
		mdp:      m,
		policy:   policy,
		episodes: episodes,
		maxSteps: maxSteps,
		trackers: t,
	}
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online[S, A]) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode starting at start
func (o *Online[S, A]) RunEpisode(start S) error {
	state := start
	if o.mdp.IsTerminal(state) || o.maxSteps <= 0 {
		o.track(ts.New(ts.Last, 0, 1, 0))
		return nil
	}
	o.track(ts.New(ts.First, 0, 1, 0))

	for step := 1; step <= o.maxSteps; step++ {
		action, err := o.policy.Get(state)
		if err != nil {
			return errors.Wrapf(err, "run episode: step %d", step)
		}

		var reward float64
		state, reward = o.mdp.Transition(state, action)

		stepType := ts.Mid
		terminal := o.mdp.IsTerminal(state)
		if terminal || step == o.maxSteps {
			stepType = ts.Last
		}
		o.track(ts.New(stepType, reward, 1, step))

		if terminal {
			break
		}
	}
	return nil
}

// Run runs all episodes of the experiment, each starting from a state
// drawn uniformly at random
func (o *Online[S, A]) Run() error {
	states := o.mdp.States()
	for i := 0; i < o.episodes; i++ {
		if err := o.RunEpisode(states.Random()); err != nil {
			return errors.Wrapf(err, "episode %d", i)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online[S, A]) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online[S, A]) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
