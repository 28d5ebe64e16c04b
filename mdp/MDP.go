package mdp

// MDP is the contract an environment satisfies so that it can be
// solved. The state and action Samplers must not change over the
// lifetime of the MDP.
type MDP[S State, A Action] interface {
	// States returns a Sampler over all states of the MDP
	States() *Sampler[S]

	// Actions returns a Sampler over all actions of the MDP
	Actions() *Sampler[A]

	// IsTerminal returns whether state ends an episode
	IsTerminal(state S) bool

	// Transition returns the next state and reward for taking action
	// in state. Transition must be a pure function of its arguments.
	Transition(state S, action A) (S, float64)
}

// Bandit is a single-state decision problem in which each action
// (arm) produces a stochastic reward.
type Bandit[A Action] interface {
	Actions() *Sampler[A]
	Reward(action A) float64
}
