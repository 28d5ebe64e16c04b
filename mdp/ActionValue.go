package mdp

import (
	"gonum.org/v1/gonum/floats"
)

// StateActionValue estimates the value of each action in a single,
// fixed state. A StateActionValue is total over the action Sampler used
// to construct it.
type StateActionValue[A Action] struct {
	values map[A]float64
	order  []A
}

// NewStateActionValue returns a new StateActionValue with an estimate
// of 0 for every action in actions
func NewStateActionValue[A Action](actions *Sampler[A]) *StateActionValue[A] {
	order := actions.Items()
	m := make(map[A]float64, len(order))
	for _, action := range order {
		m[action] = 0.0
	}

	return &StateActionValue[A]{values: m, order: order}
}

// Get returns the value of action
func (q *StateActionValue[A]) Get(action A) (float64, error) {
	value, ok := q.values[action]
	if !ok {
		return 0, notFound(ActionInStateActionValue, action)
	}
	return value, nil
}

// Insert sets the value of action
func (q *StateActionValue[A]) Insert(action A, value float64) error {
	if _, ok := q.values[action]; !ok {
		return notFound(ActionInStateActionValue, action)
	}
	q.values[action] = value
	return nil
}

// Len returns the number of actions in the StateActionValue
func (q *StateActionValue[A]) Len() int {
	return len(q.values)
}

// Values returns the value of each action in the construction order
// of the action Sampler
func (q *StateActionValue[A]) Values() []float64 {
	values := make([]float64, len(q.order))
	for i, action := range q.order {
		values[i] = q.values[action]
	}
	return values
}

// Greedy returns the action with the largest value. Ties are broken in
// favour of the action which appears first in the action Sampler.
func (q *StateActionValue[A]) Greedy() A {
	return q.order[floats.MaxIdx(q.Values())]
}

// EpsilonGreedy returns an action drawn uniformly from actions with
// probability epsilon and the greedy action otherwise. The random
// action may coincide with the greedy action.
func (q *StateActionValue[A]) EpsilonGreedy(actions *Sampler[A],
	epsilon float64) A {
	if actions.Float64() < epsilon {
		return actions.Random()
	}
	return q.Greedy()
}

// Clone returns a deep copy of the StateActionValue
func (q *StateActionValue[A]) Clone() *StateActionValue[A] {
	m := make(map[A]float64, len(q.values))
	for action, value := range q.values {
		m[action] = value
	}
	order := make([]A, len(q.order))
	copy(order, q.order)

	return &StateActionValue[A]{values: m, order: order}
}

// ActionValue estimates the value of every state-action pair of an
// MDP. An ActionValue is total over the state and action Samplers used
// to construct it.
type ActionValue[S State, A Action] struct {
	values map[S]*StateActionValue[A]
	order  []S
}

// NewActionValue returns a new ActionValue with an estimate of 0 for
// every state-action pair
func NewActionValue[S State, A Action](states *Sampler[S],
	actions *Sampler[A]) *ActionValue[S, A] {
	order := states.Items()
	m := make(map[S]*StateActionValue[A], len(order))
	for _, state := range order {
		m[state] = NewStateActionValue(actions)
	}

	return &ActionValue[S, A]{values: m, order: order}
}

// At returns the StateActionValue of state
func (q *ActionValue[S, A]) At(state S) (*StateActionValue[A], error) {
	stateValues, ok := q.values[state]
	if !ok {
		return nil, notFound(StateInActionValue, state)
	}
	return stateValues, nil
}

// Get returns the value of taking action in state
func (q *ActionValue[S, A]) Get(state S, action A) (float64, error) {
	stateValues, err := q.At(state)
	if err != nil {
		return 0, err
	}
	return stateValues.Get(action)
}

// Insert sets the value of taking action in state
func (q *ActionValue[S, A]) Insert(state S, action A, value float64) error {
	stateValues, err := q.At(state)
	if err != nil {
		return err
	}
	return stateValues.Insert(action, value)
}

// Greedy returns the greedy action in state
func (q *ActionValue[S, A]) Greedy(state S) (A, error) {
	stateValues, err := q.At(state)
	if err != nil {
		var zero A
		return zero, err
	}
	return stateValues.Greedy(), nil
}

// EpsilonGreedy returns the ε-greedy action in state
func (q *ActionValue[S, A]) EpsilonGreedy(actions *Sampler[A], state S,
	epsilon float64) (A, error) {
	stateValues, err := q.At(state)
	if err != nil {
		var zero A
		return zero, err
	}
	return stateValues.EpsilonGreedy(actions, epsilon), nil
}

// GreedyPolicy returns the Policy which takes the greedy action in
// every state of states
func (q *ActionValue[S, A]) GreedyPolicy(states *Sampler[S],
	actions *Sampler[A]) (*Policy[S, A], error) {
	policy := NewConstantPolicy(states, actions.Items()[0])
	for _, state := range states.Items() {
		action, err := q.Greedy(state)
		if err != nil {
			return nil, err
		}
		if err := policy.Insert(state, action); err != nil {
			return nil, err
		}
	}
	return policy, nil
}

// GreedyValues returns the StateValue holding, for every state of
// states, the largest action value of that state
func (q *ActionValue[S, A]) GreedyValues(states *Sampler[S]) (*StateValue[S],
	error) {
	values := NewStateValue(states)
	for _, state := range states.Items() {
		stateValues, err := q.At(state)
		if err != nil {
			return nil, err
		}
		greedy, err := stateValues.Get(stateValues.Greedy())
		if err != nil {
			return nil, err
		}
		if err := values.Insert(state, greedy); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// Len returns the number of states in the ActionValue
func (q *ActionValue[S, A]) Len() int {
	return len(q.values)
}

// Clone returns a deep copy of the ActionValue
func (q *ActionValue[S, A]) Clone() *ActionValue[S, A] {
	m := make(map[S]*StateActionValue[A], len(q.values))
	for state, stateValues := range q.values {
		m[state] = stateValues.Clone()
	}
	order := make([]S, len(q.order))
	copy(order, q.order)

	return &ActionValue[S, A]{values: m, order: order}
}
