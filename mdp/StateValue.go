package mdp

// StateValue estimates the expected discounted return from each state
// of an MDP. A StateValue is total over the state Sampler used to
// construct it.
type StateValue[S State] struct {
	values map[S]float64
	order  []S
}

// NewStateValue returns a new StateValue with an estimate of 0 for
// every state in states
func NewStateValue[S State](states *Sampler[S]) *StateValue[S] {
	order := states.Items()
	m := make(map[S]float64, len(order))
	for _, state := range order {
		m[state] = 0.0
	}

	return &StateValue[S]{values: m, order: order}
}

// Get returns the value of state
func (v *StateValue[S]) Get(state S) (float64, error) {
	value, ok := v.values[state]
	if !ok {
		return 0, notFound(StateInStateValue, state)
	}
	return value, nil
}

// Insert sets the value of state. Insert returns an error if the
// state was not part of the Sampler that built the StateValue.
func (v *StateValue[S]) Insert(state S, value float64) error {
	if _, ok := v.values[state]; !ok {
		return notFound(StateInStateValue, state)
	}
	v.values[state] = value
	return nil
}

// Len returns the number of states in the StateValue
func (v *StateValue[S]) Len() int {
	return len(v.values)
}

// Values returns the value of each state in the construction order of
// the state Sampler
func (v *StateValue[S]) Values() []float64 {
	values := make([]float64, len(v.order))
	for i, state := range v.order {
		values[i] = v.values[state]
	}
	return values
}

// Clone returns a deep copy of the StateValue
func (v *StateValue[S]) Clone() *StateValue[S] {
	m := make(map[S]float64, len(v.values))
	for state, value := range v.values {
		m[state] = value
	}
	order := make([]S, len(v.order))
	copy(order, v.order)

	return &StateValue[S]{values: m, order: order}
}
