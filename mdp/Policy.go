package mdp

import (
	"fmt"
	"strings"
)

// Policy is a deterministic policy, mapping every state of an MDP to
// a single action.
//
// A Policy is total over the state Sampler used to construct it: every
// state in the Sampler has an action, and no other state can be added.
type Policy[S State, A Action] struct {
	actions map[S]A
	order   []S // construction order, used for printing
}

// NewPolicy returns a new Policy mapping each state in states to an
// action drawn uniformly at random from actions. Each state receives
// an independent draw.
func NewPolicy[S State, A Action](states *Sampler[S],
	actions *Sampler[A]) *Policy[S, A] {
	order := states.Items()
	m := make(map[S]A, len(order))
	for _, state := range order {
		m[state] = actions.Random()
	}

	return &Policy[S, A]{actions: m, order: order}
}

// NewConstantPolicy returns a new Policy mapping every state in states
// to action. No random numbers are drawn.
func NewConstantPolicy[S State, A Action](states *Sampler[S],
	action A) *Policy[S, A] {
	order := states.Items()
	m := make(map[S]A, len(order))
	for _, state := range order {
		m[state] = action
	}

	return &Policy[S, A]{actions: m, order: order}
}

// Get returns the action taken in state
func (p *Policy[S, A]) Get(state S) (A, error) {
	action, ok := p.actions[state]
	if !ok {
		var zero A
		return zero, notFound(StateInPolicy, state)
	}
	return action, nil
}

// Insert sets the action taken in state, overwriting any previous
// action. Insert returns an error if the state was not part of the
// Sampler that built the Policy.
func (p *Policy[S, A]) Insert(state S, action A) error {
	if _, ok := p.actions[state]; !ok {
		return notFound(StateInPolicy, state)
	}
	p.actions[state] = action
	return nil
}

// Len returns the number of states in the Policy
func (p *Policy[S, A]) Len() int {
	return len(p.actions)
}

// Equal returns whether p and other map every state to the same
// action.
func (p *Policy[S, A]) Equal(other *Policy[S, A]) bool {
	if other == nil || len(p.actions) != len(other.actions) {
		return false
	}
	for state, action := range p.actions {
		otherAction, ok := other.actions[state]
		if !ok || otherAction != action {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the Policy
func (p *Policy[S, A]) Clone() *Policy[S, A] {
	m := make(map[S]A, len(p.actions))
	for state, action := range p.actions {
		m[state] = action
	}
	order := make([]S, len(p.order))
	copy(order, p.order)

	return &Policy[S, A]{actions: m, order: order}
}

func (p *Policy[S, A]) String() string {
	var builder strings.Builder
	builder.WriteString("Policy |")
	for _, state := range p.order {
		builder.WriteString(fmt.Sprintf(" %v -> %v |", state, p.actions[state]))
	}
	return builder.String()
}
