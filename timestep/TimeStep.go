// Package timestep implements timesteps of the agent-environment
// interaction, as emitted by online training and policy rollouts
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step of an episode, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep of an episode. Number
// counts the transitions taken so far in the episode, so the first
// TimeStep of an episode has Number 0 and Reward 0.
type TimeStep struct {
	StepType StepType
	Reward   float64
	Discount float64
	Number   int
}

// New returns a new TimeStep
func New(t StepType, r, d float64, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Discount: d, Number: n}
}

// First returns whether a TimeStep is the first in an episode
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number)
}
