package gridworld

import "fmt"

// Goal represents the task of reaching an End cell in a GridWorld.
// Every transition out of a non-terminal cell earns StepReward, except
// transitions into an End cell which earn GoalReward.
type Goal struct {
	StepReward float64
	GoalReward float64
}

// DefaultGoal penalizes every step by 1 and rewards reaching an End
// cell with 100
var DefaultGoal = Goal{StepReward: -1.0, GoalReward: 100.0}

func (g Goal) String() string {
	return fmt.Sprintf("Goal{step: %v, goal: %v}", g.StepReward,
		g.GoalReward)
}
