// Package gridworld implements 2D gridworld MDPs
//
// A gridworld is a rectangular grid of cells. Each cell is either open
// (Air), blocked (Wall), or a goal (End). The agent moves in one of
// four directions on each step; moves off the grid or into a wall leave
// the agent in place. Entering an End cell ends the episode.
package gridworld

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/mdp"
)

// Cell is the content of a single gridworld cell
type Cell int

const (
	Air Cell = iota
	Wall
	End
)

func (c Cell) String() string {
	switch c {
	case Air:
		return "Air"
	case Wall:
		return "Wall"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Cell(%d)", int(c))
	}
}

// State is a position in a gridworld
type State struct {
	Row, Col int
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Action is a direction of movement in a gridworld
type Action int

const (
	Down Action = iota
	Left
	Right
	Up
)

// Values returns every Action, in the order used by the action Sampler
// of a GridWorld
func (Action) Values() []Action {
	return []Action{Down, Left, Right, Up}
}

func (a Action) String() string {
	switch a {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// offset returns the change in row and column when taking action a
func (a Action) offset() (int, int) {
	switch a {
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 0, 0
	}
}

// GridWorld is a deterministic gridworld MDP. The states of a
// GridWorld are its non-wall cells, in row-major order.
type GridWorld struct {
	Goal
	cells      [][]Cell
	rows, cols int
	states     *mdp.Sampler[State]
	actions    *mdp.Sampler[Action]
}

// New creates a new GridWorld from a rectangular grid of cells, using
// the default rewards of DefaultGoal. The state and action Samplers
// of the GridWorld draw random numbers from sources seeded by seed.
func New(cells [][]Cell, seed uint64) (*GridWorld, error) {
	return NewWithGoal(cells, DefaultGoal, seed)
}

// NewWithGoal creates a new GridWorld with the rewards of goal
func NewWithGoal(cells [][]Cell, goal Goal, seed uint64) (*GridWorld,
	error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.New("gridworld: grid must have at least one cell")
	}

	rows, cols := len(cells), len(cells[0])
	grid := make([][]Cell, rows)
	var states []State
	for i, row := range cells {
		if len(row) != cols {
			return nil, errors.Errorf("gridworld: row %d has %d cells, "+
				"expected %d", i, len(row), cols)
		}
		grid[i] = make([]Cell, cols)
		for j, cell := range row {
			if cell < Air || cell > End {
				return nil, errors.Errorf("gridworld: unknown cell %v at "+
					"%v", cell, State{i, j})
			}
			grid[i][j] = cell
			if cell != Wall {
				states = append(states, State{i, j})
			}
		}
	}
	if len(states) == 0 {
		return nil, errors.New("gridworld: grid has no open cells")
	}

	return &GridWorld{
		Goal:    goal,
		cells:   grid,
		rows:    rows,
		cols:    cols,
		states:  mdp.NewSampler(states, seed),
		actions: mdp.SamplerOf[Action](seed + 1),
	}, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.rows, g.cols
}

// At returns the cell at row i and column j
func (g *GridWorld) At(i, j int) Cell {
	return g.cells[i][j]
}

// States returns a Sampler over the non-wall cells of the GridWorld
func (g *GridWorld) States() *mdp.Sampler[State] {
	return g.states
}

// Actions returns a Sampler over Down, Left, Right, and Up
func (g *GridWorld) Actions() *mdp.Sampler[Action] {
	return g.actions
}

// IsTerminal returns whether state is an End cell
func (g *GridWorld) IsTerminal(state State) bool {
	return g.inBounds(state) && g.cells[state.Row][state.Col] == End
}

// Transition returns the next state and reward of taking action in
// state. Taking any action from an End or Wall cell leaves the state
// unchanged with zero reward.
func (g *GridWorld) Transition(state State, action Action) (State, float64) {
	if !g.inBounds(state) {
		return state, 0
	}
	if cell := g.cells[state.Row][state.Col]; cell == End || cell == Wall {
		return state, 0
	}

	dr, dc := action.offset()
	next := State{state.Row + dr, state.Col + dc}

	if !g.inBounds(next) {
		return state, g.StepReward
	}

	switch g.cells[next.Row][next.Col] {
	case Wall:
		return state, g.StepReward
	case End:
		return next, g.GoalReward
	default:
		return next, g.StepReward
	}
}

func (g *GridWorld) inBounds(s State) bool {
	return s.Row >= 0 && s.Row < g.rows && s.Col >= 0 && s.Col < g.cols
}

func (g *GridWorld) String() string {
	str := "GridWorld | States: %d  |  Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.states.Len(), g.Goal, g.rows, g.cols)
}
