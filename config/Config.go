// Package config implements the hyperparameter bundle consumed by
// every solver, along with its defaults and validation.
package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Default hyperparameter values
const (
	DefaultDiscountFactor  float64 = 0.97
	DefaultMaxNumSteps     int     = 1_000
	DefaultNumEpisodes     int     = 500
	DefaultLearningRate    float64 = 0.3
	DefaultExplorationRate float64 = 1.0
)

// ErrInvalid is wrapped by every error returned from Validate
var ErrInvalid = errors.New("invalid config")

// Config holds the hyperparameters of the solvers. A Config is a plain
// value: the With methods return modified copies and never change the
// receiver.
type Config struct {
	// DiscountFactor is γ, the geometric weighting of future rewards
	DiscountFactor float64 `json:"discount_factor"`

	// LearningRate is α, the step size of temporal-difference updates
	LearningRate float64 `json:"learning_rate"`

	// ExplorationRate is ε, the probability of a random action in
	// ε-greedy action selection
	ExplorationRate float64 `json:"exploration_rate"`

	// NumEpisodes is the number of temporal-difference training
	// episodes
	NumEpisodes int `json:"num_episodes"`

	// MaxNumSteps caps the number of steps per episode. It also bounds
	// the number of sweeps of a single policy evaluation.
	MaxNumSteps int `json:"max_num_steps"`

	// IterationsBeforeImprovement caps the number of policy evaluation
	// sweeps between two policy improvements. A nil value selects
	// policy iteration, a positive value selects value iteration.
	IterationsBeforeImprovement *int `json:"iterations_before_improvement,omitempty"`
}

// Default returns a Config holding the default hyperparameters
func Default() Config {
	return Config{
		DiscountFactor:  DefaultDiscountFactor,
		LearningRate:    DefaultLearningRate,
		ExplorationRate: DefaultExplorationRate,
		NumEpisodes:     DefaultNumEpisodes,
		MaxNumSteps:     DefaultMaxNumSteps,
	}
}

// WithDiscountFactor returns a copy of c with the given discount factor
func (c Config) WithDiscountFactor(γ float64) Config {
	c.DiscountFactor = γ
	return c
}

// WithLearningRate returns a copy of c with the given learning rate
func (c Config) WithLearningRate(α float64) Config {
	c.LearningRate = α
	return c
}

// WithExplorationRate returns a copy of c with the given exploration
// rate
func (c Config) WithExplorationRate(ε float64) Config {
	c.ExplorationRate = ε
	return c
}

// WithNumEpisodes returns a copy of c with the given number of episodes
func (c Config) WithNumEpisodes(n int) Config {
	c.NumEpisodes = n
	return c
}

// WithMaxNumSteps returns a copy of c with the given step cap
func (c Config) WithMaxNumSteps(n int) Config {
	c.MaxNumSteps = n
	return c
}

// WithIterationsBeforeImprovement returns a copy of c which performs at
// most n policy evaluation sweeps between two policy improvements
func (c Config) WithIterationsBeforeImprovement(n int) Config {
	c.IterationsBeforeImprovement = &n
	return c
}

// WithoutIterationCap returns a copy of c whose policy evaluation runs
// until convergence
func (c Config) WithoutIterationCap() Config {
	c.IterationsBeforeImprovement = nil
	return c
}

// IterationCap returns the number of evaluation sweeps between two
// policy improvements and whether such a cap is set at all
func (c Config) IterationCap() (int, bool) {
	if c.IterationsBeforeImprovement == nil {
		return 0, false
	}
	return *c.IterationsBeforeImprovement, true
}

// Validate returns an error describing the first hyperparameter that
// is out of range, or nil if the Config is valid.
func (c Config) Validate() error {
	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return errors.Wrapf(ErrInvalid, "discount factor %v not in [0, 1]",
			c.DiscountFactor)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return errors.Wrapf(ErrInvalid, "learning rate %v not in (0, 1]",
			c.LearningRate)
	}
	if c.ExplorationRate < 0 || c.ExplorationRate > 1 {
		return errors.Wrapf(ErrInvalid, "exploration rate %v not in [0, 1]",
			c.ExplorationRate)
	}
	if c.NumEpisodes < 0 {
		return errors.Wrapf(ErrInvalid, "number of episodes %d cannot be "+
			"negative", c.NumEpisodes)
	}
	if c.MaxNumSteps <= 0 {
		return errors.Wrapf(ErrInvalid, "max number of steps %d must be "+
			"positive", c.MaxNumSteps)
	}
	if n, ok := c.IterationCap(); ok && n < 0 {
		return errors.Wrapf(ErrInvalid, "iterations before improvement %d "+
			"cannot be negative", n)
	}
	return nil
}

func (c Config) String() string {
	iterations := "none"
	if n, ok := c.IterationCap(); ok {
		iterations = fmt.Sprint(n)
	}
	str := "Config | γ: %v  |  α: %v  |  ε: %v  |  Episodes: %d  |  " +
		"Steps: %d  |  Iterations Before Improvement: %v"

	return fmt.Sprintf(str, c.DiscountFactor, c.LearningRate,
		c.ExplorationRate, c.NumEpisodes, c.MaxNumSteps, iterations)
}
