package config

import (
	"github.com/pkg/errors"
)

// ConfigList stores a number of Configs in a compact form. Instead of
// storing a slice of Configs, the ConfigList stores a list of values
// for each field and describes the Config constructed from every
// combination of field values.
//
// Empty fields fall back to the default value of that field, so that
// a hyperparameter sweep only needs to list the fields it varies.
type ConfigList struct {
	DiscountFactor              []float64 `json:"discount_factor,omitempty"`
	LearningRate                []float64 `json:"learning_rate,omitempty"`
	ExplorationRate             []float64 `json:"exploration_rate,omitempty"`
	NumEpisodes                 []int     `json:"num_episodes,omitempty"`
	MaxNumSteps                 []int     `json:"max_num_steps,omitempty"`
	IterationsBeforeImprovement []*int    `json:"iterations_before_improvement,omitempty"`
}

// fields returns the number of values stored for each field, in the
// order in which At enumerates them. Empty fields count as one value,
// the default.
func (c ConfigList) fields() []int {
	lengths := []int{
		len(c.DiscountFactor),
		len(c.LearningRate),
		len(c.ExplorationRate),
		len(c.NumEpisodes),
		len(c.MaxNumSteps),
		len(c.IterationsBeforeImprovement),
	}
	for i := range lengths {
		if lengths[i] == 0 {
			lengths[i] = 1
		}
	}
	return lengths
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	n := 1
	for _, l := range c.fields() {
		n *= l
	}
	return n
}

// At returns the Config at index i of the list. Indices enumerate
// combinations with the last field varying fastest.
func (c ConfigList) At(i int) (Config, error) {
	if i < 0 || i >= c.Len() {
		return Config{}, errors.Errorf("at: index %d out of range [0, %d)",
			i, c.Len())
	}

	// Decompose i into one index per field
	lengths := c.fields()
	indices := make([]int, len(lengths))
	for f := len(lengths) - 1; f >= 0; f-- {
		indices[f] = i % lengths[f]
		i /= lengths[f]
	}

	conf := Default()
	if len(c.DiscountFactor) > 0 {
		conf.DiscountFactor = c.DiscountFactor[indices[0]]
	}
	if len(c.LearningRate) > 0 {
		conf.LearningRate = c.LearningRate[indices[1]]
	}
	if len(c.ExplorationRate) > 0 {
		conf.ExplorationRate = c.ExplorationRate[indices[2]]
	}
	if len(c.NumEpisodes) > 0 {
		conf.NumEpisodes = c.NumEpisodes[indices[3]]
	}
	if len(c.MaxNumSteps) > 0 {
		conf.MaxNumSteps = c.MaxNumSteps[indices[4]]
	}
	if len(c.IterationsBeforeImprovement) > 0 {
		if n := c.IterationsBeforeImprovement[indices[5]]; n != nil {
			conf = conf.WithIterationsBeforeImprovement(*n)
		}
	}

	return conf, nil
}

// Configs returns every Config stored by the list, validating each
func (c ConfigList) Configs() ([]Config, error) {
	configs := make([]Config, c.Len())
	for i := range configs {
		conf, err := c.At(i)
		if err != nil {
			return nil, err
		}
		if err := conf.Validate(); err != nil {
			return nil, errors.Wrapf(err, "configs: config %d", i)
		}
		configs[i] = conf
	}
	return configs, nil
}
