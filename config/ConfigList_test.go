package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gomdp/config"
)

func TestConfigListEmptyIsDefault(t *testing.T) {
	var list config.ConfigList
	require.Equal(t, 1, list.Len())

	c, err := list.At(0)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestConfigListCombinations(t *testing.T) {
	three := 3
	list := config.ConfigList{
		LearningRate:                []float64{0.1, 0.5},
		ExplorationRate:             []float64{0.05, 0.1, 0.2},
		IterationsBeforeImprovement: []*int{nil, &three},
	}
	require.Equal(t, 12, list.Len())

	configs, err := list.Configs()
	require.NoError(t, err)
	require.Len(t, configs, 12)

	// The last field varies fastest
	_, ok := configs[0].IterationCap()
	require.False(t, ok)
	n, ok := configs[1].IterationCap()
	require.True(t, ok)
	require.Equal(t, 3, n)
	require.Equal(t, 0.1, configs[0].LearningRate)
	require.Equal(t, 0.05, configs[0].ExplorationRate)
	require.Equal(t, 0.1, configs[2].ExplorationRate)
	require.Equal(t, 0.5, configs[11].LearningRate)
	require.Equal(t, 0.2, configs[11].ExplorationRate)

	_, err = list.At(12)
	require.Error(t, err)
	_, err = list.At(-1)
	require.Error(t, err)
}

func TestConfigListJSON(t *testing.T) {
	var list config.ConfigList
	err := json.Unmarshal([]byte(
		`{"exploration_rate": [0.1, 0.2], "iterations_before_improvement": [null, 2]}`),
		&list)
	require.NoError(t, err)
	require.Equal(t, 4, list.Len())

	c, err := list.At(3)
	require.NoError(t, err)
	require.Equal(t, 0.2, c.ExplorationRate)
	n, ok := c.IterationCap()
	require.True(t, ok)
	require.Equal(t, 2, n)
}

func TestConfigListInvalid(t *testing.T) {
	list := config.ConfigList{LearningRate: []float64{0.1, 0}}
	_, err := list.Configs()
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sweep.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"learning_rate": [0.1, 0.3, 0.5]}`), 0o644))
	list, err := config.LoadList(path)
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad,
		[]byte(`{"learning_rate": [2]}`), 0o644))
	_, err = config.LoadList(bad)
	require.ErrorIs(t, err, config.ErrInvalid)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"alpha": [2]}`), 0o644))
	_, err = config.LoadList(unknown)
	require.Error(t, err)
}
