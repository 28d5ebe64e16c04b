package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/solver/dp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveDynamicProgramming(t *testing.T) {
	for _, algorithm := range []string{"pi", "vi"} {
		t.Run(algorithm, func(t *testing.T) {
			out, err := run(t, "solve", "-a", algorithm, "--iterations", "3",
				"--no-color", "--eval-episodes", "5")
			if algorithm == "pi" {
				// A cap is a precondition failure for policy iteration
				assert.ErrorIs(t, err, dp.ErrIterationCapSet)
				out, err = run(t, "solve", "-a", algorithm, "--no-color",
					"--eval-episodes", "5")
			}
			require.NoError(t, err)

			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			require.Len(t, lines, 3)
			assert.Contains(t, lines[0], "→")
			assert.Contains(t, lines[0], "96.00")
			assert.Contains(t, lines[0], "↓")
			assert.Contains(t, lines[0], "100.00")
			assert.Contains(t, lines[2], "average return")
		})
	}
}

func TestSolveValueIterationNeedsCap(t *testing.T) {
	_, err := run(t, "solve", "-a", "vi")
	assert.ErrorIs(t, err, dp.ErrIterationCapMissing)
}

func TestSolveTemporalDifference(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(conf, []byte(
		`{"exploration_rate": 0.1, "num_episodes": 50, "max_num_steps": 100}`),
		0o644))

	returns := filepath.Join(dir, "returns.bin")
	chart := filepath.Join(dir, "returns.html")
	image := filepath.Join(dir, "policy.png")

	_, err := run(t, "--config", conf, "--seed", "3", "solve", "-a",
		"qlearning", "--no-color", "--returns", returns, "--plot", chart,
		"--png", image, "--progress")
	require.NoError(t, err)

	data, err := trackers.LoadData(returns)
	require.NoError(t, err)
	assert.Len(t, data, 50)

	assert.FileExists(t, chart)
	assert.FileExists(t, image)
}

func TestSolveErrors(t *testing.T) {
	_, err := run(t, "solve", "-a", "montecarlo")
	assert.Error(t, err)

	_, err = run(t, "solve", "-l", "nowhere")
	assert.Error(t, err)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.json"),
		"solve")
	assert.Error(t, err)
}

func TestSolveLayoutFile(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(layout, []byte("...\n.#G\n"), 0o644))

	out, err := run(t, "solve", "--layout-file", layout, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL")
}

func TestBandit(t *testing.T) {
	out, err := run(t, "bandit", "-k", "3", "--pulls", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "optimal arm")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestLayouts(t *testing.T) {
	out, err := run(t, "layouts")
	require.NoError(t, err)
	assert.Contains(t, out, "small:")
	assert.Contains(t, out, "rooms:")
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "sweep.json")
	require.NoError(t, os.WriteFile(list, []byte(
		`{"learning_rate": [0.1, 0.5], "num_episodes": [30], "max_num_steps": [50]}`),
		0o644))
	chart := filepath.Join(dir, "sweep.html")

	outDir := filepath.Join(dir, "runs")

	out, err := run(t, "sweep", "--list", list, "-a", "sarsa",
		"--eval-episodes", "10", "--plot", chart, "--out-dir", outDir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "average return"))
	assert.FileExists(t, chart)

	saved, err := filepath.Glob(filepath.Join(outDir, "*-1.bin"))
	require.NoError(t, err)
	require.Len(t, saved, 1)
	data, err := trackers.LoadData(saved[0])
	require.NoError(t, err)
	assert.Len(t, data, 30)

	configs, err := filepath.Glob(filepath.Join(outDir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, configs, 2)

	_, err = run(t, "sweep", "-a", "sarsa")
	assert.Error(t, err)
}
