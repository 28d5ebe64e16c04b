package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/environment/gridworld"
	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/experiment/plot"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/solver/dp"
	"github.com/samuelfneumann/gomdp/solver/td"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

type (
	state  = gridworld.State
	action = gridworld.Action
)

// Algorithms accepted by the solve command
const (
	PolicyIteration = "pi"
	ValueIteration  = "vi"
	Sarsa           = "sarsa"
	QLearning       = "qlearning"
)

type solveFlags struct {
	algorithm    string
	layout       string
	layoutFile   string
	iterations   int
	pngPath      string
	cellSize     int
	plotPath     string
	returnsPath  string
	evalEpisodes int
	noColor      bool
	progress     bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a policy for a gridworld",
		Long: `Find a policy for a gridworld with one of the algorithms
  pi         policy iteration
  vi         value iteration (requires --iterations or a config cap)
  sarsa      SARSA
  qlearning  Q-learning
and print the policy and state values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.algorithm, "algorithm", "a", PolicyIteration,
		"algorithm: pi, vi, sarsa, or qlearning")
	flags.StringVarP(&f.layout, "layout", "l", "small", "built-in layout name")
	flags.StringVar(&f.layoutFile, "layout-file", "",
		"text layout file ('.' air, '#' wall, 'G' goal), overrides --layout")
	flags.IntVar(&f.iterations, "iterations", 0,
		"evaluation sweeps between improvements, overrides the config when positive")
	flags.StringVar(&f.pngPath, "png", "", "save a PNG image of the policy")
	flags.IntVar(&f.cellSize, "cell-size", 48, "PNG cell size in pixels")
	flags.StringVar(&f.plotPath, "plot", "",
		"save an HTML chart of training returns (sarsa and qlearning)")
	flags.StringVar(&f.returnsPath, "returns", "",
		"save training returns in gob format (sarsa and qlearning)")
	flags.IntVar(&f.evalEpisodes, "eval-episodes", 0,
		"evaluate the final policy on this many episodes")
	flags.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&f.progress, "progress", false,
		"display a training progress bar (sarsa and qlearning)")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, f solveFlags) error {
	g, err := a.gridWorld(f.layout, f.layoutFile)
	if err != nil {
		return err
	}

	c := a.conf
	if f.iterations > 0 {
		c = c.WithIterationsBeforeImprovement(f.iterations)
	}
	log := a.log.WithField("algorithm", f.algorithm)
	log.WithField("gridworld", g).Info("solving")

	returns := trackers.NewReturn(f.returnsPath)
	opts := []td.Option{td.WithTracker(returns)}
	if f.progress {
		opts = append(opts, td.WithProgress(cmd.ErrOrStderr(), 40))
	}

	policy, values, err := train(g, c, f.algorithm, log, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g.Format(policy, values, !f.noColor))

	if f.evalEpisodes > 0 {
		evaluation := trackers.NewReturn("")
		exp := experiment.NewOnline(g, policy, f.evalEpisodes, c.MaxNumSteps,
			evaluation)
		if err := exp.Run(); err != nil {
			return err
		}
		fmt.Fprintf(out, "average return over %d episodes: %.3f\n",
			f.evalEpisodes, stat.Mean(evaluation.Data(), nil))
	}

	if f.pngPath != "" {
		if err := g.SavePNG(f.pngPath, policy, f.cellSize); err != nil {
			return err
		}
		log.WithField("path", f.pngPath).Info("saved policy image")
	}

	if f.algorithm != Sarsa && f.algorithm != QLearning {
		return nil
	}

	if err := returns.Save(); err != nil {
		return err
	}

	if f.plotPath != "" {
		if err := savePlot(f.plotPath, "Episodic return",
			plot.Series{Name: f.algorithm, Values: returns.Data()},
			plot.Series{
				Name:   "moving average",
				Values: plot.MovingAverage(returns.Data(), 20),
			},
		); err != nil {
			return err
		}
		log.WithField("path", f.plotPath).Info("saved training plot")
	}

	return nil
}

// train finds a policy for g with algorithm. The td options are only
// used by sarsa and qlearning.
func train(g *gridworld.GridWorld, c config.Config, algorithm string,
	log logrus.FieldLogger, opts ...td.Option) (*mdp.Policy[state, action],
	*mdp.StateValue[state], error) {
	switch algorithm {
	case PolicyIteration:
		values, policy, err := dp.PolicyIteration[state, action](g, c,
			dp.WithLogger(log))
		return policy, values, err

	case ValueIteration:
		values, policy, err := dp.ValueIteration[state, action](g, c,
			dp.WithLogger(log))
		return policy, values, err

	case Sarsa, QLearning:
		solve := td.Sarsa[state, action]
		if algorithm == QLearning {
			solve = td.QLearning[state, action]
		}

		q, err := solve(g, c, append(opts, td.WithLogger(log))...)
		if err != nil {
			return nil, nil, err
		}
		policy, err := q.GreedyPolicy(g.States(), g.Actions())
		if err != nil {
			return nil, nil, err
		}
		values, err := q.GreedyValues(g.States())
		if err != nil {
			return nil, nil, err
		}
		return policy, values, nil

	default:
		return nil, nil, errors.Errorf("unknown algorithm %q", algorithm)
	}
}

func savePlot(path, title string, series ...plot.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create plot file")
	}

	if err := plot.Lines(file, title, series...); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "could not close plot file")
}
