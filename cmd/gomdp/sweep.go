package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/experiment/plot"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/solver/td"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		algorithm    string
		layout       string
		listPath     string
		evalEpisodes int
		plotPath     string
		outDir       string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run an algorithm on every config of a hyperparameter sweep",
		Long: `Run an algorithm on a gridworld once for every combination of
hyperparameters in a JSON config list, such as

  {"learning_rate": [0.1, 0.3], "exploration_rate": [0.05, 0.1]}

and report the average return of each resulting greedy policy. With
--out-dir, each config and its training returns are saved as
<run>-<index>.json and <run>-<index>.bin, where <run> identifies the
sweep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if evalEpisodes <= 0 {
				return errors.Errorf("eval episodes %d must be positive",
					evalEpisodes)
			}
			list, err := config.LoadList(listPath)
			if err != nil {
				return err
			}
			configs, err := list.Configs()
			if err != nil {
				return err
			}

			run := uuid.NewString()
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return errors.Wrap(err, "could not create output directory")
				}
			}
			a.log.WithFields(logrus.Fields{
				"run":     run,
				"configs": len(configs),
			}).Info("starting sweep")

			out := cmd.OutOrStdout()
			var series []plot.Series
			for i, c := range configs {
				g, err := a.gridWorld(layout, "")
				if err != nil {
					return err
				}

				prefix := ""
				if outDir != "" {
					prefix = filepath.Join(outDir, fmt.Sprintf("%s-%d", run, i))
					if err := config.Save(c, prefix+".json"); err != nil {
						return err
					}
				}

				returnsPath := ""
				if prefix != "" {
					returnsPath = prefix + ".bin"
				}
				returns := trackers.NewReturn(returnsPath)
				log := a.log.WithFields(logrus.Fields{
					"run":       run,
					"algorithm": algorithm,
					"config":    i,
				})

				policy, _, err := train(g, c, algorithm, log,
					td.WithTracker(returns))
				if err != nil {
					return errors.Wrapf(err, "config %d", i)
				}

				evaluation := trackers.NewReturn("")
				exp := experiment.NewOnline(g, policy, evalEpisodes,
					c.MaxNumSteps, evaluation)
				if err := exp.Run(); err != nil {
					return errors.Wrapf(err, "config %d", i)
				}

				fmt.Fprintf(out, "%3d  %v  average return: %.3f\n", i, c,
					stat.Mean(evaluation.Data(), nil))

				if err := returns.Save(); err != nil {
					return errors.Wrapf(err, "config %d", i)
				}

				if data := returns.Data(); len(data) > 0 {
					series = append(series, plot.Series{
						Name:   fmt.Sprintf("config %d", i),
						Values: plot.MovingAverage(data, 20),
					})
				}
			}

			if plotPath != "" && len(series) > 0 {
				if err := savePlot(plotPath, "Episodic return", series...); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&algorithm, "algorithm", "a", QLearning,
		"algorithm: pi, vi, sarsa, or qlearning")
	flags.StringVarP(&layout, "layout", "l", "small", "built-in layout name")
	flags.StringVar(&listPath, "list", "", "JSON config list file")
	flags.IntVar(&evalEpisodes, "eval-episodes", 100,
		"episodes used to evaluate each policy")
	flags.StringVar(&plotPath, "plot", "",
		"save an HTML chart of training returns (sarsa and qlearning)")
	flags.StringVar(&outDir, "out-dir", "",
		"directory to save each config and its training returns to")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}
