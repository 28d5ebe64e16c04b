// Command gomdp solves gridworld MDPs and multi-armed bandits from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/environment/gridworld"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands
type app struct {
	configPath string
	seed       uint64
	verbose    bool

	conf config.Config
	log  *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:   "gomdp",
		Short: "Solve finite Markov Decision Processes",
		Long: `gomdp solves finite Markov Decision Processes with dynamic
programming (policy iteration, value iteration) and temporal-difference
learning (SARSA, Q-learning), and multi-armed bandits with sample
averages.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "",
		"JSON file of hyperparameters, absent fields keep their defaults")
	flags.Uint64Var(&a.seed, "seed", 1, "seed of all random number generators")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newSolveCmd(a), newBanditCmd(a), newSweepCmd(a),
		newLayoutsCmd(a))
	return root
}

// setup configures logging and loads the hyperparameters
func (a *app) setup(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.SetLevel(logrus.InfoLevel)
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	a.conf = config.Default()
	if a.configPath != "" {
		conf, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.conf = conf
	}
	a.log.WithField("config", a.conf).Debug("loaded config")
	return nil
}

// gridWorld builds the GridWorld from a layout file if one is given,
// otherwise from the named layout
func (a *app) gridWorld(layout, layoutFile string) (*gridworld.GridWorld,
	error) {
	var (
		cells [][]gridworld.Cell
		err   error
	)
	if layoutFile != "" {
		file, err := os.Open(layoutFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not open layout file")
		}
		defer file.Close()
		cells, err = gridworld.Read(file)
		if err != nil {
			return nil, err
		}
	} else {
		lines, ok := gridworld.Layouts[layout]
		if !ok {
			return nil, errors.Errorf("unknown layout %q, expected one of %v",
				layout, gridworld.LayoutNames())
		}
		if cells, err = gridworld.Parse(lines); err != nil {
			return nil, err
		}
	}

	return gridworld.New(cells, a.seed)
}

func newLayoutsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the built-in gridworld layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range gridworld.LayoutNames() {
				g, err := a.gridWorld(name, "")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n%s\n", name, g.Format(nil, nil, false))
			}
			return nil
		},
	}
}
