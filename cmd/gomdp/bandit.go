package main

import (
	"fmt"

	envbandit "github.com/samuelfneumann/gomdp/environment/bandit"
	"github.com/samuelfneumann/gomdp/solver/bandit"
	"github.com/spf13/cobra"
)

func newBanditCmd(a *app) *cobra.Command {
	var (
		arms  int
		pulls int
	)

	cmd := &cobra.Command{
		Use:   "bandit",
		Short: "Estimate the arm values of a k-armed Gaussian bandit",
		Long: `Estimate the arm values of a k-armed Gaussian bandit with
ε-greedy sample averages. The number of pulls is the config's
max_num_steps unless --pulls is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := envbandit.NewKArmed(arms, a.seed)
			if err != nil {
				return err
			}

			c := a.conf
			if pulls > 0 {
				c = c.WithMaxNumSteps(pulls)
			}

			q, err := bandit.SampleAverage[envbandit.Arm](b, c,
				bandit.WithLogger(a.log.WithField("bandit", b)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %10s %10s\n", "arm", "mean", "estimate")
			for _, arm := range b.Actions().Items() {
				estimate, err := q.Get(arm)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-8d %10.3f %10.3f\n", int(arm), b.Mean(arm),
					estimate)
			}
			fmt.Fprintf(out, "optimal arm: %d, greedy arm: %d\n",
				int(b.Optimal()), int(q.Greedy()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&arms, "arms", "k", 10, "number of arms")
	cmd.Flags().IntVar(&pulls, "pulls", 0,
		"number of pulls, overrides the config when positive")
	return cmd
}
