// Package experiment implements functionality for running experiments
// with fixed policies on MDPs, typically to evaluate the policy found
// by a solver
package experiment

import (
	"github.com/samuelfneumann/gomdp/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments
// send each TimeStep they generate to their Trackers, which cache the
// data they need. The Save method then saves all cached data to disk.
// Run runs all episodes of the experiment.
type Experiment interface {
	Run() error

	// Save all tracked data to disk
	Save() error

	// Register adds a new Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}
