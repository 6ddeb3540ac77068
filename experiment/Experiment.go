// Package experiment implements experiments which run agents on
// environments and record the data the runs generate
package experiment

import (
	"github.com/samuelfneumann/gogrid/experiment/tracker"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// Experiment runs an agent on an environment episode by episode. Run
// runs episodes until the experiment's timestep budget is spent, and
// RunEpisode runs a single episode. Every timestep an experiment sees
// is handed to the experiment's Trackers, each of which caches the
// data it cares about until Save writes it to disk after the run.
// Trackers are registered at construction or, for data that should
// only be tracked from some point onward, with Register while the
// experiment runs.
type Experiment interface {
	Run() error

	// RunEpisode runs a single episode, returning whether the
	// experiment's timestep budget has been spent
	RunEpisode() (bool, error)

	// track hands a timestep to every registered Tracker
	track(ts.TimeStep)

	// Save writes all tracked data to disk
	Save()

	Register(t tracker.Tracker)
}
