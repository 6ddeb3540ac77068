package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/gogrid/timestep"
)

// Return tracks the episodic returns of an experiment: the sum of the
// rewards of each episode's timesteps. One value is recorded per
// finished episode. An episode still running when the experiment ends
// is not saved.
//
// Rewards are tracked as the tracked environment reports them. When
// the environment is wrapped, for example by a wrappers.TimeLimit,
// Return sees the wrapper's timesteps, so an episode cut short by the
// wrapper contributes the return accumulated up to the cutoff.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn returns a Tracker recording episodic returns, saved at
// filename
func NewReturn(filename string) Tracker {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track accumulates the reward of a timestep into the return of the
// current episode. On the last timestep of an episode, the episode's
// return is recorded and a new accumulation begins.
//
// Track panics when called on non-sequential timesteps. A gap in the
// stream means part of some episode's return was never seen.
func (r *Return) Track(step ts.TimeStep) {
	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: non-sequential timesteps tracked: "+
			"timestep %v --> timestep %v", r.lastTimeStep, step.Number))
	}

	r.currentReturn += step.Reward

	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0
		r.lastTimeStep = -1
	} else {
		r.lastTimeStep = step.Number
	}
}

// Save writes the tracked returns to disk
func (r *Return) Save() {
	save(r.filename, r.episodeReturns)
}
