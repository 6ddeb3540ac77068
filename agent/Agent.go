// Package agent defines the interfaces of agents that act in
// environments
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/timestep"
)

// Agent is anything that acts in an environment and learns from the
// timesteps its actions produce. An Agent is a Policy, which selects
// the actions, combined with a Learner, which updates the Policy from
// the observed timesteps. Agents that do not learn, such as a uniform
// random policy, implement the Learner methods as no-ops.
type Agent interface {
	Learner
	Policy
}

// Learner updates an agent from the stream of timesteps of an episode.
// An experiment calls ObserveFirst with the starting timestep of each
// episode, then Observe and Step once per environmental step, and
// finally EndEpisode when the episode ends.
type Learner interface {
	// Step performs a single update of the Learner
	Step() error

	// Observe records that an action led to some timestep
	Observe(action mat.Vector, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep of an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy selects the actions an agent takes at each timestep. Policies
// are in either training or evaluation mode. A policy in evaluation
// mode acts greedily with respect to what it has learned, without
// exploring.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}
