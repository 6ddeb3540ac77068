// Package random implements agents that select actions uniformly at
// random
package random

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gogrid/environment"
	"github.com/samuelfneumann/gogrid/timestep"
)

// Discrete selects actions of a discrete-action environment uniformly
// at random. It never learns anything: its Learner methods do nothing.
// Discrete agents are useful as baselines and for driving environments
// in tests and demos.
type Discrete struct {
	dist distuv.Categorical
	eval bool
}

// NewDiscrete returns a new Discrete agent selecting among the actions
// of env uniformly at random, with the stream of actions determined by
// seed
func NewDiscrete(env environment.Environment, seed uint64) (*Discrete,
	error) {
	if env.ActionSpec().Shape.Len() != 1 {
		return nil, fmt.Errorf("newDiscrete: can only select " +
			"1-dimensional actions")
	}
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("newDiscrete: can only select discrete " +
			"actions")
	}

	// Calculate the number of actions
	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1

	probabilities := make([]float64, actions)
	for i := range probabilities {
		probabilities[i] = 1.0 / float64(actions)
	}

	source := rand.NewSource(seed)
	dist := distuv.NewCategorical(probabilities, source)

	return &Discrete{dist: dist}, nil
}

// SelectAction selects an action uniformly at random
func (d *Discrete) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{d.dist.Rand()})
}

// ObserveFirst records the first timestep in an episode
func (d *Discrete) ObserveFirst(_ timestep.TimeStep) error {
	return nil
}

// Observe records that an action led to some timestep
func (d *Discrete) Observe(_ mat.Vector, _ timestep.TimeStep) error {
	return nil
}

// Step performs a single update to the agent. Random agents have
// nothing to update.
func (d *Discrete) Step() error {
	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (d *Discrete) EndEpisode() {}

// Eval sets the agent to evaluation mode
func (d *Discrete) Eval() {
	d.eval = true
}

// Train sets the agent to training mode
func (d *Discrete) Train() {
	d.eval = false
}

// IsEval returns whether the agent is in evaluation mode
func (d *Discrete) IsEval() bool {
	return d.eval
}
