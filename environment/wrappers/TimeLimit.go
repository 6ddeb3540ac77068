// Package wrappers implements environment wrappers, which alter the
// behaviour of the environments they wrap
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/gogrid/environment"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// TimeLimit bounds the length of episodes of the environment it wraps.
// Episodes running for cutoff steps without reaching a terminal state
// are cut short: the timestep at the cutoff becomes the last of its
// episode with end type timestep.Timeout, so that episodes ended by
// the wrapper are distinguishable from episodes ended by the
// environment itself.
//
// The wrapped environment never sees the cutoff. Its own notion of
// episode ends is left untouched.
type TimeLimit struct {
	env.Environment
	limit env.Ender

	currentTimeStep ts.TimeStep
}

// NewTimeLimit returns e wrapped so that its episodes run for at most
// cutoff steps
func NewTimeLimit(e env.Environment, cutoff int) (env.Environment, error) {
	if cutoff < 1 {
		return nil, fmt.Errorf("newTimeLimit: episode cutoffs must be "+
			"positive \n\twant(> 0) \n\thave(%d)", cutoff)
	}

	return &TimeLimit{
		Environment:     e,
		limit:           env.NewStepLimit(cutoff),
		currentTimeStep: e.CurrentTimeStep(),
	}, nil
}

// Reset resets the wrapped environment to some starting state
func (t *TimeLimit) Reset() (ts.TimeStep, error) {
	step, err := t.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	t.currentTimeStep = step

	return step, nil
}

// Step takes one step in the wrapped environment given some action,
// cutting the episode short at the wrapper's step limit
func (t *TimeLimit) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	step, last, err := t.Environment.Step(action)
	if err != nil {
		return ts.TimeStep{}, true, err
	}

	// Episodes ended by the environment keep their own end type
	if !last {
		last = t.limit.End(&step)
	}

	t.currentTimeStep = step

	return step, last, nil
}

// CurrentTimeStep returns the current time step of the environment
func (t *TimeLimit) CurrentTimeStep() ts.TimeStep {
	return t.currentTimeStep
}

// Seed reseeds the wrapped environment if it can be reseeded
func (t *TimeLimit) Seed(seed uint64) {
	if seeder, ok := t.Environment.(env.Seeder); ok {
		seeder.Seed(seed)
	}
}

// Close closes the wrapped environment if it holds resources to
// release
func (t *TimeLimit) Close() error {
	if closer, ok := t.Environment.(env.Closer); ok {
		return closer.Close()
	}

	return nil
}
