// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Seeder is any type whose stream of random numbers can be reseeded.
// Seeding with the same value twice produces the same stream twice.
type Seeder interface {
	Seed(seed uint64)
}

// Ender determines when episodes end and adjusts the final timestep of
// an episode to record how the episode ended
type Ender interface {
	// End takes the most recent timestep of the environment. If the
	// episode should end at this timestep, End modifies the timestep
	// so that its StepType field is timestep.Last, sets the timestep's
	// end type, and returns true.
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme and episode ending scheme for taking
// actions in some environment, as well as the distribution of states at
// which the task starts
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for taking an action in some state,
	// resulting in some next state
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state mat.Matrix) bool

	// Min and Max return the minimum and maximum attainable rewards
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a Task to
// complete. Environments returned by the constructors in this module start
// ready to use, with the first episode already begun.
type Environment interface {
	Task

	// Reset resets the environment between episodes, returning the
	// first timestep of the new episode
	Reset() (timestep.TimeStep, error)

	// Step takes one environmental step given a 1-dimensional action
	// vector and returns the next timestep along with whether that
	// timestep is the last in the episode
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the timestep that the environment is
	// currently at
	CurrentTimeStep() timestep.TimeStep

	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Closer is any environment which acquires external resources, such as
// a rendering surface, that must be released when the environment is
// no longer in use. Closing an environment more than once is safe.
type Closer interface {
	Close() error
}
