// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either the first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes the way in which an episode ended. Episodes may end
// by reaching a terminal state or by reaching some externally imposed
// timeout. Timesteps that do not end an episode have end type NoEnd.
type EndType int

const (
	NoEnd EndType = iota
	TerminalStateReached
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NoEnd"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int

	endType EndType
}

// New returns a new TimeStep with end type NoEnd. Enders and tasks
// adjust the end type of timesteps that finish an episode.
func New(t StepType, reward, discount float64, obs *mat.VecDense,
	number int) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      reward,
		Discount:    discount,
		Observation: obs,
		Number:      number,
		endType:     NoEnd,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records how the episode ended on a last timestep
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// End returns the way in which the timestep ended its episode,
// returning NoEnd for timesteps that did not end an episode
func (t TimeStep) End() EndType {
	return t.endType
}

// Terminated returns whether the timestep ended its episode by
// reaching a terminal state of the environment
func (t TimeStep) Terminated() bool {
	return t.StepType == Last && t.endType == TerminalStateReached
}

// Truncated returns whether the timestep ended its episode due to an
// externally imposed time limit rather than a terminal state
func (t TimeStep) Truncated() bool {
	return t.StepType == Last && t.endType == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number)
}
