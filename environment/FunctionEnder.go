package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/timestep"
)

// FunctionEnder ends episodes whenever a predicate over the state
// observation returns true. The end type of the ended episodes is
// chosen at construction: a task whose predicate recognizes goal
// states ends episodes with timestep.TerminalStateReached, while a
// predicate bounding episodes some other way may use
// timestep.Timeout.
type FunctionEnder struct {
	end     func(*mat.VecDense) bool
	endType timestep.EndType
}

// NewFunctionEnder returns an Ender which ends episodes with end type
// endType whenever f returns true
func NewFunctionEnder(f func(*mat.VecDense) bool, endType timestep.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End returns whether the argument timestep ends the episode. If so,
// the timestep's StepType becomes timestep.Last and its end type
// becomes the Ender's end type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if f.end(t.Observation) {
		t.StepType = timestep.Last
		t.SetEnd(f.endType)
		return true
	}

	return false
}
