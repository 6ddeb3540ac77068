package environment

import "github.com/samuelfneumann/gogrid/timestep"

// StepLimit ends episodes that reach a fixed number of timesteps.
// Episodes ended by a StepLimit carry the timestep.Timeout end type,
// marking them as cut short rather than ended at a terminal state.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit returns an Ender which ends episodes after
// episodeSteps timesteps
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End returns whether the argument timestep ends the episode. If so,
// the timestep's StepType becomes timestep.Last and its end type
// becomes timestep.Timeout.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		t.SetEnd(timestep.Timeout)
		return true
	}

	return false
}
