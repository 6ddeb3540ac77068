package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/environment"
	ts "github.com/samuelfneumann/gogrid/timestep"
	"github.com/samuelfneumann/gogrid/utils/floatutils"
)

// Default rewards for the ReachTarget task. Rewards are sparse: only
// transitions onto a target are rewarded.
const (
	DefaultStepReward     float64 = 0.0
	DefaultTerminalReward float64 = 1.0
)

// ReachTarget is the task of reaching any one of a set of target cells
// in a GridWorld. The transition that moves the agent onto a target
// receives the terminal reward and ends the episode. Every other
// transition receives the step reward.
//
// Where the agent starts each episode is determined by the task's
// Starter. Where the targets of each episode lie is determined by the
// task's TargetSpec: either the same explicit positions every episode,
// or a fresh draw of unique random positions at the start of each
// episode. Randomly drawn targets never coincide with each other or
// with the position at which the agent starts the episode.
type ReachTarget struct {
	environment.Starter
	targets TargetSpec

	rows, cols     int
	stepReward     float64
	terminalReward float64

	ender environment.Ender
}

// NewReachTarget returns a new ReachTarget task on a gridworld of rows
// rows and cols columns. Episodes start at positions drawn from start
// and end when the agent reaches a target placed by targets.
func NewReachTarget(start environment.Starter, targets TargetSpec, rows,
	cols int, stepReward, terminalReward float64) (environment.Task, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("newReachTarget: gridworlds need at least "+
			"one row and one column \n\twant(> 0, > 0) \n\thave(%d, %d)",
			rows, cols)
	}
	if start == nil {
		return nil, fmt.Errorf("newReachTarget: no starter given")
	}
	if targets == nil {
		return nil, fmt.Errorf("newReachTarget: no target spec given")
	}

	// A fixed starting position sitting on a fixed target would end
	// episodes before they begin
	if single, ok := start.(*SingleStart); ok {
		if explicit, ok := targets.(*ExplicitTargets); ok {
			if contains(explicit.positions, single.position) {
				return nil, fmt.Errorf("newReachTarget: starting position "+
					"%v is a target", single.position)
			}
		}
	}

	endFunc := func(obs *mat.VecDense) bool {
		return atTarget(obs)
	}
	ender := environment.NewFunctionEnder(endFunc, ts.TerminalStateReached)

	return &ReachTarget{
		Starter:        start,
		targets:        targets,
		rows:           rows,
		cols:           cols,
		stepReward:     stepReward,
		terminalReward: terminalReward,
		ender:          ender,
	}, nil
}

// start begins a new episode of the task, drawing the position at
// which the agent starts the episode and materializing the positions
// of the episode's targets
func (r *ReachTarget) start() (Position, []Position, error) {
	startVec := r.Start()
	if startVec.Len() != 2 {
		return Position{}, nil, fmt.Errorf("start: starting states must "+
			"be 2-dimensional \n\twant(2) \n\thave(%d)", startVec.Len())
	}

	agent := Position{
		Row: int(startVec.AtVec(0)),
		Col: int(startVec.AtVec(1)),
	}
	if !agent.in(r.rows, r.cols) {
		return Position{}, nil, fmt.Errorf("start: starting position %v "+
			"out of bounds for a (%d, %d) gridworld", agent, r.rows, r.cols)
	}

	targets, err := r.targets.place(agent)
	if err != nil {
		return Position{}, nil, fmt.Errorf("start: could not place "+
			"targets: %v", err)
	}

	return agent, targets, nil
}

// Seed reseeds the streams of random numbers behind the task's
// starting positions and target placement. The two streams are
// decorrelated.
func (r *ReachTarget) Seed(seed uint64) {
	if seeder, ok := r.Starter.(environment.Seeder); ok {
		seeder.Seed(seed)
	}
	if seeder, ok := r.targets.(environment.Seeder); ok {
		seeder.Seed(seed + 1)
	}
}

// GetReward returns the reward for taking an action in a state,
// resulting in the state nextState. The transition onto a target
// receives the terminal reward. All other transitions receive the step
// reward.
func (r *ReachTarget) GetReward(_, _, nextState mat.Vector) float64 {
	if atTarget(nextState) {
		return r.terminalReward
	}

	return r.stepReward
}

// AtGoal returns whether the argument state describes an agent
// positioned on one of its targets
func (r *ReachTarget) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if cols > 1 {
		panic("atGoal: state must consist of a single observation")
	}

	vec, ok := state.(mat.Vector)
	if !ok {
		v := mat.NewVecDense(rows, nil)
		for i := 0; i < rows; i++ {
			v.SetVec(i, state.At(i, 0))
		}
		vec = v
	}

	return atTarget(vec)
}

// End determines if a timestep is the last in the episode. If so, End
// changes the TimeStep's StepType to timestep.Last and sets its end
// type to timestep.TerminalStateReached. End returns whether the
// argument timestep ends the episode.
//
// ReachTarget never cuts episodes short: bounding episode lengths is
// the job of an external wrapper such as wrappers.TimeLimit.
func (r *ReachTarget) End(t *ts.TimeStep) bool {
	return r.ender.End(t)
}

// Min returns the minimum attainable reward over all timesteps
func (r *ReachTarget) Min() float64 {
	return floatutils.Min(r.stepReward, r.terminalReward)
}

// Max returns the maximum attainable reward over all timesteps
func (r *ReachTarget) Max() float64 {
	return floatutils.Max(r.stepReward, r.terminalReward)
}

// RewardSpec returns the reward specification for the task
func (r *ReachTarget) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{r.Min()})
	upperBound := mat.NewVecDense(1, []float64{r.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

func (r *ReachTarget) String() string {
	str := "ReachTarget | Start: %v  |  Targets: %v  |  Reward: %v on " +
		"target, %v per step"

	return fmt.Sprintf(str, r.Starter, r.targets, r.terminalReward,
		r.stepReward)
}
