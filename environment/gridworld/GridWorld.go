// Package gridworld implements 2D gridworld environments, where an
// agent walks a bounded grid to reach target cells
package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/environment"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// Default dimensions of a GridWorld
const (
	DefaultRows int = 5
	DefaultCols int = 5
)

// GridWorld implements a 2D gridworld environment. States are cells of
// a bounded (rows, cols) grid, and on each step the agent moves one
// cell in one of the four cardinal directions. Moves that would carry
// the agent past an edge of the grid leave it in place: each
// coordinate of the agent's position is clamped to the grid bounds
// independently.
//
// State observations are vectors of the form
//
//	[agentRow, agentCol, target0Row, target0Col, target1Row, ...]
//
// holding the agent's position followed by the positions of all
// targets of the current episode. The AgentPosition and
// TargetPositions functions recover the positions from an observation.
//
// Episodes end when the agent reaches any target. A GridWorld never
// cuts episodes short on its own. To bound episode lengths, wrap the
// environment in a wrappers.TimeLimit.
//
// GridWorlds can display themselves, depending on the render mode they
// were constructed with. In HumanRender mode, every Reset and Step
// draws the new state of the environment to the terminal, paced to
// FrameRate frames per second. In RGBRender mode, Render returns the
// current state as an RGB pixel tensor. Environments that render
// should be closed with Close once no longer in use.
type GridWorld struct {
	environment.Task
	reach *ReachTarget

	rows, cols  int
	agent       Position
	discount    float64
	currentStep ts.TimeStep

	renderMode RenderMode
	renderer   *renderer
}

// New creates and returns a new GridWorld of rows rows and cols
// columns with task t, along with the first timestep of its first
// episode. The task must be a *ReachTarget, since it determines where
// the agent and the targets are placed. Environments start ready to
// use: the first episode has already begun on the returned
// environment.
func New(t environment.Task, rows, cols int, discount float64,
	mode RenderMode) (*GridWorld, ts.TimeStep, error) {
	if rows < 1 || cols < 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: gridworlds need at "+
			"least one row and one column \n\twant(> 0, > 0) "+
			"\n\thave(%d, %d)", rows, cols)
	}
	if err := mode.validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	reach, ok := t.(*ReachTarget)
	if !ok {
		return nil, ts.TimeStep{}, fmt.Errorf("new: gridworld " +
			"environments require a *ReachTarget task")
	}
	if reach.rows != rows || reach.cols != cols {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task on a (%d, %d) "+
			"gridworld cannot be used with a (%d, %d) gridworld",
			reach.rows, reach.cols, rows, cols)
	}

	g := &GridWorld{
		Task:       t,
		reach:      reach,
		rows:       rows,
		cols:       cols,
		discount:   discount,
		renderMode: mode,
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not start "+
			"first episode: %v", err)
	}

	return g, step, nil
}

// Reset resets the environment between episodes. The agent's starting
// position is drawn from the task's Starter and the episode's targets
// are materialized by the task's TargetSpec. Reset returns the first
// timestep of the new episode.
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	agent, targets, err := g.reach.start()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %v", err)
	}

	g.agent = agent
	obs := obsFrom(agent, targets)
	step := ts.New(ts.First, 0, g.discount, obs, 0)
	g.currentStep = step

	if err := g.drawFrame(); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not render: %v", err)
	}

	return step, nil
}

// Step takes one environmental step given the argument action,
// returning the next timestep and whether that timestep is the last in
// the episode. Actions are 1-dimensional vectors holding one of the
// action values defined in this package. Step panics if the action
// value is not an action of the environment.
func (g *GridWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be " +
			"1-dimensional")
	}

	direction := action.AtVec(0)
	a := int(direction)
	if float64(a) != direction || a < MoveRight || a > MoveDown {
		panic(fmt.Sprintf("step: no such action %v", direction))
	}

	g.agent = g.agent.move(a, g.rows, g.cols)
	targets := TargetPositions(g.currentStep.Observation)
	nextObs := obsFrom(g.agent, targets)

	reward := g.GetReward(g.currentStep.Observation, action, nextObs)
	nextStep := ts.New(ts.Mid, reward, g.discount, nextObs,
		g.currentStep.Number+1)
	last := g.End(&nextStep)

	g.currentStep = nextStep

	if err := g.drawFrame(); err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: could not "+
			"render: %v", err)
	}

	return nextStep, last, nil
}

// CurrentTimeStep returns the timestep that the environment is
// currently at
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// Seed reseeds the environment's streams of random numbers. Resetting
// an environment after seeding it replays the same sequence of
// starting positions and target placements.
func (g *GridWorld) Seed(seed uint64) {
	g.reach.Seed(seed)
}

// Dims returns the number of rows and columns of the GridWorld
func (g *GridWorld) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(MoveRight)})
	upperBound := mat.NewVecDense(1, []float64{float64(Actions - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() environment.Spec {
	features := 2 + 2*g.reach.targets.count()

	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)

	bounds := make([]float64, features)
	for i := 0; i < features; i += 2 {
		bounds[i] = float64(g.rows - 1)
		bounds[i+1] = float64(g.cols - 1)
	}
	upperBound := mat.NewVecDense(features, bounds)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discounting specification of the
// environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Bounds: (%d, %d)  |  Task: %v"

	return fmt.Sprintf(str, g.agent, g.rows, g.cols, g.Task)
}
