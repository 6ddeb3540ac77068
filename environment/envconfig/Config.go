// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/gogrid/environment"
	"github.com/samuelfneumann/gogrid/environment/gridworld"
	"github.com/samuelfneumann/gogrid/environment/wrappers"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
)

// TaskName stores the tasks that can be configured with this package.
// The tasks that can be used with each environment are as follows:
//
//	Environment			Task
//	GridWorld			ReachTarget
type TaskName string

// Tasks available for configuration
const (
	ReachTarget TaskName = "ReachTarget"
)

// DefaultEpisodeCutoff is the default number of steps after which
// episodes of a configured environment are cut short
const DefaultEpisodeCutoff uint = 300

// Config implements a specific configuration of a specific environment
// and specific task. Environments created from a Config are wrapped in
// a wrappers.TimeLimit so that their episodes run for at most
// EpisodeCutoff steps.
type Config struct {
	Environment EnvName
	Task        TaskName

	Rows int
	Cols int

	// AgentStart fixes the position at which the agent starts every
	// episode. When nil, the agent starts each episode at a position
	// drawn uniformly at random.
	AgentStart *gridworld.Position

	// Targets fixes the positions of the targets for every episode.
	// When empty, TargetCount random targets are drawn at the start of
	// each episode instead.
	Targets     []gridworld.Position
	TargetCount int

	StepReward     float64
	TerminalReward float64

	EpisodeCutoff uint
	Discount      float64
	RenderMode    gridworld.RenderMode
}

// NewConfig returns a new environment Config with every parameter at
// its default: a 5x5 gridworld, a random agent start, a single random
// target per episode, sparse rewards of 1 on reaching a target and 0
// elsewhere, no rendering, and episodes cut short after
// DefaultEpisodeCutoff steps.
func NewConfig(envName EnvName, taskName TaskName) Config {
	return Config{
		Environment:    envName,
		Task:           taskName,
		Rows:           gridworld.DefaultRows,
		Cols:           gridworld.DefaultCols,
		TargetCount:    1,
		StepReward:     gridworld.DefaultStepReward,
		TerminalReward: gridworld.DefaultTerminalReward,
		EpisodeCutoff:  DefaultEpisodeCutoff,
		Discount:       1.0,
		RenderMode:     gridworld.NoRender,
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. Create panics when asked for
// an environment or task this package cannot configure.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case GridWorld:
		return CreateGridWorld(c, seed)
	}

	panic(fmt.Sprintf("create: cannot create environment %v, no such "+
		"environment", c.Environment))
}

// CreateGridWorld is a factory for creating the GridWorld environment
// with the parameters of the argument Config, wrapped so that episodes
// are cut short at the Config's episode cutoff.
func CreateGridWorld(c Config, seed uint64) (env.Environment, ts.TimeStep,
	error) {
	var starter env.Starter
	var err error
	if c.AgentStart != nil {
		starter, err = gridworld.NewSingleStart(*c.AgentStart, c.Rows, c.Cols)
	} else {
		starter, err = gridworld.NewRandomStart(c.Rows, c.Cols, seed)
	}
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	var targets gridworld.TargetSpec
	if len(c.Targets) > 0 {
		targets, err = gridworld.NewExplicitTargets(c.Rows, c.Cols,
			c.Targets...)
	} else {
		targets, err = gridworld.NewRandomTargets(c.TargetCount, c.Rows,
			c.Cols, seed+1)
	}
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	var task env.Task
	switch c.Task {
	case ReachTarget:
		task, err = gridworld.NewReachTarget(starter, targets, c.Rows,
			c.Cols, c.StepReward, c.TerminalReward)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
		}

	default:
		panic(fmt.Sprintf("createGridWorld: GridWorld environment has "+
			"no task %v", c.Task))
	}

	e, step, err := gridworld.New(task, c.Rows, c.Cols, c.Discount,
		c.RenderMode)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	wrapped, err := wrappers.NewTimeLimit(e, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	return wrapped, step, nil
}
