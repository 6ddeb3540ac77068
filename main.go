package main

import (
	"fmt"

	"github.com/samuelfneumann/gogrid/agent/random"
	"github.com/samuelfneumann/gogrid/environment/gridworld"
	"github.com/samuelfneumann/gogrid/environment/wrappers"
	"github.com/samuelfneumann/gogrid/experiment"
	"github.com/samuelfneumann/gogrid/experiment/tracker"
)

func main() {
	var seed uint64 = 192382
	rows, cols := gridworld.DefaultRows, gridworld.DefaultCols

	// Create the start-state distribution
	starter, err := gridworld.NewRandomStart(rows, cols, seed)
	if err != nil {
		panic(err)
	}

	// Create the task of reaching a single target, placed at random at
	// the start of each episode
	targets, err := gridworld.NewRandomTargets(1, rows, cols, seed+1)
	if err != nil {
		panic(err)
	}
	task, err := gridworld.NewReachTarget(starter, targets, rows, cols,
		gridworld.DefaultStepReward, gridworld.DefaultTerminalReward)
	if err != nil {
		panic(err)
	}

	// Create the gridworld
	g, _, err := gridworld.New(task, rows, cols, 1.0, gridworld.NoRender)
	if err != nil {
		panic(err)
	}

	// Cut episodes short after 300 steps
	env, err := wrappers.NewTimeLimit(g, 300)
	if err != nil {
		panic(err)
	}

	// Create the agent
	agent, err := random.NewDiscrete(env, seed)
	if err != nil {
		panic(err)
	}

	// Experiment. Episode lengths are registered with the unwrapped
	// environment so that only episodes which actually reached a target
	// are recorded.
	var returns tracker.Tracker = tracker.NewReturn("./data.bin")
	lengths := tracker.Register(tracker.NewEpisodeLength("./episodes.bin"), g)
	e := experiment.NewOnline(env, agent, 100_000, returns, lengths)
	if err := e.Run(); err != nil {
		panic(err)
	}
	e.Save()

	data := tracker.LoadData("./data.bin")
	fmt.Println(data[len(data)-10:])
}
