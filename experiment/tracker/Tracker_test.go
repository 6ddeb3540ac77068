package tracker

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/environment/gridworld"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

func TestReturn(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data.bin")
	saver := NewReturn(file)
	obs := mat.NewVecDense(1, nil)

	// Two episodes with returns 3 and 0.5
	episodes := [][]float64{{1, 1, 1}, {0.25, 0.25}}
	for _, rewards := range episodes {
		saver.Track(ts.New(ts.First, 0, 1, obs, 0))
		for i, reward := range rewards {
			stepType := ts.Mid
			if i == len(rewards)-1 {
				stepType = ts.Last
			}
			saver.Track(ts.New(stepType, reward, 1, obs, i+1))
		}
	}
	saver.Save()

	data := LoadData(file)
	want := []float64{3, 0.5}
	if len(data) != len(want) {
		t.Fatalf("loadData: wrong number of returns saved \n\twant(%d) "+
			"\n\thave(%d)", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("track: episode %d return should be %v, got %v", i,
				want[i], data[i])
		}
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: tracking non-sequential timesteps should panic")
		}
	}()

	saver := NewReturn("data.bin")
	obs := mat.NewVecDense(1, nil)

	saver.Track(ts.New(ts.First, 0, 1, obs, 0))
	saver.Track(ts.New(ts.Mid, 0, 1, obs, 2))
}

func TestEpisodeLength(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lengths.bin")
	saver := NewEpisodeLength(file)
	obs := mat.NewVecDense(1, nil)

	// An episode of 4 steps, then one of 2 steps
	for _, length := range []int{4, 2} {
		saver.Track(ts.New(ts.First, 0, 1, obs, 0))
		for number := 1; number < length; number++ {
			saver.Track(ts.New(ts.Mid, 0, 1, obs, number))
		}
		saver.Track(ts.New(ts.Last, 0, 1, obs, length))
	}
	saver.Save()

	data := LoadData(file)
	want := []float64{4, 2}
	if len(data) != len(want) {
		t.Fatalf("loadData: wrong number of lengths saved \n\twant(%d) "+
			"\n\thave(%d)", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("track: episode %d length should be %v, got %v", i,
				want[i], data[i])
		}
	}
}

func TestRegister(t *testing.T) {
	// A 1x2 gridworld: one step right reaches the target
	starter, err := gridworld.NewSingleStart(gridworld.Position{Row: 0,
		Col: 0}, 1, 2)
	if err != nil {
		t.Fatalf("newSingleStart: %v", err)
	}
	targets, err := gridworld.NewExplicitTargets(1, 2,
		gridworld.Position{Row: 0, Col: 1})
	if err != nil {
		t.Fatalf("newExplicitTargets: %v", err)
	}
	task, err := gridworld.NewReachTarget(starter, targets, 1, 2,
		gridworld.DefaultStepReward, gridworld.DefaultTerminalReward)
	if err != nil {
		t.Fatalf("newReachTarget: %v", err)
	}
	g, _, err := gridworld.New(task, 1, 2, 1.0, gridworld.NoRender)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	file := filepath.Join(t.TempDir(), "lengths.bin")
	lengths := Register(NewEpisodeLength(file), g)

	obs := mat.NewVecDense(1, nil)

	// The argument timestep is ignored. The registered environment is
	// still at its first timestep, so nothing is recorded.
	lengths.Track(ts.New(ts.Last, 0, 1, obs, 99))

	// Reaching the target ends the registered environment's episode
	right := mat.NewVecDense(1, []float64{float64(gridworld.MoveRight)})
	if _, _, err := g.Step(right); err != nil {
		t.Fatalf("step: %v", err)
	}
	lengths.Track(ts.New(ts.Mid, 0, 1, obs, 42))

	lengths.Save()

	data := LoadData(file)
	if len(data) != 1 || data[0] != 1 {
		t.Errorf("register: only the registered environment's episode "+
			"ends should be tracked \n\twant([1]) \n\thave(%v)", data)
	}
}
