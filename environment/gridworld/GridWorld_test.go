package gridworld

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/environment"
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// fixedWorld returns a GridWorld with a fixed starting position and a
// single fixed target
func fixedWorld(start, target Position, rows, cols int) *GridWorld {
	starter, err := NewSingleStart(start, rows, cols)
	So(err, ShouldBeNil)

	targets, err := NewExplicitTargets(rows, cols, target)
	So(err, ShouldBeNil)

	task, err := NewReachTarget(starter, targets, rows, cols,
		DefaultStepReward, DefaultTerminalReward)
	So(err, ShouldBeNil)

	g, _, err := New(task, rows, cols, 1.0, NoRender)
	So(err, ShouldBeNil)

	return g
}

// act wraps an action value in the 1-dimensional vector Step expects
func act(action int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(action)})
}

func TestGridWorldMovement(t *testing.T) {
	Convey("Given a 3x4 GridWorld", t, func() {
		rows, cols := 3, 4
		target := Position{Row: 1, Col: 1}

		deltas := map[int][2]int{
			MoveRight: {0, 1},
			MoveUp:    {-1, 0},
			MoveLeft:  {0, -1},
			MoveDown:  {1, 0},
		}

		Convey("Each action moves one cell, clamped to the grid", func() {
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					start := Position{Row: row, Col: col}
					if start == target {
						continue
					}

					for action, delta := range deltas {
						g := fixedWorld(start, target, rows, cols)
						step, _, err := g.Step(act(action))
						So(err, ShouldBeNil)

						wantRow := row + delta[0]
						if wantRow < 0 {
							wantRow = 0
						}
						if wantRow > rows-1 {
							wantRow = rows - 1
						}
						wantCol := col + delta[1]
						if wantCol < 0 {
							wantCol = 0
						}
						if wantCol > cols-1 {
							wantCol = cols - 1
						}

						So(AgentPosition(step.Observation), ShouldResemble,
							Position{Row: wantRow, Col: wantCol})
					}
				}
			}
		})

		Convey("Moves past an edge leave the agent in place", func() {
			g := fixedWorld(Position{Row: 0, Col: 0}, target, rows, cols)

			step, _, err := g.Step(act(MoveUp))
			So(err, ShouldBeNil)
			So(AgentPosition(step.Observation), ShouldResemble,
				Position{Row: 0, Col: 0})

			step, _, err = g.Step(act(MoveLeft))
			So(err, ShouldBeNil)
			So(AgentPosition(step.Observation), ShouldResemble,
				Position{Row: 0, Col: 0})
		})
	})
}

func TestGridWorldEpisodes(t *testing.T) {
	Convey("Given a GridWorld whose target lies one step away", t, func() {
		g := fixedWorld(Position{Row: 2, Col: 1}, Position{Row: 2, Col: 2},
			5, 5)

		Convey("Transitions not reaching the target get the step reward",
			func() {
				step, last, err := g.Step(act(MoveLeft))
				So(err, ShouldBeNil)
				So(last, ShouldBeFalse)
				So(step.Reward, ShouldEqual, DefaultStepReward)
				So(step.StepType, ShouldEqual, ts.Mid)
				So(step.Number, ShouldEqual, 1)
			})

		Convey("The transition onto the target ends the episode", func() {
			step, last, err := g.Step(act(MoveRight))
			So(err, ShouldBeNil)
			So(last, ShouldBeTrue)
			So(step.Terminated(), ShouldBeTrue)
			So(step.Truncated(), ShouldBeFalse)
			So(step.Reward, ShouldEqual, DefaultTerminalReward)
			So(g.AtGoal(step.Observation), ShouldBeTrue)

			Convey("And Reset begins a new episode at the start", func() {
				first, err := g.Reset()
				So(err, ShouldBeNil)
				So(first.First(), ShouldBeTrue)
				So(first.Number, ShouldEqual, 0)
				So(first.End(), ShouldEqual, ts.NoEnd)
				So(AgentPosition(first.Observation), ShouldResemble,
					Position{Row: 2, Col: 1})
			})

			Convey("And stepping on keeps the environment usable", func() {
				next, last, err := g.Step(act(MoveRight))
				So(err, ShouldBeNil)
				So(last, ShouldBeFalse)
				So(next.StepType, ShouldEqual, ts.Mid)
				So(next.Number, ShouldEqual, 2)
			})
		})

		Convey("First timesteps are never terminal", func() {
			first, err := g.Reset()
			So(err, ShouldBeNil)
			So(first.First(), ShouldBeTrue)
			So(first.Terminated(), ShouldBeFalse)
			So(first.Truncated(), ShouldBeFalse)
		})
	})
}

func TestGridWorldObservations(t *testing.T) {
	Convey("Given a GridWorld with two fixed targets", t, func() {
		rows, cols := 4, 6
		starter, err := NewSingleStart(Position{Row: 3, Col: 0}, rows, cols)
		So(err, ShouldBeNil)
		targets, err := NewExplicitTargets(rows, cols,
			Position{Row: 0, Col: 5}, Position{Row: 2, Col: 2})
		So(err, ShouldBeNil)
		task, err := NewReachTarget(starter, targets, rows, cols,
			DefaultStepReward, DefaultTerminalReward)
		So(err, ShouldBeNil)

		g, first, err := New(task, rows, cols, 1.0, NoRender)
		So(err, ShouldBeNil)

		Convey("Observations hold the agent and all target positions",
			func() {
				So(first.Observation.Len(), ShouldEqual, 6)
				So(AgentPosition(first.Observation), ShouldResemble,
					Position{Row: 3, Col: 0})
				So(TargetPositions(first.Observation), ShouldResemble,
					[]Position{{Row: 0, Col: 5}, {Row: 2, Col: 2}})
			})

		Convey("Targets stay in place within an episode", func() {
			step, _, err := g.Step(act(MoveRight))
			So(err, ShouldBeNil)
			So(TargetPositions(step.Observation), ShouldResemble,
				[]Position{{Row: 0, Col: 5}, {Row: 2, Col: 2}})
		})

		Convey("The specs match the observation layout", func() {
			obsSpec := g.ObservationSpec()
			So(obsSpec.Shape.Len(), ShouldEqual, 6)
			So(obsSpec.Cardinality, ShouldEqual, environment.Discrete)
			So(obsSpec.UpperBound.AtVec(0), ShouldEqual, float64(rows-1))
			So(obsSpec.UpperBound.AtVec(1), ShouldEqual, float64(cols-1))
			So(obsSpec.UpperBound.AtVec(4), ShouldEqual, float64(rows-1))
			So(obsSpec.UpperBound.AtVec(5), ShouldEqual, float64(cols-1))

			actionSpec := g.ActionSpec()
			So(actionSpec.Shape.Len(), ShouldEqual, 1)
			So(actionSpec.LowerBound.AtVec(0), ShouldEqual, 0.0)
			So(actionSpec.UpperBound.AtVec(0), ShouldEqual,
				float64(Actions-1))
			So(actionSpec.Cardinality, ShouldEqual, environment.Discrete)

			discountSpec := g.DiscountSpec()
			So(discountSpec.UpperBound.AtVec(0), ShouldEqual, 1.0)
		})

		Convey("Dims returns the size of the grid", func() {
			gotRows, gotCols := g.Dims()
			So(gotRows, ShouldEqual, rows)
			So(gotCols, ShouldEqual, cols)
		})
	})
}

func TestGridWorldActions(t *testing.T) {
	Convey("Given a GridWorld", t, func() {
		g := fixedWorld(Position{Row: 0, Col: 0}, Position{Row: 4, Col: 4},
			5, 5)

		Convey("Actions of the wrong dimension are errors", func() {
			_, _, err := g.Step(mat.NewVecDense(2, []float64{0, 1}))
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown action values panic", func() {
			So(func() { g.Step(act(Actions)) }, ShouldPanic)
			So(func() { g.Step(act(-1)) }, ShouldPanic)
			So(func() {
				g.Step(mat.NewVecDense(1, []float64{1.5}))
			}, ShouldPanic)
		})
	})
}

func TestGridWorldSeed(t *testing.T) {
	Convey("Given a GridWorld with random starts and targets", t, func() {
		rows, cols := 5, 5
		starter, err := NewRandomStart(rows, cols, 1)
		So(err, ShouldBeNil)
		targets, err := NewRandomTargets(2, rows, cols, 2)
		So(err, ShouldBeNil)
		task, err := NewReachTarget(starter, targets, rows, cols,
			DefaultStepReward, DefaultTerminalReward)
		So(err, ShouldBeNil)

		g, _, err := New(task, rows, cols, 1.0, NoRender)
		So(err, ShouldBeNil)

		Convey("Seeding and reseeding replays the same episodes", func() {
			g.Seed(99)
			episodes := make([]*mat.VecDense, 10)
			for i := range episodes {
				step, err := g.Reset()
				So(err, ShouldBeNil)
				episodes[i] = step.Observation
			}

			g.Seed(99)
			for i := range episodes {
				step, err := g.Reset()
				So(err, ShouldBeNil)
				So(mat.Equal(step.Observation, episodes[i]), ShouldBeTrue)
			}
		})

		Convey("Each reset draws fresh targets avoiding the agent", func() {
			for i := 0; i < 50; i++ {
				step, err := g.Reset()
				So(err, ShouldBeNil)

				agent := AgentPosition(step.Observation)
				drawn := TargetPositions(step.Observation)
				So(len(drawn), ShouldEqual, 2)
				So(contains(drawn, agent), ShouldBeFalse)
				So(drawn[0], ShouldNotResemble, drawn[1])
				for _, target := range drawn {
					So(target.in(rows, cols), ShouldBeTrue)
				}
			}
		})
	})
}

func TestGridWorldNew(t *testing.T) {
	Convey("Given a task on a 5x5 gridworld", t, func() {
		starter, err := NewSingleStart(Position{Row: 0, Col: 0}, 5, 5)
		So(err, ShouldBeNil)
		targets, err := NewExplicitTargets(5, 5, Position{Row: 4, Col: 4})
		So(err, ShouldBeNil)
		task, err := NewReachTarget(starter, targets, 5, 5,
			DefaultStepReward, DefaultTerminalReward)
		So(err, ShouldBeNil)

		Convey("Non-positive dimensions are errors", func() {
			_, _, err := New(task, 0, 5, 1.0, NoRender)
			So(err, ShouldNotBeNil)
			_, _, err = New(task, 5, -1, 1.0, NoRender)
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown render modes are errors", func() {
			_, _, err := New(task, 5, 5, 1.0, RenderMode("window"))
			So(err, ShouldNotBeNil)
		})

		Convey("Tasks sized for another grid are errors", func() {
			_, _, err := New(task, 6, 6, 1.0, NoRender)
			So(err, ShouldNotBeNil)
		})

		Convey("The first episode has already begun on a new GridWorld",
			func() {
				g, first, err := New(task, 5, 5, 1.0, NoRender)
				So(err, ShouldBeNil)
				So(first.First(), ShouldBeTrue)
				So(g.CurrentTimeStep(), ShouldResemble, first)
			})
	})
}
