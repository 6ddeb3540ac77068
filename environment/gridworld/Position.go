package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/utils/intutils"
)

// Actions available in a GridWorld. Actions move the agent one cell in
// one of the four cardinal directions.
const (
	MoveRight int = iota
	MoveUp
	MoveLeft
	MoveDown

	// Actions is the total number of actions in any GridWorld
	Actions
)

// Position is a single cell of a GridWorld, indexed by row and column.
// Row 0 is the top row of the grid and column 0 is its leftmost
// column.
type Position struct {
	Row int
	Col int
}

// directions maps each action to the change in (row, col) it induces
var directions = [Actions]Position{
	MoveRight: {Row: 0, Col: 1},
	MoveUp:    {Row: -1, Col: 0},
	MoveLeft:  {Row: 0, Col: -1},
	MoveDown:  {Row: 1, Col: 0},
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// move returns the position one step in the direction of action from
// p. Each coordinate of the new position is clamped independently so
// that the position stays within a grid of r rows and c columns.
func (p Position) move(action, r, c int) Position {
	d := directions[action]

	return Position{
		Row: intutils.Clip(p.Row+d.Row, 0, r-1),
		Col: intutils.Clip(p.Col+d.Col, 0, c-1),
	}
}

// in returns whether p lies within a grid of r rows and c columns
func (p Position) in(r, c int) bool {
	return p.Row >= 0 && p.Row < r && p.Col >= 0 && p.Col < c
}

// contains returns whether p is one of positions
func contains(positions []Position, p Position) bool {
	for _, q := range positions {
		if q == p {
			return true
		}
	}
	return false
}

// obsFrom packs an agent position and the target positions of an
// episode into a single state observation vector
func obsFrom(agent Position, targets []Position) *mat.VecDense {
	obs := make([]float64, 2+2*len(targets))
	obs[0], obs[1] = float64(agent.Row), float64(agent.Col)
	for i, target := range targets {
		obs[2+2*i] = float64(target.Row)
		obs[2+2*i+1] = float64(target.Col)
	}

	return mat.NewVecDense(len(obs), obs)
}

// AgentPosition returns the position of the agent in the state
// observation obs
func AgentPosition(obs mat.Vector) Position {
	return Position{Row: int(obs.AtVec(0)), Col: int(obs.AtVec(1))}
}

// TargetPositions returns the positions of the targets in the state
// observation obs
func TargetPositions(obs mat.Vector) []Position {
	targets := make([]Position, (obs.Len()-2)/2)
	for i := range targets {
		targets[i] = Position{
			Row: int(obs.AtVec(2 + 2*i)),
			Col: int(obs.AtVec(2 + 2*i + 1)),
		}
	}

	return targets
}

// atTarget returns whether the state observation obs describes an
// agent positioned on one of its targets
func atTarget(obs mat.Vector) bool {
	agent := AgentPosition(obs)
	for _, target := range TargetPositions(obs) {
		if agent == target {
			return true
		}
	}

	return false
}
