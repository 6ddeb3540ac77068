package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gogrid/environment"
)

// SingleStart starts every episode at the same explicitly given
// position.
type SingleStart struct {
	position   Position
	rows, cols int
}

// NewSingleStart returns a Starter which starts every episode at
// position p in a gridworld of rows rows and cols columns.
func NewSingleStart(p Position, rows, cols int) (environment.Starter, error) {
	if !p.in(rows, cols) {
		return nil, fmt.Errorf("newSingleStart: starting position %v out "+
			"of bounds for a (%d, %d) gridworld", p, rows, cols)
	}

	return &SingleStart{p, rows, cols}, nil
}

// Start returns the starting position as a state vector
func (s *SingleStart) Start() *mat.VecDense {
	return mat.NewVecDense(2, []float64{
		float64(s.position.Row),
		float64(s.position.Col),
	})
}

func (s *SingleStart) String() string {
	return fmt.Sprintf("SingleStart at %v", s.position)
}

// RandomStart starts each episode at a position drawn uniformly at
// random from all cells of the gridworld.
type RandomStart struct {
	*environment.CategoricalStarter
	rows, cols int
}

// NewRandomStart returns a Starter which starts each episode at a
// position drawn uniformly at random from a gridworld of rows rows and
// cols columns. The stream of starting positions is determined by
// seed.
func NewRandomStart(rows, cols int, seed uint64) (*RandomStart, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("newRandomStart: gridworlds need at least "+
			"one row and one column \n\twant(> 0, > 0) \n\thave(%d, %d)",
			rows, cols)
	}

	starter := environment.NewCategoricalStarter([]int{rows, cols}, seed)

	return &RandomStart{starter, rows, cols}, nil
}

func (r *RandomStart) String() string {
	return fmt.Sprintf("RandomStart on (%d, %d)", r.rows, r.cols)
}
