package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gogrid/environment"
)

// placeAttemptsPerCell scales the bound on the rejection sampling used
// to place random targets. Placement may draw at most
// placeAttemptsPerCell * rows * cols candidate positions per episode
// before giving up with an error.
const placeAttemptsPerCell int = 100

// TargetSpec determines the positions of the targets an agent must
// reach in a ReachTarget task. Targets are either placed at the same
// explicitly given positions every episode or drawn at random at the
// start of each episode.
//
// The two implementations of TargetSpec are ExplicitTargets and
// RandomTargets.
type TargetSpec interface {
	fmt.Stringer

	// place materializes the target positions for a single episode,
	// given the position at which the agent starts that episode
	place(agent Position) ([]Position, error)

	// count returns the number of targets placed for each episode
	count() int
}

// ExplicitTargets places targets at the same explicitly given
// positions every episode.
type ExplicitTargets struct {
	positions []Position
}

// NewExplicitTargets returns a TargetSpec placing targets at exactly
// the argument positions in every episode. At least one position is
// required, positions may not repeat, and each position must be within
// the bounds of a gridworld of rows rows and cols columns.
func NewExplicitTargets(rows, cols int,
	positions ...Position) (TargetSpec, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("newExplicitTargets: tasks need at least " +
			"one target")
	}

	for i, p := range positions {
		if !p.in(rows, cols) {
			return nil, fmt.Errorf("newExplicitTargets: target %v out of "+
				"bounds for a (%d, %d) gridworld", p, rows, cols)
		}
		if contains(positions[:i], p) {
			return nil, fmt.Errorf("newExplicitTargets: duplicate "+
				"target %v", p)
		}
	}

	targets := make([]Position, len(positions))
	copy(targets, positions)

	return &ExplicitTargets{targets}, nil
}

func (e *ExplicitTargets) place(_ Position) ([]Position, error) {
	return e.positions, nil
}

func (e *ExplicitTargets) count() int {
	return len(e.positions)
}

func (e *ExplicitTargets) String() string {
	return fmt.Sprintf("ExplicitTargets at %v", e.positions)
}

// RandomTargets draws a fixed number of unique target positions
// uniformly at random at the start of each episode. Drawn targets
// never coincide with each other or with the position at which the
// agent starts the episode.
type RandomTargets struct {
	n          int
	rows, cols int
	draw       *environment.CategoricalStarter
}

// NewRandomTargets returns a TargetSpec placing n random targets per
// episode on a gridworld of rows rows and cols columns. The stream of
// target positions is determined by seed. At most rows*cols - 1
// targets can be placed, leaving one cell free for the agent.
func NewRandomTargets(n, rows, cols int, seed uint64) (TargetSpec, error) {
	if n < 1 {
		return nil, fmt.Errorf("newRandomTargets: tasks need at least one "+
			"target \n\twant(> 0) \n\thave(%d)", n)
	}
	if n > rows*cols-1 {
		return nil, fmt.Errorf("newRandomTargets: cannot place %d unique "+
			"targets and an agent on a (%d, %d) gridworld", n, rows, cols)
	}

	draw := environment.NewCategoricalStarter([]int{rows, cols}, seed)

	return &RandomTargets{n, rows, cols, draw}, nil
}

// Seed reseeds the stream of random target positions
func (r *RandomTargets) Seed(seed uint64) {
	r.draw.Seed(seed)
}

// place draws the target positions for a single episode by rejection
// sampling: candidates falling on the agent's starting position or on
// an already placed target are redrawn. If no valid draw occurs within
// placeAttemptsPerCell * rows * cols attempts, place returns an error.
func (r *RandomTargets) place(agent Position) ([]Position, error) {
	maxAttempts := placeAttemptsPerCell * r.rows * r.cols
	placed := make([]Position, 0, r.n)

	for attempts := 0; len(placed) < r.n; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("place: could not place %d unique "+
				"targets on a (%d, %d) gridworld in %d draws", r.n, r.rows,
				r.cols, maxAttempts)
		}

		start := r.draw.Start()
		candidate := Position{
			Row: int(start.AtVec(0)),
			Col: int(start.AtVec(1)),
		}

		if candidate == agent || contains(placed, candidate) {
			continue
		}
		placed = append(placed, candidate)
	}

	return placed, nil
}

func (r *RandomTargets) count() int {
	return r.n
}

func (r *RandomTargets) String() string {
	return fmt.Sprintf("RandomTargets placing %d per episode", r.n)
}
