package environment

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCategoricalStarterBounds(t *testing.T) {
	starter := NewCategoricalStarter([]int{3, 7}, 42)

	for i := 0; i < 100; i++ {
		start := starter.Start()
		if start.Len() != 2 {
			t.Fatalf("start: starting states should have one value per "+
				"bound \n\twant(2) \n\thave(%d)", start.Len())
		}

		row, col := start.AtVec(0), start.AtVec(1)
		if row != math.Trunc(row) || col != math.Trunc(col) {
			t.Errorf("start: starting states should be whole numbers, "+
				"got %v", mat.Formatted(start.T()))
		}
		if row < 0 || row > 2 {
			t.Errorf("start: dimension 0 should be in [0, 2], got %v", row)
		}
		if col < 0 || col > 6 {
			t.Errorf("start: dimension 1 should be in [0, 6], got %v", col)
		}
	}
}

func TestCategoricalStarterSeed(t *testing.T) {
	first := NewCategoricalStarter([]int{5, 5}, 13)
	second := NewCategoricalStarter([]int{5, 5}, 13)

	// Starters with the same seed draw the same stream of states
	for i := 0; i < 100; i++ {
		a, b := first.Start(), second.Start()
		if !mat.Equal(a, b) {
			t.Fatalf("start: same seed should give the same states "+
				"\n\twant(%v) \n\thave(%v)", mat.Formatted(a.T()),
				mat.Formatted(b.T()))
		}
	}

	// Reseeding a starter replays its stream of states
	first.Seed(13)
	second.Seed(13)
	for i := 0; i < 100; i++ {
		a, b := first.Start(), second.Start()
		if !mat.Equal(a, b) {
			t.Fatalf("seed: reseeding should replay the same states "+
				"\n\twant(%v) \n\thave(%v)", mat.Formatted(a.T()),
				mat.Formatted(b.T()))
		}
	}
}
