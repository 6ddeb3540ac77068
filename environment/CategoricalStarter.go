package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. The categorical
// distribution for dimension i samples values in (0, 1, 2, ... bounds[i]-1).
type CategoricalStarter struct {
	bounds []int
	rand   []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, seed uint64) *CategoricalStarter {
	c := &CategoricalStarter{bounds: append([]int(nil), bounds...)}
	c.Seed(seed)

	return c
}

// Seed reseeds the starter. Start states drawn after a call to Seed
// follow the stream of random numbers determined by seed.
func (c *CategoricalStarter) Seed(seed uint64) {
	source := rand.NewSource(seed)

	c.rand = make([]distuv.Categorical, len(c.bounds))
	for i := range c.rand {
		// Create the weights for the uniform categorical distribution
		weights := make([]float64, c.bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		c.rand[i] = distuv.NewCategorical(weights, source)
	}
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, len(c.bounds))
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(len(start), start)
}
