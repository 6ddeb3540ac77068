package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action, an observation, a discount, or a
// reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (t SpecType) String() string {
	switch t {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	case Reward:
		return "Reward"
	}

	return "Unknown"
}

// Cardinality determines whether the values a Spec describes are
// discrete or continuous
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec describes the layout of one kind of environmental data: the
// shape, the elementwise bounds, and the cardinality of an action, an
// observation, a discount, or a reward. Environments describe
// themselves to their callers through their specs. A gridworld
// observation spec, for example, bounds even elements by the number of
// rows and odd elements by the number of columns of the grid.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec returns a new Spec of type t describing data of the argument
// shape, bounded elementwise between lowerBound and upperBound. The
// bounds must have the same length as the shape they bound.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("newSpec: %v spec shape and lower bound lengths "+
			"differ \n\twant(%d) \n\thave(%d)", t, shape.Len(),
			lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newSpec: %v spec shape and upper bound lengths "+
			"differ \n\twant(%d) \n\thave(%d)", t, shape.Len(),
			upperBound.Len()))
	}

	return Spec{shape, t, lowerBound, upperBound, cardinality}
}
