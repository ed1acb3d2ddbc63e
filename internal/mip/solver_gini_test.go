package mip

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGiniPartitions(t *testing.T) {
	solver := NewGiniSolver()

	for range 10 {
		// Arrange
		variables := uint64(rand.IntN(100) + 10)
		groups := uint64(rand.IntN(9) + 1)
		program := GeneratePartitionInstance(variables, groups)

		// Act
		assignment, err := solver.Solve(program)

		// Assert
		assert.Nil(t, err)
		assert.NotNil(t, assignment)
		assert.True(t, AssertAssignment(program, assignment))
	}
}

func TestGiniInfeasible(t *testing.T) {
	// Arrange
	solver := NewGiniSolver()
	program := MIP{
		Variables: 2,
		Constraints: []Constraint{
			{Vars: []uint64{0, 1}, EqualTo: 1},
			{Vars: []uint64{0}, EqualTo: 1},
			{Vars: []uint64{1}, EqualTo: 1},
		},
	}

	// Act
	assignment, err := solver.Solve(program)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, assignment)
}
