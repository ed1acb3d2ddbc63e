package mip

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The external backends need their binaries installed; each test skips when
// the binary is absent so the suite stays runnable everywhere.

func TestHighs(t *testing.T) {
	requireBinary(t, "highsPath", "highs")
	solver := NewHighsSolver()
	t.Run("Feasible instances", func(t *testing.T) {
		feasibleExecution(t, solver)
	})
	t.Run("Infeasible instance", func(t *testing.T) {
		infeasibleExecution(t, solver)
	})
}

func TestGlpsol(t *testing.T) {
	requireBinary(t, "glpsolPath", "glpsol")
	solver := NewGlpsolSolver()
	t.Run("Feasible instances", func(t *testing.T) {
		feasibleExecution(t, solver)
	})
	t.Run("Infeasible instance", func(t *testing.T) {
		infeasibleExecution(t, solver)
	})
}

func TestGurobi(t *testing.T) {
	requireBinary(t, "gurobiPath", "gurobi_cl")
	solver := NewGurobiSolver()
	t.Run("Feasible instances", func(t *testing.T) {
		feasibleExecution(t, solver)
	})
	t.Run("Infeasible instance", func(t *testing.T) {
		infeasibleExecution(t, solver)
	})
}

func requireBinary(t *testing.T, configKey, fallback string) {
	t.Helper()
	if _, err := exec.LookPath(getExecutablePath(configKey, fallback)); err != nil {
		t.Skipf("%v is not installed", fallback)
	}
}

func feasibleExecution(t *testing.T, solver MIPSolver) {
	scenarios := [][2]uint64{
		{10, 1},
		{20, 4},
		{60, 12},
	}

	for _, scenario := range scenarios {
		// Arrange
		program := GeneratePartitionInstance(scenario[0], scenario[1])

		// Act
		assignment, err := solver.Solve(program)

		// Assert
		assert.Nil(t, err)
		assert.NotNil(t, assignment)
		assert.True(t, AssertAssignment(program, assignment))
	}
}

func infeasibleExecution(t *testing.T, solver MIPSolver) {
	// Arrange
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
