package mip

import (
	"strings"
	"testing"

	"github.com/rhartert/dimacs"
	"github.com/stretchr/testify/assert"
)

func TestToLP(t *testing.T) {
	// Arrange
	program := MIP{
		Variables: 3,
		Constraints: []Constraint{
			{Vars: []uint64{0, 1, 2}, EqualTo: 1},
			{Vars: []uint64{1}, EqualTo: 1},
		},
	}

	// Act
	lp := program.ToLP()

	// Assert
	expected := "Maximize\n" +
		" obj: x1 + x2 + x3\n" +
		"Subject To\n" +
		" c1: x1 + x2 + x3 = 1\n" +
		" c2: x2 = 1\n" +
		"Binary\n" +
		" x1 x2 x3\n" +
		"End\n"
	assert.Equal(t, expected, lp)
}

func TestToDIMACS(t *testing.T) {
	// Arrange
	program := MIP{
		Variables: 3,
		Constraints: []Constraint{
			{Vars: []uint64{0, 1, 2}, EqualTo: 1},
		},
	}

	// Act
	out := program.ToDIMACS()

	// Assert
	expected := "p cnf 3 4\n" +
		"1 2 3 0\n" +
		"-1 -2 0\n" +
		"-1 -3 0\n" +
		"-2 -3 0\n"
	assert.Equal(t, expected, out)
}

// clauseCounter implements dimacs.Builder to count what a DIMACS reader sees.
type clauseCounter struct {
	vars    int
	clauses [][]int
}

func (c *clauseCounter) Problem(problem string, nVars int, nClauses int) error {
	c.vars = nVars
	return nil
}

func (c *clauseCounter) Comment(_ string) error { return nil }

func (c *clauseCounter) Clause(clause []int) error {
	copied := make([]int, len(clause))
	copy(copied, clause)
	c.clauses = append(c.clauses, copied)
	return nil
}

func TestToDIMACSReadsBack(t *testing.T) {
	for range 10 {
		// Arrange
		program := GeneratePartitionInstance(40, 8)

		// Act
		counter := &clauseCounter{}
		err := dimacs.ReadBuilder(strings.NewReader(program.ToDIMACS()), counter)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, int(program.Variables), counter.vars)
		assert.Equal(t, len(program.clauses()), len(counter.clauses))
	}
}
