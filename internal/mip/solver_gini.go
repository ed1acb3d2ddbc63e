package mip

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver runs the program in-process through the gini SAT solver,
// using the clause encoding of the equality constraints. As with gophersat,
// satisfiability equals optimality for exact-cover programs.
func NewGiniSolver() MIPSolver {
	return &giniSolver{}
}

func (gs *giniSolver) Solve(program MIP) (Assignment, error) {
	g := gini.NewV(int(program.Variables))
	for _, clause := range program.clauses() {
		for _, literal := range clause {
			if literal > 0 {
				g.Add(z.Var(literal).Pos())
			} else {
				g.Add(z.Var(-literal).Neg())
			}
		}
		g.Add(0)
	}

	if g.Solve() != 1 {
		return nil, nil
	}

	assignment := make(Assignment, program.Variables)
	for i := range assignment {
		assignment[i] = g.Value(z.Var(i + 1).Pos())
	}
	return assignment, nil
}
