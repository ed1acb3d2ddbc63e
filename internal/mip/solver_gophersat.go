package mip

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver runs the program in-process through gophersat's
// pseudo-boolean solver. The equality constraints pin the objective value, so
// any feasible assignment is optimal and plain satisfiability suffices.
func NewGophersatSolver() MIPSolver {
	return &gophersatSolver{}
}

func (gophersat *gophersatSolver) Solve(program MIP) (Assignment, error) {
	constrs := make([]solver.PBConstr, 0, 2*len(program.Constraints))
	for _, constraint := range program.Constraints {
		lits := make([]int, len(constraint.Vars))
		weights := make([]int, len(constraint.Vars))
		for i, variable := range constraint.Vars {
			lits[i] = int(variable + 1)
			weights[i] = 1
		}
		constrs = append(constrs, solver.Eq(lits, weights, int(constraint.EqualTo))...)
	}

	problem := solver.ParsePBConstrs(constrs)
	s := solver.New(problem)
	if s.Solve() != solver.Sat {
		return nil, nil
	}

	model := s.Model()
	assignment := make(Assignment, program.Variables)
	for i := range assignment {
		if i < len(model) {
			assignment[i] = model[i]
		}
	}
	return assignment, nil
}
