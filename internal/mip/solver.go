package mip

type MIPSolver interface {
	Solve(MIP) (Assignment, error) // Returns an assignment satisfying every constraint if the program is feasible, else returns nil (these are valid outputs where error shall be nil)
}
