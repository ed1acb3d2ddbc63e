package mip

import (
	"fmt"
	"strings"
)

// Assignment holds the solved value of every binary variable, indexed by variable id.
type Assignment []bool

// Constraint states that the variables in Vars must sum exactly to EqualTo.
type Constraint struct {
	Vars    []uint64
	EqualTo uint64
}

// MIP is a 0/1 integer program made of equality constraints. The objective is
// implicit: maximize the number of variables set to one.
type MIP struct {
	Variables   uint64
	Constraints []Constraint
}

// lpTermsPerLine bounds the line width of the emitted LP file.
const lpTermsPerLine = 10

// ToLP transforms the program into CPLEX LP string format. Variables are named
// x1..xN, one-based as in the DIMACS convention.
func (m MIP) ToLP() string {
	var builder strings.Builder

	builder.WriteString("Maximize\n obj:")
	for i := uint64(0); i < m.Variables; i++ {
		if i > 0 {
			builder.WriteString(" +")
		}
		fmt.Fprintf(&builder, " x%d", i+1)
		if (i+1)%lpTermsPerLine == 0 && i+1 < m.Variables {
			builder.WriteString("\n ")
		}
	}

	builder.WriteString("\nSubject To\n")
	for i, constraint := range m.Constraints {
		fmt.Fprintf(&builder, " c%d:", i+1)
		for j, variable := range constraint.Vars {
			if j > 0 {
				builder.WriteString(" +")
			}
			fmt.Fprintf(&builder, " x%d", variable+1)
		}
		fmt.Fprintf(&builder, " = %d\n", constraint.EqualTo)
	}

	builder.WriteString("Binary\n")
	for i := uint64(0); i < m.Variables; i++ {
		fmt.Fprintf(&builder, " x%d", i+1)
		if (i+1)%lpTermsPerLine == 0 && i+1 < m.Variables {
			builder.WriteString("\n")
		}
	}
	builder.WriteString("\nEnd\n")

	return builder.String()
}

// ToDIMACS transforms the program into DIMACS-CNF string format. Each "= 1"
// constraint becomes one positive clause plus pairwise exclusions, and each
// "= 0" constraint becomes unit negative clauses. Feasibility and optimality
// coincide under this encoding since the equality constraints pin the
// objective value.
func (m MIP) ToDIMACS() string {
	clauses := m.clauses()

	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", m.Variables, len(clauses))
	for _, clause := range clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// clauses is the CNF view of the program consumed by the SAT-shaped backends.
// Only cardinalities 0 and 1 occur in exact-cover programs.
func (m MIP) clauses() [][]int64 {
	clauses := make([][]int64, 0, len(m.Constraints))
	for _, constraint := range m.Constraints {
		switch constraint.EqualTo {
		case 0:
			for _, variable := range constraint.Vars {
				clauses = append(clauses, []int64{-int64(variable + 1)})
			}
		case 1:
			clause := make([]int64, 0, len(constraint.Vars))
			for _, variable := range constraint.Vars {
				clause = append(clause, int64(variable+1))
			}
			clauses = append(clauses, clause)

			for i := 0; i < len(constraint.Vars)-1; i++ {
				for j := i + 1; j < len(constraint.Vars); j++ {
					clauses = append(clauses, []int64{-int64(constraint.Vars[i] + 1), -int64(constraint.Vars[j] + 1)})
				}
			}
		default:
			panic(fmt.Sprintf("unsupported constraint cardinality: %d", constraint.EqualTo))
		}
	}
	return clauses
}
