package mip

import "math/rand/v2"

// GeneratePartitionInstance builds a random exact-cover program: variables
// are shuffled and split into groups, each group constrained to sum to one.
// Instances built this way are feasible by construction.
func GeneratePartitionInstance(variables, groups uint64) MIP {
	ids := rand.Perm(int(variables))

	program := MIP{
		Variables:   variables,
		Constraints: make([]Constraint, groups),
	}
	for i := range program.Constraints {
		program.Constraints[i] = Constraint{EqualTo: 1}
	}

	for i, id := range ids {
		group := uint64(i) % groups
		program.Constraints[group].Vars = append(program.Constraints[group].Vars, uint64(id))
	}

	return program
}

// AssertAssignment checks that every constraint of the program is met exactly.
func AssertAssignment(program MIP, assignment Assignment) bool {
	if uint64(len(assignment)) != program.Variables {
		return false
	}

	for _, constraint := range program.Constraints {
		sum := uint64(0)
		for _, variable := range constraint.Vars {
			if assignment[variable] {
				sum++
			}
		}
		if sum != constraint.EqualTo {
			return false
		}
	}

	return true
}
