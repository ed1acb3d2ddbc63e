package model

import "errors"

var (
	// ErrConfig reports an unsupported rank.
	ErrConfig = errors.New("invalid configuration")

	// ErrInfeasible reports that the givens admit no complete board under the
	// exact-cover constraints. It is distinct from a backend failure: the
	// solver ran and proved the equality system empty.
	ErrInfeasible = errors.New("puzzle is infeasible")
)
