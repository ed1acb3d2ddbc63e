package model

import (
	"fmt"
	"strings"

	"sudomip/internal/mip"

	"github.com/samber/lo"
)

// Sudoku formulates a puzzle as a 0/1 exact-cover program, dispatches it to a
// MIP backend and decodes the resulting board.
type Sudoku interface {
	// Solve returns the rendered board. It returns ErrInfeasible when the
	// givens admit no complete board under the equality constraints, and a
	// wrapped backend error when the solver itself fails.
	Solve(rank uint64, fixed string) (string, error)

	// Verify replays a rendered board against the exact-cover and imposed
	// invariants, independently of any solver.
	Verify(board string, rank uint64, fixed string) bool
}

func NewSudoku(solver mip.MIPSolver) Sudoku {
	return &mipSudoku{
		solver: solver,
	}
}

type mipSudoku struct {
	//** Dependencies
	solver mip.MIPSolver
}

func (sudoku *mipSudoku) Solve(rank uint64, fixed string) (string, error) {
	model, err := Build(rank, fixed)
	if err != nil {
		return "", err
	}

	//** Build MIP instance
	program := mip.MIP{
		Variables:   model.NumMoves,
		Constraints: []mip.Constraint{},
	}

	program.Constraints = append(program.Constraints, sudoku.cellConstraints(model)...)
	program.Constraints = append(program.Constraints, sudoku.rowConstraints(model)...)
	program.Constraints = append(program.Constraints, sudoku.columnConstraints(model)...)
	program.Constraints = append(program.Constraints, sudoku.blockConstraints(model)...)
	program.Constraints = append(program.Constraints, sudoku.imposedConstraints(model)...)

	//** Solve MIP instance
	assignment, err := sudoku.solver.Solve(program)
	if err != nil {
		return "", fmt.Errorf("backend failure: %w", err)
	} else if assignment == nil { // The strong formulation reports emptiness instead of a partial board
		return "", ErrInfeasible
	}

	return Decode(model, assignment), nil
}

func (sudoku *mipSudoku) Verify(board string, rank uint64, fixed string) bool {
	model, err := Build(rank, fixed)
	if err != nil {
		return false
	}

	grid, ok := parseBoard(board, model.Side)
	if !ok {
		return false
	}

	//** Exact-cover invariant: every row, column and block holds each value exactly once
	rowCounts := make([]uint64, model.Side*model.Side)
	colCounts := make([]uint64, model.Side*model.Side)
	blockCounts := make([]uint64, model.Side*model.Side)

	for row := uint64(0); row < model.Side; row++ {
		for col := uint64(0); col < model.Side; col++ {
			value := grid[row][col]
			block := row/rank*rank + col/rank

			rowCounts[value*model.Side+row]++
			colCounts[value*model.Side+col]++
			blockCounts[value*model.Side+block]++
		}
	}

	counted := func(count uint64) bool { return count != 1 }
	if lo.SomeBy(rowCounts, counted) || lo.SomeBy(colCounts, counted) || lo.SomeBy(blockCounts, counted) {
		return false
	}

	//** Imposed invariant: every given survives unchanged
	return !lo.SomeBy(model.Imposed, func(id uint64) bool {
		move := model.Moves[id]
		return grid[move.Row][move.Col] != move.Value
	})
}

func (sudoku *mipSudoku) cellConstraints(model Model) []mip.Constraint {
	return groupConstraints(model.Cells)
}

func (sudoku *mipSudoku) rowConstraints(model Model) []mip.Constraint {
	return groupConstraints(model.Rows)
}

func (sudoku *mipSudoku) columnConstraints(model Model) []mip.Constraint {
	return groupConstraints(model.Cols)
}

func (sudoku *mipSudoku) blockConstraints(model Model) []mip.Constraint {
	return groupConstraints(model.Blocks)
}

func (sudoku *mipSudoku) imposedConstraints(model Model) []mip.Constraint {
	return lo.Map(model.Imposed, func(id uint64, _ int) mip.Constraint {
		return mip.Constraint{Vars: []uint64{id}, EqualTo: 1}
	})
}

func groupConstraints(groups [][]uint64) []mip.Constraint {
	return lo.Map(groups, func(group []uint64, _ int) mip.Constraint {
		return mip.Constraint{Vars: group, EqualTo: 1}
	})
}

// parseBoard reads a rendered board back into a value grid. Incomplete boards
// (any '_' cell) fail: the strong formulation never produces them.
func parseBoard(board string, side uint64) ([][]uint64, bool) {
	lines := strings.Split(board, "\n")
	if uint64(len(lines)) != side {
		return nil, false
	}

	grid := make([][]uint64, side)
	for i, line := range lines {
		cells := strings.Split(line, "|")
		if uint64(len(cells)) != side {
			return nil, false
		}

		grid[i] = make([]uint64, side)
		for j, cell := range cells {
			if len(cell) != 1 {
				return nil, false
			}
			value, ok := ToDigit(cell[0])
			if !ok || value >= side {
				return nil, false
			}
			grid[i][j] = value
		}
	}

	return grid, true
}
