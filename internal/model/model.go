package model

import "fmt"

// Move is a candidate "place Value in cell (Row, Col)" decision, the unit
// variable of the exact-cover formulation.
type Move struct {
	Id    uint64
	Row   uint64
	Col   uint64
	Block uint64
	Value uint64
}

// Model is the immutable exact-cover formulation of one puzzle: the flat move
// arena plus one index table per grouping family. Moves is indexed by move id.
type Model struct {
	Rank uint64
	Side uint64 // Side = Rank*Rank: the grid dimension and the symbol count

	Moves []Move

	// Each table partitions the move ids; exactly one id per group may hold
	// in a solution. Rows, Cols and Blocks are keyed by value*Side + unit.
	Cells  [][]uint64
	Rows   [][]uint64
	Cols   [][]uint64
	Blocks [][]uint64

	// Imposed holds the move ids forced true by the puzzle's givens.
	Imposed []uint64

	NumMoves uint64
}

// Build constructs the move arena, the four grouping tables and the imposed
// set. The fixed string is read left-to-right, top-to-bottom; characters
// outside the alphabet, and values outside the rank's range, leave their cell
// unconstrained.
func Build(rank uint64, fixed string) (Model, error) {
	if rank < 1 || rank > MaxRank {
		return Model{}, fmt.Errorf("%w: rank must be between 1 and %v: %v", ErrConfig, MaxRank, rank)
	}

	side := rank * rank
	numCells := side * side
	indexer := NewIndexer(side)

	model := Model{
		Rank:     rank,
		Side:     side,
		Moves:    make([]Move, 0, numCells*side),
		Cells:    makeGroups(numCells),
		Rows:     makeGroups(numCells),
		Cols:     makeGroups(numCells),
		Blocks:   makeGroups(numCells),
		NumMoves: numCells * side,
	}

	for row := uint64(0); row < side; row++ {
		for col := uint64(0); col < side; col++ {
			block := row/rank*rank + col/rank
			cell := row*side + col

			for value := uint64(0); value < side; value++ {
				id := indexer.Index(row, col, value)
				model.Moves = append(model.Moves, Move{Id: id, Row: row, Col: col, Block: block, Value: value})

				model.Cells[cell] = append(model.Cells[cell], id)
				model.Rows[value*side+row] = append(model.Rows[value*side+row], id)
				model.Cols[value*side+col] = append(model.Cols[value*side+col], id)
				model.Blocks[value*side+block] = append(model.Blocks[value*side+block], id)
			}
		}
	}

	for cell := uint64(0); cell < numCells && cell < uint64(len(fixed)); cell++ {
		value, ok := ToDigit(fixed[cell])
		if !ok || value >= side {
			continue // Lenient by contract: foreign and out-of-range characters impose nothing
		}
		model.Imposed = append(model.Imposed, indexer.Index(cell/side, cell%side, value))
	}

	return model, nil
}

func makeGroups(count uint64) [][]uint64 {
	groups := make([][]uint64, count)
	for i := range groups {
		groups[i] = make([]uint64, 0)
	}
	return groups
}
