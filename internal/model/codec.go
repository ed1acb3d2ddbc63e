package model

import (
	"strings"

	"sudomip/internal/mip"
)

// Decode renders a flag assignment as a grid: one line per row, symbols
// separated by '|'. A cell with no true move renders as '_'. When several
// moves of one cell are true (a constraint violation) the lowest value wins:
// ids within a cell ascend by value, so the first true flag decides.
func Decode(model Model, flags mip.Assignment) string {
	var builder strings.Builder

	for row := uint64(0); row < model.Side; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := uint64(0); col < model.Side; col++ {
			if col > 0 {
				builder.WriteByte('|')
			}

			symbol := EmptySymbol
			for _, id := range model.Cells[row*model.Side+col] {
				if id < uint64(len(flags)) && flags[id] {
					symbol = ToSymbol(model.Moves[id].Value)
					break
				}
			}
			builder.WriteByte(symbol)
		}
	}

	return builder.String()
}
