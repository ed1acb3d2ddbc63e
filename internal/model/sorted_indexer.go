package model

// sortedIndexer assigns ids in row-major order with the value as the least
// significant digit: id = (row*side + col)*side + value. Ids for one cell are
// therefore contiguous and ascend by value.
type sortedIndexer struct {
	side uint64
}

func (i *sortedIndexer) Index(row, col, value uint64) uint64 {
	return value + i.side*(col) + i.side*i.side*(row)
}

func (i *sortedIndexer) Attributes(id uint64) (row uint64, col uint64, value uint64) {
	value = id % i.side
	id = id / i.side

	col = id % i.side
	row = id / i.side

	return row, col, value
}
