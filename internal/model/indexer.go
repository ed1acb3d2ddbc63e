package model

// Indexer interface is designed to give a unique move id to a combination of
// move attributes and vice versa
type Indexer interface {
	// Returns a unique id for a (row, col, value) combination
	Index(row, col, value uint64) uint64
	// Returns the (row, col, value) combination behind a unique id
	Attributes(id uint64) (row uint64, col uint64, value uint64)
}

func NewIndexer(side uint64) Indexer {
	return &sortedIndexer{
		side: side,
	}
}
