package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	scenarios := []uint64{1, 4, 9, 16, 25, 36}

	for _, side := range scenarios {
		// Act
		indexer := NewIndexer(side)

		indices := make([]uint64, 0, side*side*side)
		for row := uint64(0); row < side; row++ {
			for col := uint64(0); col < side; col++ {
				for value := uint64(0); value < side; value++ {
					indices = append(indices, indexer.Index(row, col, value))
				}
			}
		}

		// Assert
		for _, index := range indices {
			row, col, value := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(row, col, value))
		}
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		side := uint64(rand.Intn(36) + 1)

		// Act
		indexer := NewIndexer(side)

		indices := make([]uint64, 0, side*side*side)
		for row := uint64(0); row < side; row++ {
			for col := uint64(0); col < side; col++ {
				for value := uint64(0); value < side; value++ {
					indices = append(indices, indexer.Index(row, col, value))
				}
			}
		}

		// Assert
		for _, index := range indices {
			row, col, value := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(row, col, value))
		}
	}
}

func TestIntegerConstraints(t *testing.T) {
	for range 10 {
		// Arrange
		side := uint64(rand.Intn(36) + 1)

		// Act
		indexer := NewIndexer(side)

		indices := make([]uint64, 0, side*side*side)
		for row := uint64(0); row < side; row++ {
			for col := uint64(0); col < side; col++ {
				for value := uint64(0); value < side; value++ {
					indices = append(indices, indexer.Index(row, col, value))
				}
			}
		}

		slices.Sort(indices)

		// Assert
		for i, index := range indices {
			if i == 0 {
				// First index should be 0
				assert.Equal(t, uint64(0), index)
				continue
			}

			// Each index should be one more than the previous index
			assert.Equal(t, indices[i-1]+1, index)
		}
	}
}
