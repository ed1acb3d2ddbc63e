package model

import "strings"

const (
	// digits is the input alphabet: a puzzle character's position is its value.
	digits = "1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// symbols is the display alphabet, shifted by one to reserve index 0 for
	// an empty cell.
	symbols = "_" + digits
)

// EmptySymbol renders a cell holding no value.
const EmptySymbol byte = '_'

// MaxRank is the largest supported rank: rank^2 values must fit the alphabet.
const MaxRank = 6

// ToDigit maps a puzzle character to its value. The boolean reports whether
// the character belongs to the alphabet; blanks and any foreign character
// denote "no constraint".
func ToDigit(char byte) (uint64, bool) {
	index := strings.IndexByte(digits, char)
	if index < 0 {
		return 0, false
	}
	return uint64(index), true
}

// ToSymbol maps a value in [0, 36) to its display character.
func ToSymbol(value uint64) byte {
	return symbols[value+1]
}
