// Package round implements the AES state and the four transformations applied to it in each round: SubBytes,
// ShiftRows, MixColumns, and AddRoundKey.
//
// The state is a 4x4 grid of bytes. The byte at row r, column c is stored at index 4c+r. Blocks are mapped onto the
// grid with Load and back with Unload, which place block byte i at row i%4, column i/4.
package round

import (
	"encoding/hex"

	"github.com/jbw3/aes/internal/gf256"
	"github.com/jbw3/aes/internal/keyschedule"
	"github.com/jbw3/aes/internal/sbox"
)

const (
	// Size is the size of the state in bytes.
	Size = 16
	// Rows is the number of rows in the state grid.
	Rows = 4
	// Columns is the number of columns in the state grid.
	Columns = 4
)

// State is the cipher's working grid.
type State [Size]byte

// index returns the position of the byte at row r, column c.
func index(r, c int) int {
	return Rows*c + r
}

// At returns the byte at row r, column c.
func (s State) At(r, c int) byte {
	return s[index(r, c)]
}

// Load arranges the 16 bytes of a block into a state.
func Load(block [Size]byte) State {
	var s State
	for i, b := range block {
		s[index(i%Rows, i/Rows)] = b
	}
	return s
}

// Unload reads a state back out into block order. It is the inverse of Load.
func Unload(s *State) [Size]byte {
	var block [Size]byte
	for i := range block {
		block[i] = s[index(i%Rows, i/Rows)]
	}
	return block
}

// String returns the state's bytes in block order, hex-encoded.
func (s State) String() string {
	b := Unload(&s)
	return hex.EncodeToString(b[:])
}

// SubBytes replaces each byte of the state with its S-box image.
func SubBytes(s *State) {
	for i, b := range s {
		s[i] = sbox.Substitute(b)
	}
}

// ShiftRows rotates row r of the state left by r columns.
func ShiftRows(s *State) {
	for r := 1; r < Rows; r++ {
		var row [Columns]byte
		for c := range Columns {
			row[c] = s[index(r, (c+r)%Columns)]
		}
		for c := range Columns {
			s[index(r, c)] = row[c]
		}
	}
}

// MixColumns multiplies each column of the state by the fixed matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// over GF(2^8).
func MixColumns(s *State) {
	orig := *s
	for c := range Columns {
		a0, a1, a2, a3 := orig.At(0, c), orig.At(1, c), orig.At(2, c), orig.At(3, c)
		s[index(0, c)] = gf256.Double(a0) ^ gf256.Triple(a1) ^ a2 ^ a3
		s[index(1, c)] = a0 ^ gf256.Double(a1) ^ gf256.Triple(a2) ^ a3
		s[index(2, c)] = a0 ^ a1 ^ gf256.Double(a2) ^ gf256.Triple(a3)
		s[index(3, c)] = gf256.Triple(a0) ^ a1 ^ a2 ^ gf256.Double(a3)
	}
}

// AddRoundKey XORs the round key into the state. Word w of the key, most significant byte first, covers column w.
func AddRoundKey(s *State, k keyschedule.RoundKey) {
	for c, w := range k {
		s[index(0, c)] ^= byte(w >> 24)
		s[index(1, c)] ^= byte(w >> 16)
		s[index(2, c)] ^= byte(w >> 8)
		s[index(3, c)] ^= byte(w)
	}
}
