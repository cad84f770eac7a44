// Package aes implements the AES-128 forward cipher from [FIPS 197] over single 128-bit blocks, and exposes the
// intermediate state of every round for inspection.
//
// This is a reference implementation intended for teaching and for checking other implementations against. It makes
// no attempt to be constant time and supports neither decryption nor modes of operation. Use crypto/aes and
// crypto/cipher to protect data.
//
// [FIPS 197]: https://csrc.nist.gov/pubs/fips/197/final
package aes

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jbw3/aes/internal/keyschedule"
	"github.com/jbw3/aes/internal/round"
)

const (
	// KeySize is the size of an AES-128 key in bytes.
	KeySize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// Rounds is the number of AES-128 rounds.
	Rounds = keyschedule.Rounds
)

// ErrInvalidLength is returned when a key or block is not exactly 16 bytes long.
var ErrInvalidLength = errors.New("aes: invalid length")

// A Key is an AES-128 key.
type Key [KeySize]byte

// NewKey copies b into a Key. It returns an error wrapping ErrInvalidLength if b is not KeySize bytes long.
func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidLength, len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

// ParseKey decodes a hex-encoded key.
func ParseKey(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("aes: invalid key: %w", err)
	}
	return NewKey(b)
}

func (k Key) words() [keyschedule.KeyWords]uint32 {
	var w [keyschedule.KeyWords]uint32
	for i := range w {
		w[i] = binary.BigEndian.Uint32(k[4*i:])
	}
	return w
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// A Block is a single plaintext or ciphertext block.
type Block [BlockSize]byte

// NewBlock copies b into a Block. It returns an error wrapping ErrInvalidLength if b is not BlockSize bytes long.
func NewBlock(b []byte) (Block, error) {
	var blk Block
	if len(b) != BlockSize {
		return blk, fmt.Errorf("%w: block is %d bytes, want %d", ErrInvalidLength, len(b), BlockSize)
	}
	copy(blk[:], b)
	return blk, nil
}

// ParseBlock decodes a hex-encoded block.
func ParseBlock(s string) (Block, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Block{}, fmt.Errorf("aes: invalid block: %w", err)
	}
	return NewBlock(b)
}

func (b Block) String() string {
	return hex.EncodeToString(b[:])
}

// A State is the cipher's 4x4 working grid. The byte at row r, column c is at index 4c+r; State.String prints it in
// block order.
type State = round.State

// A Schedule is an expanded AES-128 key: eleven round keys of four words each.
type Schedule = keyschedule.Schedule

// A RoundKey is the four words of a Schedule used by one round.
type RoundKey = keyschedule.RoundKey

// Load places the bytes of a block into a state, byte i at row i%4, column i/4.
func Load(b Block) State {
	return round.Load(b)
}

// Unload reads a state back out in block order. Unload(Load(b)) == b for every block.
func Unload(s State) Block {
	return round.Unload(&s)
}
