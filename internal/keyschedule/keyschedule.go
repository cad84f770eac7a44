// Package keyschedule implements the AES-128 key expansion from FIPS 197 Section 5.2.
package keyschedule

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/jbw3/aes/internal/sbox"
)

const (
	// KeyWords is the number of 32-bit words in an AES-128 key.
	KeyWords = 4
	// Rounds is the number of AES-128 rounds.
	Rounds = 10
	// Words is the number of words in an expanded AES-128 key.
	Words = KeyWords * (Rounds + 1)
)

// A Schedule is an expanded key: round key r is words 4r through 4r+3.
type Schedule [Words]uint32

// A RoundKey is one round's slice of a Schedule.
type RoundKey [KeyWords]uint32

// Bytes returns the round key's words as big-endian bytes, word 0 first.
func (k RoundKey) Bytes() [4 * KeyWords]byte {
	var b [4 * KeyWords]byte
	for i, w := range k {
		binary.BigEndian.PutUint32(b[4*i:], w)
	}
	return b
}

func (k RoundKey) String() string {
	b := k.Bytes()
	return hex.EncodeToString(b[:])
}

// RoundKey returns the round key for the given round. It panics if round is outside [0, Rounds].
func (s *Schedule) RoundKey(round int) RoundKey {
	if round < 0 || round > Rounds {
		panic("aes/keyschedule: round index out of range")
	}
	var k RoundKey
	copy(k[:], s[KeyWords*round:])
	return k
}

// Expand derives the schedule for a key given as four big-endian words.
func Expand(key [KeyWords]uint32) Schedule {
	var w Schedule
	copy(w[:KeyWords], key[:])

	for i := KeyWords; i < Words; i++ {
		temp := w[i-1]
		if i%KeyWords == 0 {
			temp = SubWord(RotWord(temp)) ^ RoundConstant(i/KeyWords)
		}
		w[i] = w[i-KeyWords] ^ temp
	}

	return w
}

// RotWord rotates w left by one byte, moving the most significant byte to the least significant position.
func RotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, 8)
}

// SubWord applies the S-box to each byte of w in place.
func SubWord(w uint32) uint32 {
	return uint32(sbox.Substitute(byte(w>>24)))<<24 |
		uint32(sbox.Substitute(byte(w>>16)))<<16 |
		uint32(sbox.Substitute(byte(w>>8)))<<8 |
		uint32(sbox.Substitute(byte(w)))
}

// RoundConstant returns Rcon[round] for round in [1, Rounds]: the round's power of x in the high byte, zeros elsewhere.
func RoundConstant(round int) uint32 {
	if round < 1 || round > Rounds {
		panic("aes/keyschedule: round constant index out of range")
	}
	return uint32(rcon[round-1]) << 24
}

// rcon holds x^(i-1) in GF(2^8) for i in [1, Rounds]; each entry doubles the one before.
//
//nolint:gochecknoglobals // constant table
var rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
