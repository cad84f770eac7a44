package aes

import (
	"github.com/jbw3/aes/internal/keyschedule"
	"github.com/jbw3/aes/internal/round"
)

// ExpandKey derives the eleven round keys for key.
func ExpandKey(key Key) Schedule {
	return keyschedule.Expand(key.words())
}

// EncryptBlock encrypts a single block under key. Along with the ciphertext it returns the state after MixColumns in
// each of rounds 1 through 9, in order.
func EncryptBlock(key Key, plaintext Block) (Block, [Rounds - 1]State) {
	ciphertext, t := EncryptTrace(key, plaintext)
	return ciphertext, t.Mixed
}

// EncryptTrace encrypts a single block under key and records every round.
func EncryptTrace(key Key, plaintext Block) (Block, Trace) {
	var t Trace
	schedule := ExpandKey(key)
	ciphertext := encrypt(&schedule, plaintext, &t)
	return ciphertext, t
}

// encrypt runs the cipher over one block. If t is non-nil, each round's key and intermediate states are written to it.
func encrypt(schedule *Schedule, plaintext Block, t *Trace) Block {
	s := round.Load(plaintext)

	k := schedule.RoundKey(0)
	round.AddRoundKey(&s, k)
	if t != nil {
		t.RoundKeys[0] = k
		t.Results[0] = s
	}

	for r := 1; r <= Rounds; r++ {
		k = schedule.RoundKey(r)

		round.SubBytes(&s)
		round.ShiftRows(&s)
		// The final round has no MixColumns.
		if r < Rounds {
			round.MixColumns(&s)
			if t != nil {
				t.Mixed[r-1] = s
			}
		}
		round.AddRoundKey(&s, k)

		if t != nil {
			t.RoundKeys[r] = k
			t.Results[r] = s
		}
	}

	return round.Unload(&s)
}

// A Trace records the intermediate values of a single block encryption.
type Trace struct {
	// RoundKeys holds the key added in each round, round 0 first.
	RoundKeys [Rounds + 1]RoundKey

	// Mixed holds the state after MixColumns in rounds 1 through 9. Round 10 has no MixColumns step.
	Mixed [Rounds - 1]State

	// Results holds the state at the end of each round, after its AddRoundKey. Results[Rounds] is the ciphertext.
	Results [Rounds + 1]State
}

// A RoundTrace is the part of a Trace belonging to a single round.
type RoundTrace struct {
	Index    int
	Key      RoundKey
	Mixed    State
	HasMixed bool
	Result   State
}

// Round returns the trace of round i. It panics if i is outside [0, Rounds].
func (t *Trace) Round(i int) RoundTrace {
	if i < 0 || i > Rounds {
		panic("aes: round index out of range")
	}

	rt := RoundTrace{
		Index:  i,
		Key:    t.RoundKeys[i],
		Result: t.Results[i],
	}
	if i > 0 && i < Rounds {
		rt.Mixed = t.Mixed[i-1]
		rt.HasMixed = true
	}
	return rt
}

// A Cipher is an AES-128 key expanded once for encrypting many blocks. Its methods are safe for concurrent use.
type Cipher struct {
	schedule Schedule
}

// NewCipher expands key into a Cipher. It returns an error wrapping ErrInvalidLength if key is not KeySize bytes long.
func NewCipher(key []byte) (*Cipher, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: ExpandKey(k)}, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. Dst and src may overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}

	var pt Block
	copy(pt[:], src)
	ct := encrypt(&c.schedule, pt, nil)
	copy(dst, ct[:])
}

// Trace encrypts a single block and records every round.
func (c *Cipher) Trace(plaintext Block) (Block, Trace) {
	var t Trace
	ciphertext := encrypt(&c.schedule, plaintext, &t)
	return ciphertext, t
}

// Schedule returns a copy of the cipher's expanded key.
func (c *Cipher) Schedule() Schedule {
	return c.schedule
}
