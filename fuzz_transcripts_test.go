package aes_test

import (
	"bytes"
	stdaes "crypto/aes"
	"testing"

	"github.com/jbw3/aes"
	"github.com/jbw3/aes/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzTranscript generates a random transcript of key expansions and block encryptions, interleaving calls with
// different keys, and checks that every result is repeatable and agrees with crypto/aes.
//
//nolint:gocognit // It's fine if this is complicated.
func FuzzTranscript(f *testing.F) {
	drbg := testdata.New("aes transcript")
	for range 10 {
		f.Add(drbg.Data(1024))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		opCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		block := func() (aes.Block, error) {
			var b aes.Block
			in, err := tp.GetBytes()
			copy(b[:], in)
			return b, err
		}

		schedules := make(map[aes.Key]aes.Schedule)
		results := make(map[[2]aes.Block]aes.Block)
		var ciphers []*aes.Cipher

		for range opCount % 50 {
			opTypeRaw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}

			kb, err := block()
			if err != nil {
				t.Skip(err)
			}
			key := aes.Key(kb)

			const opTypeCount = 3 // ExpandKey, EncryptBlock, Cipher
			switch opType := opTypeRaw % opTypeCount; opType {
			case 0: // ExpandKey
				s := aes.ExpandKey(key)
				if prev, ok := schedules[key]; ok && prev != s {
					t.Fatalf("Divergent ExpandKey(%s) outputs: %v != %v", key, prev, s)
				}
				schedules[key] = s
			case 1: // EncryptBlock
				pt, err := block()
				if err != nil {
					t.Skip(err)
				}

				ct, snapshots := aes.EncryptBlock(key, pt)
				if prev, ok := results[[2]aes.Block{kb, pt}]; ok && prev != ct {
					t.Fatalf("Divergent EncryptBlock(%s, %s) outputs: %s != %s", key, pt, prev, ct)
				}
				results[[2]aes.Block{kb, pt}] = ct

				ref, err := stdaes.NewCipher(key[:])
				if err != nil {
					t.Fatal(err)
				}
				want := make([]byte, aes.BlockSize)
				ref.Encrypt(want, pt[:])
				if !bytes.Equal(ct[:], want) {
					t.Fatalf("EncryptBlock(%s, %s) = %s, want = %x", key, pt, ct, want)
				}

				if len(snapshots) != aes.Rounds-1 {
					t.Fatalf("len(snapshots) = %d, want = %d", len(snapshots), aes.Rounds-1)
				}
			case 2: // Cipher
				c, err := aes.NewCipher(key[:])
				if err != nil {
					t.Fatal(err)
				}
				ciphers = append(ciphers, c)

				pt, err := block()
				if err != nil {
					t.Skip(err)
				}

				// Reuse an earlier cipher, which must not have been disturbed by anything since.
				idx, err := tp.GetUint16()
				if err != nil {
					t.Skip(err)
				}
				c = ciphers[int(idx)%len(ciphers)]

				var got aes.Block
				c.Encrypt(got[:], pt[:])
				ct, _ := c.Trace(pt)
				if got != ct {
					t.Fatalf("Cipher.Encrypt(%s) = %s, Cipher.Trace = %s", pt, got, ct)
				}

				schedule := c.Schedule()
				k0 := schedule.RoundKey(0).Bytes()
				if want, _ := aes.EncryptBlock(aes.Key(k0), pt); got != want {
					t.Fatalf("Cipher.Encrypt(%s) = %s, want = %s", pt, got, want)
				}
			}
		}
	})
}
