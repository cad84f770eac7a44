// Package testdata provides a deterministic source of test inputs.
package testdata

import (
	"crypto/sha3"
)

// DRBG is a deterministic random bit generator for seeding fuzz corpora and table tests.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG whose output is determined entirely by the domain string.
func New(domain string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(domain))
	return &DRBG{h: h}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Block returns the next 16 bytes of output.
func (d *DRBG) Block() [16]byte {
	var b [16]byte
	_, _ = d.h.Read(b[:])
	return b
}
