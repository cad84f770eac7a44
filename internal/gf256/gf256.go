// Package gf256 implements the byte arithmetic of GF(2^8) modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.
package gf256

// Poly is the reduction constant left after x^8 is folded back into the low byte.
const Poly = 0x1b

// Double multiplies b by x (the xtime operation).
func Double(b byte) byte {
	d := b << 1
	if b&0x80 != 0 {
		d ^= Poly
	}
	return d
}

// Triple multiplies b by x + 1.
func Triple(b byte) byte {
	return b ^ Double(b)
}

// Mul multiplies a and b using shift-and-add.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = Double(a)
		b >>= 1
	}
	return p
}

// Inverse returns the multiplicative inverse of a, or 0 if a is 0.
func Inverse(a byte) byte {
	// a^254 = a^2 * a^4 * a^8 * ... * a^128
	sq := Mul(a, a)
	res := sq
	for range 6 {
		sq = Mul(sq, sq)
		res = Mul(res, sq)
	}
	return res
}
