package curves

import (
	"math/bits"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarLen is the size of a big-endian encoded scalar.
const ScalarLen = 32

// ScalarFromBytes interprets b as a big-endian unsigned integer of at most 32
// bytes and reduces it modulo the group order. A value that reduces to zero
// is rejected.
func ScalarFromBytes(b []byte) (secp256k1.ModNScalar, error) {
	var k secp256k1.ModNScalar
	if len(b) > ScalarLen {
		return k, ErrInvalidScalar
	}
	k.SetByteSlice(b)
	if k.IsZero() {
		return k, ErrInvalidScalar
	}
	return k, nil
}

// IsCanonicalScalar reports whether b is exactly 32 bytes encoding a value in
// [1, n-1] without reduction.
func IsCanonicalScalar(b []byte) bool {
	if len(b) != ScalarLen {
		return false
	}
	var k secp256k1.ModNScalar
	overflow := k.SetByteSlice(b)
	zero := k.IsZero()
	k.Zero()
	return !overflow && !zero
}

// blindScalar returns k + n or k + 2n, whichever has bit 256 set, as five
// little-endian 64-bit limbs. Both candidates are computed and the choice is
// made with a mask, so the ladder always walks the same number of bits.
func blindScalar(k *[ScalarLen]byte) [5]uint64 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		off := ScalarLen - 8*(i+1)
		limbs[i] = uint64(k[off])<<56 | uint64(k[off+1])<<48 |
			uint64(k[off+2])<<40 | uint64(k[off+3])<<32 |
			uint64(k[off+4])<<24 | uint64(k[off+5])<<16 |
			uint64(k[off+6])<<8 | uint64(k[off+7])
	}

	var a, b [5]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		a[i], carry = bits.Add64(limbs[i], orderLimbs[i], carry)
	}
	a[4] = carry

	carry = 0
	for i := 0; i < 4; i++ {
		b[i], carry = bits.Add64(a[i], orderLimbs[i], carry)
	}
	b[4] = a[4] + carry

	mask := -a[4]
	var out [5]uint64
	for i := range out {
		out[i] = (a[i] & mask) | (b[i] &^ mask)
	}

	for i := range limbs {
		limbs[i] = 0
	}
	for i := range a {
		a[i], b[i] = 0, 0
	}
	return out
}
