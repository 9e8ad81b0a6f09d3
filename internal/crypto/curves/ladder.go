package curves

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// blindedTopBit is the index of the bit that blindScalar always sets.
const blindedTopBit = 256

// ScalarBaseMult computes k*G.
func ScalarBaseMult(k *secp256k1.ModNScalar) (Point, error) {
	return ScalarMult(k, generator)
}

// ScalarMult computes k*P using a Montgomery ladder.
//
// The scalar is first blinded by a multiple of the group order so that its
// top bit is always bit 256; the ladder then performs one addition and one
// doubling per remaining bit and selects operands with a masked swap instead
// of a branch on the secret bit.
func ScalarMult(k *secp256k1.ModNScalar, p Point) (Point, error) {
	if k == nil || k.IsZero() {
		return Point{}, ErrInvalidScalar
	}
	if !p.IsOnCurve() {
		return Point{}, ErrInvalidPoint
	}

	kb := k.Bytes()
	blinded := blindScalar(&kb)
	zeroBytes(kb[:])
	defer func() {
		for i := range blinded {
			blinded[i] = 0
		}
	}()

	// Invariant: r1 - r0 == P. The implicit top bit seeds r0 = P, r1 = 2P.
	r0 := p.jacobian()
	var r1, tmp secp256k1.JacobianPoint
	secp256k1.DoubleNonConst(&r0, &r1)

	for i := blindedTopBit - 1; i >= 0; i-- {
		bit := (blinded[i/64] >> uint(i%64)) & 1

		condSwap(&r0, &r1, bit)
		secp256k1.AddNonConst(&r0, &r1, &tmp)
		r1.Set(&tmp)
		secp256k1.DoubleNonConst(&r0, &tmp)
		r0.Set(&tmp)
		condSwap(&r0, &r1, bit)
	}

	if isJacobianInfinity(&r0) {
		return Point{}, ErrInvalidPoint
	}
	return fromJacobian(&r0), nil
}

// condSwap exchanges a and b when swap is 1 and leaves them untouched when it
// is 0. Both points must be normalized.
func condSwap(a, b *secp256k1.JacobianPoint, swap uint64) {
	condSwapField(&a.X, &b.X, swap)
	condSwapField(&a.Y, &b.Y, swap)
	condSwapField(&a.Z, &b.Z, swap)
}

func condSwapField(a, b *secp256k1.FieldVal, swap uint64) {
	var ab, bb [32]byte
	a.PutBytesUnchecked(ab[:])
	b.PutBytesUnchecked(bb[:])

	mask := byte(-swap)
	for i := range ab {
		t := mask & (ab[i] ^ bb[i])
		ab[i] ^= t
		bb[i] ^= t
	}

	a.SetBytes(&ab)
	b.SetBytes(&bb)
	zeroBytes(ab[:])
	zeroBytes(bb[:])
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
