package curves

import (
	"crypto/elliptic"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve defines the elliptic curve operations needed to derive public keys.
type Curve interface {
	// Name returns the standard name of the curve.
	Name() string

	// Params returns the curve parameters (P, N, B, Gx, Gy).
	Params() *elliptic.CurveParams

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *secp256k1.ModNScalar) (Point, error)

	// ScalarMult computes k * P
	ScalarMult(p Point, k *secp256k1.ModNScalar) (Point, error)

	// IsOnCurve reports whether p is a finite point on the curve.
	IsOnCurve(p Point) bool

	// NewPointFromBytes parses a serialized point and checks that it lies
	// on the curve.
	NewPointFromBytes(b []byte) (Point, error)
}

type Secp256k1 struct{}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) ScalarBaseMult(k *secp256k1.ModNScalar) (Point, error) {
	return ScalarBaseMult(k)
}

func (c *Secp256k1) ScalarMult(p Point, k *secp256k1.ModNScalar) (Point, error) {
	return ScalarMult(k, p)
}

func (c *Secp256k1) IsOnCurve(p Point) bool {
	return p.IsOnCurve()
}

func (c *Secp256k1) NewPointFromBytes(b []byte) (Point, error) {
	return ParseUncompressed(b)
}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}
