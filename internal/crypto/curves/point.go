package curves

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// CoordinateLen is the size of a big-endian encoded field element.
	CoordinateLen = 32

	// UncompressedLen is the size of an uncompressed point encoding:
	// the format byte followed by the X and Y coordinates.
	UncompressedLen = 1 + 2*CoordinateLen

	// FormatUncompressed is the leading byte of an uncompressed point.
	FormatUncompressed byte = 0x04
)

// Point is a secp256k1 point in affine coordinates.
// The zero value is the point at infinity.
type Point struct {
	x, y   secp256k1.FieldVal
	finite bool
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{}
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}

// NewPoint creates a point from its affine coordinates. The coordinates must
// be less than the field prime and satisfy the curve equation.
func NewPoint(x, y [CoordinateLen]byte) (Point, error) {
	var p Point
	if p.x.SetBytes(&x) != 0 || p.y.SetBytes(&y) != 0 {
		return Point{}, ErrInvalidPoint
	}
	p.finite = true
	if !p.IsOnCurve() {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// ParseUncompressed parses the 65-byte 0x04 || X || Y encoding and checks
// that the result lies on the curve.
func ParseUncompressed(b []byte) (Point, error) {
	if len(b) != UncompressedLen || b[0] != FormatUncompressed {
		return Point{}, ErrInvalidPoint
	}
	var x, y [CoordinateLen]byte
	copy(x[:], b[1:1+CoordinateLen])
	copy(y[:], b[1+CoordinateLen:])
	return NewPoint(x, y)
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 7. The point at infinity
// is not considered to be on the curve.
func (p Point) IsOnCurve() bool {
	if !p.finite {
		return false
	}
	var lhs, rhs secp256k1.FieldVal
	lhs.SquareVal(&p.y).Normalize()
	rhs.SquareVal(&p.x).Mul(&p.x).AddInt(curveB).Normalize()
	return lhs.Equals(&rhs)
}

// X returns the big-endian X coordinate.
func (p Point) X() [CoordinateLen]byte {
	return *p.x.Bytes()
}

// Y returns the big-endian Y coordinate.
func (p Point) Y() [CoordinateLen]byte {
	return *p.y.Bytes()
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Equals(&q.x) && p.y.Equals(&q.y)
}

// Uncompressed returns the 65-byte encoding 0x04 || X || Y.
func (p Point) Uncompressed() ([UncompressedLen]byte, error) {
	if !p.finite {
		return [UncompressedLen]byte{}, ErrInvalidPoint
	}
	x, y := p.X(), p.Y()
	var out [UncompressedLen]byte
	out[0] = FormatUncompressed
	copy(out[1:1+CoordinateLen], x[:])
	copy(out[1+CoordinateLen:], y[:])
	return out, nil
}

// jacobian lifts p into Jacobian coordinates with Z = 1.
func (p Point) jacobian() secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	if !p.finite {
		return j
	}
	j.X.Set(&p.x)
	j.Y.Set(&p.y)
	j.Z.SetInt(1)
	return j
}

// fromJacobian converts j back to affine coordinates.
func fromJacobian(j *secp256k1.JacobianPoint) Point {
	if isJacobianInfinity(j) {
		return Point{}
	}
	j.ToAffine()
	p := Point{finite: true}
	p.x.Set(&j.X)
	p.y.Set(&j.Y)
	return p
}

func isJacobianInfinity(j *secp256k1.JacobianPoint) bool {
	return (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero()
}
