package curves

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Standard secp256k1 domain parameters (SEC 2, section 2.4.1).
// The curve is y^2 = x^3 + 7 over the prime field of order P.
const (
	FieldPrimeHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	GroupOrderHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	GeneratorXHex = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	GeneratorYHex = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"

	curveB = 7
)

// orderLimbs is the group order n as little-endian 64-bit limbs.
var orderLimbs = [4]uint64{
	0xBFD25E8CD0364141,
	0xBAAEDCE6AF48A03B,
	0xFFFFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFFFFF,
}

var generator = Point{
	x:      mustField(GeneratorXHex),
	y:      mustField(GeneratorYHex),
	finite: true,
}

// mustField converts a 32-byte hex constant into a normalized field element.
func mustField(s string) secp256k1.FieldVal {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("curves: bad field constant " + s)
	}
	var f secp256k1.FieldVal
	if f.SetByteSlice(b) {
		panic("curves: field constant overflows prime " + s)
	}
	return f
}
