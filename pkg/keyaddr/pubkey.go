package keyaddr

import (
	"bytes"
	"fmt"

	"github.com/smallyu/go-keyaddr/internal/crypto/curves"
)

// PubKeyLen is the length of a serialized uncompressed public key.
const PubKeyLen = curves.UncompressedLen

// PubKeyFormat is the leading byte of a serialized public key, which selects
// how the remaining bytes are laid out.
type PubKeyFormat byte

// FormatUncompressed is followed by the 32-byte X and Y coordinates.
const FormatUncompressed = PubKeyFormat(curves.FormatUncompressed)

// String returns the format name.
func (f PubKeyFormat) String() string {
	switch f {
	case FormatUncompressed:
		return "uncompressed"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(f))
	}
}

// curve performs all point arithmetic and validation for keys.
var curve = curves.NewSecp256k1()

// PublicKey is a 65-byte uncompressed secp256k1 public key:
// 0x04 || X || Y.
type PublicKey struct {
	raw [PubKeyLen]byte
}

// NewPublicKey checks only the shape of b: 65 bytes starting with 0x04.
// Curve membership is not verified so that previously stored keys keep
// loading; use ParsePublicKey or IsOnCurve for the strict check.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PubKeyLen {
		str := fmt.Sprintf("malformed public key: invalid length: %d, want %d",
			len(b), PubKeyLen)
		return nil, makeError(ErrInvalidKey, str)
	}
	if f := PubKeyFormat(b[0]); f != FormatUncompressed {
		str := fmt.Sprintf("malformed public key: unsupported format %s", f)
		return nil, makeError(ErrInvalidKey, str)
	}

	var pk PublicKey
	copy(pk.raw[:], b)
	return &pk, nil
}

// ParsePublicKey is NewPublicKey plus a check that the coordinates are field
// elements lying on the curve.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pk, err := NewPublicKey(b)
	if err != nil {
		return nil, err
	}
	if !pk.IsOnCurve() {
		return nil, makeError(ErrInvalidPoint, "public key is not on the secp256k1 curve")
	}
	return pk, nil
}

// PublicKeyFromPrivate computes k*G. It only fails for a key that has been
// wiped with Zero.
func PublicKeyFromPrivate(k *PrivateKey) (*PublicKey, error) {
	scalar, err := curves.ScalarFromBytes(k.key[:])
	if err != nil {
		return nil, makeError(ErrInvalidScalar, "private key has been zeroed")
	}
	defer scalar.Zero()

	point, err := curve.ScalarBaseMult(&scalar)
	if err != nil {
		return nil, makeError(ErrInvalidPoint, err.Error())
	}
	raw, err := point.Uncompressed()
	if err != nil {
		return nil, makeError(ErrInvalidPoint, err.Error())
	}
	return &PublicKey{raw: raw}, nil
}

// Format returns the serialization format of the key.
func (p *PublicKey) Format() PubKeyFormat {
	return PubKeyFormat(p.raw[0])
}

// Bytes returns a copy of the 65-byte serialization.
func (p *PublicKey) Bytes() []byte {
	out := make([]byte, PubKeyLen)
	copy(out, p.raw[:])
	return out
}

// X returns the big-endian X coordinate.
func (p *PublicKey) X() [curves.CoordinateLen]byte {
	var x [curves.CoordinateLen]byte
	copy(x[:], p.raw[1:1+curves.CoordinateLen])
	return x
}

// Y returns the big-endian Y coordinate.
func (p *PublicKey) Y() [curves.CoordinateLen]byte {
	var y [curves.CoordinateLen]byte
	copy(y[:], p.raw[1+curves.CoordinateLen:])
	return y
}

// IsOnCurve reports whether the key encodes a valid curve point.
func (p *PublicKey) IsOnCurve() bool {
	_, err := curve.NewPointFromBytes(p.raw[:])
	return err == nil
}

// IsEqual reports whether p and other have identical serializations.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return bytes.Equal(p.raw[:], other.raw[:])
}

// Address returns the address of the key under DefaultParams.
func (p *PublicKey) Address() *Address {
	return NewAddress(p, &DefaultParams)
}

// AddressWithParams returns the address of the key under params.
func (p *PublicKey) AddressWithParams(params *Params) *Address {
	return NewAddress(p, params)
}
