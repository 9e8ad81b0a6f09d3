package keyaddr

import (
	"fmt"

	"github.com/smallyu/go-keyaddr/internal/crypto/curves"
)

// PrivKeyLen is the length of a serialized private key.
const PrivKeyLen = curves.ScalarLen

// PrivateKey is a secp256k1 secret scalar in [1, n-1], held as 32 big-endian
// bytes.
type PrivateKey struct {
	key [PrivKeyLen]byte
}

// NewPrivateKey validates b and returns a private key holding a copy of it.
// The input must be exactly 32 bytes and encode a value in [1, n-1].
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d, want %d",
			len(b), PrivKeyLen)
		return nil, makeError(ErrInvalidKey, str)
	}
	if !curves.IsCanonicalScalar(b) {
		return nil, makeError(ErrInvalidKey, "private key scalar is zero or "+
			"not less than the group order")
	}

	var k PrivateKey
	copy(k.key[:], b)
	return &k, nil
}

// Bytes returns a copy of the 32-byte big-endian scalar.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, PrivKeyLen)
	copy(out, k.key[:])
	return out
}

// PubKey derives the public key k*G.
func (k *PrivateKey) PubKey() (*PublicKey, error) {
	return PublicKeyFromPrivate(k)
}

// Zero overwrites the key material. The key must not be used afterwards.
func (k *PrivateKey) Zero() {
	for i := range k.key {
		k.key[i] = 0
	}
}
