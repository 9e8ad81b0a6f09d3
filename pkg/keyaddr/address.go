package keyaddr

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-keyaddr/internal/crypto/hashes"
	"github.com/smallyu/go-keyaddr/internal/encoding/base58"
)

// AddressLen is the size of a raw address: version, hash160 and checksum.
const AddressLen = 1 + hashes.Hash160Len + hashes.ChecksumLen

// Address is a pay-to-pubkey-hash address in its raw 25-byte form:
//
//	version (1) || RIPEMD160(SHA256(pubkey)) (20) || checksum (4)
//
// Its textual form is the Base58 encoding of those bytes.
type Address struct {
	raw [AddressLen]byte
}

// NewAddress hashes the serialized public key and frames it with the version
// byte from params and a checksum. A nil params means DefaultParams.
func NewAddress(pk *PublicKey, params *Params) *Address {
	params = paramsOrDefault(params)
	h := hashes.Hash160(pk.raw[:])
	frame := base58.CheckFrame(h[:], params.PubKeyHashAddrID)

	var a Address
	copy(a.raw[:], frame)
	return &a
}

// AddressFromPublicKey returns the address of pk under DefaultParams.
func AddressFromPublicKey(pk *PublicKey) *Address {
	return NewAddress(pk, &DefaultParams)
}

// DecodeAddress parses the Base58 text form of an address and verifies its
// checksum. Any version byte is accepted.
func DecodeAddress(s string) (*Address, error) {
	hash, version, err := base58.CheckDecode(s)
	if err != nil {
		log.Debugf("Rejected address %q: %v", s, err)
		kind := ErrInvalidEncoding
		if errors.Is(err, base58.ErrChecksum) {
			kind = ErrChecksumMismatch
		}
		return nil, makeError(kind, fmt.Sprintf("address %q: %v", s, err))
	}

	if len(hash) != hashes.Hash160Len {
		str := fmt.Sprintf("address %q: decoded length %d, want %d", s,
			1+len(hash)+hashes.ChecksumLen, AddressLen)
		return nil, makeError(ErrInvalidEncoding, str)
	}

	var a Address
	copy(a.raw[:], base58.CheckFrame(hash, version))
	return &a, nil
}

// DecodeAddressForParams is DecodeAddress plus a check that the version byte
// matches params. A nil params means DefaultParams.
func DecodeAddressForParams(s string, params *Params) (*Address, error) {
	params = paramsOrDefault(params)
	a, err := DecodeAddress(s)
	if err != nil {
		return nil, err
	}
	if !a.IsForParams(params) {
		str := fmt.Sprintf("address %q has version 0x%02x, %s expects 0x%02x",
			s, a.Version(), params.Name, params.PubKeyHashAddrID)
		return nil, makeError(ErrWrongNetwork, str)
	}
	return a, nil
}

// Bytes returns a copy of the 25 raw bytes.
func (a *Address) Bytes() []byte {
	out := make([]byte, AddressLen)
	copy(out, a.raw[:])
	return out
}

// Version returns the leading version byte.
func (a *Address) Version() byte {
	return a.raw[0]
}

// Hash160 returns the RIPEMD160(SHA256(pubkey)) digest.
func (a *Address) Hash160() [hashes.Hash160Len]byte {
	var h [hashes.Hash160Len]byte
	copy(h[:], a.raw[1:1+hashes.Hash160Len])
	return h
}

// Checksum returns the trailing four bytes.
func (a *Address) Checksum() [hashes.ChecksumLen]byte {
	var c [hashes.ChecksumLen]byte
	copy(c[:], a.raw[AddressLen-hashes.ChecksumLen:])
	return c
}

// String returns the Base58 text form.
func (a *Address) String() string {
	return base58.Encode(a.raw[:])
}

// IsForParams reports whether the address version matches params.
func (a *Address) IsForParams(params *Params) bool {
	return a.Version() == paramsOrDefault(params).PubKeyHashAddrID
}
