// Package hashes implements the hash compositions used to shorten public keys
// and to protect encoded payloads against transcription errors.
package hashes

import (
	"github.com/minio/sha256-simd"

	// RIPEMD-160 is deprecated for new designs but is fixed by the address
	// format: Hash160 = RIPEMD160(SHA256(data)).
	//nolint:staticcheck
	"golang.org/x/crypto/ripemd160"
)

const (
	// ChecksumLen is the number of leading double-SHA256 bytes kept as checksum.
	ChecksumLen = 4

	// Hash160Len is the size of a RIPEMD160(SHA256(x)) digest.
	Hash160Len = ripemd160.Size
)

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Checksum returns the first four bytes of DoubleSHA256(data).
func Checksum(data []byte) [ChecksumLen]byte {
	h := DoubleSHA256(data)
	var sum [ChecksumLen]byte
	copy(sum[:], h[:ChecksumLen])
	return sum
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) [Hash160Len]byte {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])

	var out [Hash160Len]byte
	copy(out[:], r.Sum(nil))
	return out
}
