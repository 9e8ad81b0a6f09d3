package base58

import (
	"crypto/subtle"
	"errors"

	"github.com/smallyu/go-keyaddr/internal/crypto/hashes"
)

var (
	// ErrChecksum is returned when the trailing checksum does not match
	// the payload.
	ErrChecksum = errors.New("base58: checksum mismatch")

	// ErrInvalidFormat is returned when a decoded string is too short to
	// hold a version byte and a checksum.
	ErrInvalidFormat = errors.New("base58: invalid format: version and/or checksum bytes missing")
)

// CheckFrame returns version || payload || checksum(version || payload).
func CheckFrame(payload []byte, version byte) []byte {
	out := make([]byte, 0, 1+len(payload)+hashes.ChecksumLen)
	out = append(out, version)
	out = append(out, payload...)
	sum := hashes.Checksum(out)
	return append(out, sum[:]...)
}

// CheckDecode decodes s, verifies the checksum and splits off the version.
func CheckDecode(s string) (payload []byte, version byte, err error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, 0, err
	}
	if err := verifyFrame(raw); err != nil {
		return nil, 0, err
	}
	return raw[1 : len(raw)-hashes.ChecksumLen], raw[0], nil
}

// verifyFrame checks that the last four bytes of raw are the checksum of the
// bytes before them and that a version byte is present.
func verifyFrame(raw []byte) error {
	if len(raw) < 1+hashes.ChecksumLen {
		return ErrInvalidFormat
	}
	body := raw[:len(raw)-hashes.ChecksumLen]
	want := hashes.Checksum(body)
	if subtle.ConstantTimeCompare(want[:], raw[len(body):]) != 1 {
		return ErrChecksum
	}
	return nil
}
