// Package base58 implements the Bitcoin flavour of Base58 and the
// Base58Check framing built on top of it.
package base58

import (
	"errors"
	"fmt"

	trbase58 "github.com/mr-tron/base58"
)

// ErrInvalidCharacter is returned when the input contains a character
// outside the Base58 alphabet.
var ErrInvalidCharacter = errors.New("base58: invalid character")

// Encode treats b as a big-endian unsigned integer and renders it in base 58.
// Every leading zero byte becomes a leading '1' so that length information
// survives the integer conversion.
func Encode(b []byte) string {
	return trbase58.EncodeAlphabet(b, btcAlphabet)
}

// Decode reverses Encode. Each leading '1' yields a leading zero byte. The
// empty string decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := trbase58.DecodeAlphabet(s, btcAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	return b, nil
}
