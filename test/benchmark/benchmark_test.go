package benchmark

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-keyaddr/internal/crypto/curves"
	"github.com/smallyu/go-keyaddr/internal/crypto/hashes"
	"github.com/smallyu/go-keyaddr/internal/encoding/base58"
	"github.com/smallyu/go-keyaddr/pkg/keyaddr"
)

const (
	benchSecretHex = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	benchAddrHex   = "00010966776006953d5567439e5e39f86a0d273beed61967f6"
	benchAddr      = "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"
)

func mustHex(b *testing.B, s string) []byte {
	b.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		b.Fatal(err)
	}
	return raw
}

func BenchmarkScalarBaseMult(b *testing.B) {
	k, err := curves.ScalarFromBytes(mustHex(b, benchSecretHex))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curves.ScalarBaseMult(&k); err != nil {
			b.Fatal(err)
		}
	}
}

// Variable-time baseline for the ladder above.
func BenchmarkScalarBaseMultNonConst(b *testing.B) {
	k, err := curves.ScalarFromBytes(mustHex(b, benchSecretHex))
	if err != nil {
		b.Fatal(err)
	}

	var result secp256k1.JacobianPoint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		secp256k1.ScalarBaseMultNonConst(&k, &result)
	}
}

func BenchmarkHash160(b *testing.B) {
	pubKey := make([]byte, keyaddr.PubKeyLen)
	pubKey[0] = 0x04

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hashes.Hash160(pubKey)
	}
}

func BenchmarkBase58Encode(b *testing.B) {
	raw := mustHex(b, benchAddrHex)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base58.Encode(raw)
	}
}

func BenchmarkBase58Decode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := base58.Decode(benchAddr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := keyaddr.DecodeAddress(benchAddr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeriveAddress(b *testing.B) {
	secret := mustHex(b, benchSecretHex)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keyaddr.DeriveAddress(secret, &keyaddr.DefaultParams); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeriveAddresses64(b *testing.B) {
	secret := mustHex(b, benchSecretHex)
	secrets := make([][]byte, 64)
	for i := range secrets {
		secrets[i] = secret
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keyaddr.DeriveAddresses(context.Background(), &keyaddr.DefaultParams, secrets, 0); err != nil {
			b.Fatal(err)
		}
	}
}
