package keyaddr

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	groupOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

	// Bitcoin wiki "Technical background of version 1 Bitcoin addresses".
	wikiPrivKeyHex = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	wikiPubKeyHex  = "0450863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352" +
		"2cd470243453a299fa9e77237716103abc11a1df38855ed6f2ee187e9c582ba6"
	wikiAddrHex = "00010966776006953d5567439e5e39f86a0d273beed61967f6"
	wikiAddr    = "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
