//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-keyaddr/pkg/keyaddr"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go KeyAddr WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoKeyAddr", map[string]interface{}{
		"Derive": js.FuncOf(Derive),
		"Decode": js.FuncOf(Decode),
	})

	<-c
}

type deriveResult struct {
	PubKey  string `json:"pubKey"`
	Address string `json:"address"`
}

type decodeResult struct {
	Version  uint8  `json:"version"`
	Hash160  string `json:"hash160"`
	Checksum string `json:"checksum"`
}

// Derive computes the public key and address for a private key.
// Arguments:
// 0: hex encoded 32-byte private key
// 1: (optional) address version byte, defaults to mainnet
// Returns:
// JSON object {pubKey, address} or an "error: ..." string
func Derive(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || len(args) > 2 {
		return "error: expected 1 or 2 arguments (privKeyHex, [version])"
	}

	params := keyaddr.DefaultParams
	if len(args) == 2 {
		v := args[1].Int()
		if v < 0 || v > 0xff {
			return fmt.Sprintf("error: version byte out of range: %d", v)
		}
		params = keyaddr.Params{Name: "custom", PubKeyHashAddrID: byte(v)}
	}

	secret, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex: %v", err)
	}
	defer func() {
		for i := range secret {
			secret[i] = 0
		}
	}()

	privKey, err := keyaddr.NewPrivateKey(secret)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	defer privKey.Zero()

	pubKey, err := privKey.PubKey()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return marshal(deriveResult{
		PubKey:  hex.EncodeToString(pubKey.Bytes()),
		Address: pubKey.AddressWithParams(&params).String(),
	})
}

// Decode validates an address string.
// Arguments:
// 0: Base58Check address
// Returns:
// JSON object {version, hash160, checksum} or an "error: ..." string
func Decode(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (address)"
	}

	addr, err := keyaddr.DecodeAddress(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	h := addr.Hash160()
	sum := addr.Checksum()
	return marshal(decodeResult{
		Version:  addr.Version(),
		Hash160:  hex.EncodeToString(h[:]),
		Checksum: hex.EncodeToString(sum[:]),
	})
}

func marshal(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
