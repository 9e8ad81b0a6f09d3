package keyaddr

// Params holds the network-specific values needed to encode an address.
type Params struct {
	// Name is a human-readable identifier used in logs and errors.
	Name string

	// PubKeyHashAddrID is the version byte prepended to the hash160 of a
	// public key.
	PubKeyHashAddrID byte
}

// DefaultParams uses the standard pay-to-pubkey-hash version byte 0x00.
var DefaultParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 0x00,
}

func paramsOrDefault(params *Params) *Params {
	if params == nil {
		return &DefaultParams
	}
	return params
}
