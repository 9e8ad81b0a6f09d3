/*
Package keyaddr derives pay-to-pubkey-hash addresses from secp256k1 keys.

The data flow is:

	32-byte secret -> PrivateKey -> PublicKey (k*G, 65 bytes) -> Address

where the address is version || RIPEMD160(SHA256(pubkey)) || checksum and the
checksum is the first four bytes of SHA256(SHA256(version || hash)). The
textual form of an Address is the Base58 encoding of those 25 bytes.

All functions are pure and safe for concurrent use. Errors are reported as
Error values whose kind can be tested with errors.Is:

	addr, err := keyaddr.DecodeAddress(s)
	if errors.Is(err, keyaddr.ErrChecksumMismatch) {
		// mistyped or tampered address
	}

Only uncompressed public keys are supported.
*/
package keyaddr
