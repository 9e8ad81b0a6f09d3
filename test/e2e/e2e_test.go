package e2e

import (
	"context"
	"encoding/hex"
	"os"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcbase58 "github.com/btcsuite/btcutil/base58"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-keyaddr/internal/crypto/hashes"
	"github.com/smallyu/go-keyaddr/pkg/keyaddr"
)

type derivationVector struct {
	Name      string           `yaml:"name"`
	PrivKey   string           `yaml:"privkey"`
	PubKey    string           `yaml:"pubkey"`
	Addresses map[uint8]string `yaml:"addresses"`
}

type vectorFile struct {
	Derivations []derivationVector `yaml:"derivations"`
	PubKeys     []struct {
		PubKey  string `yaml:"pubkey"`
		Address string `yaml:"address"`
		Raw     string `yaml:"raw"`
	} `yaml:"pubkeys"`
	Checksums []struct {
		Data     string `yaml:"data"`
		Checksum string `yaml:"checksum"`
	} `yaml:"checksums"`
	InvalidPubKeys []struct {
		Name   string `yaml:"name"`
		PubKey string `yaml:"pubkey"`
	} `yaml:"invalid_pubkeys"`
}

func loadVectors(t *testing.T) *vectorFile {
	t.Helper()
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	var v vectorFile
	require.NoError(t, yaml.Unmarshal(data, &v))
	require.NotEmpty(t, v.Derivations)
	return &v
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDerivationPipeline(t *testing.T) {
	v := loadVectors(t)

	for _, vec := range v.Derivations {
		vec := vec
		t.Run(vec.Name, func(t *testing.T) {
			secret := mustHex(t, vec.PrivKey)

			privKey, err := keyaddr.NewPrivateKey(secret)
			require.NoError(t, err)
			defer privKey.Zero()

			pubKey, err := privKey.PubKey()
			require.NoError(t, err)
			require.Equal(t, vec.PubKey, hex.EncodeToString(pubKey.Bytes()), spew.Sdump(vec))
			require.True(t, pubKey.IsOnCurve())

			_, ref := btcec.PrivKeyFromBytes(secret)
			assert.Equal(t, ref.SerializeUncompressed(), pubKey.Bytes())

			require.Len(t, vec.Addresses, 2, spew.Sdump(vec.Addresses))
			for version, want := range vec.Addresses {
				params := &keyaddr.Params{Name: vec.Name, PubKeyHashAddrID: version}
				addr := pubKey.AddressWithParams(params)
				assert.Equal(t, want, addr.String(), "version 0x%02x", version)

				h := hashes.Hash160(pubKey.Bytes())
				assert.Equal(t, btcbase58.CheckEncode(h[:], version), addr.String())

				decoded, err := keyaddr.DecodeAddressForParams(want, params)
				require.NoError(t, err)
				assert.Equal(t, addr.Bytes(), decoded.Bytes())
				assert.Equal(t, version, decoded.Version())
			}
		})
	}
}

func TestPubKeyVectors(t *testing.T) {
	v := loadVectors(t)

	for _, vec := range v.PubKeys {
		pk, err := keyaddr.ParsePublicKey(mustHex(t, vec.PubKey))
		require.NoError(t, err)

		addr := keyaddr.AddressFromPublicKey(pk)
		assert.Equal(t, vec.Address, addr.String())
		assert.Equal(t, vec.Raw, hex.EncodeToString(addr.Bytes()))
	}
}

func TestChecksumVectors(t *testing.T) {
	v := loadVectors(t)

	for _, vec := range v.Checksums {
		sum := hashes.Checksum(mustHex(t, vec.Data))
		assert.Equal(t, vec.Checksum, hex.EncodeToString(sum[:]))
	}
}

func TestInvalidPubKeyVectors(t *testing.T) {
	v := loadVectors(t)

	for _, vec := range v.InvalidPubKeys {
		_, err := keyaddr.NewPublicKey(mustHex(t, vec.PubKey))
		assert.ErrorIs(t, err, keyaddr.ErrInvalidKey, vec.Name)
	}
}

func TestBatchMatchesSequential(t *testing.T) {
	v := loadVectors(t)

	secrets := make([][]byte, 0, len(v.Derivations))
	for _, vec := range v.Derivations {
		secrets = append(secrets, mustHex(t, vec.PrivKey))
	}

	addrs, err := keyaddr.DeriveAddresses(context.Background(), &keyaddr.DefaultParams, secrets, 3)
	require.NoError(t, err)
	require.Len(t, addrs, len(v.Derivations))
	for i, vec := range v.Derivations {
		assert.Equal(t, vec.Addresses[0], addrs[i].String(), vec.Name)
	}
}
