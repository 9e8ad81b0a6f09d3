package keyaddr

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DeriveAddress validates a raw 32-byte secret and returns the address of its
// public key under params, or DefaultParams when params is nil. The
// intermediate private key is wiped before returning.
func DeriveAddress(secret []byte, params *Params) (*Address, error) {
	k, err := NewPrivateKey(secret)
	if err != nil {
		return nil, err
	}
	defer k.Zero()

	pk, err := PublicKeyFromPrivate(k)
	if err != nil {
		return nil, err
	}
	return NewAddress(pk, params), nil
}

// DeriveAddresses derives the address of every secret concurrently, running
// at most workers derivations at a time. A non-positive workers value means no
// limit. The result is in input order. The first failure cancels the
// remaining work and is returned annotated with the index of the offending
// secret.
func DeriveAddresses(ctx context.Context, params *Params, secrets [][]byte, workers int) ([]*Address, error) {
	params = paramsOrDefault(params)
	addrs := make([]*Address, len(secrets))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range secrets {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			addr, err := DeriveAddress(secrets[i], params)
			if err != nil {
				return fmt.Errorf("secret %d: %w", i, err)
			}
			addrs[i] = addr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("Derived %d %s for %s", len(addrs),
		pickNoun(len(addrs), "address", "addresses"), params.Name)
	return addrs, nil
}
