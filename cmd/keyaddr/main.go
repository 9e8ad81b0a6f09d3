package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"github.com/smallyu/go-keyaddr/pkg/keyaddr"
)

func main() {
	if err := keyaddrMain(os.Args[1:], os.Stdout); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes err to w unless go-flags has already printed it while
// parsing the command line.
func reportError(w io.Writer, err error) {
	var e *flags.Error
	if errors.As(err, &e) {
		return
	}
	fmt.Fprintln(w, err)
}

// keyaddrMain is the real main function. It is separate from main so that
// deferred functions run before the process exits.
func keyaddrMain(args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer func() {
			logRotator.Close()
			logRotator = nil
		}()
	}
	setLogLevels(cfg.DebugLevel)

	params := keyaddr.Params{
		Name:             cfg.NetName,
		PubKeyHashAddrID: cfg.VersionByte,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(cfg.PrivKeys) > 0 {
		if err := deriveCmd(ctx, cfg, &params, out); err != nil {
			mainLog.Errorf("%v", err)
			return err
		}
	}
	if len(cfg.Decode) > 0 {
		if err := decodeCmd(cfg, &params, out); err != nil {
			mainLog.Errorf("%v", err)
			return err
		}
	}
	return nil
}

// deriveCmd prints one address per configured private key, in order.
func deriveCmd(ctx context.Context, cfg *config, params *keyaddr.Params, out io.Writer) error {
	secrets := make([][]byte, len(cfg.PrivKeys))
	defer func() {
		for _, s := range secrets {
			for i := range s {
				s[i] = 0
			}
		}
	}()

	for i, h := range cfg.PrivKeys {
		b, err := hex.DecodeString(h)
		if err != nil {
			return fmt.Errorf("private key %d is not valid hex: %w", i, err)
		}
		secrets[i] = b
	}

	mainLog.Debugf("Deriving %d address(es) for %s (version 0x%02x)",
		len(secrets), params.Name, params.PubKeyHashAddrID)

	addrs, err := keyaddr.DeriveAddresses(ctx, params, secrets, cfg.Workers)
	if err != nil {
		return err
	}
	for _, a := range addrs {
		fmt.Fprintln(out, a)
	}
	return nil
}

// decodeCmd verifies each configured address and prints its components.
func decodeCmd(cfg *config, params *keyaddr.Params, out io.Writer) error {
	for _, s := range cfg.Decode {
		var (
			addr *keyaddr.Address
			err  error
		)
		if cfg.StrictVersion {
			addr, err = keyaddr.DecodeAddressForParams(s, params)
		} else {
			addr, err = keyaddr.DecodeAddress(s)
		}
		if err != nil {
			return err
		}

		h := addr.Hash160()
		fmt.Fprintf(out, "%s version=0x%02x hash160=%x\n", addr, addr.Version(), h[:])
	}
	return nil
}
