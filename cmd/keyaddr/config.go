package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel = "info"
	defaultNetName  = "mainnet"
)

// config defines the configuration options for keyaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile    string   `short:"C" long:"configfile" description:"Path to an INI configuration file"`
	PrivKeys      []string `short:"k" long:"privkey" description:"Hex-encoded 32-byte private key to derive an address for (may be repeated)"`
	Decode        []string `short:"d" long:"decode" description:"Address to verify and decode (may be repeated)"`
	VersionByte   uint8    `long:"versionbyte" description:"Address version byte"`
	NetName       string   `long:"netname" description:"Name of the network the version byte belongs to"`
	StrictVersion bool     `long:"strictversion" description:"Reject decoded addresses whose version differs from --versionbyte"`
	Workers       int      `long:"workers" description:"Maximum concurrent derivations (0 means unlimited)"`
	DebugLevel    string   `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile       string   `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Positional arguments are treated as additional private keys.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		NetName:    defaultNetName,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error
	// can be ignored here since they will be caught by the final parse
	// below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, err
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if preCfg.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", preCfg.ConfigFile, err)
		}
	}

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	cfg.PrivKeys = append(cfg.PrivKeys, remaining...)

	if !validLogLevel(cfg.DebugLevel) {
		return nil, fmt.Errorf("the specified debug level [%v] is invalid", cfg.DebugLevel)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if len(cfg.PrivKeys) == 0 && len(cfg.Decode) == 0 {
		return nil, errors.New("nothing to do: pass --privkey or --decode")
	}

	return &cfg, nil
}
