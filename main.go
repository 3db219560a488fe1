package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/filaddress/config"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultConfig := os.Getenv("FILADDRESS_CONFIG")

	app := cli.NewApp()
	app.Name = "filaddress"
	app.Usage = "Decode, encode and validate Filecoin addresses."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   defaultConfig,
			Usage:   "the TOML config file, and the default value is read from environment variable FILADDRESS_CONFIG",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the config file",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log, overrides the config file",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "decodeaddress",
			Usage:  "Decode an address as network, protocol and payload",
			Action: decodeAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Usage:   "the address string",
				},
			},
		},
		{
			Name:   "encodeaddress",
			Usage:  "Encode a protocol and raw payload as an address",
			Action: encodeAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "protocol",
					Usage: "the protocol name or digit, id, secp256k1, actor or bls",
				},
				&cli.StringFlag{
					Name:  "payload",
					Usage: "the raw payload `HEX`, a varint for the id protocol",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
		{
			Name:   "validateaddress",
			Usage:  "Check whether a string is a valid address",
			Action: validateAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Usage:   "the address string",
				},
			},
		},
		{
			Name:   "idaddress",
			Usage:  "Build the ID address of an actor id",
			Action: idAddressCmd,
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:  "id",
					Usage: "the actor id",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
		{
			Name:   "actoraddress",
			Usage:  "Build the actor address of some actor data",
			Action: actorAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "data",
					Usage: "the actor data `HEX` to hash",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
		{
			Name:   "secp256k1address",
			Usage:  "Build the secp256k1 address of a public key",
			Action: secp256k1AddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "pubkey",
					Usage: "the uncompressed public key `HEX`",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
		{
			Name:   "blsaddress",
			Usage:  "Build the BLS address of a public key",
			Action: blsAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "pubkey",
					Usage: "the 48 bytes public key `HEX`",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
		{
			Name:   "verifyaddress",
			Usage:  "Verify a canonical secp256k1 or BLS deposit address",
			Action: verifyAddressCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Usage:   "the address string",
				},
				&cli.StringFlag{
					Name:  "network",
					Usage: "mainnet or testnet, defaults to the config file network",
				},
			},
		},
	}
	return app
}
