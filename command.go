package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/filaddress/address"
	"github.com/MixinNetwork/filaddress/config"
	"github.com/MixinNetwork/filaddress/domains/filecoin"
	"github.com/MixinNetwork/filaddress/logger"
	"github.com/urfave/cli/v2"
)

func setupCommand(c *cli.Context) (*config.Custom, error) {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		var err error
		custom, err = config.Initialize(file)
		if err != nil {
			return nil, err
		}
	}

	level, filter := custom.Log.Level, custom.Log.Filter
	if l := c.Int("log"); l > 0 {
		level = l
	}
	if f := c.String("filter"); f != "" {
		filter = f
	}
	logger.SetLevel(level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(filter)
	if err != nil {
		return nil, err
	}
	logger.Debugf("config prefixes %s %s default %s\n", custom.Network.MainnetPrefix, custom.Network.TestnetPrefix, custom.Network.Default)
	return custom, nil
}

func commandNetwork(c *cli.Context, custom *config.Custom) (address.Network, error) {
	name := c.String("network")
	if name == "" {
		return custom.Network.Default, nil
	}
	return address.NetworkFromName(name)
}

func printAddress(c *cli.Context, custom *config.Custom, a address.Address) error {
	network, err := commandNetwork(c, custom)
	if err != nil {
		return err
	}
	str, err := custom.Network.Codec.Encode(network, a)
	if err != nil {
		return err
	}
	logger.Verbosef("encode %s address %x as %s\n", a.Protocol(), a.Payload(), str)
	fmt.Fprintln(c.App.Writer, str)
	return nil
}

func decodeAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	str := c.String("address")
	a, network, err := custom.Network.Codec.Decode(str)
	if err != nil {
		logger.Errorf("decode address %q %s\n", str, err)
		return fmt.Errorf("invalid address %s %w", str, err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "network:\t%s\n", network)
	fmt.Fprintf(w, "protocol:\t%s\n", a.Protocol())
	fmt.Fprintf(w, "payload:\t%x\n", a.Payload())
	fmt.Fprintf(w, "bytes:\t\t%x\n", a.Bytes())
	if a.Protocol() == address.ID {
		id, err := a.ID()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "id:\t\t%d\n", id)
	}
	for _, n := range []address.Network{address.Mainnet, address.Testnet} {
		s, err := custom.Network.Codec.Encode(n, a)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\t%s\n", n, s)
	}
	return nil
}

func encodeAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	protocol, err := address.ProtocolFromName(c.String("protocol"))
	if err != nil {
		return err
	}
	payload, err := hex.DecodeString(c.String("payload"))
	if err != nil {
		return err
	}
	a, err := address.NewAddress(protocol, payload)
	if err != nil {
		return err
	}
	return printAddress(c, custom, a)
}

func validateAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	str := c.String("address")
	valid := custom.Network.Codec.Validate(str)
	logger.Verbosef("validate address %q %t\n", str, valid)
	fmt.Fprintln(c.App.Writer, strconv.FormatBool(valid))
	return nil
}

func idAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	a, err := address.NewIDAddress(c.Uint64("id"))
	if err != nil {
		return err
	}
	return printAddress(c, custom, a)
}

func actorAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(c.String("data"))
	if err != nil {
		return err
	}
	a, err := address.NewActorAddress(data)
	if err != nil {
		return err
	}
	return printAddress(c, custom, a)
}

func secp256k1AddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	pub, err := hex.DecodeString(c.String("pubkey"))
	if err != nil {
		return err
	}
	if len(pub) != 65 {
		return fmt.Errorf("invalid secp256k1 public key length %d", len(pub))
	}
	a, err := address.NewSecp256k1Address(pub)
	if err != nil {
		return err
	}
	return printAddress(c, custom, a)
}

func blsAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	pub, err := hex.DecodeString(c.String("pubkey"))
	if err != nil {
		return err
	}
	a, err := address.NewBLSAddress(pub)
	if err != nil {
		return err
	}
	return printAddress(c, custom, a)
}

func verifyAddressCmd(c *cli.Context) error {
	custom, err := setupCommand(c)
	if err != nil {
		return err
	}
	network, err := commandNetwork(c, custom)
	if err != nil {
		return err
	}
	err = filecoin.VerifyAddress(custom.Network.Codec, network, c.String("address"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}
