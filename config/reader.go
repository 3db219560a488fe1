package config

import (
	"os"

	"github.com/MixinNetwork/filaddress/address"
	"github.com/pelletier/go-toml"
)

type Custom struct {
	Network struct {
		Codec          *address.Codec  `toml:"-"`
		Default        address.Network `toml:"-"`
		MainnetPrefix  string          `toml:"mainnet-prefix"`
		TestnetPrefix  string          `toml:"testnet-prefix"`
		DefaultNetwork string          `toml:"default"`
	} `toml:"network"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	err = config.setup()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func Default() *Custom {
	var config Custom
	err := config.setup()
	if err != nil {
		panic(err)
	}
	return &config
}

func (c *Custom) setup() error {
	if c.Network.MainnetPrefix == "" {
		c.Network.MainnetPrefix = address.MainnetPrefix
	}
	if c.Network.TestnetPrefix == "" {
		c.Network.TestnetPrefix = address.TestnetPrefix
	}
	if c.Network.DefaultNetwork == "" {
		c.Network.DefaultNetwork = DefaultNetwork
	}
	if c.Log.Level == 0 {
		c.Log.Level = DefaultLogLevel
	}

	codec, err := address.NewCodec(c.Network.MainnetPrefix, c.Network.TestnetPrefix)
	if err != nil {
		return err
	}
	network, err := address.NetworkFromName(c.Network.DefaultNetwork)
	if err != nil {
		return err
	}
	c.Network.Codec = codec
	c.Network.Default = network
	return nil
}
