package address

import (
	"fmt"
)

// Network represents which network an address is rendered for.
type Network byte

const (
	// Mainnet is the main network.
	Mainnet Network = iota
	// Testnet is the test network.
	Testnet
)

const (
	// MainnetPrefix is the main network prefix.
	MainnetPrefix = "f"
	// TestnetPrefix is the test network prefix.
	TestnetPrefix = "t"
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return fmt.Sprintf("unknown(%d)", byte(n))
	}
}

// NetworkFromName parses "mainnet" or "testnet".
func NetworkFromName(name string) (Network, error) {
	switch name {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w %s", ErrUnknownNetwork, name)
	}
}

// Codec converts addresses to and from text under a fixed pair of network
// prefixes. A Codec is immutable and safe for concurrent use.
type Codec struct {
	mainnet byte
	testnet byte
}

// DefaultCodec uses the f and t prefixes.
var DefaultCodec = &Codec{mainnet: MainnetPrefix[0], testnet: TestnetPrefix[0]}

// NewCodec returns a codec for the given mainnet and testnet prefixes, each
// must be a single ASCII letter and they must differ.
func NewCodec(mainnet, testnet string) (*Codec, error) {
	if !validPrefix(mainnet) || !validPrefix(testnet) {
		return nil, fmt.Errorf("invalid network prefixes %q %q", mainnet, testnet)
	}
	if mainnet == testnet {
		return nil, fmt.Errorf("duplicated network prefix %q", mainnet)
	}
	return &Codec{mainnet: mainnet[0], testnet: testnet[0]}, nil
}

// Prefix returns the prefix character n is rendered with.
func (c *Codec) Prefix(n Network) (string, error) {
	switch n {
	case Mainnet:
		return string(c.mainnet), nil
	case Testnet:
		return string(c.testnet), nil
	default:
		return "", fmt.Errorf("%w %d", ErrUnknownNetwork, byte(n))
	}
}

func (c *Codec) network(prefix byte) (Network, error) {
	switch prefix {
	case c.mainnet:
		return Mainnet, nil
	case c.testnet:
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownNetwork, prefix)
	}
}

func validPrefix(p string) bool {
	if len(p) != 1 {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
