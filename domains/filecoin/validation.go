package filecoin

import (
	"fmt"
	"strings"

	"github.com/MixinNetwork/filaddress/address"
)

// VerifyAddress accepts only canonical SECP256K1 and BLS addresses rendered
// by codec for network, the kinds a deposit or withdrawal can target.
func VerifyAddress(codec *address.Codec, network address.Network, addr string) error {
	if strings.TrimSpace(addr) != addr {
		return fmt.Errorf("invalid filecoin address %s", addr)
	}

	prefix, err := codec.Prefix(network)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(addr, prefix) {
		return fmt.Errorf("invalid filecoin address %s %w: want %s", addr, address.ErrUnknownNetwork, network)
	}
	a, n, err := codec.Decode(addr)
	if err != nil {
		return fmt.Errorf("invalid filecoin address %s %w", addr, err)
	}
	if n != network {
		return fmt.Errorf("invalid filecoin address %s %w: %s", addr, address.ErrUnknownNetwork, n)
	}
	if a.Protocol() != address.SECP256K1 && a.Protocol() != address.BLS {
		return fmt.Errorf("invalid filecoin address %s %s", addr, a.Protocol())
	}
	str, err := codec.Encode(network, a)
	if err != nil {
		return err
	}
	if str != addr {
		return fmt.Errorf("invalid filecoin address %s %s", addr, str)
	}
	return nil
}
