package address

import (
	"fmt"
)

// Protocol represents which protocol an address uses.
type Protocol byte

const (
	// ID represents the address ID protocol.
	ID Protocol = iota
	// SECP256K1 represents the address SECP256K1 protocol.
	SECP256K1
	// Actor represents the address Actor protocol.
	Actor
	// BLS represents the address BLS protocol.
	BLS

	Unknown = Protocol(255)
)

func (p Protocol) String() string {
	switch p {
	case ID:
		return "id"
	case SECP256K1:
		return "secp256k1"
	case Actor:
		return "actor"
	case BLS:
		return "bls"
	default:
		return fmt.Sprintf("unknown(%d)", byte(p))
	}
}

// Valid reports whether p is one of the four address protocols.
func (p Protocol) Valid() bool {
	switch p {
	case ID, SECP256K1, Actor, BLS:
		return true
	default:
		return false
	}
}

// payloadLength returns the fixed payload size of p, the ID protocol has none.
func (p Protocol) payloadLength() (int, bool) {
	switch p {
	case SECP256K1, Actor:
		return PayloadHashLength, true
	case BLS:
		return BlsPublicKeyBytes, true
	default:
		return 0, false
	}
}

func (p Protocol) digit() byte {
	return '0' + byte(p)
}

func protocolFromDigit(c byte) (Protocol, error) {
	switch c {
	case '0':
		return ID, nil
	case '1':
		return SECP256K1, nil
	case '2':
		return Actor, nil
	case '3':
		return BLS, nil
	default:
		return Unknown, fmt.Errorf("%w %q", ErrUnknownProtocol, c)
	}
}

// ProtocolFromName parses the lowercase protocol names used by the command line.
func ProtocolFromName(name string) (Protocol, error) {
	for _, p := range []Protocol{ID, SECP256K1, Actor, BLS} {
		if p.String() == name {
			return p, nil
		}
	}
	if len(name) == 1 {
		return protocolFromDigit(name[0])
	}
	return Unknown, fmt.Errorf("%w %s", ErrUnknownProtocol, name)
}
