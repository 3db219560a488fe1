package address

import (
	"fmt"
)

// Address is the go type that represents an address in the filecoin network.
// It holds the protocol byte followed by the payload, the network is not part of it.
type Address struct{ str string }

// Undef is the type that represents an undefined address.
var Undef = Address{}

// Protocol returns the protocol used by the address.
func (a Address) Protocol() Protocol {
	if len(a.str) == 0 {
		return Unknown
	}
	return Protocol(a.str[0])
}

// Payload returns the payload of the address.
func (a Address) Payload() []byte {
	if len(a.str) == 0 {
		return nil
	}
	return []byte(a.str[1:])
}

// Bytes returns the address as bytes.
func (a Address) Bytes() []byte {
	return []byte(a.str)
}

// String returns an address encoded as a mainnet string.
func (a Address) String() string {
	if a == Undef {
		return UndefAddressString
	}
	str, err := DefaultCodec.Encode(Mainnet, a)
	if err != nil {
		panic(err)
	}
	return str
}

// Empty returns true if the address is empty, false otherwise.
func (a Address) Empty() bool {
	return a == Undef
}

// ID returns the actor id of an ID address.
func (a Address) ID() (uint64, error) {
	if a.Protocol() != ID {
		return 0, fmt.Errorf("%w %s is not an id address", ErrUnknownProtocol, a.Protocol())
	}
	return decodeIDPayload(a.Payload())
}

// NewIDAddress returns an address using the ID protocol.
func NewIDAddress(id uint64) (Address, error) {
	if id > MaxActorID {
		return Undef, fmt.Errorf("%w: id %d exceeds %d", ErrMalformedPayload, id, uint64(MaxActorID))
	}
	return NewAddress(ID, EncodeVarint(id))
}

// NewSecp256k1Address returns an address using the SECP256K1 protocol.
func NewSecp256k1Address(pubkey []byte) (Address, error) {
	return NewAddress(SECP256K1, PayloadHash(pubkey))
}

// NewActorAddress returns an address using the Actor protocol.
func NewActorAddress(data []byte) (Address, error) {
	return NewAddress(Actor, PayloadHash(data))
}

// NewBLSAddress returns an address using the BLS protocol.
func NewBLSAddress(pubkey []byte) (Address, error) {
	return NewAddress(BLS, pubkey)
}

// NewFromString returns the address represented by the string `addr`.
func NewFromString(addr string) (Address, error) {
	a, _, err := DefaultCodec.Decode(addr)
	return a, err
}

// NewFromBytes return the address represented by the bytes `addr`.
func NewFromBytes(addr []byte) (Address, error) {
	if len(addr) == 0 {
		return Undef, nil
	}
	if len(addr) == 1 {
		return Undef, ErrInvalidLength
	}
	return NewAddress(Protocol(addr[0]), addr[1:])
}

// NewAddress checks payload against the rules of protocol. ID payloads must
// be exactly one minimal varint.
func NewAddress(protocol Protocol, payload []byte) (Address, error) {
	switch protocol {
	case ID:
		if _, err := decodeIDPayload(payload); err != nil {
			return Undef, err
		}
	case SECP256K1, Actor, BLS:
		size, _ := protocol.payloadLength()
		if len(payload) != size {
			return Undef, fmt.Errorf("%w: %s payload has %d bytes, want %d", ErrInvalidPayloadLength, protocol, len(payload), size)
		}
	default:
		return Undef, fmt.Errorf("%w %d", ErrUnknownProtocol, byte(protocol))
	}
	explen := 1 + len(payload)
	buf := make([]byte, explen)

	buf[0] = byte(protocol)
	copy(buf[1:], payload)

	return Address{string(buf)}, nil
}
