package address

import (
	"fmt"
	"strconv"
)

// Encode renders addr for network with the default prefixes.
func Encode(network Network, addr Address) (string, error) {
	return DefaultCodec.Encode(network, addr)
}

// Encode renders addr as network prefix, protocol digit and body. ID bodies
// are the decimal actor id, the others are base32 of payload and checksum.
func (c *Codec) Encode(network Network, addr Address) (string, error) {
	if addr == Undef {
		return "", ErrUndefAddress
	}
	ntwk, err := c.Prefix(network)
	if err != nil {
		return "", err
	}

	protocol := addr.Protocol()
	payload := addr.Payload()
	switch protocol {
	case ID:
		id, err := decodeIDPayload(payload)
		if err != nil {
			return "", err
		}
		return ntwk + string(protocol.digit()) + strconv.FormatUint(id, 10), nil
	case SECP256K1, Actor, BLS:
		cksm := Checksum(protocol, payload)
		return ntwk + string(protocol.digit()) + EncodeBase32(append(payload, cksm...)), nil
	default:
		return "", fmt.Errorf("%w %d", ErrUnknownProtocol, byte(protocol))
	}
}

// Decode parses a network prefixed address string and reports the network
// it was rendered for.
func (c *Codec) Decode(a string) (Address, Network, error) {
	if len(a) < MinAddressStringLength {
		return Undef, 0, fmt.Errorf("%w %d", ErrInvalidLength, len(a))
	}

	network, err := c.network(a[0])
	if err != nil {
		return Undef, 0, err
	}

	protocol, err := protocolFromDigit(a[1])
	if err != nil {
		return Undef, 0, err
	}
	if len(a) > MaxAddressStringLength {
		return Undef, 0, fmt.Errorf("%w %d", ErrInvalidLength, len(a))
	}

	raw := a[2:]
	var addr Address
	switch protocol {
	case ID:
		addr, err = decodeID(raw)
	case SECP256K1, Actor, BLS:
		addr, err = decodeChecksummed(protocol, raw)
	default:
		panic(protocol)
	}
	if err != nil {
		return Undef, 0, err
	}
	return addr, network, nil
}

func decodeID(raw string) (Address, error) {
	if len(raw) > MaxIDStringLength {
		return Undef, fmt.Errorf("%w: id %s too long", ErrMalformedPayload, raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return Undef, fmt.Errorf("%w: id %q has non digit", ErrMalformedPayload, raw)
		}
	}
	if len(raw) > 1 && raw[0] == '0' {
		return Undef, fmt.Errorf("%w: id %s has leading zero", ErrMalformedPayload, raw)
	}
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return Undef, fmt.Errorf("%w: id %s %s", ErrMalformedPayload, raw, err.Error())
	}
	return NewIDAddress(id)
}

func decodeChecksummed(protocol Protocol, raw string) (Address, error) {
	payloadcksm, err := DecodeBase32(raw)
	if err != nil {
		return Undef, err
	}

	if len(payloadcksm) < ChecksumHashLength {
		return Undef, fmt.Errorf("%w: %d bytes leave no room for the checksum", ErrMalformedPayload, len(payloadcksm))
	}

	payload := payloadcksm[:len(payloadcksm)-ChecksumHashLength]
	cksm := payloadcksm[len(payloadcksm)-ChecksumHashLength:]

	size, _ := protocol.payloadLength()
	if len(payload) != size {
		return Undef, fmt.Errorf("%w: %s payload has %d bytes, want %d", ErrMalformedPayload, protocol, len(payload), size)
	}

	if !ValidateChecksum(protocol, payload, cksm) {
		return Undef, ErrChecksumMismatch
	}

	return NewAddress(protocol, payload)
}
