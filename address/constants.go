package address

import (
	"errors"
)

var (
	// ErrUnknownNetwork is returned when encountering an unknown network in an address.
	ErrUnknownNetwork = errors.New("unknown address network")
	// ErrUnknownProtocol is returned when encountering an unknown protocol in an address.
	ErrUnknownProtocol = errors.New("unknown address protocol")
	// ErrMalformedPayload is returned when an address body breaks the rules of its protocol.
	ErrMalformedPayload = errors.New("malformed address payload")
	// ErrInvalidPayloadLength is returned when a payload has the wrong size for its protocol.
	ErrInvalidPayloadLength = errors.New("invalid address payload length")
	// ErrInvalidLength is returned when encountering an address or base32 body of invalid length.
	ErrInvalidLength = errors.New("invalid address length")
	// ErrChecksumMismatch is returned when encountering an invalid address checksum.
	ErrChecksumMismatch = errors.New("invalid address checksum")
	// ErrInvalidCharacter is returned when a base32 body contains a character outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid address character")
	// ErrUndefAddress is returned when encoding the undefined address.
	ErrUndefAddress = errors.New("undefined address")
)

// UndefAddressString is the string used to represent an empty address when encoded to a string.
const UndefAddressString = "<empty>"

// PayloadHashLength defines the hash length taken over addresses using the Actor and SECP256K1 protocols.
const PayloadHashLength = 20

// ChecksumHashLength defines the hash length used for calculating address checksums.
const ChecksumHashLength = 4

// BlsPublicKeyBytes is the length of a BLS public key
const BlsPublicKeyBytes = 48

// MaxIDStringLength is the number of decimal digits of the largest actor id, 2^63-1.
const MaxIDStringLength = 19

// MaxAddressStringLength is the max length of an address encoded as a string
// it include the network prefx, protocol, and bls publickey
const MaxAddressStringLength = 2 + 84

// MinAddressStringLength covers the network prefix, the protocol digit and one body character.
const MinAddressStringLength = 3
