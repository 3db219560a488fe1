package address

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the 4 bytes blake2b digest of the protocol byte followed by payload.
func Checksum(protocol Protocol, payload []byte) []byte {
	ingest := make([]byte, 1+len(payload))
	ingest[0] = byte(protocol)
	copy(ingest[1:], payload)
	return hash(ingest, ChecksumHashLength)
}

// ValidateChecksum returns true if the checksum of protocol and payload is equal to `expect`.
func ValidateChecksum(protocol Protocol, payload, expect []byte) bool {
	digest := Checksum(protocol, payload)
	return bytes.Equal(digest, expect)
}

// PayloadHash is the digest stored by SECP256K1 and Actor addresses.
func PayloadHash(ingest []byte) []byte {
	return hash(ingest, PayloadHashLength)
}

func hash(ingest []byte, size int) []byte {
	hasher, err := blake2b.New(size, nil)
	if err != nil {
		// If this happens sth is very wrong.
		panic(fmt.Sprintf("invalid address hash configuration: %v", err)) // ok
	}
	if _, err := hasher.Write(ingest); err != nil {
		// blake2bs Write implementation never returns an error in its current
		// setup. So if this happens sth went very wrong.
		panic(fmt.Sprintf("blake2b is unable to process hashes: %v", err)) // ok
	}
	return hasher.Sum(nil)
}
