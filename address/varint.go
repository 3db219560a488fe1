package address

import (
	"encoding/binary"
	"fmt"

	"github.com/multiformats/go-varint"
)

// MaxActorID is the largest id an ID address can carry.
const MaxActorID = varint.MaxValueUvarint63

// EncodeVarint returns the minimal unsigned LEB128 encoding of n.
func EncodeVarint(n uint64) []byte {
	return varint.ToUvarint(n)
}

// DecodeVarint reads one unsigned varint from the head of b and returns the
// value with the number of bytes consumed. Truncated, overflowing and
// non-minimal encodings are rejected.
func DecodeVarint(b []byte) (uint64, int, error) {
	n, size := binary.Uvarint(b)
	if size == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedPayload, varint.ErrUnderflow)
	}
	if size < 0 {
		return 0, 0, fmt.Errorf("%w: varint overflows 64 bits", ErrMalformedPayload)
	}
	if size > 1 && b[size-1] == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedPayload, varint.ErrNotMinimal)
	}
	return n, size, nil
}

func decodeIDPayload(payload []byte) (uint64, error) {
	id, size, err := DecodeVarint(payload)
	if err != nil {
		return 0, err
	}
	if size != len(payload) {
		return 0, fmt.Errorf("%w: %d trailing bytes after id", ErrMalformedPayload, len(payload)-size)
	}
	if id > MaxActorID {
		return 0, fmt.Errorf("%w: id %d exceeds %d", ErrMalformedPayload, id, uint64(MaxActorID))
	}
	return id, nil
}
