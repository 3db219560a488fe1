package address

import (
	"strings"

	"github.com/multiformats/go-base32"
)

const encodeStd = "abcdefghijklmnopqrstuvwxyz234567"

// AddressEncoding defines the base32 config used for address encoding and decoding.
var AddressEncoding = base32.NewEncoding(encodeStd).WithPadding(base32.NoPadding)

// EncodeBase32 packs b five bits per character, without padding.
func EncodeBase32(b []byte) string {
	return AddressEncoding.EncodeToString(b)
}

// DecodeBase32 only accepts the canonical unpadded form, any string that
// would not be produced by EncodeBase32 is rejected.
func DecodeBase32(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(encodeStd, s[i]) < 0 {
			return nil, ErrInvalidCharacter
		}
	}
	switch len(s) % 8 {
	case 1, 3, 6:
		return nil, ErrInvalidLength
	}
	b, err := AddressEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidLength
	}
	// non-zero trailing bits
	if EncodeBase32(b) != s {
		return nil, ErrInvalidLength
	}
	return b, nil
}
