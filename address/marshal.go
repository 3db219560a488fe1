package address

import (
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(1, (*Address)(nil))
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

func (a *Address) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return a.UnmarshalText([]byte(unquoted))
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts both networks and the empty address marker.
func (a *Address) UnmarshalText(b []byte) error {
	if string(b) == UndefAddressString {
		*a = Undef
		return nil
	}
	m, err := NewFromString(string(b))
	if err != nil {
		return err
	}
	*a = m
	return nil
}

func (a Address) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *Address) UnmarshalBinary(b []byte) error {
	m, err := NewFromBytes(b)
	if err != nil {
		return err
	}
	*a = m
	return nil
}

func (a Address) MarshalMsgpack() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *Address) UnmarshalMsgpack(data []byte) error {
	return a.UnmarshalBinary(data)
}
