package address

// ValidateAddressString reports whether addr parses as an address under
// the default prefixes. It never fails on any input.
func ValidateAddressString(addr string) bool {
	return DefaultCodec.Validate(addr)
}

// Validate reports whether addr parses as an address under the codec prefixes.
func (c *Codec) Validate(addr string) bool {
	_, _, err := c.Decode(addr)
	return err == nil
}
