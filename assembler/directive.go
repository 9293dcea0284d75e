package assembler

// encodeData implements the d08/d16/d24/d32/d64 directives:
// each value is resolved and emitted big-endian at its declared width, and
// the whole run is padded with a trailing zero byte if the total is odd (the
// assembler's output is always a whole number of 16-bit words).
func (a *Assembler) encodeData(d *Decoded) ([]uint16, error) {
	raw := make([]byte, 0, len(d.DataValues)*d.DataWidth+1)
	for _, v := range d.DataValues {
		val, err := v.resolve(a.labels, a.defines, d.SourceLine)
		if err != nil {
			return nil, err
		}
		raw = appendBigEndian(raw, val, d.DataWidth)
	}
	if len(raw)%2 != 0 {
		raw = append(raw, 0)
	}

	words := make([]uint16, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		words = append(words, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return words, nil
}

// appendBigEndian appends the low `width` bytes of v to dst, most
// significant byte first.
func appendBigEndian(dst []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(uint(i)*8)))
	}
	return dst
}
