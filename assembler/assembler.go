package assembler

// Assemble runs the two-pass assembly process over src and returns the
// encoded machine code as a contiguous big-endian byte stream. baseAddress
// is the location counter's starting value.
func (a *Assembler) Assemble(src string, baseAddress uint32) ([]byte, error) {
	a.decoded = nil
	a.output = nil
	a.location = baseAddress
	a.line = 0
	a.labels = make(map[string]uint32)
	a.defines = make(map[string]uint64)
	a.lastLabel = ""

	if err := a.firstPass(src); err != nil {
		return nil, err
	}
	a.log.Debugf("first pass: %d lines decoded, final location %#x", len(a.decoded), a.location)

	if err := a.secondPass(); err != nil {
		return nil, err
	}
	a.log.Debugf("second pass: %d words emitted", len(a.output))

	return wordsToBytes(a.output), nil
}

// wordsToBytes flattens a 16-bit word stream into its big-endian byte form.
func wordsToBytes(words []uint16) []byte {
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = append(out, byte(w>>8), byte(w))
	}
	return out
}
