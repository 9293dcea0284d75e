package assembler

// encodeTrap implements TRAP #vector: 010011100100 vvvv, vector 0..15.
func (a *Assembler) encodeTrap(d *Decoded) ([]uint16, error) {
	src := d.Operands[0]
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	if v > 15 {
		return nil, errf(InvalidNumber, d.SourceLine, "TRAP vector must be 0..15, got %d", v)
	}
	return []uint16{0x4E40 | uint16(v)}, nil
}

// encodeBkpt implements BKPT #vector: 0100100001001 vvv, vector 0..7.
func (a *Assembler) encodeBkpt(d *Decoded) ([]uint16, error) {
	src := d.Operands[0]
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	if v > 7 {
		return nil, errf(InvalidNumber, d.SourceLine, "BKPT vector must be 0..7, got %d", v)
	}
	return []uint16{0x4848 | uint16(v)}, nil
}

// encodeStop implements STOP #imm: a fixed opcode word followed by the
// 16-bit immediate status value.
func (a *Assembler) encodeStop(d *Decoded) ([]uint16, error) {
	src := d.Operands[0]
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	return []uint16{0x4E72, uint16(v)}, nil
}

// encodeRtd implements RTD #disp (M68010): a fixed opcode word followed by
// a 16-bit signed stack-adjustment displacement.
func (a *Assembler) encodeRtd(d *Decoded) ([]uint16, error) {
	src := d.Operands[0]
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	return []uint16{0x4E74, uint16(v)}, nil
}
