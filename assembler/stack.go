package assembler

// encodeLink implements LINK An,#disp: 0100111001010 rrr followed by a
// 16-bit signed displacement extension word.
func (a *Assembler) encodeLink(d *Decoded) ([]uint16, error) {
	reg, disp := d.Operands[0], d.Operands[1]
	if !reg.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "LINK requires an address register")
	}
	v, err := disp.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	return []uint16{0x4E50 | uint16(reg.Reg), uint16(v)}, nil
}

// encodeUnlk implements UNLK An: 0100111001011 rrr.
func (a *Assembler) encodeUnlk(d *Decoded) ([]uint16, error) {
	reg := d.Operands[0]
	if !reg.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "UNLK requires an address register")
	}
	return []uint16{0x4E58 | uint16(reg.Reg)}, nil
}
