package assembler

// encodeBcd implements ABCD/SBCD: Dy,Dx or -(Ay),-(Ax) register-pair forms.
func (a *Assembler) encodeBcd(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	base := uint16(0b1100 << 12)
	if d.Inst.IsSbcd {
		base = uint16(0b1000 << 12)
	}
	var rm uint16
	switch {
	case src.isDataReg() && dst.isDataReg():
		rm = 0
	case src.isPredec() && dst.isPredec():
		rm = 1
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "ABCD/SBCD requires Dy,Dx or -(Ay),-(Ax)")
	}
	opcode := base | uint16(dst.Reg)<<9 | 1<<8 | rm<<3 | uint16(src.Reg)
	return []uint16{opcode}, nil
}

// encodeNbcd implements NBCD <ea>, a single byte-alterable operand.
func (a *Assembler) encodeNbcd(d *Decoded) ([]uint16, error) {
	if err := checkMode(d.Operands[0], listDataAlterable, d.SourceLine, "NBCD requires a data-alterable addressing mode"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(d.Operands[0], d.Location)
	if err != nil {
		return nil, err
	}
	return prepend(0x4800|ea.bits, ea.ext), nil
}
