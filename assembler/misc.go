package assembler

// encodeLea implements LEA <ea>,An: 0100 aaa 111 mmmrrr.
func (a *Assembler) encodeLea(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "LEA destination must be an address register")
	}
	if err := checkMode(src, listControl, d.SourceLine, "LEA source must be a control addressing mode"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0x41C0) | uint16(dst.Reg)<<9 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodePea implements PEA <ea>: 0100100001 mmmrrr, control modes only.
func (a *Assembler) encodePea(d *Decoded) ([]uint16, error) {
	src := d.Operands[0]
	if err := checkMode(src, listControl, d.SourceLine, "PEA operand must be a control addressing mode"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	return prepend(0x4840|ea.bits, ea.ext), nil
}

// encodeExg implements EXG: Dx,Dy / Ax,Ay / Dx,Ay, each with its own 5-bit
// operation-mode field.
func (a *Assembler) encodeExg(d *Decoded) ([]uint16, error) {
	x, y := d.Operands[0], d.Operands[1]
	var mode uint16
	switch {
	case x.isDataReg() && y.isDataReg():
		mode = 0b01000
	case x.isAddressReg() && y.isAddressReg():
		mode = 0b01001
	case x.isDataReg() && y.isAddressReg():
		mode = 0b10001
	case x.isAddressReg() && y.isDataReg():
		x, y = y, x
		mode = 0b10001
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "EXG requires a register pair")
	}
	opcode := uint16(0b1100<<12) | uint16(x.Reg)<<9 | 1<<8 | mode<<3 | uint16(y.Reg)
	return []uint16{opcode}, nil
}

// encodeExt implements EXT Dn: byte-to-word or word-to-long sign extension.
func (a *Assembler) encodeExt(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "EXT requires a data register")
	}
	switch d.Size {
	case SizeW:
		return []uint16{0x4880 | uint16(dst.Reg)}, nil
	case SizeL:
		return []uint16{0x48C0 | uint16(dst.Reg)}, nil
	default:
		return nil, errf(UnsupportedSuffix, d.SourceLine, "EXT requires .w or .l")
	}
}

// encodeSwap implements SWAP Dn: 0100100001000 rrr.
func (a *Assembler) encodeSwap(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "SWAP requires a data register")
	}
	return []uint16{0x4840 | uint16(dst.Reg)}, nil
}

// encodeTas implements TAS <ea>: 0100101011 mmmrrr, byte-alterable only.
func (a *Assembler) encodeTas(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if err := checkMode(dst, listDataAlterable, d.SourceLine, "TAS destination must be data-alterable"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(dst, d.Location)
	if err != nil {
		return nil, err
	}
	return prepend(0x4AC0|ea.bits, ea.ext), nil
}
