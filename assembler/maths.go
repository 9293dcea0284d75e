package assembler

// encodeAddSub implements ADD/SUB: EA-to-Dn when the
// destination is a data register, or Dn-to-memory when the source is a
// data register and the destination is a data-alterable memory operand.
func (a *Assembler) encodeAddSub(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	base := uint16(0b1101 << 12)
	if d.Inst.IsSub {
		base = uint16(0b1001 << 12)
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}

	if dst.isDataReg() {
		ea, eerr := a.encodeEA(src, d.Location)
		if eerr != nil {
			return nil, eerr
		}
		opcode := base | uint16(dst.Reg)<<9 | sizeField<<6 | ea.bits
		return prepend(opcode, ea.ext), nil
	}

	if src.isDataReg() {
		if err := checkMode(dst, listMemoryAlterable, d.SourceLine, "ADD/SUB memory destination must be a data-alterable addressing mode"); err != nil {
			return nil, err
		}
		ea, eerr := a.encodeEA(dst, d.Location)
		if eerr != nil {
			return nil, eerr
		}
		opcode := base | uint16(src.Reg)<<9 | (0b100|sizeField)<<6 | ea.bits
		return prepend(opcode, ea.ext), nil
	}

	return nil, errf(InvalidAddressingMode, d.SourceLine, "ADD/SUB requires a data register on one side")
}

// encodeAddSubA implements ADDA/SUBA: opmode 011 (word) or 111 (long),
// destination always an address register.
func (a *Assembler) encodeAddSubA(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "ADDA/SUBA destination must be an address register")
	}
	base := uint16(0b1101 << 12)
	if d.Inst.IsSub {
		base = uint16(0b1001 << 12)
	}
	opmode := uint16(0b011)
	if d.Size == SizeL {
		opmode = 0b111
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := base | uint16(dst.Reg)<<9 | opmode<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeAddSubQ implements ADDQ/SUBQ: 0101 ddd s ss mmmrrr, data 1..8 with
// 8 encoded as 0.
func (a *Assembler) encodeAddSubQ(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if src.Kind != MDataQuick {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "ADDQ/SUBQ source must be an immediate")
	}
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	data := v & 0b111 // 8 wraps to 0
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	subBit := uint16(0)
	if d.Inst.IsSub {
		subBit = 1
	}
	if err := checkMode(dst, listAlterable, d.SourceLine, "ADDQ/SUBQ destination must be an alterable addressing mode"); err != nil {
		return nil, err
	}
	ea, eerr := a.encodeEA(dst, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(0b0101<<12) | uint16(data)<<9 | subBit<<8 | sizeField<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeAddSubX implements ADDX/SUBX: Dn,Dn or -(An),-(An) only.
func (a *Assembler) encodeAddSubX(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	base := uint16(0b1101 << 12)
	if d.Inst.IsSub {
		base = uint16(0b1001 << 12)
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}

	var rm uint16
	switch {
	case src.isDataReg() && dst.isDataReg():
		rm = 0
	case src.isPredec() && dst.isPredec():
		rm = 1
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "ADDX/SUBX requires Dn,Dn or -(An),-(An)")
	}
	opcode := base | uint16(dst.Reg)<<9 | 1<<8 | sizeField<<6 | rm<<3 | uint16(src.Reg)
	return []uint16{opcode}, nil
}

// encodeMulDiv implements MULU/MULS/DIVU/DIVS: word-only EA source, Dn dest.
func (a *Assembler) encodeMulDiv(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MULU/MULS/DIVU/DIVS destination must be a data register")
	}
	base := uint16(0b1100 << 12)
	if d.Inst.IsDiv {
		base = uint16(0b1000 << 12)
	}
	opmode := uint16(0b011)
	if d.Inst.Signed {
		opmode = 0b111
	}
	if err := checkMode(src, listDataAlterable, d.SourceLine, "MULU/MULS/DIVU/DIVS source must be a data-alterable addressing mode"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := base | uint16(dst.Reg)<<9 | opmode<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}
