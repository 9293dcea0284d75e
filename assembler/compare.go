package assembler

// encodeCmp implements CMP <ea>,Dn: 1011 ddd 0 ss mmmrrr.
func (a *Assembler) encodeCmp(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "CMP destination must be a data register")
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	ea, eerr := a.encodeEA(src, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(0b1011<<12) | uint16(dst.Reg)<<9 | sizeField<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeCmpa implements CMPA <ea>,An: opmode 011 (word) or 111 (long).
func (a *Assembler) encodeCmpa(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "CMPA destination must be an address register")
	}
	opmode := uint16(0b011)
	if d.Size == SizeL {
		opmode = 0b111
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0b1011<<12) | uint16(dst.Reg)<<9 | opmode<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeCmpm implements CMPM (Ay)+,(Ax)+: 1011 xxx 1 ss 001 yyy.
func (a *Assembler) encodeCmpm(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if src.Kind != MAddressPostincrement || dst.Kind != MAddressPostincrement {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "CMPM requires (Ay)+,(Ax)+")
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0b1011<<12) | uint16(dst.Reg)<<9 | 1<<8 | sizeField<<6 | 0b001<<3 | uint16(src.Reg)
	return []uint16{opcode}, nil
}

// encodeChk implements CHK <ea>,Dn: 0100 ddd 110 mmmrrr, word size only.
func (a *Assembler) encodeChk(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "CHK destination must be a data register")
	}
	if err := checkMode(src, listDataAddressing, d.SourceLine, "CHK source cannot be an address register"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(src, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0x4180) | uint16(dst.Reg)<<9 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeTst implements TST <ea>: 0100 1010 ss mmmrrr. Under M68000, the
// address-register-direct and immediate addressing modes are not valid
// TST destinations; M68010 relaxes this to allow address-register-direct.
func (a *Assembler) encodeTst(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if dst.Kind == MImmediate {
		return nil, errf(CpuTypeModeNotValid, d.SourceLine, "TST does not accept an immediate operand")
	}
	if dst.isAddressReg() && a.cpu == M68000 {
		return nil, errf(CpuTypeModeNotValid, d.SourceLine, "TST An requires M68010")
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	ea, eerr := a.encodeEA(dst, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(0x4A00) | sizeField<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}
