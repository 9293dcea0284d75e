package assembler

// encodeOrAnd implements OR/AND: EA-to-Dn when the destination is a data
// register, or Dn-to-memory when the source is a data register, mirroring
// ADD/SUB's opmode shape.
func (a *Assembler) encodeOrAnd(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	base := uint16(0b1000 << 12)
	if d.Inst.IsAnd {
		base = uint16(0b1100 << 12)
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}

	if dst.isDataReg() {
		if err := checkMode(src, listDataAddressing, d.SourceLine, "OR/AND source cannot be an address register"); err != nil {
			return nil, err
		}
		ea, eerr := a.encodeEA(src, d.Location)
		if eerr != nil {
			return nil, eerr
		}
		opcode := base | uint16(dst.Reg)<<9 | sizeField<<6 | ea.bits
		return prepend(opcode, ea.ext), nil
	}
	if src.isDataReg() {
		if err := checkMode(dst, listMemoryAlterable, d.SourceLine, "OR/AND memory destination must be a data-alterable addressing mode"); err != nil {
			return nil, err
		}
		ea, eerr := a.encodeEA(dst, d.Location)
		if eerr != nil {
			return nil, eerr
		}
		opcode := base | uint16(src.Reg)<<9 | (0b100|sizeField)<<6 | ea.bits
		return prepend(opcode, ea.ext), nil
	}
	return nil, errf(InvalidAddressingMode, d.SourceLine, "OR/AND requires a data register on one side")
}

// encodeEor implements EOR: always Dn-to-memory, destination data-alterable.
func (a *Assembler) encodeEor(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !src.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "EOR source must be a data register")
	}
	if err := checkMode(dst, listDataAlterable, d.SourceLine, "EOR destination must be data-alterable"); err != nil {
		return nil, err
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	ea, eerr := a.encodeEA(dst, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(0b1011<<12) | uint16(src.Reg)<<9 | (0b100|sizeField)<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeImmediates implements ORI/ANDI/SUBI/ADDI/EORI/CMPI: an immediate
// extension word (or two, for .l) followed by the destination EA's own
// extension words.
func (a *Assembler) encodeImmediates(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if src.Kind != MImmediate {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "immediate instruction requires a #imm source")
	}
	v, verr := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if verr != nil {
		return nil, verr
	}
	if dst.Kind == MCCR || dst.Kind == MSR {
		return a.encodeImmediateToStatus(d, dst, v)
	}
	destList := listDataAlterable
	if d.Inst.ImmKind == immCMPI {
		destList = listDataAddressing2
	}
	if err := checkMode(dst, destList, d.SourceLine, "immediate instruction destination is not legal for this addressing mode"); err != nil {
		return nil, err
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	ea, eerr := a.encodeEA(dst, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(d.Inst.ImmKind)<<9 | sizeField<<6 | ea.bits
	words := []uint16{opcode}
	words = append(words, immediateWords(d.Size, v)...)
	words = append(words, ea.ext...)
	return words, nil
}

// encodeMisc1 implements CLR/NEG/NEGX/NOT: a single EA operand sharing the
// 0100 0vv0 ss mmmrrr template, distinguished by a 2-bit family field.
func (a *Assembler) encodeMisc1(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if err := checkMode(dst, listDataAlterable, d.SourceLine, "CLR/NEG/NEGX/NOT destination must be data-alterable"); err != nil {
		return nil, err
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	var vv uint16
	switch d.Inst.Misc1 {
	case Misc1NegX:
		vv = 0b00
	case Misc1Clr:
		vv = 0b01
	case Misc1Neg:
		vv = 0b10
	case Misc1Not:
		vv = 0b11
	}
	ea, eerr := a.encodeEA(dst, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := uint16(0b0100<<12) | vv<<9 | sizeField<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}
