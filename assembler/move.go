package assembler

// moveSizeField maps an OperandSize to MOVE's 2-bit size field: byte=01,
// word=11, long=10.
func moveSizeField(sz Size, line int) (uint16, error) {
	switch sz {
	case SizeB:
		return 0b01, nil
	case SizeW:
		return 0b11, nil
	case SizeL:
		return 0b10, nil
	default:
		return 0, errf(SizeOperandMismatch, line, "move requires an explicit .b/.w/.l size")
	}
}

// encodeMove implements the five-way MOVE dispatch: plain MOVE, MOVE to
// CCR, MOVE to/from SR, and MOVE to/from USP.
func (a *Assembler) encodeMove(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]

	switch {
	case dst.Kind == MCCR:
		if err := checkMode(src, listDataAddressing, d.SourceLine, "MOVE to CCR source cannot be an address register"); err != nil {
			return nil, err
		}
		ea, err := a.encodeEA(src, d.Location)
		if err != nil {
			return nil, err
		}
		return prepend(0b0100010011<<6|ea.bits, ea.ext), nil

	case dst.Kind == MSR:
		if err := checkMode(src, listDataAddressing, d.SourceLine, "MOVE to SR source cannot be an address register"); err != nil {
			return nil, err
		}
		ea, err := a.encodeEA(src, d.Location)
		if err != nil {
			return nil, err
		}
		return prepend(0b0100011011<<6|ea.bits, ea.ext), nil

	case src.Kind == MSR:
		if err := checkMode(dst, listDataAlterable, d.SourceLine, "MOVE from SR destination must be data-alterable"); err != nil {
			return nil, err
		}
		ea, err := a.encodeEA(dst, d.Location)
		if err != nil {
			return nil, err
		}
		return prepend(0b0100000011<<6|ea.bits, ea.ext), nil

	case src.Kind == MUSP:
		if !dst.isAddressReg() {
			return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVE USP requires an address register")
		}
		return []uint16{0x4E68 | uint16(dst.Reg)}, nil

	case dst.Kind == MUSP:
		if !src.isAddressReg() {
			return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVE USP requires an address register")
		}
		return []uint16{0x4E60 | uint16(src.Reg)}, nil
	}

	if err := checkMode(dst, listDataAlterable, d.SourceLine, "MOVE destination must be a data-alterable addressing mode"); err != nil {
		return nil, err
	}

	sizeField, err := moveSizeField(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}

	srcEA, err2 := a.encodeEA(src, d.Location)
	if err2 != nil {
		return nil, err2
	}
	dstEA, err3 := a.encodeEA(dst, d.Location)
	if err3 != nil {
		return nil, err3
	}

	dstMode := (dstEA.bits >> 3) & 0b111
	dstReg := dstEA.bits & 0b111
	opcode := sizeField<<12 | dstReg<<9 | dstMode<<6 | srcEA.bits

	words := []uint16{opcode}
	words = append(words, srcEA.ext...)
	words = append(words, dstEA.ext...)
	return words, nil
}

// encodeMoveA implements MOVEA: 00 ss rrr 001 mmmrrr, size W or L only.
func (a *Assembler) encodeMoveA(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isAddressReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEA destination must be an address register")
	}
	if d.Size == SizeB {
		return nil, errf(UnsupportedSuffix, d.SourceLine, "MOVEA requires .w or .l")
	}
	sizeField, err := moveSizeField(d.Size, d.SourceLine)
	if err != nil {
		return nil, errf(UnsupportedSuffix, d.SourceLine, "MOVEA requires .w or .l")
	}
	ea, eerr := a.encodeEA(src, d.Location)
	if eerr != nil {
		return nil, eerr
	}
	opcode := sizeField<<12 | 0b001<<6 | uint16(dst.Reg)<<9 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeMoveQ implements MOVEQ: 0111 rrr 0 dddddddd, an 8-bit immediate
// zero-extended at assemble time into the full 32-bit register. Size must be L.
func (a *Assembler) encodeMoveQ(d *Decoded) ([]uint16, error) {
	dst := d.Operands[1]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEQ destination must be a data register")
	}
	src := d.Operands[0]
	if src.Kind != MDataQuick {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEQ source must be an immediate")
	}
	v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0b0111<<12) | uint16(dst.Reg)<<9 | (uint16(v) & 0x00FF)
	return []uint16{opcode}, nil
}

// prepend is a small helper building [opcode, ext...].
func prepend(opcode uint16, ext []uint16) []uint16 {
	out := make([]uint16, 0, 1+len(ext))
	out = append(out, opcode)
	out = append(out, ext...)
	return out
}
