package assembler

// encodeBitManip implements BTST/BCHG/BCLR/BSET: a dynamic
// (Dn bit-number) or static (#imm bit-number) form, selecting the 2-bit
// operation code in bits 7:6.
func (a *Assembler) encodeBitManip(d *Decoded) ([]uint16, error) {
	bitOp, dst := d.Operands[0], d.Operands[1]
	op := uint16(d.Inst.BitOp)

	if d.Size == SizeB && dst.isDataReg() {
		return nil, errf(SizeOperandMismatch, d.SourceLine, "byte BTST/BCHG/BCLR/BSET requires a memory destination")
	}
	if d.Size == SizeL && !dst.isDataReg() {
		return nil, errf(SizeOperandMismatch, d.SourceLine, "long BTST/BCHG/BCLR/BSET requires a data-register destination")
	}

	dstList := listDataAddressing
	if !bitOp.isDataReg() {
		dstList = listDataAddressing2
	}
	if err := checkMode(dst, dstList, d.SourceLine, "BTST/BCHG/BCLR/BSET destination is not legal for this addressing mode"); err != nil {
		return nil, err
	}

	dstEA, err := a.encodeEA(dst, d.Location)
	if err != nil {
		return nil, err
	}

	if bitOp.isDataReg() {
		opcode := uint16(0b0000000100000000) | uint16(bitOp.Reg)<<9 | op<<6 | dstEA.bits
		return prepend(opcode, dstEA.ext), nil
	}

	v, verr := bitOp.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if verr != nil {
		return nil, verr
	}
	opcode := uint16(0b0000100000000000) | op<<6 | dstEA.bits
	words := []uint16{opcode, uint16(v) & 0x00FF}
	words = append(words, dstEA.ext...)
	return words, nil
}

// encodeRotation implements ASL/ASR/LSL/LSR/ROL/ROR/ROXL/ROXR: a
// one-operand memory form (word, shift count fixed at 1) when a single
// operand was given, or a two-operand register form (count as #imm or Dn,
// destination a data register) otherwise.
func (a *Assembler) encodeRotation(d *Decoded) ([]uint16, error) {
	dirBit := uint16(0)
	if d.Inst.RotDir == RotLeft {
		dirBit = 1
	}
	kindField := uint16(d.Inst.Rot)

	if d.Operands[1].isEmpty() {
		if d.Size != SizeW && d.Size != SizeUnsized {
			return nil, errf(SizeOperandMismatch, d.SourceLine, "single-operand rotation is word-only")
		}
		if err := checkMode(d.Operands[0], listMemoryAlterable, d.SourceLine, "single-operand rotation requires a memory-alterable addressing mode"); err != nil {
			return nil, err
		}
		ea, err := a.encodeEA(d.Operands[0], d.Location)
		if err != nil {
			return nil, err
		}
		opcode := uint16(0b1110<<12) | dirBit<<8 | 0b11<<6 | kindField<<9 | ea.bits
		return prepend(opcode, ea.ext), nil
	}

	src, dst := d.Operands[0], d.Operands[1]
	if !dst.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "rotation register-form destination must be a data register")
	}
	var countField uint16
	var irBit uint16
	switch {
	case src.Kind == MDataQuick:
		v, err := src.Disp.resolve(a.labels, a.defines, d.SourceLine)
		if err != nil {
			return nil, err
		}
		countField = uint16(v) & 0b111 // 8 encodes as 000
		irBit = 0
	case src.isDataReg():
		countField = uint16(src.Reg)
		irBit = 1
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "rotation count must be #imm or Dn")
	}
	sizeField, err := sizeField2(d.Size, d.SourceLine)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0b1110<<12) | countField<<9 | dirBit<<8 | sizeField<<6 | irBit<<5 | kindField<<3 | uint16(dst.Reg)
	return []uint16{opcode}, nil
}

// sizeField2 is the common 2-bit B/W/L size field (00/01/10) used by
// Rotation, Cmp, and other families whose size encodes directly (as
// opposed to MOVE's byte/word/long=01/11/10 ordering).
func sizeField2(sz Size, line int) (uint16, error) {
	switch sz {
	case SizeB:
		return 0b00, nil
	case SizeW:
		return 0b01, nil
	case SizeL:
		return 0b10, nil
	default:
		return 0, errf(SizeOperandMismatch, line, "size must be .b, .w, or .l")
	}
}
