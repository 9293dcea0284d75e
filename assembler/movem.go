package assembler

// encodeMovem implements MOVEM: a register-mask extension word following
// the opcode, direction determined by which operand carries the mask.
// Predecrement destinations store the mask in reversed bit order (D0..D7,
// A0..A7 most-significant-first) to match the traversal direction.
func (a *Assembler) encodeMovem(d *Decoded) ([]uint16, error) {
	op0, op1 := d.Operands[0], d.Operands[1]

	var mask uint16
	var ea AddressingMode
	var dirBit uint16

	switch {
	case op0.Kind == MRegisterList:
		mask, ea, dirBit = op0.RegMask, op1, 0
		if ea.isPredec() {
			mask = reverseBits16(mask)
		}
	case op1.Kind == MRegisterList:
		mask, ea, dirBit = op1.RegMask, op0, 1
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEM requires a register list operand")
	}

	modeList := listMovemDst
	if dirBit == 1 {
		modeList = listMovemSrc
	}
	if err := checkMode(ea, modeList, d.SourceLine, "MOVEM addressing mode not legal for this direction"); err != nil {
		return nil, err
	}

	sizeBit := uint16(0)
	if d.Size == SizeL {
		sizeBit = 1
	}

	eaEnc, err := a.encodeEA(ea, d.Location)
	if err != nil {
		return nil, err
	}

	opcode := uint16(0x4880) | dirBit<<10 | sizeBit<<6 | eaEnc.bits
	words := []uint16{opcode, mask}
	words = append(words, eaEnc.ext...)
	return words, nil
}

func reverseBits16(v uint16) uint16 {
	var r uint16
	for i := 0; i < 16; i++ {
		if v&(1<<uint(i)) != 0 {
			r |= 1 << uint(15-i)
		}
	}
	return r
}
