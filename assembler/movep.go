package assembler

// encodeMovep implements MOVEP: Dn,(d16,An) (register to memory) or
// (d16,An),Dn (memory to register); the displacement is an extension word.
func (a *Assembler) encodeMovep(d *Decoded) ([]uint16, error) {
	src, dst := d.Operands[0], d.Operands[1]

	var dreg, areg AddressingMode
	var dirBit uint16
	switch {
	case src.isDataReg() && dst.Kind == MAddressDisplacement:
		dreg, areg, dirBit = src, dst, 1
	case src.Kind == MAddressDisplacement && dst.isDataReg():
		dreg, areg, dirBit = dst, src, 0
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEP requires Dn,(d16,An) or (d16,An),Dn")
	}

	sizeBit := uint16(0)
	if d.Size == SizeL {
		sizeBit = 1
	}

	disp, err := areg.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}

	opcode := uint16(dreg.Reg)<<9 | (0b100|sizeBit<<1|dirBit)<<6 | 0b001<<3 | uint16(areg.Reg)
	return []uint16{opcode, uint16(disp)}, nil
}
