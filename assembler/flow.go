package assembler

// encodeBranch implements BRA/BSR/B<cc> (Branch law): an 8-bit
// displacement embedded in the opcode word, or (when an explicit .w suffix
// widens it) a 16-bit displacement in one extension word. The displacement
// is always target − (instrLoc + 2), regardless of whether the target is
// symbolic.
func (a *Assembler) encodeBranch(d *Decoded) ([]uint16, error) {
	v := d.Operands[0]
	disp, err := v.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	rel := int32(disp) - int32(d.Location) - 2

	if d.Size == SizeW {
		opcode := uint16(0b0110<<12) | uint16(d.Inst.Cond)<<8
		return []uint16{opcode, uint16(int16(rel))}, nil
	}
	if rel < -128 || rel > 127 {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "branch displacement %d out of 8-bit range; use .w", rel)
	}
	opcode := uint16(0b0110<<12) | uint16(d.Inst.Cond)<<8 | uint16(uint8(int8(rel)))
	return []uint16{opcode}, nil
}

// encodeDbcc implements DBcc: 0101 cccc 11001 rrr followed by a 16-bit loop
// displacement, always target − (instrLoc + 2).
func (a *Assembler) encodeDbcc(d *Decoded) ([]uint16, error) {
	reg, target := d.Operands[0], d.Operands[1]
	if !reg.isDataReg() {
		return nil, errf(InvalidAddressingMode, d.SourceLine, "DBcc counter must be a data register")
	}
	disp, err := target.Disp.resolve(a.labels, a.defines, d.SourceLine)
	if err != nil {
		return nil, err
	}
	rel := int32(disp) - int32(d.Location) - 2
	opcode := uint16(0b0101<<12) | uint16(d.Inst.Cond)<<8 | 0b11001<<3 | uint16(reg.Reg)
	return []uint16{opcode, uint16(int16(rel))}, nil
}

// encodeScc implements Scc: 0101 cccc 11 mmmrrr, destination byte-alterable.
func (a *Assembler) encodeScc(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if err := checkMode(dst, listDataAlterable, d.SourceLine, "Scc destination must be data-alterable"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(dst, d.Location)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0b0101<<12) | uint16(d.Inst.Cond)<<8 | 0b11<<6 | ea.bits
	return prepend(opcode, ea.ext), nil
}

// encodeJump implements JMP/JSR: 0100 1110 1o mmmrrr (o=1 for JMP), control addressing
// modes only (no size suffix).
func (a *Assembler) encodeJump(d *Decoded) ([]uint16, error) {
	dst := d.Operands[0]
	if err := checkMode(dst, listControl, d.SourceLine, "JMP/JSR target must be a control addressing mode"); err != nil {
		return nil, err
	}
	ea, err := a.encodeEA(dst, d.Location)
	if err != nil {
		return nil, err
	}
	base := uint16(0x4E80)
	if d.Inst.IsJmp {
		base = 0x4EC0
	}
	return prepend(base|ea.bits, ea.ext), nil
}
