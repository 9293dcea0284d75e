package assembler

// ctlSelector maps a ControlRegKind to the MOVEC selector field: SFC=0,
// DFC=1, VBR=2.
func ctlSelector(k ControlRegKind) uint16 {
	switch k {
	case CtlSFC:
		return 0
	case CtlDFC:
		return 1
	case CtlVBR:
		return 2
	}
	return 0
}

// encodeMoveC implements the supplemented MOVEC Rc,Rn / MOVEC Rn,Rc
// (M68010 only): opcode 0x4E7A (control to general) or 0x4E7B (general to
// control), one extension word with the general register in bits 15:12 and
// the control-register selector in bits 11:0.
func (a *Assembler) encodeMoveC(d *Decoded) ([]uint16, error) {
	if a.cpu != M68010 {
		return nil, errf(UnsupportedInstruction, d.SourceLine, "MOVEC requires M68010")
	}
	src, dst := d.Operands[0], d.Operands[1]

	switch {
	case src.Kind == MControlReg:
		reg, err := generalRegFieldOf(dst, d.SourceLine)
		if err != nil {
			return nil, err
		}
		ext := reg<<12 | ctlSelector(src.Ctl)
		return []uint16{0x4E7A, ext}, nil

	case dst.Kind == MControlReg:
		reg, err := generalRegFieldOf(src, d.SourceLine)
		if err != nil {
			return nil, err
		}
		ext := reg<<12 | ctlSelector(dst.Ctl)
		return []uint16{0x4E7B, ext}, nil

	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "MOVEC requires one control-register operand")
	}
}

func generalRegFieldOf(m AddressingMode, line int) (uint16, error) {
	switch {
	case m.isDataReg():
		return uint16(m.Reg), nil
	case m.isAddressReg():
		return 0b1000 | uint16(m.Reg), nil
	default:
		return 0, errf(InvalidAddressingMode, line, "MOVEC's other operand must be a data or address register")
	}
}
