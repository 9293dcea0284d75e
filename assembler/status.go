package assembler

// encodeImmediateToStatus implements ANDI/EORI/ORI to CCR or SR: a fixed
// immediate-mode EA (111 100) whose opcode-word size field picks CCR (byte)
// or SR (word); ADDI/SUBI/CMPI cannot target either.
func (a *Assembler) encodeImmediateToStatus(d *Decoded, dst AddressingMode, v uint64) ([]uint16, error) {
	switch d.Inst.ImmKind {
	case immANDI, immEORI, immORI:
	default:
		return nil, errf(InvalidAddressingMode, d.SourceLine, "%s cannot target CCR/SR", d.Inst.Mnemonic)
	}

	var sizeField uint16
	var imm uint16
	if dst.Kind == MCCR {
		if d.Size != SizeB {
			return nil, errf(SizeOperandMismatch, d.SourceLine, "%s to CCR requires .b", d.Inst.Mnemonic)
		}
		sizeField = 0b00
		imm = uint16(v) & 0x00FF
	} else {
		if d.Size != SizeW {
			return nil, errf(SizeOperandMismatch, d.SourceLine, "%s to SR requires .w", d.Inst.Mnemonic)
		}
		sizeField = 0b01
		imm = uint16(v)
	}

	opcode := uint16(d.Inst.ImmKind)<<9 | sizeField<<6 | 0b111100
	return []uint16{opcode, imm}, nil
}
