package assembler

import "fmt"

// genericExtBytes is the extension-byte table, applied per addressing mode
// in isolation.
func genericExtBytes(m AddressingMode) uint32 {
	switch m.Kind {
	case MAddressDisplacement, MAddressIndex, MPCDisplacement, MPCIndex,
		MAbsoluteShort, MRegisterList:
		return 2
	case MAbsoluteLong:
		return 4
	case MImmediate:
		if m.Sz == SizeL {
			return 4
		}
		return 2
	case MBranchDisplacement:
		if m.Sz == SizeW {
			return 2
		}
		return 0
	default:
		return 0
	}
}

// extBytesFor applies the per-family exceptions to genericExtBytes:
// BitManip's immediate bit-number is always one word, and Dbcc's loop
// displacement is always one word, regardless of the declared size.
func extBytesFor(d *Decoded, m AddressingMode) uint32 {
	if d.Inst.Kind == IBitManip && m.Kind == MImmediate {
		return 2
	}
	if d.Inst.Kind == IDbcc && m.Kind == MBranchDisplacement {
		return 2
	}
	return genericExtBytes(m)
}

// instructionLength computes the byte length of a Decoded instruction
// without resolving any symbolic value: 2 bytes for the
// opcode word plus each operand's extension contribution.
func instructionLength(d *Decoded) (uint32, error) {
	return 2 + extBytesFor(d, d.Operands[0]) + extBytesFor(d, d.Operands[1]), nil
}

// eaField is the computed 6-bit EA (mode<<3|reg) plus its extension words.
type eaField struct {
	bits uint16
	ext  []uint16
}

// resolveDisplacement resolves v and converts label-valued displacements
// used by PC-relative, address-displacement, address-index and PC-index
// operands into a PC-relative offset by subtracting (loc+2), where loc is
// the location of the instruction's opcode word. The base is loc+2 for
// every operand, including one whose own extension word comes later in
// the instruction. Purely numeric values are used literally.
func (a *Assembler) resolveDisplacement(v Value, loc uint32) (uint64, error) {
	resolved, err := v.resolve(a.labels, a.defines, a.line)
	if err != nil {
		return 0, err
	}
	if valueIsSymbolic(v) {
		return uint64(int64(resolved) - int64(loc) - 2), nil
	}
	return resolved, nil
}

// valueIsSymbolic reports whether v's resolution depends on any label —
// bare numeric literals are never treated as PC-relative.
func valueIsSymbolic(v Value) bool {
	switch v.kind {
	case KindLabel:
		return true
	case KindExpression:
		for _, a := range v.atoms {
			if a.kind == KindLabel {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// encodeEA computes the 6-bit EA field and extension words for an operand.
// extAt is passed to resolveDisplacement for PC-relative adjustment; every
// caller passes the instruction's own location (d.Location).
func (a *Assembler) encodeEA(m AddressingMode, extAt uint32) (eaField, error) {
	switch m.Kind {
	case MDataRegister:
		return eaField{bits: uint16(0b000<<3) | uint16(m.Reg)}, nil
	case MAddressRegister:
		return eaField{bits: uint16(0b001<<3) | uint16(m.Reg)}, nil
	case MAddress:
		return eaField{bits: uint16(0b010<<3) | uint16(m.Reg)}, nil
	case MAddressPostincrement:
		return eaField{bits: uint16(0b011<<3) | uint16(m.Reg)}, nil
	case MAddressPredecrement:
		return eaField{bits: uint16(0b100<<3) | uint16(m.Reg)}, nil

	case MAddressDisplacement:
		disp, err := a.resolveDisplacement(m.Disp, extAt)
		if err != nil {
			return eaField{}, err
		}
		return eaField{bits: uint16(0b101<<3) | uint16(m.Reg), ext: []uint16{uint16(disp)}}, nil

	case MAddressIndex:
		disp, err := a.resolveDisplacement(m.Disp, extAt)
		if err != nil {
			return eaField{}, err
		}
		word := briefExtensionWord(m.IndexK, m.IndexReg, m.IndexSz, int8(disp))
		return eaField{bits: uint16(0b110<<3) | uint16(m.Reg), ext: []uint16{word}}, nil

	case MPCDisplacement:
		disp, err := a.resolveDisplacement(m.Disp, extAt)
		if err != nil {
			return eaField{}, err
		}
		return eaField{bits: uint16(0b111<<3) | 0b010, ext: []uint16{uint16(disp)}}, nil

	case MPCIndex:
		disp, err := a.resolveDisplacement(m.Disp, extAt)
		if err != nil {
			return eaField{}, err
		}
		word := briefExtensionWord(m.IndexK, m.IndexReg, m.IndexSz, int8(disp))
		return eaField{bits: uint16(0b111<<3) | 0b011, ext: []uint16{word}}, nil

	case MAbsoluteShort:
		v, err := m.Disp.resolve(a.labels, a.defines, a.line)
		if err != nil {
			return eaField{}, err
		}
		return eaField{bits: uint16(0b111<<3) | 0b000, ext: []uint16{uint16(v)}}, nil

	case MAbsoluteLong:
		v, err := m.Disp.resolve(a.labels, a.defines, a.line)
		if err != nil {
			return eaField{}, err
		}
		return eaField{bits: uint16(0b111<<3) | 0b001, ext: []uint16{uint16(v >> 16), uint16(v)}}, nil

	case MImmediate:
		v, err := m.Disp.resolve(a.labels, a.defines, a.line)
		if err != nil {
			return eaField{}, err
		}
		ext := immediateWords(m.Sz, v)
		return eaField{bits: uint16(0b111<<3) | 0b100, ext: ext}, nil

	case MEmpty:
		return eaField{bits: uint16(0b111<<3) | 0b111}, nil

	default:
		return eaField{}, fmt.Errorf("mode %v has no generic EA encoding", m.Kind)
	}
}

// briefExtensionWord builds the index-mode extension word: bit15 index kind, bits14:12 index
// register, bit11 index size, bits7:0 signed 8-bit displacement.
func briefExtensionWord(ik IndexKind, reg int, sz Size, disp8 int8) uint16 {
	var word uint16
	if ik == IndexA {
		word |= 1 << 15
	}
	word |= uint16(reg) << 12
	if sz == SizeL {
		word |= 1 << 11
	}
	word |= uint16(uint8(disp8))
	return word
}

// immediateWords splits a resolved immediate value into its 1 or 2
// extension words per size.
func immediateWords(sz Size, v uint64) []uint16 {
	switch sz {
	case SizeL:
		return []uint16{uint16(v >> 16), uint16(v)}
	case SizeB:
		return []uint16{uint16(v) & 0x00FF}
	default: // W or Unsized (e.g. STOP's bare #imm)
		return []uint16{uint16(v)}
	}
}

// checkMode reports InvalidAddressingMode when m does not belong to list,
// the named mode-list mask for the operand's role in its instruction family.
func checkMode(m AddressingMode, list uint32, line int, context string) error {
	if !m.in(list) {
		return errf(InvalidAddressingMode, line, "%s", context)
	}
	return nil
}

// secondPass walks the decoded list, resolves operands, and appends the
// encoded words to the output.
func (a *Assembler) secondPass() error {
	for _, d := range a.decoded {
		a.line = d.SourceLine
		var words []uint16
		var err error
		if d.IsData {
			words, err = a.encodeData(d)
		} else {
			words, err = a.encodeInstruction(d)
		}
		if err != nil {
			return err
		}
		a.output = append(a.output, words...)
	}
	return nil
}

// encodeInstruction dispatches to the per-family encoder.
func (a *Assembler) encodeInstruction(d *Decoded) ([]uint16, error) {
	if err := a.checkSize(d); err != nil {
		return nil, err
	}

	switch d.Inst.Kind {
	case IAddSub:
		return a.encodeAddSub(d)
	case IAddSubA:
		return a.encodeAddSubA(d)
	case IAddSubQ:
		return a.encodeAddSubQ(d)
	case IAddSubX:
		return a.encodeAddSubX(d)
	case IBcd:
		return a.encodeBcd(d)
	case INbcd:
		return a.encodeNbcd(d)
	case IBitManip:
		return a.encodeBitManip(d)
	case IBranch:
		return a.encodeBranch(d)
	case IDbcc:
		return a.encodeDbcc(d)
	case IScc:
		return a.encodeScc(d)
	case IImmediates:
		return a.encodeImmediates(d)
	case IMisc1:
		return a.encodeMisc1(d)
	case IJump:
		return a.encodeJump(d)
	case IMove:
		return a.encodeMove(d)
	case IMoveA:
		return a.encodeMoveA(d)
	case IMoveQ:
		return a.encodeMoveQ(d)
	case IMovem:
		return a.encodeMovem(d)
	case IMovep:
		return a.encodeMovep(d)
	case IMoveC:
		return a.encodeMoveC(d)
	case IOrAnd:
		return a.encodeOrAnd(d)
	case IEor:
		return a.encodeEor(d)
	case IRotation:
		return a.encodeRotation(d)
	case IMulDiv:
		return a.encodeMulDiv(d)
	case INoOperands:
		return []uint16{d.Inst.Word}, nil
	case ILea:
		return a.encodeLea(d)
	case IPea:
		return a.encodePea(d)
	case IChk:
		return a.encodeChk(d)
	case IExg:
		return a.encodeExg(d)
	case ITst:
		return a.encodeTst(d)
	case IExt:
		return a.encodeExt(d)
	case ISwap:
		return a.encodeSwap(d)
	case IUnlk:
		return a.encodeUnlk(d)
	case ILink:
		return a.encodeLink(d)
	case ITrap:
		return a.encodeTrap(d)
	case IBkpt:
		return a.encodeBkpt(d)
	case ITas:
		return a.encodeTas(d)
	case IStop:
		return a.encodeStop(d)
	case ICmp:
		return a.encodeCmp(d)
	case ICmpa:
		return a.encodeCmpa(d)
	case ICmpm:
		return a.encodeCmpm(d)
	case IRtd:
		return a.encodeRtd(d)
	default:
		return nil, errf(UnsupportedInstruction, d.SourceLine, "%s", d.Inst.Mnemonic)
	}
}

// checkSize validates the instruction's declared size against its family's
// legal-size mask, except for families whose
// per-family encoder performs a more specific check (e.g. Move's per-case
// dispatch).
func (a *Assembler) checkSize(d *Decoded) error {
	mask, ok := validSizeMask(d.Inst.Kind)
	if !ok {
		return nil
	}
	if !d.Size.legal(mask) {
		return errf(UnsupportedSuffix, d.SourceLine, "%s does not support this size", d.Inst.Mnemonic)
	}
	return nil
}

// validSizeMask returns the legal-size mask for instruction families whose
// size legality does not depend on their operands.
func validSizeMask(k InstKind) (Size, bool) {
	switch k {
	case IAddSub, IImmediates, IOrAnd, IEor, IMisc1, ICmp, ICmpm:
		return sizesBWL, true
	case IAddSubA, ICmpa, IMovem, IMovep:
		return sizesWL, true
	case IMulDiv:
		return sizesW, true
	case IAddSubQ:
		return sizesBWL, true
	case IAddSubX:
		return sizesBWL, true
	case IBcd:
		return sizesBWL | sizesU, true
	case IRotation:
		return sizesBWL | sizesU, true
	case IMoveQ:
		return sizesL | sizesU, true
	case IChk:
		return sizesW, true
	case IExt:
		return sizesWL, true
	case ITas, INbcd:
		return sizesB | sizesU, true
	case IBitManip:
		return sizesBL, true
	case ITst:
		return sizesBWL, true
	case IBranch, IDbcc, IScc:
		return sizesBWU, true
	default:
		return 0, false
	}
}

const sizesBWU = sizesB | sizesW | sizesU
