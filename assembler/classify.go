package assembler

import (
	"regexp"
	"strconv"
	"strings"
)

// Regexes mirror the dispatch style of
// _examples/Urethramancer-m68k/assembler/parse.go's tryParse* chain, adapted
// to this package's Value-carrying addressing-mode variants.
var (
	reDataReg    = regexp.MustCompile(`(?i)^d([0-7])$`)
	reAddrReg    = regexp.MustCompile(`(?i)^a([0-7])$`)
	rePredec     = regexp.MustCompile(`(?i)^-\(a([0-7])\)$`)
	rePostinc    = regexp.MustCompile(`(?i)^\(a([0-7])\)\+$`)
	reAbsShortSx = regexp.MustCompile(`(?i)^(.+)\.w$`)
	reAbsLongSx  = regexp.MustCompile(`(?i)^(.+)\.l$`)
	reIndexSpec  = regexp.MustCompile(`(?i)^(d|a)([0-7])\.(w|l)$`)
)

func needsDataQuick(in Instruction) bool {
	switch in.Kind {
	case IMoveQ, IRotation, IAddSubQ, ITrap, IBkpt:
		return true
	}
	return false
}

// classifyOperand implements the ordered addressing-mode recognition used
// by the tokenizer.
func classifyOperand(text string, in Instruction, size Size, lastLabel string, line int) (AddressingMode, error) {
	s := strings.TrimSpace(text)
	low := strings.ToLower(s)

	// 1. Dn/An, or RegisterList bit for MOVEM.
	if m := reDataReg.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		if in.Kind == IMovem {
			return modeRegisterList(1 << uint(n)), nil
		}
		return modeDataRegister(n), nil
	}
	if m := reAddrReg.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		if in.Kind == IMovem {
			return modeRegisterList(1 << uint(n+8)), nil
		}
		return modeAddressRegister(n), nil
	}

	// 2. Special registers.
	switch low {
	case "ccr":
		return modeCCR(), nil
	case "sr":
		return modeSR(), nil
	case "usp":
		return modeUSP(), nil
	case "sfc":
		return modeControlReg(CtlSFC), nil
	case "dfc":
		return modeControlReg(CtlDFC), nil
	case "vbr":
		return modeControlReg(CtlVBR), nil
	}

	// 3. Immediate.
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		v := newValue(strings.TrimSpace(rest), lastLabel)
		if needsDataQuick(in) {
			return modeDataQuick(v), nil
		}
		if in.Kind == IRtd {
			return modeImmediate(SizeW, v), nil
		}
		return modeImmediate(size, v), nil
	}

	// 4. -(An)
	if m := rePredec.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return modeAddressPredec(n), nil
	}

	// 5. (An)+
	if m := rePostinc.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return modeAddressPostinc(n), nil
	}

	// 6. Parenthesized forms with 0/1/2 top-level commas.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return classifyParenthesized(s, lastLabel, line)
	}

	// 7. Trailing .w / .l -> absolute.
	if m := reAbsShortSx.FindStringSubmatch(s); m != nil && !looksLikeIndexSpec(s) {
		return modeAbsoluteShort(newValue(m[1], lastLabel)), nil
	}
	if m := reAbsLongSx.FindStringSubmatch(s); m != nil && !looksLikeIndexSpec(s) {
		return modeAbsoluteLong(newValue(m[1], lastLabel)), nil
	}

	// 8. Family-specific defaults.
	switch in.Kind {
	case IMovem:
		mask, err := parseRegisterList(s, line)
		if err != nil {
			return AddressingMode{}, err
		}
		return modeRegisterList(mask), nil
	case IBranch, IDbcc:
		return modeBranchDisplacement(size, newValue(s, lastLabel)), nil
	default:
		return modeAbsoluteLong(newValue(s, lastLabel)), nil
	}
}

// looksLikeIndexSpec reports whether s is a bare "Dn.w"/"An.l" token, which
// must never be mistaken for a trailing-suffix absolute address.
func looksLikeIndexSpec(s string) bool {
	return reIndexSpec.MatchString(s)
}

// splitTopLevelCommas splits s on commas that are not nested inside
// parentheses, mirroring splitOperands in
// _examples/Urethramancer-m68k/assembler/assembler.go.
func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[last:]))
	return out
}

// classifyParenthesized handles a parenthesized addressing-mode expression
// with one, two, or three top-level comma-separated parts.
func classifyParenthesized(s string, lastLabel string, line int) (AddressingMode, error) {
	inner := s[1 : len(s)-1]
	parts := splitTopLevelCommas(inner)

	switch len(parts) {
	case 1:
		// (An)
		if m := reAddrReg.FindStringSubmatch(strings.TrimSpace(parts[0])); m != nil {
			n, _ := strconv.Atoi(m[1])
			return modeAddress(n), nil
		}
		return AddressingMode{}, errf(InvalidRegister, line, "%s", s)

	case 2:
		disp := newValue(strings.TrimSpace(parts[0]), lastLabel)
		right := strings.TrimSpace(parts[1])
		if strings.EqualFold(right, "pc") {
			return modePCDisplacement(disp), nil
		}
		if m := reAddrReg.FindStringSubmatch(right); m != nil {
			n, _ := strconv.Atoi(m[1])
			return modeAddressDisplacement(disp, n), nil
		}
		return AddressingMode{}, errf(InvalidRegister, line, "%s", right)

	case 3:
		disp := newValue(strings.TrimSpace(parts[0]), lastLabel)
		mid := strings.TrimSpace(parts[1])
		idx := strings.TrimSpace(parts[2])

		m := reIndexSpec.FindStringSubmatch(idx)
		if m == nil {
			return AddressingMode{}, errf(IndexRegisterInvalidSize, line, "%s", idx)
		}
		ik := IndexD
		if strings.EqualFold(m[1], "a") {
			ik = IndexA
		}
		reg, _ := strconv.Atoi(m[2])
		isz := SizeW
		if strings.EqualFold(m[3], "l") {
			isz = SizeL
		}

		if strings.EqualFold(mid, "pc") {
			return modePCIndex(disp, reg, ik, isz), nil
		}
		if am := reAddrReg.FindStringSubmatch(mid); am != nil {
			base, _ := strconv.Atoi(am[1])
			return modeAddressIndex(disp, base, reg, ik, isz), nil
		}
		return AddressingMode{}, errf(InvalidRegister, line, "%s", mid)

	default:
		return AddressingMode{}, errf(TooManyOperands, line, "%s", s)
	}
}
