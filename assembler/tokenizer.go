package assembler

import (
	"strings"
)

var dataDirectiveWidths = map[string]int{
	"d08": 1, "d16": 2, "d24": 3, "d32": 4, "d64": 8,
}

// firstPass splits source into lines, recognizes
// labels/defines/data directives/instructions, and builds the ordered
// Decoded list plus the label/define tables. It stops at the first error.
func (a *Assembler) firstPass(src string) error {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	for i, raw := range lines {
		a.line = i + 1

		line := raw
		if idx := strings.IndexByte(line, ';'); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		head, rest := splitHeadRest(line)
		if head == "" {
			continue
		}

		lowHead := strings.ToLower(head)

		if width, ok := dataDirectiveWidths[lowHead]; ok {
			if err := a.decodeDataDirective(width, rest); err != nil {
				return err
			}
			continue
		}

		if strings.HasSuffix(head, ":") {
			if err := a.decodeLabel(strings.TrimSuffix(head, ":")); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(head, "!") {
			if err := a.decodeDefine(head, rest); err != nil {
				return err
			}
			continue
		}

		if err := a.decodeInstruction(head, rest); err != nil {
			return err
		}
	}
	return nil
}

// splitHeadRest splits a trimmed, comment-stripped line once on whitespace.
func splitHeadRest(line string) (head, rest string) {
	idx := strings.IndexAny(line, " \t")
	if idx == -1 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

func (a *Assembler) decodeLabel(name string) error {
	var full string
	if strings.HasPrefix(name, ".") {
		full = a.lastLabel + name
	} else {
		full = name
		a.lastLabel = name
	}
	if _, exists := a.labels[full]; exists {
		return err2(LabelRedefinition, a.line, full)
	}
	a.labels[full] = a.location
	a.log.Debugf("label %s = %#x", full, a.location)
	return nil
}

func (a *Assembler) decodeDefine(head, rest string) error {
	name := strings.TrimPrefix(head, "!")
	rest = strings.TrimSpace(rest)
	expr, ok := strings.CutPrefix(rest, "=")
	if !ok {
		return errf(InvalidNumber, a.line, "define %s missing '='", name)
	}
	v := newValue(strings.TrimSpace(expr), a.lastLabel)
	val, resolveErr := v.resolve(a.labels, a.defines, a.line)
	if resolveErr != nil {
		return resolveErr
	}
	a.defines[name] = val
	return nil
}

func (a *Assembler) decodeDataDirective(width int, rest string) error {
	fields := splitTopLevelCommas(rest)
	var values []Value
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		values = append(values, newValue(f, a.lastLabel))
	}
	if len(values) == 0 {
		return errf(InvalidNumber, a.line, "data directive has no values")
	}

	byteLen := len(values) * width
	if byteLen%2 != 0 {
		byteLen++
	}

	a.decoded = append(a.decoded, &Decoded{
		IsData:     true,
		DataWidth:  width,
		DataValues: values,
		SourceLine: a.line,
		Location:   a.location,
	})
	a.location += uint32(byteLen)
	return nil
}

func (a *Assembler) decodeInstruction(head, rest string) error {
	mnemonicPart, sizeSuffix, hasSuffix := strings.Cut(head, ".")
	size := SizeUnsized
	if hasSuffix {
		s, ok := parseSizeSuffix(strings.ToLower(sizeSuffix))
		if !ok {
			return err2(InvalidSuffix, a.line, sizeSuffix)
		}
		size = s
	}

	inst, ok := lookupInstruction(mnemonicPart)
	if !ok {
		return err2(InvalidOp, a.line, mnemonicPart)
	}

	operandStrs, err := splitOperandsRespectingParens(rest, a.line)
	if err != nil {
		return err
	}

	var operands [2]AddressingMode
	operands[0] = modeEmpty()
	operands[1] = modeEmpty()
	for i, s := range operandStrs {
		mode, cerr := classifyOperand(s, inst, size, a.lastLabel, a.line)
		if cerr != nil {
			return cerr
		}
		if mode.isAddressReg() && size == SizeB {
			return err2(AnB, a.line, s)
		}
		operands[i] = mode
	}

	d := &Decoded{
		Inst:       inst,
		Size:       size,
		Operands:   operands,
		SourceLine: a.line,
		Location:   a.location,
	}
	length, err := instructionLength(d)
	if err != nil {
		return err
	}
	a.decoded = append(a.decoded, d)
	a.location += length
	return nil
}

// splitOperandsRespectingParens implements operand split:
// the first top-level comma (outside any parenthesized group) divides the
// operand list; more than one split point is TooManyOperands; unbalanced
// parens are a fatal parse error.
func splitOperandsRespectingParens(rest string, line int) ([]string, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, nil
	}

	depth := 0
	splitAt := -1
	for i, r := range rest {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errf(InvalidAddressingMode, line, "unbalanced parentheses in %q", rest)
			}
		case ',':
			if depth == 0 {
				if splitAt != -1 {
					return nil, err2(TooManyOperands, line, rest)
				}
				splitAt = i
			}
		}
	}
	if depth != 0 {
		return nil, errf(InvalidAddressingMode, line, "unbalanced parentheses in %q", rest)
	}

	if splitAt == -1 {
		return []string{strings.TrimSpace(rest)}, nil
	}
	return []string{
		strings.TrimSpace(rest[:splitAt]),
		strings.TrimSpace(rest[splitAt+1:]),
	}, nil
}

// err2 is a convenience wrapper for the common "kind + offending token" shape.
func err2(kind ErrorKind, line int, token string) *Error {
	return errf(kind, line, "%s", token)
}
