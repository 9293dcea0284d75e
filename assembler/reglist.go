package assembler

import (
	"regexp"
	"strconv"
	"strings"
)

var reRegListItem = regexp.MustCompile(`(?i)^(d|a)([0-7])(?:-(d|a)([0-7]))?$`)

// parseRegisterList parses a MOVEM register list: sections separated by
// '/', each a single register or an inclusive range of the same family. Bit n
// is set for Dn, bit n+8 for An; a range always runs from the numerically
// smaller endpoint to the larger one, regardless of how it was written.
func parseRegisterList(text string, line int) (uint16, error) {
	var mask uint16
	for _, section := range strings.Split(text, "/") {
		section = strings.TrimSpace(section)
		m := reRegListItem.FindStringSubmatch(section)
		if m == nil {
			return 0, errf(InvalidRegister, line, "%s", section)
		}
		fam1, n1 := m[1], atoi(m[2])
		if m[3] == "" {
			mask |= regListBit(fam1, n1)
			continue
		}
		fam2, n2 := m[3], atoi(m[4])
		if !strings.EqualFold(fam1, fam2) {
			return 0, errf(InvalidRegister, line, "mixed register families in range: %s", section)
		}
		lo, hi := n1, n2
		if lo > hi {
			lo, hi = hi, lo
		}
		for n := lo; n <= hi; n++ {
			mask |= regListBit(fam1, n)
		}
	}
	return mask, nil
}

func regListBit(family string, n int) uint16 {
	if strings.EqualFold(family, "a") {
		return 1 << uint(n+8)
	}
	return 1 << uint(n)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
