package assembler_test

import "testing"

func TestTrapFamilyEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"TrapVector", "trap #5", "4E 45"},
		{"BkptVector", "bkpt #3", "48 4B"},
		{"StopImmediateStatus", "stop #0x2700", "4E 72 27 00"},
		{"RtdDisplacement", "rtd #4", "4E 74 00 04"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestTrapVectorRangeValidation(t *testing.T) {
	cases := []string{"trap #16", "bkpt #8"}
	for _, src := range cases {
		asm := assemblerForErrorTests()
		if _, err := asm.Assemble(src, 0x1000); err == nil {
			t.Errorf("%q: expected vector-range error, got none", src)
		}
	}
}
