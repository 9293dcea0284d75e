package assembler_test

import "testing"

func TestMovemEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"MovemToPredecrementReversesMask", "movem.l d0/d1/a0,-(a7)", "48 E7 C0 80"},
		{"MovemFromMemoryToRegisters", "movem.w (a0),d2/d3", "4C 90 00 0C"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestMovemRejectsPredecrementAsSource(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("movem.w -(a0),d0/d1", 0x1000); err == nil {
		t.Fatal("expected error: -(An) is not a legal MOVEM source")
	}
}
