package assembler_test

import "testing"

func TestMoveCEncodings(t *testing.T) {
	assembleOn1010AndMatchHex(t, "MovecControlToGeneral", "movec sfc,d0", "4E 7A 00 00")
	assembleOn1010AndMatchHex(t, "MovecGeneralToControl", "movec a0,vbr", "4E 7B 80 02")
}

func TestMoveCRequires68010(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("movec sfc,d0", 0x1000); err == nil {
		t.Fatal("expected error: MOVEC requires M68010")
	}
}
