package assembler_test

import "testing"

func TestCompareFamilyEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"CmpWordEAToDn", "cmp.w d0,d1", "B2 40"},
		{"CmpaLong", "cmpa.l a0,a1", "B3 C8"},
		{"CmpmBytePostinc", "cmpm.b (a0)+,(a1)+", "B3 08"},
		{"ChkWord", "chk.w d0,d1", "43 80"},
		{"TstLongDataReg", "tst.l d0", "4A 80"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestTstAddressRegisterRequires68010(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("tst.w a0", 0x1000); err == nil {
		t.Fatal("expected error: TST An requires M68010 on M68000")
	}
	assembleOn1010AndMatchHex(t, "TstAddressRegisterOn68010", "tst.w a0", "4A 48")
}

func TestTstRejectsImmediateOperand(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("tst.w #1", 0x1000); err == nil {
		t.Fatal("expected error: TST does not accept an immediate operand")
	}
}

func TestChkRejectsAddressRegisterSource(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("chk.w a0,d0", 0x1000); err == nil {
		t.Fatal("expected error: CHK source cannot be an address register")
	}
}
