package assembler_test

import "testing"

func TestScccEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"SeqDataReg", "seq d0", "57 C0"},
		{"SlsMemory", "sls (a0)", "53 D0"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestJumpEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"JmpIndirect", "jmp (a0)", "4E D0"},
		{"JsrIndirect", "jsr (a1)", "4E 91"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestJumpRejectsDataRegisterTarget(t *testing.T) {
	asm := assemblerForErrorTests()
	_, err := asm.Assemble("jmp d0", 0x1000)
	if err == nil {
		t.Fatal("expected error: JMP target must be a control addressing mode")
	}
}
