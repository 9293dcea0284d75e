package assembler_test

import "testing"

func TestMiscFamilyEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"LeaDisplacement", "lea (4,a0),a1", "43 E8 00 04"},
		{"PeaIndirect", "pea (a0)", "48 50"},
		{"ExgDataDataRegisters", "exg d0,d1", "C1 41"},
		{"ExgAddressAddressRegisters", "exg a0,a1", "C1 49"},
		{"ExgDataThenAddress", "exg d0,a1", "C1 89"},
		{"ExgAddressThenDataSwapsOperands", "exg a2,d3", "C7 8A"},
		{"ExtWordFromByte", "ext.w d0", "48 80"},
		{"ExtLongFromWord", "ext.l d1", "48 C1"},
		{"Swap", "swap d2", "48 42"},
		{"TasDataReg", "tas d0", "4A C0"},
		{"TasMemory", "tas (a0)", "4A D0"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLeaRejectsDataRegisterSource(t *testing.T) {
	asm := assemblerForErrorTests()
	if _, err := asm.Assemble("lea d0,a0", 0x1000); err == nil {
		t.Fatal("expected error: LEA source must be a control addressing mode")
	}
}
