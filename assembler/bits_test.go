package assembler_test

import (
	"testing"

	"github.com/duskforge/m68kasm/assembler"
)

func TestBitManipEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"BtstDynamicLongToDn", "btst.l d2,d0", "05 00"},
		{"BchgDynamicByteToMemory", "bchg.b d1,(a0)", "03 50"},
		{"BtstStaticImmediate", "btst.l #2,d0", "08 00 00 02"},
		{"BclrStaticLongToDn", "bclr.l #4,d3", "08 83 00 04"},
		{"BsetStaticByteToMemory", "bset.b #7,(a1)", "08 D1 00 07"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestBitManipRejectsAddressRegisterDestination(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("bchg.b d1,a0", 0x1000); err == nil {
		t.Fatal("expected error: BCHG destination cannot be an address register")
	}
}

func TestRotationEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"AslMemorySingleOperand", "asl (a0)", "E1 D0"},
		{"LsrMemorySingleOperand", "lsr (a1)", "E2 D1"},
		{"RolQuickCount", "rol.b #3,d0", "E7 10"},
		{"RorRegisterCount", "ror.w d1,d2", "E2 72"},
		{"RoxlEightWrapsToZero", "roxl.l #8,d3", "E1 9B"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestRotationMemoryFormRejectsAddressRegister(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("asl a0", 0x1000); err == nil {
		t.Fatal("expected error: single-operand ASL cannot target an address register")
	}
}
