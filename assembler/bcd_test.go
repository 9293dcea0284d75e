package assembler_test

import (
	"testing"

	"github.com/duskforge/m68kasm/assembler"
)

func TestBcdEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"AbcdDnDn", "abcd d1,d0", "C1 01"},
		{"SbcdPredec", "sbcd -(a2),-(a3)", "87 0A"},
		{"NbcdDataReg", "nbcd d2", "48 02"},
		{"NbcdMemory", "nbcd (a0)", "48 10"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestNbcdRejectsAddressRegister(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("nbcd a0", 0x1000); err == nil {
		t.Fatal("expected error: NBCD operand cannot be an address register")
	}
}

func TestNbcdRejectsImmediate(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("nbcd #5", 0x1000); err == nil {
		t.Fatal("expected error: NBCD operand cannot be an immediate")
	}
}
