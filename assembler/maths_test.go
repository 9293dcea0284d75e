package assembler_test

import (
	"testing"

	"github.com/duskforge/m68kasm/assembler"
)

func TestAddSubEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"AddWordEAToDn", "add.w d1,d0", "D0 41"},
		{"SubLongEAToDn", "sub.l d2,d3", "96 82"},
		{"AddByteDnToMemory", "add.b d0,(a1)", "D1 11"},
		{"AddaWord", "adda.w d0,a0", "D0 C0"},
		{"SubaLong", "suba.l a1,a2", "95 C9"},
		{"AddqWord", "addq.w #1,d0", "52 40"},
		{"SubqLongEight", "subq.l #8,a3", "51 8B"},
		{"AddxWordDnDn", "addx.w d1,d2", "D5 41"},
		{"SubxLongPredec", "subx.l -(a0),-(a1)", "93 88"},
		{"Mulu", "mulu.w d1,d0", "C0 C1"},
		{"Divs", "divs.w d2,d3", "87 C2"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestAddSubRejectsAddressRegisterMemoryDestination(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("add.w d0,a0", 0x1000); err == nil {
		t.Fatal("expected error: ADD memory destination cannot be an address register")
	}
}

func TestAddqSubqRejectsImmediateDestination(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("addq.w #1,#5", 0x1000); err == nil {
		t.Fatal("expected error: ADDQ destination cannot be an immediate")
	}
}

func TestMulDivErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind assembler.ErrorKind
	}{
		{"LongSizeUnsupported", "muls.l d0,d1", assembler.UnsupportedSuffix},
		{"AddressRegisterSourceRejected", "mulu.w a0,d0", assembler.InvalidAddressingMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			asm := assembler.New()
			_, err := asm.Assemble(tc.src, 0x1000)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			aerr, ok := err.(*assembler.Error)
			if !ok {
				t.Fatalf("expected *assembler.Error, got %T: %v", err, err)
			}
			if aerr.Kind != tc.kind {
				t.Errorf("expected kind %v, got %v (%v)", tc.kind, aerr.Kind, aerr)
			}
		})
	}
}
