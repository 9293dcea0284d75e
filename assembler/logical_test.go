package assembler_test

import (
	"testing"

	"github.com/duskforge/m68kasm/assembler"
)

func TestOrAndEorEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"OrWordEAToDn", "or.w d1,d0", "80 41"},
		{"AndLongDnToMemory", "and.l d2,(a0)", "C5 90"},
		{"EorWordDnToMemory", "eor.w d3,(a2)", "B7 52"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestImmediateFamilyEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"OriByteToDn", "ori.b #0x0F,d0", "00 00 00 0F"},
		{"AndiWordToDn", "andi.w #0x00FF,d1", "02 41 00 FF"},
		{"SubiLongToDn", "subi.l #0x12345678,d2", "04 82 12 34 56 78"},
		{"AddiByteToMemory", "addi.b #5,(a0)", "06 10 00 05"},
		{"EoriWordToDn", "eori.w #0xAAAA,d3", "0A 43 AA AA"},
		{"CmpiLongToDn", "cmpi.l #1,d4", "0C 84 00 00 00 01"},
		{"AndiByteToCCR", "andi.b #0x0F,ccr", "02 3C 00 0F"},
		{"OriWordToSR", "ori.w #0x2000,sr", "00 7C 20 00"},
		{"EoriByteToCCR", "eori.b #0xFF,ccr", "0A 3C 00 FF"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestMisc1FamilyEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"ClrByteDn", "clr.b d0", "42 00"},
		{"NegWordDn", "neg.w d1", "44 41"},
		{"NegxLongDn", "negx.l d2", "40 82"},
		{"NotByteMemory", "not.b (a0)", "46 10"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestAddiCannotTargetCCR(t *testing.T) {
	t.Run("AddiToCCRRejected", func(t *testing.T) {
		asm := assembler.New()
		_, err := asm.Assemble("addi.b #1,ccr", 0x1000)
		if err == nil {
			t.Fatal("expected error, ADDI cannot target CCR")
		}
	})
}

func TestOrAndRejectsAddressRegisterDestination(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("and.w d0,a0", 0x1000); err == nil {
		t.Fatal("expected error: AND memory destination cannot be an address register")
	}
}

func TestOrAndRejectsAddressRegisterSource(t *testing.T) {
	asm := assembler.New()
	if _, err := asm.Assemble("or.w a0,d0", 0x1000); err == nil {
		t.Fatal("expected error: OR source cannot be an address register")
	}
}
