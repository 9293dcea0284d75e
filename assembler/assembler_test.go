package assembler_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/duskforge/m68kasm/assembler"
)

// assembleAndMatchHex assembles src at base 0x1000 and checks the output
// against an expected byte sequence given as a hex string (whitespace
// ignored).
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New()
	code, err := asm.Assemble(src, 0x1000)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if len(code) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(code), expected, code)
	}
	for i := range code {
		if code[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, code)
			break
		}
	}
}

// assemblerForErrorTests builds a default M68000 Assembler for tests that
// only care about a failure, not the resulting bytes.
func assemblerForErrorTests() *assembler.Assembler {
	return assembler.New()
}

// assembleOn1010AndMatchHex is assembleAndMatchHex for tests that need
// M68010-only addressing modes or mnemonics.
func assembleOn1010AndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New(assembler.WithCPU(assembler.M68010))
	code, err := asm.Assemble(src, 0x1000)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if len(code) != len(expected) || string(code) != string(expected) {
		t.Fatalf("[%s] expected % X, got % X", name, expected, code)
	}
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"Nop", "nop", "4E 71"},
		{"BtstImmediateDataReg", "btst.l #2,d0", "08 00 00 02"},
		{"BraSelfLoop", "start:\nbra start", "60 FE"},
		{"MoveWordRegToReg", "move.w d0,d1", "32 00"},
		{"MoveQuickNegativeOne", "moveq #-1,d3", "76 FF"},
		{"Data16Triple", "d16 1,2,3", "00 01 00 02 00 03"},
		{"Data08Padded", "d08 1", "01 00"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLabelAndDefineResolution(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{
			"ForwardLabelBranch",
			"bsr target\nnop\ntarget:\nnop",
			"61 02 4E 71 4E 71",
		},
		{
			"ExplicitWidthBranch",
			"beq.w there\nthere:\nnop",
			"67 00 00 02 4E 71",
		},
		{
			"LoopCounterBackwardBranch",
			"loop:\nnop\ndbne d0,loop",
			"4E 71 56 C8 FF FC",
		},
		{
			"DefineUsedInData",
			"!width = 4\nd16 !width",
			"00 04",
		},
		{
			"LocalLabelScoping",
			"outer:\nnop\n.local:\nnop\nbra .local",
			"4E 71 4E 71 60 FC",
		},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestErrorConditions(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind assembler.ErrorKind
	}{
		{"UnknownMnemonic", "frobnicate d0,d1", assembler.InvalidOp},
		{"UndefinedLabel", "bra nowhere", assembler.NoLabel},
		{"UndefinedDefine", "d16 !missing", assembler.NoDefine},
		{"LabelRedefinition", "foo:\nnop\nfoo:\nnop", assembler.LabelRedefinition},
		{"AddressRegisterByteSize", "move.b a0,d0", assembler.AnB},
		{"UnsupportedSizeSuffix", "moveq.w #1,d0", assembler.UnsupportedSuffix},
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
