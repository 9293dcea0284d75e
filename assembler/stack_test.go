package assembler_test

import "testing"

func TestLinkUnlkEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"LinkNegativeDisplacement", "link a0,#-8", "4E 50 FF F8"},
		{"Unlk", "unlk a3", "4E 5B"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}
