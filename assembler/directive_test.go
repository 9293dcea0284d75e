package assembler_test

import "testing"

func TestDataDirectiveEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"Data08PaddedOdd", "d08 1", "01 00"},
		{"Data16Triple", "d16 1,2,3", "00 01 00 02 00 03"},
		{"Data24PaddedOdd", "d24 1", "00 00 01 00"},
		{"Data32Even", "d32 1", "00 00 00 01"},
		{"Data64Even", "d64 1", "00 00 00 00 00 00 00 01"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}
