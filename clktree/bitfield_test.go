package clktree

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		word  uint32
		shift uint8
		width uint8
		want  uint32
	}{
		{0x00000000, 0, 1, 0},
		{0x00000001, 0, 1, 1},
		{0xffffffff, 0, 32, 0xffffffff},
		{0xffffffff, 4, 8, 0xff},
		{0x12345678, 0, 4, 0x8},
		{0x12345678, 28, 4, 0x1},
		{0x12345678, 8, 16, 0x3456},
		{0x00400041, 0, 6, 0x01},  // PLLCON INDV
		{0x00402201, 16, 12, 64},  // PLLCON FBDV
		{0x00400201, 8, 3, 2},     // PLLCON OTDV1
		{0x00406201, 13, 3, 3},    // PLLCON OTDV2
		{0xa0000000, 30, 2, 0x2},  // top of the word
		{0x00150000, 16, 5, 0x15}, // UARTDIV
	}
	for _, test := range tests {
		got := Extract(test.word, test.shift, test.width)
		if got != test.want {
			t.Errorf("Extract(%08X, %d, %d)=%X, want %X",
				test.word, test.shift, test.width, got, test.want)
		}
		f := Field{Shift: test.shift, Width: test.width}
		if got := f.Extract(test.word); got != test.want {
			t.Errorf("Field{%d,%d}.Extract(%08X)=%X, want %X",
				test.shift, test.width, test.word, got, test.want)
		}
	}
}

func TestFieldValidate(t *testing.T) {
	tests := []struct {
		shift  uint8
		width  uint8
		wantOK bool
	}{
		{0, 1, true},
		{0, 32, true},
		{31, 1, true},
		{16, 16, true},
		{0, 0, false},
		{31, 2, false},
		{16, 17, false},
		{32, 1, false},
	}
	for _, test := range tests {
		err := Field{Shift: test.shift, Width: test.width}.validate()
		if (err == nil) != test.wantOK {
			t.Errorf("Field{%d,%d}.validate()=%v, want ok=%v",
				test.shift, test.width, err, test.wantOK)
		}
	}
}
