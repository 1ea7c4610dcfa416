package dtb

import (
	"testing"

	"github.com/platinasystems/fdt"
)

func node(name string, props map[string][]byte, children ...*fdt.Node) *fdt.Node {
	n := &fdt.Node{
		Name:       name,
		Properties: props,
		Children:   make(map[string]*fdt.Node),
	}
	if n.Properties == nil {
		n.Properties = make(map[string][]byte)
	}
	for _, c := range children {
		n.Children[c.Name] = c
	}
	return n
}

func be32(vals ...uint32) []byte {
	b := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return b
}

func TestFindCompatible(t *testing.T) {
	clk := node("clock-controller@f0801000", map[string][]byte{
		"compatible": []byte("nuvoton,npcm845-clk\x00"),
		"reg":        be32(0xf0801000, 0x1000),
	})
	root := node("/", nil,
		node("chosen", nil),
		node("soc", map[string][]byte{
			"#address-cells": be32(1),
			"#size-cells":    be32(1),
		},
			node("serial@f0000000", map[string][]byte{
				"compatible": []byte("nuvoton,npcm845-uart\x00ns16550a\x00"),
			}),
			clk,
		),
	)
	if got := findCompatible(root, Compatible); got != clk {
		t.Errorf("findCompatible found %v, want the clock controller", got)
	}
	if got := findCompatible(root, "nuvoton,npcm845-rng"); got != nil {
		t.Errorf("findCompatible(-rng) found %v, want nil", got)
	}

	addr, size := cellsFor(root, clk)
	if addr != 1 || size != 1 {
		t.Errorf("cellsFor=(%d,%d), want (1,1)", addr, size)
	}
}

func TestCellsForDefaults(t *testing.T) {
	// No ancestor declares cells: the devicetree defaults apply.
	clk := node("clock-controller@f0801000", map[string][]byte{
		"compatible": []byte("nuvoton,npcm845-clk\x00"),
	})
	root := node("/", nil, clk)
	addr, size := cellsFor(root, clk)
	if addr != 2 || size != 1 {
		t.Errorf("cellsFor=(%d,%d), want (2,1)", addr, size)
	}
}

func TestParseReg(t *testing.T) {
	tests := []struct {
		desc      string
		reg       []byte
		addrCells int
		sizeCells int
		wantBase  uintptr
		wantSize  int
		wantErr   bool
	}{
		{"1+1 cells", be32(0xf0801000, 0x1000), 1, 1, 0xf0801000, 0x1000, false},
		{"2+2 cells", be32(0, 0xf0801000, 0, 0x1000), 2, 2, 0xf0801000, 0x1000, false},
		{"2+1 cells", be32(0, 0xf0801000, 0x100), 2, 1, 0xf0801000, 0x100, false},
		{"extra pairs ignored", be32(0xf0801000, 0x1000, 0xf0802000, 0x1000), 1, 1, 0xf0801000, 0x1000, false},
		{"short property", be32(0xf0801000), 1, 1, 0, 0, true},
		{"missing property", nil, 1, 1, 0, 0, true},
		{"silly cell count", be32(0xf0801000, 0x1000), 3, 1, 0, 0, true},
	}
	for _, test := range tests {
		base, size, err := parseReg(test.reg, test.addrCells, test.sizeCells)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: parseReg unexpectedly succeeded", test.desc)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: Failed parseReg: %v", test.desc, err)
			continue
		}
		if base != test.wantBase || size != test.wantSize {
			t.Errorf("%s: parseReg=(%X,%X), want (%X,%X)",
				test.desc, base, size, test.wantBase, test.wantSize)
		}
	}
}
