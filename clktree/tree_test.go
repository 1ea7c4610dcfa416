package clktree

import (
	"strings"
	"testing"
)

// smallConfig is a valid tree: a 25MHz source, one PLL, a ÷2 stage, a
// divider and a mux over all of them.
func smallConfig() *Config {
	return &Config{
		FixedRates: []FixedRateData{
			{Name: "ref", Rate: 25000000, Export: 0},
		},
		Plls: []PllData{
			{Reg: 0x0c, Name: "pll0", Parent: "ref", Export: NoExport},
		},
		FixedFactors: []FixedFactorData{
			{Name: "pll0_div2", Parent: "pll0", Mult: 1, Div: 2, Export: NoExport},
		},
		Dividers: []DividerData{
			{Reg: 0x08, Field: Field{Shift: 4, Width: 5}, Name: "bus",
				Parent: "busmux", Export: 1},
		},
		Muxes: []MuxData{
			{Reg: 0x04, Field: Field{Shift: 0, Width: 2}, Table: []uint32{0, 1, 2},
				Name: "busmux", Parents: []string{"pll0", "pll0_div2", "ref"},
				Export: NoExport},
		},
	}
}

func TestNewValid(t *testing.T) {
	tree, err := New(smallConfig())
	if err != nil {
		t.Fatalf("Failed New: %v", err)
	}
	if got := len(tree.Nodes()); got != 5 {
		t.Errorf("got %d nodes, want 5", got)
	}
	n, ok := tree.Node("busmux")
	if !ok {
		t.Fatalf("busmux missing from tree")
	}
	if n.Kind() != Mux {
		t.Errorf("busmux kind=%v, want mux", n.Kind())
	}
	if got := len(n.Parents()); got != 3 {
		t.Errorf("busmux has %d parents, want 3", got)
	}
	if _, ok := n.ExportID(); ok {
		t.Errorf("busmux unexpectedly exported")
	}
	if id, ok := tree.Nodes()[0].ExportID(); !ok || id != 0 {
		t.Errorf("ref export=(%d,%v), want (0,true)", id, ok)
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		desc    string
		mangle  func(c *Config)
		wantErr string
	}{
		{"duplicate name", func(c *Config) {
			c.Plls = append(c.Plls, PllData{Reg: 0x10, Name: "pll0", Parent: "ref", Export: NoExport})
		}, "duplicate clock name"},
		{"duplicate export id", func(c *Config) {
			c.Dividers[0].Export = 0
		}, "share export id"},
		{"negative export id", func(c *Config) {
			c.Dividers[0].Export = -7
		}, "bad export id"},
		{"dangling parent", func(c *Config) {
			c.Plls[0].Parent = "nosuch"
		}, "unknown parent"},
		{"dangling mux parent", func(c *Config) {
			c.Muxes[0].Parents[2] = "nosuch"
		}, "unknown parent"},
		{"zero-width field", func(c *Config) {
			c.Dividers[0].Field = Field{Shift: 4, Width: 0}
		}, "zero width"},
		{"field past bit 31", func(c *Config) {
			c.Muxes[0].Field = Field{Shift: 31, Width: 2}
		}, "overruns"},
		{"mux arity mismatch", func(c *Config) {
			c.Muxes[0].Table = []uint32{0, 1}
		}, "table entries for"},
		{"mux without parents", func(c *Config) {
			c.Muxes[0].Table = nil
			c.Muxes[0].Parents = nil
		}, "no parents"},
		{"mux table value too wide", func(c *Config) {
			c.Muxes[0].Table[2] = 4
		}, "exceeds"},
		{"zero fixed factor", func(c *Config) {
			c.FixedFactors[0].Div = 0
		}, "zero factor"},
		{"empty name", func(c *Config) {
			c.Dividers[0].Name = ""
		}, "empty name"},
		{"cycle", func(c *Config) {
			// pll0 -> bus -> busmux -> pll0
			c.Plls[0].Parent = "bus"
		}, "cycle"},
	}
	for _, test := range tests {
		c := smallConfig()
		test.mangle(c)
		_, err := New(c)
		if err == nil {
			t.Errorf("%s: New succeeded, want error containing %q", test.desc, test.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: got error %q, want it to contain %q", test.desc, err, test.wantErr)
		}
	}
}

func TestRegistry(t *testing.T) {
	tree, err := New(smallConfig())
	if err != nil {
		t.Fatalf("Failed New: %v", err)
	}
	reg := tree.Registry()
	if ids := reg.IDs(); len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Errorf("IDs()=%v, want [0 1]", ids)
	}
	if name, ok := reg.Name(1); !ok || name != "bus" {
		t.Errorf("Name(1)=(%q,%v), want (bus,true)", name, ok)
	}
	if _, ok := reg.Node(42); ok {
		t.Errorf("Node(42) unexpectedly present")
	}
	if _, err := reg.Rate(42, regMap{}); err == nil {
		t.Errorf("Rate(42) unexpectedly succeeded")
	}
	rate, err := reg.Rate(0, regMap{})
	if err != nil {
		t.Fatalf("Failed Rate(0): %v", err)
	}
	if rate != 25000000 {
		t.Errorf("Rate(0)=%d, want 25000000", rate)
	}
}
