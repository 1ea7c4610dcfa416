package main

import (
	"errors"
	"fmt"

	"github.com/Jon-Bright/npcmclk/clktree"
)

// dumpTree prints every clock with its resolved rate. One clock's
// failure is reported inline and never stops the rest of the dump.
func dumpTree(t *clktree.Tree, r clktree.Reader) {
	for _, n := range t.Nodes() {
		exp := "  -"
		if id, ok := n.ExportID(); ok {
			exp = fmt.Sprintf("%3d", id)
		}
		rate, err := n.Rate(r)
		var state string
		switch {
		case errors.Is(err, clktree.ErrZeroParentRate):
			state = "0 Hz (parent off)"
		case err != nil:
			state = err.Error()
		default:
			state = fmtRate(rate)
		}
		fmt.Printf("%-16s %-12s %s  %s\n", n.Name(), n.Kind(), exp, state)
	}
}

// fmtRate scales a rate in Hz for humans. Clock rates are exact
// multiples often enough that trailing zeroes are just noise.
func fmtRate(hz uint64) string {
	switch {
	case hz >= 1000000000 && hz%1000000 == 0:
		return fmt.Sprintf("%d.%03d GHz", hz/1000000000, hz%1000000000/1000000)
	case hz >= 1000000:
		return fmt.Sprintf("%g MHz", float64(hz)/1000000)
	case hz >= 1000:
		return fmt.Sprintf("%g kHz", float64(hz)/1000)
	}
	return fmt.Sprintf("%d Hz", hz)
}
