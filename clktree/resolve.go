package clktree

import (
	"errors"
	"fmt"
)

// Reader is the register window a tree resolves against. Read32 returns
// the current 32-bit word at the given byte offset. Implementations
// must not cache: freshness matters, the firmware owns these registers.
type Reader interface {
	Read32(off uint32) uint32
}

var (
	// ErrZeroParentRate reports a divider whose parent chain ends in
	// a dead (0Hz) source.
	ErrZeroParentRate = errors.New("parent rate is zero")

	// ErrUnknownMuxSelection reports a selector value with no entry
	// in the mux's table: the hardware is in a configuration this
	// software's table doesn't describe.
	ErrUnknownMuxSelection = errors.New("unknown mux selection")

	// ErrInvalidDivisor reports a register-derived divisor of zero.
	ErrInvalidDivisor = errors.New("invalid divisor")
)

// PLLCON control-word layout, identical for every PLL in the tree.
// Reference enters through /INDV, is multiplied by FBDV in the feedback
// loop, then divided by the two output stages. Bits 30/31 are lock
// status and don't affect the rate.
var (
	pllIndv  = Field{Shift: 0, Width: 6}
	pllOtdv1 = Field{Shift: 8, Width: 3}
	pllOtdv2 = Field{Shift: 13, Width: 3}
	pllFbdv  = Field{Shift: 16, Width: 12}
)

// PLLCON power-down and lock bits, informational only.
const (
	PllconPwden = 1 << 12
	PllconLoks  = 1 << 30
	PllconLoki  = 1 << 31
)

// Rate resolves the named node against r.
func (t *Tree) Rate(name string, r Reader) (uint64, error) {
	n, ok := t.nodes[name]
	if !ok {
		return 0, fmt.Errorf("no clock named %q", name)
	}
	return n.Rate(r)
}

// Rate computes the node's current output frequency in Hz by resolving
// its parent chain down to a source and applying the per-kind formula.
// Nothing is cached: every call re-reads the registers it depends on,
// so consecutive calls may legitimately differ if the firmware changes
// settings in between. A failure resolving one node never affects any
// other node.
func (n *Node) Rate(r Reader) (uint64, error) {
	switch n.kind {
	case FixedRate:
		return n.rate, nil
	case Pll:
		return n.pllRate(r)
	case FixedFactor:
		return n.fixedFactorRate(r)
	case Divider:
		return n.dividerRate(r)
	case Mux:
		return n.muxRate(r)
	}
	return 0, fmt.Errorf("clock %q: unknown kind %d", n.name, n.kind)
}

func (n *Node) pllRate(r Reader) (uint64, error) {
	parent, err := n.parents[0].Rate(r)
	if err != nil {
		return 0, err
	}
	if parent == 0 {
		// No reference means no output. The hardware does the
		// same, so this is a 0Hz rate, not an error.
		return 0, nil
	}
	con := r.Read32(n.reg)
	indv := uint64(pllIndv.Extract(con))
	fbdv := uint64(pllFbdv.Extract(con))
	otdv1 := uint64(pllOtdv1.Extract(con))
	otdv2 := uint64(pllOtdv2.Extract(con))
	div := indv * otdv1 * otdv2
	if div == 0 {
		return 0, fmt.Errorf("clock %q: PLLCON %08X: %w", n.name, con, ErrInvalidDivisor)
	}
	// Multiply before the single combined division, in 64 bits, to
	// match how the hardware synthesizes the frequency.
	return parent * fbdv / div, nil
}

func (n *Node) fixedFactorRate(r Reader) (uint64, error) {
	parent, err := n.parents[0].Rate(r)
	if err != nil {
		return 0, err
	}
	if parent == 0 {
		return 0, fmt.Errorf("clock %q: %w", n.name, ErrZeroParentRate)
	}
	return parent * uint64(n.mult) / uint64(n.div), nil
}

func (n *Node) dividerRate(r Reader) (uint64, error) {
	parent, err := n.parents[0].Rate(r)
	if err != nil {
		return 0, err
	}
	if parent == 0 {
		return 0, fmt.Errorf("clock %q: %w", n.name, ErrZeroParentRate)
	}
	field := n.field.Extract(r.Read32(n.reg))
	var div uint64
	if n.powerOfTwo {
		div = uint64(1) << field
	} else {
		div = uint64(field) + 1
	}
	if div == 0 {
		// Only possible for a power-of-two divider whose field
		// shifts past 63 bits.
		return 0, fmt.Errorf("clock %q: field %d: %w", n.name, field, ErrInvalidDivisor)
	}
	return parent / div, nil
}

func (n *Node) muxRate(r Reader) (uint64, error) {
	raw := n.field.Extract(r.Read32(n.reg))
	for i, v := range n.table {
		if v == raw {
			return n.parents[i].Rate(r)
		}
	}
	return 0, fmt.Errorf("clock %q: selector %d: %w", n.name, raw, ErrUnknownMuxSelection)
}
