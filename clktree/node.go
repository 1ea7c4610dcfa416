// Package clktree models a SoC clock-generation tree as configured by
// firmware: a DAG of fixed-rate sources, PLLs, dividers and muxes whose
// current output frequencies are reconstructed from live register
// contents. The package only ever reads registers; the hardware is set
// up by the boot loader and is never reprogrammed from here.
package clktree

// Kind discriminates the closed set of clock node types.
type Kind int

const (
	FixedRate Kind = iota
	Pll
	FixedFactor
	Divider
	Mux
)

func (k Kind) String() string {
	switch k {
	case FixedRate:
		return "fixed-rate"
	case Pll:
		return "pll"
	case FixedFactor:
		return "fixed-factor"
	case Divider:
		return "divider"
	case Mux:
		return "mux"
	}
	return "unknown"
}

// NoExport marks a node that's internal to the tree and not part of the
// public export-id contract.
const NoExport = -1

// Node is one clock in the tree. Nodes are immutable once the Tree that
// owns them has been built; the only thing that changes underneath them
// is the register contents they read.
type Node struct {
	name   string
	export int
	kind   Kind

	rate uint64 // FixedRate: constant output in Hz

	reg   uint32 // Pll/Divider/Mux: register offset in the clock window
	field Field  // Divider/Mux: position of the control field

	mult uint32 // FixedFactor
	div  uint32 // FixedFactor

	powerOfTwo bool // Divider: divisor is 2^field instead of field+1

	// Mux: table[i] is the raw selector value that picks parents[i].
	// For Pll, FixedFactor and Divider, parents has exactly one entry.
	table   []uint32
	parents []*Node
}

func (n *Node) Name() string { return n.name }

func (n *Node) Kind() Kind { return n.kind }

// ExportID returns the node's public export id, or false if the node is
// internal-only.
func (n *Node) ExportID() (int, bool) {
	if n.export == NoExport {
		return 0, false
	}
	return n.export, true
}

// Parents returns the node's candidate parents in selector-table order.
// Source nodes return nil; everything but muxes has exactly one parent.
func (n *Node) Parents() []*Node {
	if len(n.parents) == 0 {
		return nil
	}
	p := make([]*Node, len(n.parents))
	copy(p, n.parents)
	return p
}
