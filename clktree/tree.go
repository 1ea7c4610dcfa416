package clktree

import (
	"fmt"
)

// FixedRateData describes a root source with a constant rate in Hz.
type FixedRateData struct {
	Name   string
	Rate   uint64
	Export int
}

// PllData describes a PLL whose control word (PLLCON layout, see
// resolve.go) lives at register offset Reg.
type PllData struct {
	Reg    uint32
	Name   string
	Parent string
	Export int
}

// FixedFactorData describes a fixed multiply/divide stage with no
// register control.
type FixedFactorData struct {
	Name   string
	Parent string
	Mult   uint32
	Div    uint32
	Export int
}

// DividerData describes a register-controlled divider. PowerOfTwo
// selects divisor=2^field instead of the default field+1.
type DividerData struct {
	Reg        uint32
	Field      Field
	Name       string
	Parent     string
	PowerOfTwo bool
	Export     int
}

// MuxData describes a parent selector. Table[i] is the raw value of the
// selector field that picks Parents[i]; a raw value appearing in
// neither table entry is a configuration this software doesn't know and
// resolution reports it rather than guessing.
type MuxData struct {
	Reg     uint32
	Field   Field
	Table   []uint32
	Name    string
	Parents []string
	Export  int
}

// Config is the complete static description of a clock tree.
type Config struct {
	FixedRates   []FixedRateData
	Plls         []PllData
	FixedFactors []FixedFactorData
	Dividers     []DividerData
	Muxes        []MuxData
}

// Tree is an immutable clock tree. New validates the whole Config in
// one step; a Tree that exists is internally consistent and safe to
// share between goroutines without locking.
type Tree struct {
	nodes  map[string]*Node
	order  []*Node // declaration order, for stable listings
	export map[int]*Node
}

// New builds a Tree from cfg. It fails, returning nothing, on the first
// inconsistency: duplicate or dangling names, duplicate export ids,
// malformed bit-fields, mux table/parent arity mismatches, zero fixed
// factors, or a cycle in the parent graph.
func New(cfg *Config) (*Tree, error) {
	t := &Tree{
		nodes:  make(map[string]*Node),
		export: make(map[int]*Node),
	}

	// Pass 1: create every node and check its own descriptor.
	for _, d := range cfg.FixedRates {
		n := &Node{name: d.Name, export: d.Export, kind: FixedRate, rate: d.Rate}
		if err := t.add(n); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.Plls {
		n := &Node{name: d.Name, export: d.Export, kind: Pll, reg: d.Reg}
		if err := t.add(n); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.FixedFactors {
		if d.Mult == 0 || d.Div == 0 {
			return nil, fmt.Errorf("fixed factor %q: zero factor %d/%d", d.Name, d.Mult, d.Div)
		}
		n := &Node{name: d.Name, export: d.Export, kind: FixedFactor, mult: d.Mult, div: d.Div}
		if err := t.add(n); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.Dividers {
		if err := d.Field.validate(); err != nil {
			return nil, fmt.Errorf("divider %q: %v", d.Name, err)
		}
		n := &Node{
			name: d.Name, export: d.Export, kind: Divider,
			reg: d.Reg, field: d.Field, powerOfTwo: d.PowerOfTwo,
		}
		if err := t.add(n); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.Muxes {
		if err := d.Field.validate(); err != nil {
			return nil, fmt.Errorf("mux %q: %v", d.Name, err)
		}
		if len(d.Table) != len(d.Parents) {
			return nil, fmt.Errorf("mux %q: %d table entries for %d parents",
				d.Name, len(d.Table), len(d.Parents))
		}
		if len(d.Parents) == 0 {
			return nil, fmt.Errorf("mux %q: no parents", d.Name)
		}
		for _, raw := range d.Table {
			if raw > d.Field.mask() {
				return nil, fmt.Errorf("mux %q: table value %d exceeds %d-bit field",
					d.Name, raw, d.Field.Width)
			}
		}
		n := &Node{
			name: d.Name, export: d.Export, kind: Mux,
			reg: d.Reg, field: d.Field,
			table: append([]uint32(nil), d.Table...),
		}
		if err := t.add(n); err != nil {
			return nil, err
		}
	}

	// Pass 2: link parents now that every name is known.
	for _, d := range cfg.Plls {
		if err := t.link(d.Name, d.Parent); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.FixedFactors {
		if err := t.link(d.Name, d.Parent); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.Dividers {
		if err := t.link(d.Name, d.Parent); err != nil {
			return nil, err
		}
	}
	for _, d := range cfg.Muxes {
		for _, p := range d.Parents {
			if err := t.link(d.Name, p); err != nil {
				return nil, err
			}
		}
	}

	if err := t.checkAcyclic(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) add(n *Node) error {
	if n.name == "" {
		return fmt.Errorf("%s node with empty name", n.kind)
	}
	if _, dup := t.nodes[n.name]; dup {
		return fmt.Errorf("duplicate clock name %q", n.name)
	}
	if n.export != NoExport {
		if n.export < 0 {
			return fmt.Errorf("clock %q: bad export id %d", n.name, n.export)
		}
		if prev, dup := t.export[n.export]; dup {
			return fmt.Errorf("clocks %q and %q share export id %d", prev.name, n.name, n.export)
		}
		t.export[n.export] = n
	}
	t.nodes[n.name] = n
	t.order = append(t.order, n)
	return nil
}

func (t *Tree) link(child, parent string) error {
	c := t.nodes[child]
	p, ok := t.nodes[parent]
	if !ok {
		return fmt.Errorf("clock %q: unknown parent %q", child, parent)
	}
	c.parents = append(c.parents, p)
	return nil
}

// checkAcyclic walks the parent graph once. A cycle can only come from
// a bad static table, so it's rejected here instead of guarded against
// on every resolution.
func (t *Tree) checkAcyclic() error {
	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[*Node]int, len(t.nodes))
	var walk func(n *Node) error
	walk = func(n *Node) error {
		switch state[n] {
		case visiting:
			return fmt.Errorf("clock %q: cycle in parent graph", n.name)
		case done:
			return nil
		}
		state[n] = visiting
		for _, p := range n.parents {
			if err := walk(p); err != nil {
				return err
			}
		}
		state[n] = done
		return nil
	}
	for _, n := range t.order {
		if err := walk(n); err != nil {
			return err
		}
	}
	return nil
}

// Node returns the named node.
func (t *Tree) Node(name string) (*Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// Nodes returns every node in declaration order.
func (t *Tree) Nodes() []*Node {
	ns := make([]*Node, len(t.order))
	copy(ns, t.order)
	return ns
}
