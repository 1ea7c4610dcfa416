// Package dtb locates the clock controller in a flattened devicetree.
// Only the MMIO base and size come from the devicetree; the clock
// topology itself is compiled in.
package dtb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io/ioutil"

	"github.com/platinasystems/fdt"
)

// DefaultFile is where the boot loader leaves the flattened devicetree.
const DefaultFile = "/boot/linux.dtb"

// Compatible is the clock controller binding this package looks for.
const Compatible = "nuvoton,npcm845-clk"

// ClockController parses the DTB at path and returns the MMIO base and
// size of the clock controller's register window.
func ClockController(path string) (uintptr, int, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("couldn't read %s: %v", path, err)
	}
	return findClockController(b)
}

func findClockController(blob []byte) (uintptr, int, error) {
	t := &fdt.Tree{Debug: false, IsLittleEndian: false}
	t.Parse(blob)
	if t.RootNode == nil {
		return 0, 0, fmt.Errorf("couldn't parse devicetree")
	}

	n := findCompatible(t.RootNode, Compatible)
	if n == nil {
		return 0, 0, fmt.Errorf("no node compatible with %s", Compatible)
	}
	addrCells, sizeCells := cellsFor(t.RootNode, n)
	base, size, err := parseReg(n.Properties["reg"], addrCells, sizeCells)
	if err != nil {
		return 0, 0, fmt.Errorf("node %s: %v", n.Name, err)
	}
	return base, size, nil
}

// findCompatible walks the tree looking for a node whose compatible
// property contains want. The property is a NUL-separated string list.
func findCompatible(n *fdt.Node, want string) *fdt.Node {
	if prop, ok := n.Properties["compatible"]; ok {
		for _, c := range bytes.Split(prop, []byte{0}) {
			if string(c) == want {
				return n
			}
		}
	}
	for _, c := range n.Children {
		if found := findCompatible(c, want); found != nil {
			return found
		}
	}
	return nil
}

// cellsFor returns the #address-cells/#size-cells in force for target,
// i.e. those of its closest ancestor that declares them. Defaults are 2
// and 1 per the devicetree spec.
func cellsFor(root, target *fdt.Node) (addrCells, sizeCells int) {
	addrCells, sizeCells = 2, 1
	path := ancestors(root, target, nil)
	for _, n := range path {
		if v, ok := cellProp(n, "#address-cells"); ok {
			addrCells = v
		}
		if v, ok := cellProp(n, "#size-cells"); ok {
			sizeCells = v
		}
	}
	return addrCells, sizeCells
}

// ancestors returns the chain of nodes from root down to, but not
// including, target. Cell properties apply to children, so target's own
// values are deliberately excluded.
func ancestors(n, target *fdt.Node, chain []*fdt.Node) []*fdt.Node {
	if n == target {
		return chain
	}
	for _, c := range n.Children {
		if found := ancestors(c, target, append(chain, n)); found != nil {
			return found
		}
	}
	return nil
}

func cellProp(n *fdt.Node, name string) (int, bool) {
	prop, ok := n.Properties[name]
	if !ok || len(prop) != 4 {
		return 0, false
	}
	return int(binary.BigEndian.Uint32(prop)), true
}

// parseReg decodes the first (address, size) pair of a reg property.
// Cells are big-endian 32-bit words.
func parseReg(reg []byte, addrCells, sizeCells int) (uintptr, int, error) {
	if addrCells < 1 || addrCells > 2 || sizeCells < 1 || sizeCells > 2 {
		return 0, 0, fmt.Errorf("unsupported reg layout: %d address cells, %d size cells",
			addrCells, sizeCells)
	}
	need := 4 * (addrCells + sizeCells)
	if len(reg) < need {
		return 0, 0, fmt.Errorf("reg property has %d bytes, need %d", len(reg), need)
	}
	addr := readCells(reg, addrCells)
	size := readCells(reg[4*addrCells:], sizeCells)
	return uintptr(addr), int(size), nil
}

func readCells(b []byte, cells int) uint64 {
	v := uint64(binary.BigEndian.Uint32(b))
	if cells == 2 {
		v = v<<32 | uint64(binary.BigEndian.Uint32(b[4:]))
	}
	return v
}
