package clktree

import (
	"fmt"
	"sort"
)

// Registry answers clock queries by export id, the stable handle other
// subsystems use. It replaces positional "clock #7 is slot 7 of an
// array" lookups with an explicit mapping built once at construction.
type Registry struct {
	byID map[int]*Node
}

// Registry returns the tree's export-id registry.
func (t *Tree) Registry() *Registry {
	byID := make(map[int]*Node, len(t.export))
	for id, n := range t.export {
		byID[id] = n
	}
	return &Registry{byID: byID}
}

// Node returns the node exported under id.
func (g *Registry) Node(id int) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Name returns the name of the clock exported under id.
func (g *Registry) Name(id int) (string, bool) {
	n, ok := g.byID[id]
	if !ok {
		return "", false
	}
	return n.name, true
}

// Rate resolves the clock exported under id against r.
func (g *Registry) Rate(id int, r Reader) (uint64, error) {
	n, ok := g.byID[id]
	if !ok {
		return 0, fmt.Errorf("no clock exported with id %d", id)
	}
	return n.Rate(r)
}

// IDs returns every export id in ascending order.
func (g *Registry) IDs() []int {
	ids := make([]int, 0, len(g.byID))
	for id := range g.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
