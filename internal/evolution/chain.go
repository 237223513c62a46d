package evolution

import "strings"

// Node is one species in a branching evolution chain. A parent owns its
// children; evolution data has no cycles.
type Node struct {
	Name     string
	Children []*Node
}

// Walk lists the chain in pre-order: a species before any of its evolutions,
// branches in the order they appear in Children. Names are lowercased.
func (n *Node) Walk() []string {
	if n == nil {
		return nil
	}
	var names []string
	var visit func(*Node)
	visit = func(cur *Node) {
		names = append(names, strings.ToLower(strings.TrimSpace(cur.Name)))
		for _, child := range cur.Children {
			if child != nil {
				visit(child)
			}
		}
	}
	visit(n)
	return names
}
