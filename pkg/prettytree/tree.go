// Package prettytree renders an arbitrary tree as Unicode box-drawing art,
// the peripheral `pretty_tree(root, children_of, show)` utility named in
// the core library's external interface. It knows nothing about parsers or
// tokens — callers supply a ChildrenOf callback that walks whatever AST
// their grammar built.
package prettytree

import "strings"

// ChildrenOf returns the children of node, in display order. Return nil
// or an empty slice for a leaf.
type ChildrenOf func(node any) []any

// Show renders a single node's label (without its children).
type Show func(node any) string

// Sprint renders root and its descendants (as reached via childrenOf) as a
// tree, one line per node, using "├── "/"└── "/"│   " connectors.
func Sprint(root any, childrenOf ChildrenOf, show Show) string {
	var b strings.Builder
	b.WriteString(show(root))
	b.WriteString("\n")
	writeChildren(&b, root, childrenOf, show, "")
	return b.String()
}

func writeChildren(b *strings.Builder, node any, childrenOf ChildrenOf, show Show, prefix string) {
	children := childrenOf(node)
	for i, child := range children {
		last := i == len(children)-1
		connector := "├── "
		nextPrefix := prefix + "│   "
		if last {
			connector = "└── "
			nextPrefix = prefix + "    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(show(child))
		b.WriteString("\n")
		writeChildren(b, child, childrenOf, show, nextPrefix)
	}
}
