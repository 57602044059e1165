package biometree

import "github.com/specialistvlad/biometree/internal/noderange"

// Tree is a sparse, fixed fan-out tree rooted at Root.
type Tree struct {
	Root *Node
}

// New returns a tree holding only an empty root.
func New() *Tree {
	return &Tree{Root: newNode()}
}

// Insert addresses the node at path, creating it and any missing ancestors
// or lower-numbered siblings on the way. ranges replaces the node's ranges
// only when non-empty, and label replaces its label only when non-empty, so
// the same node may be described by several calls that each know part of it.
// An empty path addresses the root.
func (t *Tree) Insert(path []int, ranges []noderange.Range, label string) error {
	if len(path) > MaxDepth-1 {
		return &PathError{Path: path, Reason: "deeper than the tree allows"}
	}
	for _, slot := range path {
		if slot < 0 || slot >= MaxChildren {
			return &PathError{Path: path, Reason: "slot out of range"}
		}
	}

	n := t.Root
	for _, slot := range path {
		for i := 0; i <= slot; i++ {
			if n.Children[i] == nil {
				n.Children[i] = newNode()
			}
		}
		n = n.Children[slot]
	}

	if len(ranges) > 0 {
		n.Ranges = append([]noderange.Range(nil), ranges...)
	}
	if label != "" {
		n.Label = label
	}
	return nil
}

// Lookup returns the node at path, or nil if it was never created.
func (t *Tree) Lookup(path []int) *Node {
	n := t.Root
	for _, slot := range path {
		if slot < 0 || slot >= MaxChildren || n.Children[slot] == nil {
			return nil
		}
		n = n.Children[slot]
	}
	return n
}

// Walk visits every node in pre-order, children in slot order. It stops at
// the first error returned by fn.
func (t *Tree) Walk(fn func(n *Node, depth int) error) error {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{t.Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(f.node, f.depth); err != nil {
			return err
		}
		for i := f.node.Len() - 1; i >= 0; i-- {
			if child := f.node.Children[i]; child != nil {
				stack = append(stack, frame{child, f.depth + 1})
			}
		}
	}
	return nil
}

// AssignIDs numbers all nodes in pre-order starting at 0 and returns the
// node count. Placeholder nodes are numbered like any other node.
func (t *Tree) AssignIDs() int {
	next := 0
	_ = t.Walk(func(n *Node, _ int) error {
		n.ID = next
		next++
		return nil
	})
	return next
}

// Count returns the number of nodes in the tree.
func (t *Tree) Count() int {
	count := 0
	_ = t.Walk(func(*Node, int) error {
		count++
		return nil
	})
	return count
}
