package biometree

import "github.com/specialistvlad/biometree/internal/noderange"

const (
	// MaxChildren is the fan-out limit of a single node.
	MaxChildren = 10
	// MaxDepth is the number of levels in the tree, root included.
	MaxDepth = 6
	// Unassigned marks a node that has not been numbered yet.
	Unassigned = -1
)

// Node is one vertex of the climate tree.
type Node struct {
	// Ranges are the parameter intervals of this node, one per climate axis.
	// Empty for nodes that were only created as path placeholders.
	Ranges   []noderange.Range
	Children [MaxChildren]*Node
	// Label is the biome name of a leaf, empty otherwise.
	Label string
	ID    int
}

func newNode() *Node {
	return &Node{ID: Unassigned}
}

// Len returns the number of occupied child slots, i.e. the highest occupied
// slot plus one.
func (n *Node) Len() int {
	for i := MaxChildren - 1; i >= 0; i-- {
		if n.Children[i] != nil {
			return i + 1
		}
	}
	return 0
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Len() == 0
}
