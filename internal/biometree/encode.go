package biometree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NoLabel is written in place of a missing biome name.
const NoLabel = "none"

// EncodeOptions tunes the C literal output.
type EncodeOptions struct {
	// FixedWidth emits all MaxChildren child slots per node. Empty slots
	// refer to the node itself.
	FixedWidth bool
}

// EncodeC writes one initializer line per node in pre-order:
//
//	/*id*/{{lo,hi,lo,hi,...},{child,child,...},label},
//
// The last range of a node is the offset axis and is not emitted. A blank
// line follows the final node.
func EncodeC(w io.Writer, t *Tree, opts EncodeOptions) error {
	bw := bufio.NewWriter(w)
	err := t.Walk(func(n *Node, _ int) error {
		if n.ID == Unassigned {
			return ErrUnnumbered
		}
		_, err := bw.WriteString(formatNode(n, opts) + "\n")
		return err
	})
	if err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func formatNode(n *Node, opts EncodeOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/*%d*/{{", n.ID)
	if len(n.Ranges) > 0 {
		for i, r := range n.Ranges[:len(n.Ranges)-1] {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d,%d", r.Low, r.High)
		}
	}
	sb.WriteString("},{")

	width := n.Len()
	if opts.FixedWidth {
		width = MaxChildren
	}
	for i := 0; i < width; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		id := n.ID
		if c := n.Children[i]; c != nil {
			id = c.ID
		}
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteString("},")

	if n.Label != "" {
		sb.WriteString(n.Label)
	} else {
		sb.WriteString(NoLabel)
	}
	sb.WriteString("},")
	return sb.String()
}

// Dump writes an indented, human-readable view of the tree for debugging.
func Dump(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	err := t.Walk(func(n *Node, depth int) error {
		label := n.Label
		if label == "" {
			label = NoLabel
		}
		id := "-"
		if n.ID != Unassigned {
			id = strconv.Itoa(n.ID)
		}
		_, err := fmt.Fprintf(bw, "%s#%s %s : %s\n", strings.Repeat("   ", depth), id, formatRanges(n), label)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func formatRanges(n *Node) string {
	if len(n.Ranges) == 0 {
		return "[]"
	}
	parts := make([]string, len(n.Ranges))
	for i, r := range n.Ranges {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
