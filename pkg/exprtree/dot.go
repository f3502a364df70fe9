package exprtree

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
)

// GraphvizDot is a Graphviz digraph of an expression tree.
type GraphvizDot struct {
	Graph *gographviz.Escape
	count int
}

// NewGraphvizDot lays out the tree rooted at root as a digraph named name.
// Operators are drawn as circles and operands as boxes, with edges running
// from each operator to its left and then right operand.
func NewGraphvizDot(root *Node, name string) *GraphvizDot {
	dot := &GraphvizDot{Graph: gographviz.NewEscape()}
	dot.Graph.SetDir(true)
	dot.Graph.SetName(name)

	if root != nil {
		dot.visit(root)
	}
	return dot
}

func (dot *GraphvizDot) visit(n *Node) string {
	name := fmt.Sprintf("n%d", dot.count)
	dot.count++

	shape := "circle"
	if n.IsLeaf() {
		shape = "box"
	}

	dot.Graph.AddNode(dot.Graph.Name, name, map[string]string{
		"label": n.Token.Text,
		"shape": shape,
	})

	if !n.IsLeaf() {
		dot.Graph.AddEdge(name, dot.visit(n.Left), true, nil)
		dot.Graph.AddEdge(name, dot.visit(n.Right), true, nil)
	}

	return name
}

func (dot *GraphvizDot) String() string {
	return dot.Graph.String()
}

// WriteTo implements io.WriterTo interface.
func (dot *GraphvizDot) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, dot.Graph.String())
	return int64(n), err
}
