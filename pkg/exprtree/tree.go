// Package exprtree builds binary expression trees from validated
// expressions and renders them as Graphviz graphs.
package exprtree

import (
	"github.com/charithe/exprcalc/pkg/notation"
	"github.com/charithe/exprcalc/pkg/stack"
	"github.com/pkg/errors"
)

// Node is an operand leaf or an operator with exactly two children.
type Node struct {
	Token notation.Token
	Left  *Node
	Right *Node
}

// Build parses text in notation n into an expression tree.
func Build(n notation.Notation, text string) (*Node, error) {
	postfix, err := notation.Convert(n, notation.Postfix, text)
	if err != nil {
		return nil, err
	}

	tokens, err := notation.Tokenize(notation.Postfix, postfix)
	if err != nil {
		return nil, err
	}

	s := stack.New[*Node]()
	for _, tok := range tokens {
		node := &Node{Token: tok}
		if tok.Kind == notation.KindOperator {
			if node.Right, err = s.Pop(); err != nil {
				return nil, errors.Wrap(notation.ErrInternalInconsistency, err.Error())
			}
			if node.Left, err = s.Pop(); err != nil {
				return nil, errors.Wrap(notation.ErrInternalInconsistency, err.Error())
			}
		}
		s.Push(node)
	}

	if s.Size() != 1 {
		return nil, errors.Wrapf(notation.ErrInternalInconsistency, "%d roots after building tree", s.Size())
	}

	return s.Pop()
}

func (n *Node) IsLeaf() bool {
	return n.Token.Kind == notation.KindOperand
}

// Depth returns the number of nodes on the longest root to leaf path.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}

	left, right := n.Left.Depth(), n.Right.Depth()
	if left > right {
		return left + 1
	}
	return right + 1
}

// Eval computes the value of the tree.
func (n *Node) Eval() (int64, error) {
	if n.IsLeaf() {
		return n.Token.Value, nil
	}

	left, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}

	right, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}

	return n.Token.Op.Apply(left, right)
}

// Infix renders the tree fully parenthesised.
func (n *Node) Infix() string {
	if n.IsLeaf() {
		return n.Token.Text
	}
	return "(" + n.Left.Infix() + " " + n.Token.Text + " " + n.Right.Infix() + ")"
}

func (n *Node) Prefix() string {
	if n.IsLeaf() {
		return n.Token.Text
	}
	return n.Token.Text + " " + n.Left.Prefix() + " " + n.Right.Prefix()
}

func (n *Node) Postfix() string {
	if n.IsLeaf() {
		return n.Token.Text
	}
	return n.Left.Postfix() + " " + n.Right.Postfix() + " " + n.Token.Text
}
