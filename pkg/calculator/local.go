package calculator

import (
	"context"

	"github.com/charithe/exprcalc/pkg/exprtree"
	"github.com/charithe/exprcalc/pkg/notation"
)

// Local evaluates expressions in-process.
type Local struct{}

func (Local) Validate(_ context.Context, n notation.Notation, expr string) error {
	return notation.Validate(n, expr)
}

func (Local) Convert(_ context.Context, from, to notation.Notation, expr string) (string, error) {
	return notation.Convert(from, to, expr)
}

func (Local) Evaluate(_ context.Context, n notation.Notation, expr string) (int64, error) {
	return notation.Evaluate(n, expr)
}

func (Local) Graph(_ context.Context, n notation.Notation, expr string) (string, error) {
	root, err := exprtree.Build(n, expr)
	if err != nil {
		return "", err
	}

	return exprtree.NewGraphvizDot(root, graphName).String(), nil
}

var (
	_ Calculator = Local{}
	_ Calculator = (*Client)(nil)
)
