package notation

import "github.com/pkg/errors"

// Operator is one of the four supported binary operators.
type Operator int

const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
)

// ParseOperator maps an operator symbol to its Operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	default:
		return 0, false
	}
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Precedence returns the binding strength of the operator. Multiplicative
// operators bind tighter than additive ones.
func (op Operator) Precedence() int {
	switch op {
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	default:
		return 0
	}
}

// Apply computes left op right. Division truncates toward zero.
func (op Operator) Apply(left, right int64) (int64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		if right == 0 {
			return 0, errors.Wrapf(ErrDivisionByZero, "%d / %d", left, right)
		}
		return left / right, nil
	default:
		return 0, errors.Errorf("unimplemented operator: %d", int(op))
	}
}
