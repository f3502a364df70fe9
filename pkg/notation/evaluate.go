package notation

import (
	"github.com/charithe/exprcalc/pkg/stack"
	"github.com/pkg/errors"
)

// EvaluatePostfix computes the value of a postfix expression.
func EvaluatePostfix(text string) (int64, error) {
	tokens, err := Parse(Postfix, text)
	if err != nil {
		return 0, err
	}

	r := NewReducer()
	for _, tok := range tokens {
		if err := r.Push(tok); err != nil {
			return 0, err
		}
	}

	return r.Result()
}

// EvaluatePrefix computes the value of a prefix expression.
func EvaluatePrefix(text string) (int64, error) {
	tokens, err := Parse(Prefix, text)
	if err != nil {
		return 0, err
	}

	return foldPrefix(tokens, operandValue, applyToken)
}

func operandValue(tok Token) int64 {
	return tok.Value
}

func applyToken(op Token, left, right int64) (int64, error) {
	return op.Op.Apply(left, right)
}

// EvaluateInfix computes the value of an infix expression directly, using
// one stack for operands and another for pending operators.
func EvaluateInfix(text string) (int64, error) {
	tokens, err := Parse(Infix, text)
	if err != nil {
		return 0, err
	}

	operands := stack.New[int64]()
	ops := stack.New[Token]()

	reduce := func() error {
		op, err := ops.Pop()
		if err != nil {
			return inconsistency("reduce", err)
		}

		right, err := operands.Pop()
		if err != nil {
			return inconsistency("reduce", err)
		}

		left, err := operands.Pop()
		if err != nil {
			return inconsistency("reduce", err)
		}

		v, err := op.Op.Apply(left, right)
		if err != nil {
			return err
		}

		operands.Push(v)
		return nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case KindOperand:
			operands.Push(tok.Value)
		case KindLeftParen:
			ops.Push(tok)
		case KindRightParen:
			for {
				top, err := ops.Peek()
				if err != nil {
					return 0, inconsistency("reduce", err)
				}
				if top.Kind == KindLeftParen {
					ops.Pop()
					break
				}
				if err := reduce(); err != nil {
					return 0, err
				}
			}
		case KindOperator:
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				if top.Kind == KindLeftParen || top.Op.Precedence() < tok.Op.Precedence() {
					break
				}
				if err := reduce(); err != nil {
					return 0, err
				}
			}
			ops.Push(tok)
		}
	}

	for !ops.IsEmpty() {
		if err := reduce(); err != nil {
			return 0, err
		}
	}

	return foldResult(operands)
}

// Reducer evaluates postfix tokens as they arrive.
// This is not thread-safe and should only be accessed by a single goroutine.
type Reducer struct {
	operands *stack.Stack[int64]
}

func NewReducer() *Reducer {
	return &Reducer{operands: stack.New[int64]()}
}

// Push feeds a single operand or operator token to the reducer.
func (r *Reducer) Push(tok Token) error {
	switch tok.Kind {
	case KindOperand:
		r.PushOperand(tok.Value)
		return nil
	case KindOperator:
		return r.PushOperator(tok.Op)
	default:
		return errors.Wrapf(ErrInvalidCharacter, "token %q", tok.Text)
	}
}

func (r *Reducer) PushOperand(v int64) {
	r.operands.Push(v)
}

// PushOperator pops two operands, applies op and pushes the result.
func (r *Reducer) PushOperator(op Operator) error {
	if r.operands.Size() < 2 {
		return errors.Wrapf(ErrMalformedExpression, "not enough operands for %s", op)
	}

	right, _ := r.operands.Pop()
	left, _ := r.operands.Pop()

	v, err := op.Apply(left, right)
	if err != nil {
		return err
	}

	r.operands.Push(v)
	return nil
}

// Result returns the value of the reduced expression. Exactly one operand
// must remain.
func (r *Reducer) Result() (int64, error) {
	if r.operands.Size() != 1 {
		return 0, errors.Wrapf(ErrMalformedExpression, "incomplete expression: %d operands in stack", r.operands.Size())
	}

	v, _ := r.operands.Peek()
	return v, nil
}
