package notation

import (
	"github.com/charithe/exprcalc/pkg/stack"
)

// InfixToPostfix converts a validated infix expression to postfix using the
// shunting-yard algorithm. Operators of equal precedence are emitted left to
// right.
func InfixToPostfix(text string) (string, error) {
	tokens, err := Parse(Infix, text)
	if err != nil {
		return "", err
	}

	out, err := shunt(tokens, true)
	if err != nil {
		return "", err
	}

	return joinTokens(out), nil
}

// InfixToPrefix reverses the token order, swaps the parentheses, shunts the
// result and reverses the output again. The reversed pass only pops
// operators of strictly higher precedence, which keeps equal-precedence
// operators grouped left to right once the output is reversed back.
func InfixToPrefix(text string) (string, error) {
	tokens, err := Parse(Infix, text)
	if err != nil {
		return "", err
	}

	reversed := make([]Token, len(tokens))
	for i, tok := range tokens {
		switch tok.Kind {
		case KindLeftParen:
			tok.Kind, tok.Text = KindRightParen, ")"
		case KindRightParen:
			tok.Kind, tok.Text = KindLeftParen, "("
		}
		reversed[len(tokens)-1-i] = tok
	}

	out, err := shunt(reversed, false)
	if err != nil {
		return "", err
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return joinTokens(out), nil
}

// shunt reorders infix tokens into postfix order. When popOnEqual is set an
// incoming operator pops stacked operators of equal precedence.
func shunt(tokens []Token, popOnEqual bool) ([]Token, error) {
	ops := stack.New[Token]()
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Kind {
		case KindOperand:
			out = append(out, tok)
		case KindLeftParen:
			ops.Push(tok)
		case KindRightParen:
			for {
				top, err := ops.Pop()
				if err != nil {
					return nil, inconsistency("shunt", err)
				}
				if top.Kind == KindLeftParen {
					break
				}
				out = append(out, top)
			}
		case KindOperator:
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				if top.Kind == KindLeftParen || !yields(top.Op, tok.Op, popOnEqual) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)
		}
	}

	for !ops.IsEmpty() {
		top, _ := ops.Pop()
		if top.Kind == KindLeftParen {
			return nil, inconsistency("shunt", ErrMalformedExpression)
		}
		out = append(out, top)
	}

	return out, nil
}

// yields reports whether a stacked operator must be emitted before incoming is pushed.
func yields(stacked, incoming Operator, popOnEqual bool) bool {
	if popOnEqual {
		return stacked.Precedence() >= incoming.Precedence()
	}
	return stacked.Precedence() > incoming.Precedence()
}

func PostfixToInfix(text string) (string, error) {
	return rewrite(Postfix, text, infixForm)
}

func PostfixToPrefix(text string) (string, error) {
	return rewrite(Postfix, text, prefixForm)
}

func PrefixToInfix(text string) (string, error) {
	return rewrite(Prefix, text, infixForm)
}

func PrefixToPostfix(text string) (string, error) {
	return rewrite(Prefix, text, postfixForm)
}

func infixForm(op Token, left, right string) (string, error) {
	return "(" + left + " " + op.Text + " " + right + ")", nil
}

func prefixForm(op Token, left, right string) (string, error) {
	return op.Text + " " + left + " " + right, nil
}

func postfixForm(op Token, left, right string) (string, error) {
	return left + " " + right + " " + op.Text, nil
}

func rewrite(n Notation, text string, combine func(op Token, left, right string) (string, error)) (string, error) {
	tokens, err := Parse(n, text)
	if err != nil {
		return "", err
	}

	operand := func(tok Token) string { return tok.Text }
	if n == Prefix {
		return foldPrefix(tokens, operand, combine)
	}
	return foldPostfix(tokens, operand, combine)
}

// foldPostfix reduces postfix tokens left to right. The first value popped
// for an operator is its right operand and the second its left.
func foldPostfix[T any](tokens []Token, operand func(Token) T, combine func(op Token, left, right T) (T, error)) (T, error) {
	s := stack.New[T]()
	for _, tok := range tokens {
		if err := foldToken(s, tok, operand, combine, false); err != nil {
			var zero T
			return zero, err
		}
	}

	return foldResult(s)
}

// foldPrefix reduces prefix tokens right to left. The first value popped for
// an operator is its left operand and the second its right.
func foldPrefix[T any](tokens []Token, operand func(Token) T, combine func(op Token, left, right T) (T, error)) (T, error) {
	s := stack.New[T]()
	for i := len(tokens) - 1; i >= 0; i-- {
		if err := foldToken(s, tokens[i], operand, combine, true); err != nil {
			var zero T
			return zero, err
		}
	}

	return foldResult(s)
}

func foldToken[T any](s *stack.Stack[T], tok Token, operand func(Token) T, combine func(op Token, left, right T) (T, error), leftFirst bool) error {
	if tok.Kind == KindOperand {
		s.Push(operand(tok))
		return nil
	}

	first, err := s.Pop()
	if err != nil {
		return inconsistency("fold", err)
	}

	second, err := s.Pop()
	if err != nil {
		return inconsistency("fold", err)
	}

	left, right := second, first
	if leftFirst {
		left, right = first, second
	}

	v, err := combine(tok, left, right)
	if err != nil {
		return err
	}

	s.Push(v)
	return nil
}

func foldResult[T any](s *stack.Stack[T]) (T, error) {
	v, err := s.Pop()
	if err != nil {
		return v, inconsistency("result", err)
	}

	if !s.IsEmpty() {
		var zero T
		return zero, inconsistency("result", ErrMalformedExpression)
	}

	return v, nil
}
