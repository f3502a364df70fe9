package notation

import (
	"strings"

	"github.com/pkg/errors"
)

// Notation identifies where operators are placed relative to their operands.
type Notation int

const (
	Infix Notation = iota
	Prefix
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "unknown"
	}
}

// ParseNotation accepts a notation name case-insensitively. "rpn" and
// "polish" are accepted as aliases of postfix and prefix.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix":
		return Infix, nil
	case "prefix", "polish":
		return Prefix, nil
	case "postfix", "rpn":
		return Postfix, nil
	default:
		return 0, errors.Errorf("unknown notation: %q", s)
	}
}

// Validate checks that text is a well-formed expression in notation n.
func Validate(n Notation, text string) error {
	_, err := Parse(n, text)
	return err
}

// Parse tokenizes text and validates the token sequence.
func Parse(n Notation, text string) ([]Token, error) {
	tokens, err := Tokenize(n, text)
	if err != nil {
		return nil, err
	}

	switch n {
	case Infix:
		err = checkInfix(text, tokens)
	case Prefix:
		err = checkPrefix(text, tokens)
	case Postfix:
		err = checkPostfix(text, tokens)
	default:
		err = errors.Errorf("unsupported notation: %d", int(n))
	}

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// Convert rewrites text from one notation to another. Converting to the
// same notation normalises it: postfix and prefix are re-joined with single
// spaces and infix is fully parenthesised.
func Convert(from, to Notation, text string) (string, error) {
	switch from {
	case Infix:
		switch to {
		case Infix:
			postfix, err := InfixToPostfix(text)
			if err != nil {
				return "", err
			}
			return PostfixToInfix(postfix)
		case Prefix:
			return InfixToPrefix(text)
		case Postfix:
			return InfixToPostfix(text)
		}
	case Prefix:
		switch to {
		case Infix:
			return PrefixToInfix(text)
		case Prefix:
			tokens, err := Parse(Prefix, text)
			if err != nil {
				return "", err
			}
			return joinTokens(tokens), nil
		case Postfix:
			return PrefixToPostfix(text)
		}
	case Postfix:
		switch to {
		case Infix:
			return PostfixToInfix(text)
		case Prefix:
			return PostfixToPrefix(text)
		case Postfix:
			tokens, err := Parse(Postfix, text)
			if err != nil {
				return "", err
			}
			return joinTokens(tokens), nil
		}
	}

	return "", errors.Errorf("unsupported conversion: %s to %s", from, to)
}

// Evaluate computes the value of text in notation n.
func Evaluate(n Notation, text string) (int64, error) {
	switch n {
	case Infix:
		return EvaluateInfix(text)
	case Prefix:
		return EvaluatePrefix(text)
	case Postfix:
		return EvaluatePostfix(text)
	default:
		return 0, errors.Errorf("unsupported notation: %d", int(n))
	}
}
