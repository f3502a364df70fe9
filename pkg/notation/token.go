package notation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type TokenKind int

const (
	KindOperand TokenKind = iota
	KindOperator
	KindLeftParen
	KindRightParen
)

// Token is a single lexical element of an expression.
type Token struct {
	Kind TokenKind
	Text string
	// Value is set for operands.
	Value int64
	// Op is set for operators.
	Op Operator
	// Offset is the byte offset of the token in its source text.
	Offset int
}

// ParseToken classifies a single whitespace-delimited postfix or prefix
// token. Parentheses are not accepted.
func ParseToken(text string) (Token, error) {
	text = strings.TrimSpace(text)
	if op, ok := ParseOperator(text); ok {
		return Token{Kind: KindOperator, Text: text, Op: op}, nil
	}

	if text == "" || !isDigits(text) {
		return Token{}, errors.Wrapf(ErrInvalidCharacter, "token %q", text)
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, errors.Wrapf(ErrMalformedExpression, "operand %q out of range", text)
	}

	return Token{Kind: KindOperand, Text: text, Value: v}, nil
}

// Tokenize splits text into tokens. Infix is scanned character by character
// so operators and parentheses need not be separated by spaces; postfix and
// prefix tokens must be separated by whitespace.
func Tokenize(n Notation, text string) ([]Token, error) {
	if n == Infix {
		return tokenizeInfix(text)
	}

	return tokenizeFields(n, text)
}

func tokenizeInfix(text string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c):
			start := i
			for i < len(text) && isDigit(text[i]) {
				i++
			}

			word := text[start:i]
			v, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				return nil, &SyntaxError{Notation: Infix, Offset: start, Token: word, Kind: ErrMalformedExpression, Reason: "operand out of range"}
			}
			tokens = append(tokens, Token{Kind: KindOperand, Text: word, Value: v, Offset: start})
		case c == '(':
			tokens = append(tokens, Token{Kind: KindLeftParen, Text: "(", Offset: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: KindRightParen, Text: ")", Offset: i})
			i++
		default:
			op, ok := ParseOperator(text[i : i+1])
			if !ok {
				r, _ := utf8.DecodeRuneInString(text[i:])
				return nil, &SyntaxError{Notation: Infix, Offset: i, Token: string(r), Kind: ErrInvalidCharacter, Reason: "unsupported character"}
			}
			tokens = append(tokens, Token{Kind: KindOperator, Text: op.String(), Op: op, Offset: i})
			i++
		}
	}

	return tokens, nil
}

func tokenizeFields(n Notation, text string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(text); {
		if isSpace(text[i]) {
			i++
			continue
		}

		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}

		word := text[start:i]
		tok, err := ParseToken(word)
		if err != nil {
			kind := ErrInvalidCharacter
			reason := "unsupported token"
			if errors.Is(err, ErrMalformedExpression) {
				kind = ErrMalformedExpression
				reason = "operand out of range"
			}
			return nil, &SyntaxError{Notation: n, Offset: start, Token: word, Kind: kind, Reason: reason}
		}

		tok.Offset = start
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}

	return strings.Join(parts, " ")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
