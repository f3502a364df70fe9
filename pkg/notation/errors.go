package notation

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidExpression is matched by every validation failure.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrInvalidCharacter reports a token outside the supported alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMalformedExpression reports an operand/operator count or parenthesis balance violation.
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	// ErrInternalInconsistency indicates a bug: validated input left a stack in an unexpected state.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// SyntaxError describes why an expression failed validation.
type SyntaxError struct {
	Notation Notation
	// Offset is the byte offset of Token in the input, or the input length
	// when the problem is detected at the end.
	Offset int
	Token  string
	// Kind is either ErrInvalidCharacter or ErrMalformedExpression.
	Kind   error
	Reason string
}

func (e *SyntaxError) Error() string {
	where := "end of input"
	if e.Token != "" {
		where = fmt.Sprintf("%q at offset %d", e.Token, e.Offset)
	}

	return fmt.Sprintf("invalid %s expression: %s: %s (%s)", e.Notation, e.Kind, e.Reason, where)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func malformed(n Notation, tok Token, reason string) *SyntaxError {
	return &SyntaxError{Notation: n, Offset: tok.Offset, Token: tok.Text, Kind: ErrMalformedExpression, Reason: reason}
}

func malformedAtEnd(n Notation, text, reason string) *SyntaxError {
	return &SyntaxError{Notation: n, Offset: len(text), Kind: ErrMalformedExpression, Reason: reason}
}

type inconsistencyError struct {
	op  string
	err error
}

func (e *inconsistencyError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInternalInconsistency, e.op, e.err)
}

func (e *inconsistencyError) Unwrap() error {
	return e.err
}

func (e *inconsistencyError) Is(target error) bool {
	return target == ErrInternalInconsistency
}

func inconsistency(op string, err error) error {
	return &inconsistencyError{op: op, err: err}
}
