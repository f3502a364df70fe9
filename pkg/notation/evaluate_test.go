package notation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name       string
		infix      string
		postfix    string
		prefix     string
		wantResult int64
	}{
		{name: "single", infix: "7", postfix: "7", prefix: "7", wantResult: 7},
		{name: "add", infix: "10 + 2", postfix: "10 2 +", prefix: "+ 10 2", wantResult: 12},
		{name: "subtract", infix: "10 - 2", postfix: "10 2 -", prefix: "- 10 2", wantResult: 8},
		{name: "multiply", infix: "10 * 2", postfix: "10 2 *", prefix: "* 10 2", wantResult: 20},
		{name: "divide", infix: "10 / 2", postfix: "10 2 /", prefix: "/ 10 2", wantResult: 5},
		{name: "truncatingDivide", infix: "7 / 2", postfix: "7 2 /", prefix: "/ 7 2", wantResult: 3},
		{name: "negativeTruncatesTowardZero", infix: "(1 - 8) / 2", postfix: "1 8 - 2 /", prefix: "/ - 1 8 2", wantResult: -3},
		{name: "precedence", infix: "10 + 2 * 6", postfix: "10 2 6 * +", prefix: "+ 10 * 2 6", wantResult: 22},
		{name: "leftAssociative", infix: "10 - 2 - 3", postfix: "10 2 - 3 -", prefix: "- - 10 2 3", wantResult: 5},
		{name: "parenthesised", infix: "(10 + 2) * (34 + 4)", postfix: "10 2 + 34 4 + *", prefix: "* + 10 2 + 34 4", wantResult: 456},
		{name: "rightNested", infix: "11 * (22 + (33 + 44))", postfix: "11 22 33 44 + + *", prefix: "* 11 + 22 + 33 44", wantResult: 1089},
		{name: "negativeResult", infix: "2 - 5 * 3", postfix: "2 5 3 * -", prefix: "- 2 * 5 3", wantResult: -13},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			haveResult, err := EvaluateInfix(tc.infix)
			require.NoError(t, err)
			require.Equal(t, tc.wantResult, haveResult)

			haveResult, err = EvaluatePostfix(tc.postfix)
			require.NoError(t, err)
			require.Equal(t, tc.wantResult, haveResult)

			haveResult, err = EvaluatePrefix(tc.prefix)
			require.NoError(t, err)
			require.Equal(t, tc.wantResult, haveResult)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := EvaluatePostfix("4 0 /")
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.False(t, errors.Is(err, ErrInvalidExpression))

	_, err = EvaluatePrefix("/ 4 - 2 2")
	require.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = EvaluateInfix("1 + 4 / (3 - 3)")
	require.True(t, errors.Is(err, ErrDivisionByZero))

	// the zero divisor is the left operand here
	haveResult, err := EvaluatePostfix("0 4 /")
	require.NoError(t, err)
	require.Equal(t, int64(0), haveResult)
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		notation Notation
		expr     string
		wantKind error
	}{
		{name: "infixUnbalanced", notation: Infix, expr: "(1 + 2", wantKind: ErrMalformedExpression},
		{name: "infixLetter", notation: Infix, expr: "a + 1", wantKind: ErrInvalidCharacter},
		{name: "postfixShort", notation: Postfix, expr: "1 +", wantKind: ErrMalformedExpression},
		{name: "postfixLeftover", notation: Postfix, expr: "1 2 3 +", wantKind: ErrMalformedExpression},
		{name: "prefixShort", notation: Prefix, expr: "+ 1", wantKind: ErrMalformedExpression},
		{name: "prefixLetter", notation: Prefix, expr: "+ 1 b", wantKind: ErrInvalidCharacter},
		// division by zero is never reached when validation fails
		{name: "postfixInvalidWithZeroDivisor", notation: Postfix, expr: "4 0 / /", wantKind: ErrMalformedExpression},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.notation, tc.expr)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidExpression))
			require.True(t, errors.Is(err, tc.wantKind), "unexpected error kind: %v", err)
			require.False(t, errors.Is(err, ErrDivisionByZero))
		})
	}
}

func TestReducer(t *testing.T) {
	t.Run("pushOperator", func(t *testing.T) {
		r := NewReducer()
		r.PushOperand(10)
		r.PushOperand(20)

		require.NoError(t, r.PushOperator(Add))
		// only one operand in stack so the next operator push should fail
		err := r.PushOperator(Sub)
		require.True(t, errors.Is(err, ErrMalformedExpression))
	})

	t.Run("operandOrder", func(t *testing.T) {
		r := NewReducer()
		r.PushOperand(10)
		r.PushOperand(2)
		require.NoError(t, r.PushOperator(Sub))

		haveResult, err := r.Result()
		require.NoError(t, err)
		require.Equal(t, int64(8), haveResult)
	})

	t.Run("incomplete", func(t *testing.T) {
		r := NewReducer()
		_, err := r.Result()
		require.True(t, errors.Is(err, ErrMalformedExpression))

		r.PushOperand(1)
		r.PushOperand(2)
		_, err = r.Result()
		require.True(t, errors.Is(err, ErrMalformedExpression))
	})

	t.Run("tokens", func(t *testing.T) {
		r := NewReducer()
		for _, s := range []string{"5", "8", " + ", " 3 ", "-", "2", "/", "5", "*"} {
			tok, err := ParseToken(s)
			require.NoError(t, err)
			require.NoError(t, r.Push(tok))
		}

		haveResult, err := r.Result()
		require.NoError(t, err)
		require.Equal(t, int64(25), haveResult)
	})

	t.Run("divisionByZero", func(t *testing.T) {
		r := NewReducer()
		r.PushOperand(1)
		r.PushOperand(0)
		require.True(t, errors.Is(r.PushOperator(Div), ErrDivisionByZero))
	})
}

func TestOperator(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/"} {
		op, ok := ParseOperator(sym)
		require.True(t, ok)
		require.Equal(t, sym, op.String())
	}

	_, ok := ParseOperator("^")
	require.False(t, ok)

	require.True(t, Mul.Precedence() > Add.Precedence())
	require.Equal(t, Mul.Precedence(), Div.Precedence())
	require.Equal(t, Add.Precedence(), Sub.Precedence())
}

func TestParseNotation(t *testing.T) {
	testCases := map[string]Notation{
		"infix":   Infix,
		"PREFIX":  Prefix,
		"polish":  Prefix,
		"Postfix": Postfix,
		"rpn":     Postfix,
	}

	for s, want := range testCases {
		have, err := ParseNotation(s)
		require.NoError(t, err)
		require.Equal(t, want, have)
		require.Equal(t, want, mustParseNotation(t, have.String()))
	}

	_, err := ParseNotation("suffix")
	require.Error(t, err)
}

func mustParseNotation(t *testing.T, s string) Notation {
	t.Helper()

	n, err := ParseNotation(s)
	require.NoError(t, err)
	return n
}
