package notation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestValidateInfix(t *testing.T) {
	testCases := []struct {
		name     string
		expr     string
		wantKind error
	}{
		{name: "singleOperand", expr: "42"},
		{name: "simple", expr: "1 + 2"},
		{name: "noSpaces", expr: "(10+2)*(34+4)"},
		{name: "nestedParens", expr: "((10  + 2) * (34  + 4))"},
		{name: "redundantParens", expr: "((7))"},
		{name: "unbalancedOpen", expr: "(1 + 2", wantKind: ErrMalformedExpression},
		{name: "unbalancedClose", expr: "1 + 2)", wantKind: ErrMalformedExpression},
		{name: "doubleOperator", expr: "1 + * 2", wantKind: ErrMalformedExpression},
		{name: "leadingOperator", expr: "+ 1 2", wantKind: ErrMalformedExpression},
		{name: "trailingOperator", expr: "1 +", wantKind: ErrMalformedExpression},
		{name: "adjacentOperands", expr: "1 2", wantKind: ErrMalformedExpression},
		{name: "countsBalanceButOperandsAdjacent", expr: "1 + 2 * 3 4 +", wantKind: ErrMalformedExpression},
		{name: "emptyParens", expr: "()", wantKind: ErrMalformedExpression},
		{name: "operatorBeforeClose", expr: "(1 +) 2", wantKind: ErrMalformedExpression},
		{name: "implicitMultiplication", expr: "2(3)", wantKind: ErrMalformedExpression},
		{name: "empty", expr: "   ", wantKind: ErrMalformedExpression},
		{name: "letter", expr: "1 + a", wantKind: ErrInvalidCharacter},
		{name: "decimalPoint", expr: "1.5 + 2", wantKind: ErrInvalidCharacter},
		{name: "exponent", expr: "2 ^ 3", wantKind: ErrInvalidCharacter},
		{name: "nonASCII", expr: "1 × 2", wantKind: ErrInvalidCharacter},
		{name: "operandOverflow", expr: "99999999999999999999 + 1", wantKind: ErrMalformedExpression},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInfix(tc.expr)
			if tc.wantKind == nil {
				require.NoError(t, err)
				require.True(t, IsValidInfix(tc.expr))
				return
			}

			require.Error(t, err)
			require.False(t, IsValidInfix(tc.expr))
			require.True(t, errors.Is(err, ErrInvalidExpression))
			require.True(t, errors.Is(err, tc.wantKind), "unexpected error kind: %v", err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			require.Equal(t, Infix, syntaxErr.Notation)
		})
	}
}

func TestValidatePostfixAndPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		postfix  string
		prefix   string
		wantKind error
	}{
		{name: "singleOperand", postfix: "7", prefix: "7"},
		{name: "simple", postfix: "1 2 +", prefix: "+ 1 2"},
		{name: "nested", postfix: "10 2 6 * +", prefix: "+ 10 * 2 6"},
		{name: "extraWhitespace", postfix: "  10\t2   - ", prefix: " -  10 \t 2 "},
		{name: "insufficientOperands", postfix: "1 +", prefix: "+ 1", wantKind: ErrMalformedExpression},
		{name: "operatorOnly", postfix: "+", prefix: "+", wantKind: ErrMalformedExpression},
		{name: "unusedOperands", postfix: "1 2 3 +", prefix: "+ 1 2 3", wantKind: ErrMalformedExpression},
		{name: "reversedOrder", postfix: "+ 1 2", prefix: "1 2 +", wantKind: ErrMalformedExpression},
		{name: "empty", postfix: "", prefix: "", wantKind: ErrMalformedExpression},
		{name: "parenthesis", postfix: "( 1 2 + )", prefix: "( + 1 2 )", wantKind: ErrInvalidCharacter},
		{name: "unseparated", postfix: "1 2+", prefix: "+1 2", wantKind: ErrInvalidCharacter},
		{name: "letter", postfix: "1 x +", prefix: "+ 1 x", wantKind: ErrInvalidCharacter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			postfixErr := ValidatePostfix(tc.postfix)
			prefixErr := ValidatePrefix(tc.prefix)

			if tc.wantKind == nil {
				require.NoError(t, postfixErr)
				require.NoError(t, prefixErr)
				require.True(t, IsValidPostfix(tc.postfix))
				require.True(t, IsValidPrefix(tc.prefix))
				return
			}

			require.False(t, IsValidPostfix(tc.postfix))
			require.False(t, IsValidPrefix(tc.prefix))
			require.True(t, errors.Is(postfixErr, ErrInvalidExpression))
			require.True(t, errors.Is(prefixErr, ErrInvalidExpression))
			require.True(t, errors.Is(postfixErr, tc.wantKind), "unexpected postfix error: %v", postfixErr)
			require.True(t, errors.Is(prefixErr, tc.wantKind), "unexpected prefix error: %v", prefixErr)
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	err := ValidateInfix("12 + * 3")
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 5, syntaxErr.Offset)
	require.Equal(t, "*", syntaxErr.Token)

	err = ValidatePostfix("4 5 + +")
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 6, syntaxErr.Offset)
	require.Equal(t, Postfix, syntaxErr.Notation)

	err = ValidateInfix("(1 + 2")
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 6, syntaxErr.Offset)
	require.Empty(t, syntaxErr.Token)
	require.Contains(t, err.Error(), "end of input")
}

func TestValidatorsArePure(t *testing.T) {
	exprs := []string{"(1 + 2", "1 + 2", "1 +", "+ 1", "1 2 +"}
	for _, expr := range exprs {
		infix, postfix, prefix := IsValidInfix(expr), IsValidPostfix(expr), IsValidPrefix(expr)
		for i := 0; i < 3; i++ {
			require.Equal(t, infix, IsValidInfix(expr))
			require.Equal(t, postfix, IsValidPostfix(expr))
			require.Equal(t, prefix, IsValidPrefix(expr))
		}
	}
}
