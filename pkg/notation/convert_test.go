package notation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestInfixConversions(t *testing.T) {
	testCases := []struct {
		name        string
		infix       string
		wantPostfix string
		wantPrefix  string
	}{
		{
			name:        "single",
			infix:       "5",
			wantPostfix: "5",
			wantPrefix:  "5",
		},
		{
			name:        "groupedSums",
			infix:       "(10 + 2) * (34 + 4)",
			wantPostfix: "10 2 + 34 4 + *",
			wantPrefix:  "* + 10 2 + 34 4",
		},
		{
			name:        "outerParens",
			infix:       "((10  + 2) * (34  + 4))",
			wantPostfix: "10 2 + 34 4 + *",
			wantPrefix:  "* + 10 2 + 34 4",
		},
		{
			name:        "precedence",
			infix:       "1 + 2 * 3 - 4",
			wantPostfix: "1 2 3 * + 4 -",
			wantPrefix:  "- + 1 * 2 3 4",
		},
		{
			name:        "leftAssociativeSubtraction",
			infix:       "10 - 2 - 3",
			wantPostfix: "10 2 - 3 -",
			wantPrefix:  "- - 10 2 3",
		},
		{
			name:        "leftAssociativeDivision",
			infix:       "64/8/2",
			wantPostfix: "64 8 / 2 /",
			wantPrefix:  "/ / 64 8 2",
		},
		{
			name:        "rightGrouping",
			infix:       "10 - (2 - 3)",
			wantPostfix: "10 2 3 - -",
			wantPrefix:  "- 10 - 2 3",
		},
		{
			name:        "mixed",
			infix:       "2 * 3 + 4 / 2",
			wantPostfix: "2 3 * 4 2 / +",
			wantPrefix:  "+ * 2 3 / 4 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			havePostfix, err := InfixToPostfix(tc.infix)
			require.NoError(t, err)
			require.Equal(t, tc.wantPostfix, havePostfix)

			havePrefix, err := InfixToPrefix(tc.infix)
			require.NoError(t, err)
			require.Equal(t, tc.wantPrefix, havePrefix)
		})
	}
}

func TestPostfixAndPrefixConversions(t *testing.T) {
	testCases := []struct {
		name      string
		postfix   string
		prefix    string
		wantInfix string
	}{
		{
			name:      "single",
			postfix:   "5",
			prefix:    "5",
			wantInfix: "5",
		},
		{
			name:      "rightNested",
			postfix:   "11 22 33 44 + + *",
			prefix:    "* 11 + 22 + 33 44",
			wantInfix: "(11 * (22 + (33 + 44)))",
		},
		{
			name:      "nonCommutative",
			postfix:   "10 2 -",
			prefix:    "- 10 2",
			wantInfix: "(10 - 2)",
		},
		{
			name:      "groupedSums",
			postfix:   "10 2 + 34 4 + *",
			prefix:    "* + 10 2 + 34 4",
			wantInfix: "((10 + 2) * (34 + 4))",
		},
		{
			name:      "leftNestedDivision",
			postfix:   "64 8 / 2 /",
			prefix:    "/ / 64 8 2",
			wantInfix: "((64 / 8) / 2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			haveInfix, err := PostfixToInfix(tc.postfix)
			require.NoError(t, err)
			require.Equal(t, tc.wantInfix, haveInfix)

			havePrefix, err := PostfixToPrefix(tc.postfix)
			require.NoError(t, err)
			require.Equal(t, tc.prefix, havePrefix)

			haveInfix, err = PrefixToInfix(tc.prefix)
			require.NoError(t, err)
			require.Equal(t, tc.wantInfix, haveInfix)

			havePostfix, err := PrefixToPostfix(tc.prefix)
			require.NoError(t, err)
			require.Equal(t, tc.postfix, havePostfix)
		})
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		from Notation
		to   Notation
		expr string
	}{
		{name: "infixToPostfix", from: Infix, to: Postfix, expr: "1 + * 2"},
		{name: "infixToPrefix", from: Infix, to: Prefix, expr: "(1 + 2"},
		{name: "postfixToInfix", from: Postfix, to: Infix, expr: "1 +"},
		{name: "postfixToPrefix", from: Postfix, to: Prefix, expr: "1 2"},
		{name: "prefixToInfix", from: Prefix, to: Infix, expr: "+ 1"},
		{name: "prefixToPostfix", from: Prefix, to: Postfix, expr: "+ 1 a"},
		{name: "infixToInfix", from: Infix, to: Infix, expr: ")1("},
		{name: "postfixToPostfix", from: Postfix, to: Postfix, expr: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			have, err := Convert(tc.from, tc.to, tc.expr)
			require.Error(t, err)
			require.Empty(t, have)
			require.True(t, errors.Is(err, ErrInvalidExpression), "unexpected error: %v", err)
		})
	}

	_, err := InfixToPostfix("1 + * 2")
	require.True(t, errors.Is(err, ErrMalformedExpression))
}

func TestConvertNormalises(t *testing.T) {
	have, err := Convert(Postfix, Postfix, "  1\t2  + ")
	require.NoError(t, err)
	require.Equal(t, "1 2 +", have)

	have, err = Convert(Prefix, Prefix, "+   1 2")
	require.NoError(t, err)
	require.Equal(t, "+ 1 2", have)

	have, err = Convert(Infix, Infix, "1+2*3")
	require.NoError(t, err)
	require.Equal(t, "(1 + (2 * 3))", have)
}
