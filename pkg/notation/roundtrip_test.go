package notation

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// randomInfix builds a random infix expression, parenthesising some
// sub-expressions.
func randomInfix(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.Intn(3) == 0 {
		return strconv.Itoa(rng.Intn(20))
	}

	ops := []string{"+", "-", "*", "/"}
	expr := randomInfix(rng, depth-1) + " " + ops[rng.Intn(len(ops))] + " " + randomInfix(rng, depth-1)
	if rng.Intn(2) == 0 {
		expr = "(" + expr + ")"
	}
	return expr
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		infix := randomInfix(rng, 4)
		require.True(t, IsValidInfix(infix), infix)

		postfix, err := InfixToPostfix(infix)
		require.NoError(t, err, infix)
		require.True(t, IsValidPostfix(postfix), postfix)

		prefix, err := InfixToPrefix(infix)
		require.NoError(t, err, infix)
		require.True(t, IsValidPrefix(prefix), prefix)

		wantResult, wantErr := EvaluateInfix(infix)
		if wantErr != nil {
			require.True(t, errors.Is(wantErr, ErrDivisionByZero), "%s: %v", infix, wantErr)

			_, err := EvaluatePostfix(postfix)
			require.True(t, errors.Is(err, ErrDivisionByZero), postfix)
			_, err = EvaluatePrefix(prefix)
			require.True(t, errors.Is(err, ErrDivisionByZero), prefix)
			continue
		}

		haveResult, err := EvaluatePostfix(postfix)
		require.NoError(t, err, postfix)
		require.Equal(t, wantResult, haveResult, "%s => %s", infix, postfix)

		haveResult, err = EvaluatePrefix(prefix)
		require.NoError(t, err, prefix)
		require.Equal(t, wantResult, haveResult, "%s => %s", infix, prefix)

		parenthesised, err := PostfixToInfix(postfix)
		require.NoError(t, err, postfix)
		haveResult, err = EvaluateInfix(parenthesised)
		require.NoError(t, err, parenthesised)
		require.Equal(t, wantResult, haveResult, "%s => %s", infix, parenthesised)

		fromPrefix, err := PrefixToInfix(prefix)
		require.NoError(t, err, prefix)
		require.Equal(t, parenthesised, fromPrefix)

		toPostfix, err := PrefixToPostfix(prefix)
		require.NoError(t, err, prefix)
		require.Equal(t, postfix, toPostfix)

		toPrefix, err := PostfixToPrefix(postfix)
		require.NoError(t, err, postfix)
		require.Equal(t, prefix, toPrefix)
	}
}
