// Package notation validates, converts and evaluates integer arithmetic
// expressions written in infix, prefix or postfix notation.
//
// Operands are non-negative decimal integers and the operators are the
// binary + - * and /, with * and / binding tighter than + and -. Operators
// of equal precedence group left to right. Postfix and prefix tokens are
// separated by whitespace; infix may omit spaces around operators and
// parentheses.
//
// Every conversion and evaluation validates its input first and fails with
// an error matching ErrInvalidExpression when the input is not well formed.
// The only error an otherwise valid expression can produce is
// ErrDivisionByZero.
package notation
