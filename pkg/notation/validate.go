package notation

import "fmt"

func IsValidInfix(text string) bool {
	return ValidateInfix(text) == nil
}

func IsValidPostfix(text string) bool {
	return ValidatePostfix(text) == nil
}

func IsValidPrefix(text string) bool {
	return ValidatePrefix(text) == nil
}

// ValidateInfix returns a *SyntaxError describing the first problem found in
// text, or nil if it is a well-formed infix expression.
func ValidateInfix(text string) error {
	return Validate(Infix, text)
}

// ValidatePostfix returns a *SyntaxError describing the first problem found
// in text, or nil if it is a well-formed postfix expression.
func ValidatePostfix(text string) error {
	return Validate(Postfix, text)
}

// ValidatePrefix returns a *SyntaxError describing the first problem found
// in text, or nil if it is a well-formed prefix expression.
func ValidatePrefix(text string) error {
	return Validate(Prefix, text)
}

// checkInfix walks the tokens tracking whether an operand is expected next.
// Operands and '(' may only start the expression or follow an operator or
// '('; operators and ')' may only follow an operand or ')'.
func checkInfix(text string, tokens []Token) error {
	var operands, operators, depth int
	expectOperand := true

	for _, tok := range tokens {
		switch tok.Kind {
		case KindOperand:
			if !expectOperand {
				return malformed(Infix, tok, "operand must follow an operator or '('")
			}
			operands++
			expectOperand = false
		case KindLeftParen:
			if !expectOperand {
				return malformed(Infix, tok, "'(' must follow an operator or '('")
			}
			depth++
		case KindRightParen:
			if depth == 0 {
				return malformed(Infix, tok, "unbalanced ')'")
			}
			if expectOperand {
				return malformed(Infix, tok, "')' must follow an operand or ')'")
			}
			depth--
		case KindOperator:
			if expectOperand {
				return malformed(Infix, tok, "operator must follow an operand or ')'")
			}
			operators++
			expectOperand = true
		}
	}

	switch {
	case len(tokens) == 0:
		return malformedAtEnd(Infix, text, "empty expression")
	case depth != 0:
		return malformedAtEnd(Infix, text, fmt.Sprintf("%d unclosed '('", depth))
	case expectOperand:
		return malformedAtEnd(Infix, text, "expression ends without an operand")
	case operands != operators+1:
		return malformedAtEnd(Infix, text, fmt.Sprintf("%d operands for %d operators", operands, operators))
	}

	return nil
}

func checkPostfix(text string, tokens []Token) error {
	available := 0
	for _, tok := range tokens {
		var err error
		if available, err = reduceCount(Postfix, tok, available); err != nil {
			return err
		}
	}

	return checkFinalCount(Postfix, text, len(tokens), available)
}

// checkPrefix mirrors checkPostfix, scanning right to left.
func checkPrefix(text string, tokens []Token) error {
	available := 0
	for i := len(tokens) - 1; i >= 0; i-- {
		var err error
		if available, err = reduceCount(Prefix, tokens[i], available); err != nil {
			return err
		}
	}

	return checkFinalCount(Prefix, text, len(tokens), available)
}

// reduceCount applies a token to the count of operands available for
// reduction: an operand adds one and an operator consumes two to produce one.
func reduceCount(n Notation, tok Token, available int) (int, error) {
	switch tok.Kind {
	case KindOperand:
		return available + 1, nil
	case KindOperator:
		if available < 2 {
			return available, malformed(n, tok, "operator needs two operands")
		}
		return available - 1, nil
	default:
		return available, &SyntaxError{Notation: n, Offset: tok.Offset, Token: tok.Text, Kind: ErrInvalidCharacter, Reason: "parentheses are only valid in infix"}
	}
}

func checkFinalCount(n Notation, text string, numTokens, available int) error {
	switch {
	case numTokens == 0:
		return malformedAtEnd(n, text, "empty expression")
	case available != 1:
		return malformedAtEnd(n, text, fmt.Sprintf("%d operands left unreduced", available))
	}

	return nil
}
