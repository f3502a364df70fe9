package notation_test

import (
	"fmt"

	"github.com/charithe/exprcalc/pkg/notation"
)

func Example() {
	postfix, _ := notation.InfixToPostfix("(10 + 2) * (34 + 4)")
	fmt.Println(postfix)

	prefix, _ := notation.InfixToPrefix("(10 + 2) * (34 + 4)")
	fmt.Println(prefix)

	infix, _ := notation.PostfixToInfix("11 22 33 44 + + *")
	fmt.Println(infix)

	result, _ := notation.EvaluatePrefix("+ 10 * 2 6")
	fmt.Println(result)

	_, err := notation.EvaluatePostfix("4 0 /")
	fmt.Println(err)

	_, err = notation.InfixToPostfix("1 + * 2")
	fmt.Println(err)

	// Output:
	// 10 2 + 34 4 + *
	// * + 10 2 + 34 4
	// (11 * (22 + (33 + 44)))
	// 22
	// 4 / 0: division by zero
	// invalid infix expression: malformed expression: operator must follow an operand or ')' ("*" at offset 4)
}
