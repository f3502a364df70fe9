package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charithe/exprcalc/pkg/calculator"
	"github.com/charithe/exprcalc/pkg/notation"
	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

var notations = []string{"infix", "prefix", "postfix", "rpn", "polish"}

var (
	app = kingpin.New("exprcalc", "Convert and evaluate infix, prefix and postfix expressions")

	addr      = app.Flag("addr", "Server address. Expressions are processed locally when empty").Envar("EXPRCALC_ADDR").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	timeout   = app.Flag("timeout", "Timeout for each remote call").Default("5s").Envar("EXPRCALC_TIMEOUT").Duration()
	noColor   = app.Flag("no-color", "Disable coloured output").Envar("EXPRCALC_NO_COLOR").Bool()

	validateCmd      = app.Command("validate", "Check that an expression is well formed")
	validateNotation = validateCmd.Flag("notation", "Notation of the expression").Short('n').Default("infix").Enum(notations...)
	validateExpr     = validateCmd.Arg("expr", "Expression").Required().Strings()

	convertCmd  = app.Command("convert", "Convert an expression to another notation")
	convertFrom = convertCmd.Flag("from", "Notation of the expression").Short('f').Default("infix").Enum(notations...)
	convertTo   = convertCmd.Flag("to", "Notation to convert to").Short('t').Default("postfix").Enum(notations...)
	convertExpr = convertCmd.Arg("expr", "Expression").Required().Strings()

	evalCmd      = app.Command("eval", "Evaluate an expression")
	evalNotation = evalCmd.Flag("notation", "Notation of the expression").Short('n').Default("infix").Enum(notations...)
	evalExpr     = evalCmd.Arg("expr", "Expression").Required().Strings()

	graphCmd      = app.Command("graph", "Print the expression tree in Graphviz DOT format")
	graphNotation = graphCmd.Flag("notation", "Notation of the expression").Short('n').Default("infix").Enum(notations...)
	graphExpr     = graphCmd.Arg("expr", "Expression").Required().Strings()

	replCmd      = app.Command("repl", "Read expressions line by line and print every notation and the value")
	replNotation = replCmd.Flag("notation", "Notation of the expressions").Short('n').Default("infix").Enum(notations...)

	streamCmd = app.Command("stream", "Stream postfix tokens to the server, one per line")
)

var (
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan).SprintFunc()
	valueColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *noColor {
		color.NoColor = true
	}

	if err := run(cmd, os.Stdin, os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd string, in io.Reader, out, errOut io.Writer) error {
	if cmd == streamCmd.FullCommand() {
		return doStream(in, out)
	}

	calc, closeFunc, err := createCalculator()
	if err != nil {
		return errors.Wrap(err, "failed to connect to server")
	}
	defer closeFunc()

	switch cmd {
	case validateCmd.FullCommand():
		return doValidate(calc, mustNotation(*validateNotation), joinArgs(*validateExpr), out)
	case convertCmd.FullCommand():
		return doConvert(calc, mustNotation(*convertFrom), mustNotation(*convertTo), joinArgs(*convertExpr), out)
	case evalCmd.FullCommand():
		return doEval(calc, mustNotation(*evalNotation), joinArgs(*evalExpr), out)
	case graphCmd.FullCommand():
		return doGraph(calc, mustNotation(*graphNotation), joinArgs(*graphExpr), out)
	case replCmd.FullCommand():
		return doRepl(calc, mustNotation(*replNotation), in, out, errOut)
	default:
		return errors.Errorf("unknown command: %s", cmd)
	}
}

func doValidate(calc calculator.Calculator, n notation.Notation, expr string, out io.Writer) error {
	ctx, cancel := callContext()
	defer cancel()

	if err := calc.Validate(ctx, n, expr); err != nil {
		return err
	}

	fmt.Fprintf(out, "valid %s expression\n", n)
	return nil
}

func doConvert(calc calculator.Calculator, from, to notation.Notation, expr string, out io.Writer) error {
	ctx, cancel := callContext()
	defer cancel()

	converted, err := calc.Convert(ctx, from, to, expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, converted)
	return nil
}

func doEval(calc calculator.Calculator, n notation.Notation, expr string, out io.Writer) error {
	ctx, cancel := callContext()
	defer cancel()

	result, err := calc.Evaluate(ctx, n, expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)
	return nil
}

func doGraph(calc calculator.Calculator, n notation.Notation, expr string, out io.Writer) error {
	ctx, cancel := callContext()
	defer cancel()

	dot, err := calc.Graph(ctx, n, expr)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, dot)
	return err
}

// doRepl describes every non-empty line read from in. Failures are reported
// as they happen and summarised in the returned error.
func doRepl(calc calculator.Calculator, n notation.Notation, in io.Reader, out, errOut io.Writer) error {
	interactive := isTerminal(in)
	prompt := func() {
		if interactive {
			fmt.Fprint(out, "> ")
		}
	}

	failed := 0
	scanner := bufio.NewScanner(in)
	prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if err := describe(calc, n, line, out); err != nil {
				printError(errOut, err)
				failed++
			}
		}
		prompt()
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	if failed > 0 {
		return errors.Errorf("%d expression(s) failed", failed)
	}

	return nil
}

// describe prints expr in all three notations followed by its value.
func describe(calc calculator.Calculator, n notation.Notation, expr string, out io.Writer) error {
	ctx, cancel := callContext()
	defer cancel()

	if err := calc.Validate(ctx, n, expr); err != nil {
		return err
	}

	forms := make(map[notation.Notation]string, 3)
	for _, to := range []notation.Notation{notation.Infix, notation.Prefix, notation.Postfix} {
		converted, err := calc.Convert(ctx, n, to, expr)
		if err != nil {
			return err
		}
		forms[to] = converted
	}

	result, err := calc.Evaluate(ctx, n, expr)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s\n", labelColor("infix:  "), forms[notation.Infix])
	fmt.Fprintf(out, "%s  %s\n", labelColor("prefix: "), forms[notation.Prefix])
	fmt.Fprintf(out, "%s  %s\n", labelColor("postfix:"), forms[notation.Postfix])
	fmt.Fprintf(out, "%s  %s\n", labelColor("value:  "), valueColor(result))
	return nil
}

func doStream(in io.Reader, out io.Writer) error {
	if *addr == "" {
		return errors.New("stream mode requires --addr")
	}

	client, err := createClient()
	if err != nil {
		return errors.Wrap(err, "failed to connect to server")
	}
	defer client.Close()

	if isTerminal(in) {
		fmt.Fprintln(out, "Enter each postfix operator or operand in a new line. Press Ctrl+D to end")
	}

	tokChan := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(tokChan)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if tok := strings.TrimSpace(scanner.Text()); tok != "" {
				tokChan <- tok
			}
		}
		readErr <- scanner.Err()
	}()

	result, err := client.EvaluateStream(tokChan)
	if err != nil {
		return err
	}

	if err := <-readErr; err != nil {
		return errors.Wrap(err, "failed to read stream")
	}

	fmt.Fprintln(out, result)
	return nil
}

// createCalculator returns an in-process calculator unless a server address
// was given.
func createCalculator() (calculator.Calculator, func(), error) {
	if *addr == "" {
		return calculator.Local{}, func() {}, nil
	}

	client, err := createClient()
	if err != nil {
		return nil, nil, err
	}

	return client, func() { client.Close() }, nil
}

func createClient() (*calculator.Client, error) {
	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}

func callContext() (context.Context, context.CancelFunc) {
	d := 5 * time.Second
	if timeout != nil && *timeout > 0 {
		d = *timeout
	}
	return context.WithTimeout(context.Background(), d)
}

func mustNotation(s string) notation.Notation {
	n, err := notation.ParseNotation(s)
	if err != nil {
		// kingpin restricts the flag values to known notations
		panic(err)
	}
	return n
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func printError(w io.Writer, err error) {
	errColor.Fprintf(w, "Error: %v\n", err)
}
