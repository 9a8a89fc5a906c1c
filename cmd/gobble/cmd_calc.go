package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/gobble/grammar/arith"
	"github.com/dhamidi/gobble/parse"
)

var calcLog = commonlog.GetLogger("gobble.calc")

func newCalcCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate an arithmetic expression given as arguments. Without arguments,
read one expression per line from standard input and print each result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.ErrOrStderr(), g.cfg.Color)
			if len(args) > 0 {
				return evalLine(cmd.OutOrStdout(), p, strings.Join(args, " "))
			}
			return repl(cmd.InOrStdin(), cmd.OutOrStdout(), p)
		},
	}
}

func evalLine(out io.Writer, p *printer, src string) error {
	expr, err := arith.Parse(src)
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			p.Diagnostic("", src, perr)
			return errReported
		}
		return err
	}
	calcLog.Debugf("parsed %s", expr)

	v, err := arith.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

// repl evaluates each non-blank line of in. Errors are reported and the
// loop continues; the returned error says whether any line failed.
func repl(in io.Reader, out io.Writer, p *printer) error {
	prompt := isTerminal(out) && isTerminalReader(in)
	scanner := bufio.NewScanner(in)
	failed := false
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evalLine(out, p, line); err != nil {
			failed = true
			if !errors.Is(err, errReported) {
				fmt.Fprintf(p.w, "error: %s\n", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if failed {
		return errReported
	}
	return nil
}

func isTerminalReader(r io.Reader) bool {
	w, ok := r.(io.Writer)
	return ok && isTerminal(w)
}
