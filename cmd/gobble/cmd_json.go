package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gobble/format"
	gjson "github.com/dhamidi/gobble/grammar/json"
	"github.com/dhamidi/gobble/parse"
)

func newJSONCmd(g *globals) *cobra.Command {
	var outputFormat string
	var errorFormat string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document and print it in another format",
		Long: `Parse a JSON document from file, or from standard input when no file is
given, and print it as canonical JSON, YAML or tab-separated lines.
Syntax errors are printed with the offending line and exit status 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				g.cfg.Format = outputFormat
			}
			if cmd.Flags().Changed("error-format") {
				g.cfg.ErrorFormat = errorFormat
			}
			if err := g.cfg.Validate(); err != nil {
				return err
			}

			name := "<stdin>"
			var data []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				data, err = os.ReadFile(name)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read json: %w", err)
			}

			src := string(data)
			value, err := gjson.Parse(src)
			if err != nil {
				var perr *parse.Error
				if errors.As(err, &perr) {
					p := newPrinter(cmd.ErrOrStderr(), g.cfg.Color)
					return reportError(g, p, cmd.OutOrStdout(), name, src, perr)
				}
				return fmt.Errorf("parse %s: %w", name, err)
			}

			encoder, err := format.New(g.cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, line)")
	cmd.Flags().StringVar(&errorFormat, "error-format", "text", "syntax error format (text, json)")

	return cmd
}
