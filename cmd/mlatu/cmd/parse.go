package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mlatu/internal/config"
	"github.com/you-not-fish/mlatu/internal/syntax"
)

func newParseCmd(a *app) *cobra.Command {
	var mode, format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a source",
		Long: `Parse a single source and print its syntax tree.

The input is read from the named file, or from stdin when the name is "-"
or omitted. --mode selects the grammar rule applied to the whole input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}

			m := a.cfg.ParseMode()
			if mode != "" {
				var err error
				if m, err = syntax.ParseMode(mode); err != nil {
					return err
				}
			}
			f := a.cfg.Output.Format
			if format != "" {
				f = format
			}
			if err := config.CheckFormat(f); err != nil {
				return err
			}

			src, display, err := a.load(name, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a.log.Printf("parsing %s as %s", display, m)
			node, err := syntax.Parse(m, display, src)
			if err != nil {
				diagnostic{color: *a.cfg.Output.Color}.print(cmd.ErrOrStderr(), display, src, err)
				return errReported
			}
			return writeNode(cmd.OutOrStdout(), f, node)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "grammar rule: term, terms, rule or rules (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml or canon (default from config)")
	return cmd
}

// writeNode prints node in the given output format.
func writeNode(w io.Writer, format string, node syntax.Node) error {
	switch format {
	case "text":
		syntax.Fprint(w, node)
		return nil
	case "json":
		return syntax.FprintJSON(w, node)
	case "yaml":
		return syntax.FprintYAML(w, node)
	case "canon":
		_, err := fmt.Fprintln(w, syntax.Format(node))
		return err
	}
	return fmt.Errorf("unknown output format %q (want one of %v)", format, config.Formats)
}
