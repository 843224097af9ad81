package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mlatu/internal/syntax"
)

func newFmtCmd(a *app) *cobra.Command {
	var write, list bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Reprint rule sources in canonical form",
		Long: `Parse each source as a sequence of rules and print its canonical form:
single spaces between terms and rules, followed by one newline.

With -w the result is written back to the file instead of stdout. With -l
only the names of files whose formatting differs are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if write {
					return fmt.Errorf("cannot use -w with standard input")
				}
				args = []string{"-"}
			}
			if err := stdinOnce(args); err != nil {
				return err
			}
			if write {
				for _, name := range args {
					if name == "-" {
						return fmt.Errorf("cannot use -w with standard input")
					}
				}
			}

			d := diagnostic{color: *a.cfg.Output.Color}
			failed := false
			for _, name := range args {
				src, display, err := a.load(name, cmd.InOrStdin())
				if err != nil {
					d.print(cmd.ErrOrStderr(), display, src, err)
					failed = true
					continue
				}
				rules, err := syntax.Parse(syntax.RulesMode, display, src)
				if err != nil {
					d.print(cmd.ErrOrStderr(), display, src, err)
					failed = true
					continue
				}

				out := formatRules(rules.(syntax.Rules))
				switch {
				case list:
					if out != src && out != src+"\n" {
						fmt.Fprintln(cmd.OutOrStdout(), display)
					}
				case write:
					if err := os.WriteFile(name, []byte(out), 0o644); err != nil {
						return err
					}
					a.log.Printf("wrote %s", name)
				default:
					fmt.Fprint(cmd.OutOrStdout(), out)
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list files whose formatting differs")
	return cmd
}

// formatRules returns the canonical form of rules on a single line.
// Line breaks are not separators, so rules cannot be split across lines.
func formatRules(rules syntax.Rules) string {
	return syntax.Format(rules) + "\n"
}
