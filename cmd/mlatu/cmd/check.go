package cmd

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/mlatu/internal/syntax"
)

// checkResult is the outcome of checking one input.
type checkResult struct {
	display string
	src     string
	err     error
}

func newCheckCmd(a *app) *cobra.Command {
	var mode string
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report syntax errors in sources",
		Long: `Parse every named source concurrently and print one diagnostic per
failing file. Results are printed in argument order. The exit status is 1
if any file failed. With no arguments, stdin is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			if err := stdinOnce(args); err != nil {
				return err
			}

			m := a.cfg.ParseMode()
			if mode != "" {
				var err error
				if m, err = syntax.ParseMode(mode); err != nil {
					return err
				}
			}
			if jobs <= 0 {
				jobs = a.cfg.Check.Jobs
			}

			results := make([]checkResult, len(args))
			var failed atomic.Int32

			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, name := range args {
				i, name := i, name
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					src, display, err := a.load(name, cmd.InOrStdin())
					if err == nil {
						_, err = syntax.Parse(m, display, src)
					}
					if err != nil {
						failed.Add(1)
					}
					results[i] = checkResult{display: display, src: src, err: err}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			d := diagnostic{color: *a.cfg.Output.Color}
			for _, r := range results {
				if r.err != nil {
					d.print(cmd.ErrOrStderr(), r.display, r.src, r.err)
				}
			}

			n := failed.Load()
			a.log.Printf("checked %d files, %d failed", len(args), n)
			if n > 0 {
				if len(args) > 1 {
					fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files failed\n", n, len(args))
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "grammar rule: term, terms, rule or rules (default from config)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files parsed in parallel (default from config)")
	return cmd
}
