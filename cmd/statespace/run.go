package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/fixture"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		file     string
		only     []string
		parallel int
		draw     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve every problem of a fixture",
		Long:  `Solves the problems of a fixture file (or the built-in scenarios) concurrently and prints one line per problem, in fixture order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1, got %d", parallel)
			}
			doc, err := a.loadDocument(file)
			if err != nil {
				return err
			}
			entries := doc.Problems
			if len(only) > 0 {
				entries = make([]fixture.Entry, 0, len(only))
				for _, name := range only {
					e, err := doc.Lookup(name)
					if err != nil {
						return err
					}
					entries = append(entries, e)
				}
			}

			reports := make([]fixture.Report, len(entries))
			var g errgroup.Group
			g.SetLimit(parallel)
			for i, e := range entries {
				g.Go(func() error {
					rep, err := a.solve(e)
					if err != nil {
						return fmt.Errorf("%s: %w", e.Name, err)
					}
					reports[i] = rep
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, fixture.Table(reports))
			if draw {
				for _, r := range reports {
					if r.Drawing != "" {
						fmt.Fprintf(out, "\n%s:\n%s", r.Name, r.Drawing)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file (default: built-in scenarios)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Solve only the named problems")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.GOMAXPROCS(0), "Maximum problems solved at once")
	cmd.Flags().BoolVar(&draw, "draw", false, "Draw maze routes")
	return cmd
}
