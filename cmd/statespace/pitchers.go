package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/fixture"
	"github.com/katalvlaran/statespace/pitchers"
)

func newPitchersCmd(a *app) *cobra.Command {
	var cfg pitchers.Config
	cmd := &cobra.Command{
		Use:   "pitchers",
		Short: "Measure a target volume with jugs of given capacities",
		Example: `  statespace pitchers --capacity 3,4 --target 2
  statespace pitchers --capacity 5,6,10,15,20 --target 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.solve(fixture.Entry{Name: "pitchers", Kind: fixture.KindPitchers, Pitchers: &cfg})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rep.Steps < 0 {
				fmt.Fprintf(out, "no way to measure %d: %s\n", cfg.Target, rep.Status)
				return nil
			}
			fmt.Fprintf(out, "%d actions\n", rep.Steps)
			fmt.Fprintf(out, "  start     %s\n", rep.States[0])
			for i, act := range rep.Actions {
				fmt.Fprintf(out, "  %-9s %s\n", act, rep.States[i+1])
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&cfg.Capacities, "capacity", "c", nil, "Jug capacities, comma separated")
	cmd.Flags().IntSliceVar(&cfg.Initial, "initial", nil, "Starting volumes (default: all empty)")
	cmd.Flags().IntVarP(&cfg.Target, "target", "t", 0, "Volume to measure")
	_ = cmd.MarkFlagRequired("capacity")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
