package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the problems of a fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(file)
			if err != nil {
				return err
			}
			for _, e := range doc.Problems {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Name, e.Kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file (default: built-in scenarios)")
	return cmd
}
