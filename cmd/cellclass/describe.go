package main

import (
	"fmt"

	"github.com/ChizhovVadim/cellclass/internal/quality"
	"github.com/spf13/cobra"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <class-root>",
		Short: "Print per-label descriptor statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadFolder(cmd, args[0], true)
			if err != nil {
				return err
			}
			for _, stats := range quality.Describe(items) {
				fmt.Fprintln(cmd.OutOrStdout(), stats)
			}
			return nil
		},
	}
}
