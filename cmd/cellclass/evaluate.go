package main

import (
	"fmt"

	"github.com/ChizhovVadim/cellclass/internal/quality"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/spf13/cobra"
)

func newEvaluateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <class-root>",
		Short: "Report accuracy and confusion matrix of the model on a labeled folder tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := classifier.Load(a.cfg.ModelPath)
			if err != nil {
				return err
			}
			items, err := a.loadFolder(cmd, args[0], true)
			if err != nil {
				return err
			}
			report, err := quality.Evaluate(items, model)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.String())
			return nil
		},
	}
}
