package main

import (
	"fmt"
	"log"

	"github.com/ChizhovVadim/cellclass/internal/dataset"
	"github.com/ChizhovVadim/cellclass/internal/trainer"
	"github.com/spf13/cobra"
)

func newTrainCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "train <class-root>",
		Short: "Train a model; every subdirectory of class-root is a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.cfg.NewClassifier()
			if err != nil {
				return err
			}
			log.Println("train", "model", a.cfg.Model, "folder", args[0])
			var provider = &dataset.DatasetProvider{
				Folder:  args[0],
				Labeled: true,
				Threads: a.cfg.Threads,
			}
			err = trainer.Run(cmd.Context(), provider, model, a.cfg.ModelPath)
			if err != nil {
				return err
			}
			if a.verbose {
				fmt.Fprintln(cmd.OutOrStdout(), model)
			}
			return nil
		},
	}
}
