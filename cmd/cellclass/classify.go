package main

import (
	"fmt"

	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/ChizhovVadim/cellclass/pkg/features"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newClassifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <folder>",
		Short: "Classify every object of every contour file in folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := classifier.Load(a.cfg.ModelPath)
			if err != nil {
				return err
			}
			var out = cmd.OutOrStdout()
			if a.verbose {
				fmt.Fprintln(out, model)
			}
			items, err := a.loadFolder(cmd, args[0], false)
			if err != nil {
				return err
			}
			for _, item := range items {
				var bad int
				for _, object := range item.Objects {
					label, err := model.Predict(object)
					if err != nil {
						return errors.Wrapf(err, "classify %v", item.Path)
					}
					if label == classifier.LabelBad {
						bad++
					}
					if a.verbose {
						fmt.Fprintln(out, object, features.Extract(object.Contour()), label)
					}
				}
				fmt.Fprintf(out, "%v: bad = %v/%v\n", item.Path, bad, len(item.Objects))
			}
			return nil
		},
	}
}
