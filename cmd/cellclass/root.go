package main

import (
	"github.com/ChizhovVadim/cellclass/internal/config"
	"github.com/ChizhovVadim/cellclass/internal/dataset"
	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	var a = &app{v: config.New()}

	var root = &cobra.Command{
		Use:           "cellclass",
		Short:         "Classify segmented objects by their contour shape",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg, err = config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	var flags = root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json, toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "print models and descriptors")
	flags.String("model", "", "model kind: knn or lr")
	flags.Int("k", 0, "knn: number of neighbours")
	flags.Int("d", 0, "knn: minkowski order, 0 is chebyshev")
	flags.Float64("learning-rate", 0, "lr: adam learning rate")
	flags.Float64("beta", 0, "lr: regularization factor")
	flags.Float64("tolerance", 0, "lr: gradient norm to stop at")
	flags.Int("max-iterations", 0, "lr: iteration cap")
	flags.String("model-path", "", "model json file")
	flags.Int("threads", 0, "dataset loading threads")

	for key, name := range map[string]string{
		config.KeyModel:         "model",
		config.KeyK:             "k",
		config.KeyD:             "d",
		config.KeyLearningRate:  "learning-rate",
		config.KeyBeta:          "beta",
		config.KeyTolerance:     "tolerance",
		config.KeyMaxIterations: "max-iterations",
		config.KeyModelPath:     "model-path",
		config.KeyThreads:       "threads",
	} {
		// BindPFlag fails only for a nil flag.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newTrainCommand(a),
		newClassifyCommand(a),
		newEvaluateCommand(a),
		newDescribeCommand(a),
	)
	return root
}

func (a *app) loadFolder(cmd *cobra.Command, folder string, labeled bool) ([]domain.DatasetItem, error) {
	var provider = &dataset.DatasetProvider{
		Folder:  folder,
		Labeled: labeled,
		Threads: a.cfg.Threads,
	}
	return dataset.LoadAll(cmd.Context(), provider)
}
