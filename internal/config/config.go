package config

import (
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ChizhovVadim/cellclass/internal/ml"
	"github.com/ChizhovVadim/cellclass/pkg/classifier"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "CELLCLASS"

const (
	KeyModel         = "model"
	KeyK             = "k"
	KeyD             = "d"
	KeyLearningRate  = "learning_rate"
	KeyBeta          = "beta"
	KeyTolerance     = "tolerance"
	KeyMaxIterations = "max_iterations"
	KeyModelPath     = "model_path"
	KeyThreads       = "threads"
)

type Config struct {
	Model         string  `mapstructure:"model"`
	K             int     `mapstructure:"k"`
	D             int     `mapstructure:"d"`
	LearningRate  float64 `mapstructure:"learning_rate"`
	Beta          float64 `mapstructure:"beta"`
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	ModelPath     string  `mapstructure:"model_path"`
	Threads       int     `mapstructure:"threads"`
}

// New returns a viper instance with defaults and CELLCLASS_* environment lookup.
func New() *viper.Viper {
	var v = viper.New()
	v.SetDefault(KeyModel, classifier.KindKNN)
	v.SetDefault(KeyK, 3)
	v.SetDefault(KeyD, 2)
	v.SetDefault(KeyLearningRate, ml.LearningRate)
	v.SetDefault(KeyBeta, classifier.DefaultBeta)
	v.SetDefault(KeyTolerance, classifier.DefaultTolerance)
	v.SetDefault(KeyMaxIterations, classifier.DefaultMaxIterations)
	v.SetDefault(KeyModelPath, "model.json")
	v.SetDefault(KeyThreads, runtime.NumCPU())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (if any) into v and returns the validated settings.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %v", configFile)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.Model = strings.ToLower(strings.TrimSpace(cfg.Model))
	if cfg.Model == "" {
		cfg.Model = classifier.KindKNN
	}
	cfg.ModelPath = MapPath(cfg.ModelPath)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Model {
	case classifier.KindKNN:
		if c.K < 1 {
			return errors.Wrapf(classifier.ErrInvalidParameter, "k = %v", c.K)
		}
		if c.D < 0 {
			return errors.Wrapf(classifier.ErrInvalidParameter, "d = %v", c.D)
		}
	case classifier.KindLR:
		if c.LearningRate <= 0 {
			return errors.Wrapf(classifier.ErrInvalidParameter, "learning_rate = %v", c.LearningRate)
		}
		if c.Tolerance <= 0 {
			return errors.Wrapf(classifier.ErrInvalidParameter, "tolerance = %v", c.Tolerance)
		}
		if c.MaxIterations < 1 {
			return errors.Wrapf(classifier.ErrInvalidParameter, "max_iterations = %v", c.MaxIterations)
		}
	default:
		return errors.Wrapf(classifier.ErrUnsupportedModelKind, "model %q", c.Model)
	}
	if c.ModelPath == "" {
		return errors.Wrap(classifier.ErrInvalidParameter, "empty model_path")
	}
	return nil
}

// NewClassifier returns an untrained model of the configured kind.
func (c *Config) NewClassifier() (classifier.Classifier, error) {
	switch c.Model {
	case classifier.KindKNN:
		return classifier.NewKNN(c.K, c.D), nil
	case classifier.KindLR:
		var m = classifier.NewLogisticRegression()
		m.LearningRate = c.LearningRate
		m.Beta = c.Beta
		m.Tolerance = c.Tolerance
		m.MaxIterations = c.MaxIterations
		return m, nil
	}
	return nil, errors.Wrapf(classifier.ErrUnsupportedModelKind, "model %q", c.Model)
}

// MapPath expands a leading "~/" to the current user's home directory.
func MapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		curUser, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
	}
	return path
}
