package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/moyu-x/filehasher/internal"
	"github.com/moyu-x/filehasher/pkg/hasher"
	"github.com/moyu-x/filehasher/pkg/logger"
	"github.com/moyu-x/filehasher/pkg/result"
)

type Config struct {
	Hash struct {
		Algorithm  string
		DetectType bool `mapstructure:"detect_type"`
	}
	Scan struct {
		Workers int
		Iters   int
	}
	Report struct {
		Path     string
		Language string
	}
	Logging struct {
		Level string
		File  string
	}
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("hash.algorithm", string(hasher.DefaultAlgorithm))
	v.SetDefault("hash.detect_type", false)
	v.SetDefault("scan.workers", internal.DefaultWorkers)
	v.SetDefault("scan.iters", result.DefaultIters)
	v.SetDefault("report.path", "")
	v.SetDefault("report.language", internal.DefaultLanguage)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")
}

// Load reads the global viper instance: defaults, then config.yaml from the
// search path, then whatever flags were bound to it.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/." + internal.AppName)
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/" + internal.AppName)

	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
// A missing config file is not an error.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Get().Debug().Msgf("using config file: %s", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate normalises the algorithm name and bounds the progress interval.
// Non-positive worker counts are rejected.
func (c *Config) Validate() error {
	alg, err := hasher.ParseAlgorithm(c.Hash.Algorithm)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.Hash.Algorithm = string(alg)

	if c.Scan.Workers < 1 {
		return fmt.Errorf("invalid config: workers must be at least 1, got %d", c.Scan.Workers)
	}

	if iters := result.ClampIters(c.Scan.Iters); iters != c.Scan.Iters {
		logger.Get().Warn().Msgf("progress interval %d out of range, using %d", c.Scan.Iters, iters)
		c.Scan.Iters = iters
	}

	if c.Report.Language == "" {
		c.Report.Language = internal.DefaultLanguage
	}
	return nil
}
