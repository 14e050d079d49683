package config

import (
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/prep/model"
)

// Config is the configuration of the preparation pipeline.
type Config struct {
	Split SplitConfig `koanf:"split"`
	Clean CleanConfig `koanf:"clean"`
	Log   LogConfig   `koanf:"log"`
}

// SplitConfig configures the train/test split.
//
// Env: PREP_SPLIT_TEST_SIZE, PREP_SPLIT_SEED, PREP_SPLIT_TARGET, PREP_SPLIT_FEATURES
type SplitConfig struct {
	TestSize float64  `koanf:"test_size" validate:"gt=0,lt=1"`
	Seed     int64    `koanf:"seed" validate:"ne=0"`
	Target   string   `koanf:"target" validate:"required"`
	Features []string `koanf:"features" validate:"min=1,dive,required"`
}

// CleanConfig configures the cleaning step.
//
// Env: PREP_CLEAN_DROP
type CleanConfig struct {
	Drop []string `koanf:"drop"`
}

// LogConfig configures the process-wide logger.
//
// Env: PREP_LOG_LEVEL, PREP_LOG_JSON
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the configuration used when no file or environment overrides it.
func Default() *Config {
	return &Config{
		Split: SplitConfig{
			TestSize: model.DefaultTestSize,
			Seed:     model.DefaultSeed,
			Target:   model.DefaultTarget,
			Features: append([]string{}, model.DefaultFeatures...),
		},
		Clean: CleanConfig{
			Drop: append([]string{}, model.DefaultDrop...),
		},
		Log: LogConfig{
			Level: string(logger.InfoLevel),
		},
	}
}

// CleanData returns the cleaning strategy logging to l.
func (c *Config) CleanData(l logger.Logger) model.CleanData {
	return model.CleanData{Drop: c.Clean.Drop, Logger: l}
}

// SplitData returns the splitting strategy logging to l.
func (c *Config) SplitData(l logger.Logger) model.SplitData {
	return model.SplitData{
		Target:   c.Split.Target,
		Features: c.Split.Features,
		TestSize: c.Split.TestSize,
		Seed:     c.Split.Seed,
		Logger:   l,
	}
}

// Logger returns the logger configuration.
func (c *Config) Logger() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.Log.Level)
	cfg.JSON = c.Log.JSON
	return cfg
}
