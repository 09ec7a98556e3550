// Package config loads application configuration from file and environment
// and initializes the global logger. The loaded Config is immutable after
// startup; components receive the pieces they need by value.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gridpoint-labs/sitescout/internal/decision"
	"github.com/gridpoint-labs/sitescout/internal/siterank"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
}

// StoreConfig configures the evaluation history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`             // sqlite or postgres
	Path        string `yaml:"path" mapstructure:"path"`                 // sqlite file path
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"` // postgres conn string
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// EngineConfig holds the decision engine parameters. Defaults mirror the
// standard weight tables; overriding them is for calibration experiments.
type EngineConfig struct {
	Sigma           float64              `yaml:"sigma" mapstructure:"sigma"`
	DecisionWeights decision.Weights     `yaml:"decision_weights" mapstructure:"decision_weights"`
	GoalWeights     siterank.GoalWeights `yaml:"goal_weights" mapstructure:"goal_weights"`
	FinalBlend      siterank.FinalBlend  `yaml:"final_blend" mapstructure:"final_blend"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SITESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "sitescout.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("engine.sigma", 0.1)
	dw := decision.DefaultWeights()
	v.SetDefault("engine.decision_weights.land", dw.Land)
	v.SetDefault("engine.decision_weights.energy", dw.Energy)
	v.SetDefault("engine.decision_weights.grid", dw.Grid)
	v.SetDefault("engine.decision_weights.economic", dw.Economic)
	v.SetDefault("engine.decision_weights.environmental", dw.Environmental)
	gw := siterank.DefaultGoalWeights()
	v.SetDefault("engine.goal_weights.economic", gw.Economic)
	v.SetDefault("engine.goal_weights.environmental", gw.Environmental)
	v.SetDefault("engine.goal_weights.energy", gw.Energy)
	fb := siterank.DefaultFinalBlend()
	v.SetDefault("engine.final_blend.economic", fb.Economic)
	v.SetDefault("engine.final_blend.comprehensive", fb.Comprehensive)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks structural consistency of the loaded configuration.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return eris.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Engine.Sigma <= 0 {
		return eris.Errorf("config: engine sigma must be positive, got %v", c.Engine.Sigma)
	}
	if err := c.Engine.DecisionWeights.Validate(); err != nil {
		return err
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
