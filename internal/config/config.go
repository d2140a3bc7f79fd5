// Package config provides Viper-based configuration loading for the battle simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// BattleConfig holds battle run settings.
type BattleConfig struct {
	// TurnLimit is the round ceiling; reaching it without elimination is a draw.
	TurnLimit int `mapstructure:"turn_limit"`
	// Seed seeds the battle's randomness source. Ignored unless SeedSet is true.
	Seed int64 `mapstructure:"seed"`
	// SeedSet records whether a seed was present in the config source at all;
	// without one the simulator draws a crypto-random seed and logs it.
	SeedSet bool `mapstructure:"-"`
	// PartiesDir is the directory of party YAML files; empty = sample parties.
	PartiesDir string `mapstructure:"parties_dir"`
	// PartyA and PartyB name the parties to pit against each other. Both must
	// be set when PartiesDir is set.
	PartyA string `mapstructure:"party_a"`
	PartyB string `mapstructure:"party_b"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Battle  BattleConfig  `mapstructure:"battle"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.TurnLimit < 1 {
		errs = append(errs, fmt.Sprintf("battle.turn_limit must be >= 1, got %d", b.TurnLimit))
	}
	if b.PartiesDir != "" {
		if b.PartyA == "" {
			errs = append(errs, "battle.party_a must be set when battle.parties_dir is set")
		}
		if b.PartyB == "" {
			errs = append(errs, "battle.party_b must be set when battle.parties_dir is set")
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Default returns the built-in configuration used when no config file is given.
//
// Postcondition: the returned Config passes Validate.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Battle:  BattleConfig{TurnLimit: 50},
	}
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with BATTLESIM_ prefix
	v.SetEnvPrefix("BATTLESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Battle.SeedSet = v.IsSet("battle.seed")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("battle.turn_limit", 50)
	v.SetDefault("battle.parties_dir", "")
	v.SetDefault("battle.party_a", "")
	v.SetDefault("battle.party_b", "")
}
