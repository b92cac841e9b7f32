package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// DefaultMaxBytes caps the size of a transcript read from disk.
const DefaultMaxBytes = 50 << 20

type Config struct {
	TranscriptsDir string   `toml:"transcripts_dir" envconfig:"TRANSCRIPTS_DIR" validate:"required"`
	MaxBytes       int64    `toml:"max_bytes" envconfig:"MAX_BYTES" validate:"gt=0"`
	TopN           int      `toml:"top_n" envconfig:"TOP_N" validate:"gte=1,lte=1000"`
	LogLevel       string   `toml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	MediaMarkers   []string `toml:"media_markers" envconfig:"MEDIA_MARKERS" validate:"dive,required"`
	Context        int      `toml:"context" envconfig:"CONTEXT" validate:"gte=0,lte=100"`
}

var validate = validator.New()

// Load reads ~/.config/wca/config.toml when present, then applies WCA_*
// environment overrides.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(home, ".config", "wca", "config.toml"), home)
}

func LoadFrom(cfgPath, home string) (*Config, error) {
	cfg := Default(home)

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if err := envconfig.Process("wca", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.TranscriptsDir = expandHome(cfg.TranscriptsDir, home)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func Default(home string) *Config {
	return &Config{
		TranscriptsDir: filepath.Join(home, "Downloads"),
		MaxBytes:       DefaultMaxBytes,
		TopN:           20,
		LogLevel:       "warn",
		Context:        3,
	}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
