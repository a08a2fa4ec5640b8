// Package config provides viper-based configuration with defaults, an
// optional YAML file and environment overrides. API keys only ever come
// from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled"`
		Model          string `mapstructure:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key"`
	} `mapstructure:"ai"`

	OCR struct {
		APIKey   string `mapstructure:"api_key"`
		FolderID string `mapstructure:"folder_id"`
	} `mapstructure:"ocr"`

	Parsers struct {
		Sberbank struct {
			ForceDebitSign bool `mapstructure:"force_debit_sign"`
		} `mapstructure:"sberbank"`
	} `mapstructure:"parsers"`

	Categories struct {
		File string `mapstructure:"file"`
	} `mapstructure:"categories"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter"`
	} `mapstructure:"csv"`
}

// AIAvailable reports whether the AI path can run at all: enabled and a
// credential present. The key itself is treated as an opaque availability
// signal, never validated here.
func (c *Config) AIAvailable() bool {
	return c.AI.Enabled && c.AI.APIKey != ""
}

// Load initializes configuration: defaults, then an optional config.yaml
// (current directory or ~/.stmt-parse), then STMT_* environment variables.
// GEMINI_API_KEY and the Yandex Vision variables are bound unprefixed, the
// way deployments already set them.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.stmt-parse")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	for key, env := range map[string]string{
		"ai.api_key":    "GEMINI_API_KEY",
		"ocr.api_key":   "YANDEX_VISION_API_KEY",
		"ocr.folder_id": "YANDEX_FOLDER_ID",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("parsers.sberbank.force_debit_sign", true)

	v.SetDefault("categories.file", "")
	v.SetDefault("csv.delimiter", ",")
}

func validate(cfg *Config) error {
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", cfg.Log.Format)
	}
	if cfg.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", cfg.AI.TimeoutSeconds)
	}
	if len(cfg.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", cfg.CSV.Delimiter)
	}
	return nil
}
