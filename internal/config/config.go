package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"hanzi-cli/internal/store"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Data   string    `mapstructure:"data"`
	Format string    `mapstructure:"format"`
	Pretty bool      `mapstructure:"pretty"`
	TUI    TUIConfig `mapstructure:"tui"`
}

type TUIConfig struct {
	// Theme is "auto", "light" or "dark".
	Theme string `mapstructure:"theme"`
	// Glyphs is "unicode" or "ascii".
	Glyphs string `mapstructure:"glyphs"`
	// DebugLog is a file path; empty disables logging.
	DebugLog string `mapstructure:"debug_log"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"data":      "data",
	"format":    "format",
	"pretty":    "pretty",
	"theme":     "tui.theme",
	"glyphs":    "tui.glyphs",
	"debug-log": "tui.debug_log",
}

// Load resolves configuration with precedence flags > HANZI_* env > config
// file > defaults. A missing config file is fine; a broken one is not.
// Only flags present in flags are bound.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if filepath.Ext(configFile) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName("hanzi")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hanzi")
	}

	v.SetDefault("data", store.DefaultPath)
	v.SetDefault("format", "json")
	v.SetDefault("pretty", false)
	v.SetDefault("tui.theme", "auto")
	v.SetDefault("tui.glyphs", "ascii")
	v.SetDefault("tui.debug_log", "")

	v.SetEnvPrefix("HANZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Data = strings.TrimSpace(cfg.Data)
	if cfg.Data == "" {
		cfg.Data = store.DefaultPath
	}
	return &cfg, nil
}
