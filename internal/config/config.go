package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional YAML
// file and environment variables.
type Config struct {
	Env    string `mapstructure:"env"`     // current application environment (local, production)
	Addr   string `mapstructure:"addr"`    // HTTP listen address
	DBPath string `mapstructure:"db_path"` // path to the SQLite score history file
	WebDir string `mapstructure:"web_dir"` // directory holding templates/ and static/
	Ollama Ollama `mapstructure:"ollama"`  // helper-page language model settings
}

// Ollama configures the external language-model subprocess.
type Ollama struct {
	Binary  string        `mapstructure:"binary"`  // command to invoke
	Model   string        `mapstructure:"model"`   // model name passed to `run`
	Timeout time.Duration `mapstructure:"timeout"` // per-call bound; 0 means unbounded
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "progress.db")
	v.SetDefault("web_dir", "web")
	v.SetDefault("ollama.binary", "ollama")
	v.SetDefault("ollama.model", "gemma3:270m")
	v.SetDefault("ollama.timeout", "0s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("addr", "ADDR")
	_ = v.BindEnv("db_path", "DB_PATH")
	_ = v.BindEnv("web_dir", "WEB_DIR")
	_ = v.BindEnv("ollama.binary", "OLLAMA_BINARY")
	_ = v.BindEnv("ollama.model", "OLLAMA_MODEL")
	_ = v.BindEnv("ollama.timeout", "OLLAMA_TIMEOUT")

	// The config file is optional; env vars and defaults suffice.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
