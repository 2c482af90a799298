// Package config loads ragflowctl configuration from defaults, an optional
// YAML config file, and RAGFLOW_* environment variables, in ascending
// precedence. Command-line flags are applied on top by the command layer.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ragflowctl/internal/auth"

	"github.com/spf13/viper"
)

// Configuration defaults.
const (
	DefaultBaseURL   = "https://rag-api.guardennes.ai"
	DefaultTimeout   = 30 * time.Second
	DefaultTokenFile = ".ragflow_token"
)

// envPrefix namespaces the environment variables this client reads.
const envPrefix = "RAGFLOW"

// configName is the base name of the config file searched for when no
// explicit --config path is given.
const configName = "ragflowctl"

// Config holds the complete client configuration.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	TokenFile string        `mapstructure:"token_file"`
	Verbose   bool          `mapstructure:"verbose"`
	Auth      AuthConfig    `mapstructure:"auth"`
}

// AuthConfig holds authentication configuration. Email, Password, and
// Nickname are optional conveniences for scripted use; commands fall back to
// them when the corresponding flags are omitted.
type AuthConfig struct {
	Variant   string `mapstructure:"variant"`
	PublicKey string `mapstructure:"public_key"`
	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	Nickname  string `mapstructure:"nickname"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config

	v := viper.New()
	setDefaults(v)
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static and always decode.
		panic(fmt.Errorf("unable to decode default config: %w", err))
	}
	return &cfg
}

// Load builds the configuration from defaults, the config file, and the
// environment. cfgFile may be empty, in which case well-known locations are
// searched and a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ragflowctl")
	}

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// Config file not found; use defaults and environment.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindLegacyEnv wires the flat credential variable names scripted
// deployments already export. The nested forms (RAGFLOW_AUTH_EMAIL etc.)
// keep working through AutomaticEnv.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("auth.email", "RAGFLOW_AUTH_EMAIL", "RAGFLOW_EMAIL")
	_ = v.BindEnv("auth.password", "RAGFLOW_AUTH_PASSWORD", "RAGFLOW_PASSWORD")
	_ = v.BindEnv("auth.nickname", "RAGFLOW_AUTH_NICKNAME", "RAGFLOW_NICKNAME")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("token_file", DefaultTokenFile)
	v.SetDefault("verbose", false)

	// Auth defaults
	v.SetDefault("auth.variant", auth.VariantPlain)
	v.SetDefault("auth.public_key", "")
	v.SetDefault("auth.email", "")
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.nickname", "")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("base_url is missing a host")
	}

	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if c.TokenFile == "" {
		return errors.New("token_file is required")
	}

	if c.Auth.Variant != auth.VariantPlain && c.Auth.Variant != auth.VariantEncrypted {
		return fmt.Errorf("auth.variant must be %q or %q, got %q",
			auth.VariantPlain, auth.VariantEncrypted, c.Auth.Variant)
	}

	return nil
}
