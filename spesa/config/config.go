package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed config.yaml
var defaultConfig embed.FS

// holds aggregate configuration across the spesabot environment.
type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	Provider Provider     `mapstructure:"provider"`
	Store    StoreConfig  `mapstructure:"store"`
	Bot      BotConfig    `mapstructure:"bot"`
	Observe  ObsConfig    `mapstructure:"observability"`
}

// rest server config
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Debug   bool   `mapstructure:"debug"`
}

// external llm provider
type Provider struct {
	Name          string        `mapstructure:"name"`
	Model         string        `mapstructure:"model"`
	FallbackModel string        `mapstructure:"fallback_model"`
	ApiKey        string        `mapstructure:"apikey"`
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type BotConfig struct {
	Token string        `mapstructure:"token"`
	Poll  time.Duration `mapstructure:"poll"`
}

type ObsConfig struct {
	Enable bool `mapstructure:"enable"`
	// prometheus | otlp | stdout
	Exporter        string `mapstructure:"exporter"`
	TraceEndpoint   string `mapstructure:"trace_endpoint"`
	MetricsEndpoint string `mapstructure:"metrics_endpoint"`
	// secure endpoint (https)
	Secure bool `mapstructure:"secure"`
}

// Validate checks the configuration for correctness. A missing provider api
// key is fine, the assistant degrades instead of crashing.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server address is required")
	}
	if _, _, err := net.SplitHostPort(c.Server.Address); err != nil {
		return fmt.Errorf("invalid server address format: %w", err)
	}

	if c.Provider.Name == "" {
		return errors.New("provider name is required")
	}
	if c.Provider.Model == "" {
		return errors.New("provider model is required")
	}

	if c.Store.Path == "" {
		return errors.New("store path is required")
	}
	return nil
}

// load configuration from default embedded config.yaml, provided config
// file, env and flags before validation.
func LoadAndValidate(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// bind env variable
	v.SetEnvPrefix("SPESABOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// bind pflags
	for flagName, configKey := range flagToConfigKeyMap {
		v.BindPFlag(configKey, flags.Lookup(flagName))
	}

	// default value from the embedded config.yaml
	defaultBytes, _ := defaultConfig.ReadFile("config.yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultBytes)); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	// merge external config file if provided
	configFile, _ := flags.GetString(FLAG_SERVER_CONFIG_FILE)
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		providedBytes, _ := io.ReadAll(f)
		if err := v.MergeConfig(bytes.NewReader(providedBytes)); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// telegram token also accepted via the legacy env var
	if cfg.Bot.Token == "" {
		cfg.Bot.Token = os.Getenv("TG_BOT_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
