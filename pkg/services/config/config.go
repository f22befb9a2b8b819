package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "COST_COMPASS"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type AWSConfig struct {
	// CredentialsPath is the ini profile file holding the active credential.
	CredentialsPath string `mapstructure:"credentials_path"`
	LookbackDays    int    `mapstructure:"lookback_days"`
}

type AdvisorConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// Load reads configuration from an optional file plus COST_COMPASS_*
// environment variables; the environment wins. An empty path skips the
// file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8081")
	v.SetDefault("aws.credentials_path", defaultCredentialsPath())
	v.SetDefault("aws.lookback_days", 30)
	v.SetDefault("advisor.model", "")
	v.SetDefault("advisor.max_tokens", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// OPENAI_API_KEY is the conventional name; honor it without the prefix.
	_ = v.BindEnv("advisor.api_key", envPrefix+"_ADVISOR_API_KEY", "OPENAI_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cost-compass/credentials"
	}
	return filepath.Join(home, ".cost-compass", "credentials")
}
