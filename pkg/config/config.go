// Deployment configuration for the booking client: where the booking
// service lives and how the client identifies itself. UI preferences are
// kept separately in Fyne preferences; this file covers only what an
// operator would set per installation.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	// Header is the request header the backend reads the identity token
	// from. Defaults to the header the Telegram mini-app variant of this
	// client already used, so one backend serves both.
	Header    string `mapstructure:"header"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token_file"`
}

// Load reads roombooker.yaml (working directory or ~/.config/roombooker)
// plus ROOMBOOKER_* environment overrides. A missing config file is fine;
// the defaults point at a local dev server.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.url", "http://localhost:8080/api")
	v.SetDefault("server.timeout", 15*time.Second)
	v.SetDefault("auth.header", "X-Telegram-Initdata")
	v.SetDefault("auth.token", "")
	v.SetDefault("auth.token_file", "")

	v.SetConfigName("roombooker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/roombooker")

	v.SetEnvPrefix("ROOMBOOKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ResolveToken returns the identity token, preferring the inline value
// over the token file. Absence of a token is not an error: the client
// sends an empty credential and lets the server reject it.
func (c *Config) ResolveToken() string {
	if c.Auth.Token != "" {
		return c.Auth.Token
	}
	if c.Auth.TokenFile != "" {
		data, err := os.ReadFile(c.Auth.TokenFile)
		if err != nil {
			logrus.WithError(err).WithField("path", c.Auth.TokenFile).Warn("Failed to read token file")
			return ""
		}
		return strings.TrimSpace(string(data))
	}
	return ""
}
