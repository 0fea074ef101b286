package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// MailConfig holds the IMAP server settings.
type MailConfig struct {
	// Host is the IMAP server hostname.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the IMAP port; 993 is implicit TLS.
	Port string `mapstructure:"port" yaml:"port"`

	// Username is the IMAP login name.
	Username string `mapstructure:"username" yaml:"username"`

	// Mailbox is the folder searched for recent messages.
	Mailbox string `mapstructure:"mailbox" yaml:"mailbox"`
}

// AIConfig holds settings for the summarization backend.
type AIConfig struct {
	Model string `mapstructure:"model" yaml:"model"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Mail MailConfig `mapstructure:"mail" yaml:"mail"`
	AI   AIConfig   `mapstructure:"ai" yaml:"ai"`

	// RefreshTimeoutSec bounds one end-to-end refresh.
	RefreshTimeoutSec int `mapstructure:"refresh_timeout_sec" yaml:"refresh_timeout_sec"`

	// HistoryLimit caps how many archived briefings are listed.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/daybrief/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "daybrief", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Mail: MailConfig{
			Port:    "993",
			Mailbox: "INBOX",
		},
		AI: AIConfig{
			Model: "gemini-2.5-flash",
		},
		RefreshTimeoutSec: 60,
		HistoryLimit:      20,
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
// IMAP_SERVER and IMAP_USERNAME environment variables override the file
// so the app works with nothing but a .env.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("mail.port", "993")
	v.SetDefault("mail.mailbox", "INBOX")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("refresh_timeout_sec", 60)
	v.SetDefault("history_limit", 20)

	_ = v.BindEnv("mail.host", "IMAP_SERVER")
	_ = v.BindEnv("mail.username", "IMAP_USERNAME")
	_ = v.BindEnv("ai.model", "GEMINI_MODEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return configFromViper(v)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return configFromViper(v)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return configFromViper(v)
}

// configFromViper unmarshals the resolved viper values (defaults, file,
// and bound environment variables) into an AppConfig.
func configFromViper(v *viper.Viper) (*AppConfig, error) {
	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("mail", cfg.Mail)
	v.Set("ai", cfg.AI)
	v.Set("refresh_timeout_sec", cfg.RefreshTimeoutSec)
	v.Set("history_limit", cfg.HistoryLimit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
