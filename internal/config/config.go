package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Targets  map[string]Target `yaml:"targets"`
	Settings Settings          `yaml:"settings"`
}

// Target is the prompt chrome for one named credential scope.
type Target struct {
	Instruction   string `yaml:"instruction,omitempty"`
	Supplementary string `yaml:"supplementary,omitempty"`
	Username      string `yaml:"username,omitempty"` // optional pre-fill
}

type Settings struct {
	Service          string `yaml:"service"` // credential-store service name
	RequireBiometric bool   `yaml:"require_biometric"`

	Prompt  PromptSettings  `yaml:"prompt"`
	Server  ServerSettings  `yaml:"server"`
	Logging LoggingSettings `yaml:"logging"`
}

type PromptSettings struct {
	ShowSaveOption            bool `yaml:"show_save_option"`
	UseInstanceCache          bool `yaml:"use_instance_cache"`
	ForceUIOnSavedCredentials bool `yaml:"force_ui_on_saved_credentials"`
}

type ServerSettings struct {
	Address string `yaml:"address"` // for the admin API (e.g., "127.0.0.1:8190")
	Path    string `yaml:"path"`    // base path (e.g., "/api")
}

type LoggingSettings struct {
	MaxSize    int  `yaml:"max_size"` // megabytes
	MaxBackups int  `yaml:"max_backups"`
	MaxAge     int  `yaml:"max_age"` // days
	Compress   bool `yaml:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Targets: make(map[string]Target),
		Settings: Settings{
			Service:          "credkeeper",
			RequireBiometric: false,
			Prompt: PromptSettings{
				ShowSaveOption:   true,
				UseInstanceCache: true,
			},
			Server: ServerSettings{
				Address: "127.0.0.1:8190",
				Path:    "/api",
			},
			Logging: LoggingSettings{
				MaxSize:    10,
				MaxBackups: 5,
				MaxAge:     30,
				Compress:   true,
			},
		},
	}
}

func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "credkeeper"), nil
}

func ConfigPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func (c *Config) Save() error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) AddTarget(name string, target Target) error {
	if c.Targets == nil {
		c.Targets = make(map[string]Target)
	}
	c.Targets[name] = target
	return c.Save()
}

func (c *Config) RemoveTarget(name string) error {
	delete(c.Targets, name)
	return c.Save()
}

func (c *Config) GetTarget(name string) (Target, bool) {
	target, exists := c.Targets[name]
	return target, exists
}

func (c *Config) ListTargets() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	return names
}
