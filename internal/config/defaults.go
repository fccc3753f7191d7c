package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/redpen-dev/redpen/internal/langtool"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Checker: CheckerConfig{
			URL:            langtool.DefaultBaseURL,
			Language:       langtool.DefaultLanguage,
			TimeoutSeconds: int(langtool.DefaultTimeout.Seconds()),
		},
	}
}

// Dump renders a config as YAML, the same format the config file uses.
func Dump(cfg *Config) (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}

// WriteDefault writes the default configuration to path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	out, err := Dump(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
