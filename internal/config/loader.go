package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const envPrefix = "PSMAREPORT_"

// Load reads configuration from the YAML file at configPath, then overrides
// with PSMAREPORT_* environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (PSMAREPORT_SERVER_PORT, PSMAREPORT_BACKEND_PROVIDER, ...)
//  2. YAML config file (default ~/.config/psmareport/config.yaml)
//  3. Hardcoded defaults
//
// A missing or unreadable config file is not fatal: the error is logged and
// the defaults (plus environment) are used, so a clinician's workstation
// with a mangled config still starts.
func Load(configPath string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	k := koanf.New(".")

	if configPath == "" {
		configPath = defaultConfigPath()
	}

	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			logger.Warn("config file unparseable, continuing with defaults",
				zap.String("path", configPath),
				zap.Error(err))
			k = koanf.New(".")
		}
	} else if !os.IsNotExist(err) {
		logger.Warn("config file unreadable, continuing with defaults",
			zap.String("path", configPath),
			zap.Error(err))
	}

	// Environment variables use underscore separator after the prefix.
	// PSMAREPORT_SERVER_PORT -> server.port
	// PSMAREPORT_BACKEND_API_KEY_FILE -> backend.api_key_file
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ReadAPIKey loads the backend bearer key from a file, trimming whitespace.
func ReadAPIKey(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("api key file path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading api key file: %w", err)
	}
	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", path)
	}
	return key, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "psmareport", "config.yaml")
}

func defaultVectorStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vectorstore"
	}
	return filepath.Join(home, ".config", "psmareport", "vectorstore")
}
