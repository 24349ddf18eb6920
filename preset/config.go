// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package preset

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the external configuration surface, loadable from a YAML file
// and LOGGER_* environment variables.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `koanf:"level"`

	// Format is the output format ("json", "pretty").
	Format string `koanf:"format"`

	// Timestamps controls capture-time timestamps on entries.
	Timestamps bool `koanf:"timestamps"`

	// Prefix is prepended to every message as "[prefix] message".
	Prefix string `koanf:"prefix"`

	// SanitizeErrors scrubs secrets from attached error messages.
	SanitizeErrors bool `koanf:"sanitize_errors"`

	// RedactFields overrides the redacted context field names.
	RedactFields []string `koanf:"redact_fields"`

	// Production selects the production profile: extended redaction list
	// and error-tracker forwarding.
	Production bool `koanf:"production"`
}

// ConfigPathEnvVar is the environment variable that points at an optional
// YAML config file.
const ConfigPathEnvVar = "LOGGER_CONFIG"

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "LOGGER_"

// defaultConfig returns the built-in defaults, applied before the file and
// environment layers.
func defaultConfig() *Config {
	return &Config{
		Level:          "info",
		Format:         "json",
		Timestamps:     true,
		Prefix:         "",
		SanitizeErrors: true,
		RedactFields:   nil,
		Production:     false,
	}
}

// Load loads configuration using koanf with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file named by LOGGER_CONFIG
//  3. Environment variables: LOGGER_* overrides any setting
//
// Precedence is ENV > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// LOGGER_SANITIZE_ERRORS -> sanitize_errors
	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// redact_fields arrives from env as a comma-separated string
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps an environment variable name to a koanf path.
func envTransformFunc(key string) string {
	if key == ConfigPathEnvVar {
		return "" // file path pointer, not a config value
	}
	return strings.ToLower(strings.TrimPrefix(key, envPrefix))
}

// sliceConfigPaths lists the config paths parsed as comma-separated slices
// when they arrive as plain strings.
var sliceConfigPaths = []string{
	"redact_fields",
}

// processSliceFields converts comma-separated string values into slices for
// the known slice fields. YAML-sourced values are already slices and skip
// conversion.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		s, ok := val.(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				fields = append(fields, trimmed)
			}
		}
		if err := k.Set(path, fields); err != nil {
			return err
		}
	}
	return nil
}
