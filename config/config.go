// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads dxrt settings from a file and layers them under the
// process environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/dxrt"
)

// Config holds runtime settings. Zero values mean "unspecified".
type Config struct {
	// Loader is the registered loader name; empty selects the default.
	Loader string `json:"loader" yaml:"loader" toml:"loader"`
	// DefaultAdapter is the preferred adapter name.
	DefaultAdapter string `json:"default_adapter" yaml:"default_adapter" toml:"default_adapter"`
	// FilterDeviceName keeps only adapters whose name contains it.
	FilterDeviceName string `json:"filter_device_name" yaml:"filter_device_name" toml:"filter_device_name"`
	// ApplicationName is embedded in the instance.
	ApplicationName string `json:"application_name" yaml:"application_name" toml:"application_name"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	// Companion lists extra instance extensions, space separated.
	Companion string `json:"companion_instance_extensions" yaml:"companion_instance_extensions" toml:"companion_instance_extensions"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("config: empty path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported extension %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Env returns an environment lookup that consults base first and falls back
// to the values of c for the variables dxrt reads. A nil base means os.Getenv.
func (c Config) Env(base func(string) string) func(string) string {
	if base == nil {
		base = os.Getenv
	}
	defaults := map[string]string{
		dxrt.EnvDefaultAdapter:   c.DefaultAdapter,
		dxrt.EnvFilterDeviceName: c.FilterDeviceName,
	}
	return func(key string) string {
		if v := base(key); v != "" {
			return v
		}
		return defaults[key]
	}
}
