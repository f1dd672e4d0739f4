package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified"; Default supplies the fallbacks.
type Config struct {
	Host                   string   `json:"host" yaml:"host" toml:"host"`
	Port                   int      `json:"port" yaml:"port" toml:"port"`
	ModelPath              string   `json:"model_path" yaml:"model_path" toml:"model_path"`
	LogLevel               string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat              string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	LogFile                string   `json:"log_file" yaml:"log_file" toml:"log_file"`
	MaxBodyBytes           int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CacheSize              int      `json:"cache_size" yaml:"cache_size" toml:"cache_size"`
	CORSOrigins            []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	ShutdownTimeoutSeconds int      `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Merge returns base with every non-zero field of overlay applied on top.
func Merge(base, overlay Config) Config {
	if overlay.Host != "" { base.Host = overlay.Host }
	if overlay.Port != 0 { base.Port = overlay.Port }
	if overlay.ModelPath != "" { base.ModelPath = overlay.ModelPath }
	if overlay.LogLevel != "" { base.LogLevel = overlay.LogLevel }
	if overlay.LogFormat != "" { base.LogFormat = overlay.LogFormat }
	if overlay.LogFile != "" { base.LogFile = overlay.LogFile }
	if overlay.MaxBodyBytes != 0 { base.MaxBodyBytes = overlay.MaxBodyBytes }
	if overlay.CacheSize != 0 { base.CacheSize = overlay.CacheSize }
	if len(overlay.CORSOrigins) != 0 { base.CORSOrigins = append([]string(nil), overlay.CORSOrigins...) }
	if overlay.ShutdownTimeoutSeconds != 0 { base.ShutdownTimeoutSeconds = overlay.ShutdownTimeoutSeconds }
	return base
}
