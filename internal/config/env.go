package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Defaults used when neither file, environment nor flags set a value.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultModelPath       = "model.json"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 5
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:                   DefaultHost,
		Port:                   DefaultPort,
		ModelPath:              DefaultModelPath,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
		MaxBodyBytes:           DefaultMaxBodyBytes,
		CORSOrigins:            []string{"*"},
		ShutdownTimeoutSeconds: DefaultShutdownTimeout,
	}
}

// ParsePort parses a PORT value. Empty means DefaultPort.
func ParsePort(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultPort, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", v, err)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("invalid port %d: out of range 1-65535", n)
	}
	return n, nil
}

// FromEnv builds an overlay from PORT and PRICED_* variables. getenv is
// usually os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	if v := getenv("PORT"); strings.TrimSpace(v) != "" {
		p, err := ParsePort(v)
		if err != nil {
			return cfg, fmt.Errorf("PORT: %w", err)
		}
		cfg.Port = p
	}
	cfg.Host = getenv("PRICED_HOST")
	cfg.ModelPath = getenv("PRICED_MODEL")
	cfg.LogLevel = getenv("PRICED_LOG_LEVEL")
	cfg.LogFormat = getenv("PRICED_LOG_FORMAT")
	cfg.LogFile = getenv("PRICED_LOG_FILE")
	if v := getenv("PRICED_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("PRICED_MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}
	if v := getenv("PRICED_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("PRICED_CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = n
	}
	cfg.CORSOrigins = SplitCSV(getenv("PRICED_CORS_ORIGINS"))
	return cfg, nil
}

// SplitCSV splits a comma separated list, trimming blanks and dropping empties.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks a fully merged configuration.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if strings.TrimSpace(c.ModelPath) == "" {
		return fmt.Errorf("model_path is required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log_format %q (json|console)", c.LogFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative")
	}
	if c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("shutdown_timeout_seconds must not be negative")
	}
	return nil
}

// Addr is the listen address, e.g. 0.0.0.0:5000.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
