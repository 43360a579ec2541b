// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults used when neither the config file nor the environment set a value
const (
	DefaultSkillsPath     = "data/skills_dict.csv"
	DefaultPort           = 8080
	DefaultCORSOrigin     = "http://localhost:3000"
	DefaultSkillsTable    = "skills"
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
	DefaultMaxUploadMB    = 10
	DefaultLogLevel       = "info"
)

// Config represents the configuration that can be loaded from a JSON file and
// overlaid from the environment. CLI flags are applied last by the caller.
type Config struct {
	// Skill dictionary. DatabaseURL takes precedence over SkillsPath.
	SkillsPath  string `json:"skills_path,omitempty"`
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,url"`
	SkillsTable string `json:"skills_table,omitempty" validate:"omitempty,max=63"`

	// HTTP server
	Port           int      `json:"port,omitempty" validate:"gte=0,lte=65535"`
	CORSOrigins    []string `json:"cors_origins,omitempty" validate:"dive,required"`
	RateLimitRPS   float64  `json:"rate_limit_rps,omitempty" validate:"gte=0"`
	RateLimitBurst int      `json:"rate_limit_burst,omitempty" validate:"gte=0"`
	MaxUploadMB    int      `json:"max_upload_mb,omitempty" validate:"gte=0,lte=512"`

	// RateLimitDisabled turns rate limiting off and is set by RATE_LIMIT_RPS=0.
	// A zero RateLimitRPS on its own means the default rate.
	RateLimitDisabled bool `json:"rate_limit_disabled,omitempty"`

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"`
}

var validate = validator.New()

// Default returns a Config holding the built-in defaults.
func Default() Config {
	return Config{
		SkillsPath:     DefaultSkillsPath,
		SkillsTable:    DefaultSkillsTable,
		Port:           DefaultPort,
		CORSOrigins:    []string{DefaultCORSOrigin},
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		MaxUploadMB:    DefaultMaxUploadMB,
		LogLevel:       DefaultLogLevel,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays values from the environment. Unparseable numbers are
// reported rather than silently ignored.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("SKILLS_PATH"); ok {
		c.SkillsPath = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := get("SKILLS_TABLE"); ok {
		c.SkillsTable = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(v)
	}

	if v, ok := get("PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Port = n
	}
	if v, ok := get("RATE_LIMIT_RPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimitRPS = f
		c.RateLimitDisabled = f == 0
	}
	if v, ok := get("RATE_LIMIT_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimitBurst = n
	}
	if v, ok := get("MAX_UPLOAD_MB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		c.MaxUploadMB = n
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that SkillsPath exists since a database URL can
// replace it.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.SkillsPath == "" {
		result.SkillsPath = defaults.SkillsPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SkillsTable == "" {
		result.SkillsTable = defaults.SkillsTable
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitDisabled {
		result.RateLimitRPS = 0
	} else if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SlogLevel maps LogLevel to a slog level. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
