package app

import (
	"errors"
	"fmt"
	"strings"
)

// Commands accepted as the single positional argument.
const (
	CommandBuild = ""
	CommandInit  = "init"
)

const (
	DefaultBuildFile = "kiln/build.go"
	DefaultCacheDir  = ".kiln"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string
	// Args are the original command-line arguments, forwarded on relaunch.
	Args []string

	CC string
	AR string
	Go string

	LogLevel  string
	LogFormat string

	BuildFile string
	CacheDir  string
}

// DefaultConfig returns the configuration used when neither flags nor the
// environment say otherwise.
func DefaultConfig() Config {
	return Config{
		CC:        "gcc",
		AR:        "ar",
		Go:        "go",
		LogLevel:  "info",
		LogFormat: "text",
		BuildFile: DefaultBuildFile,
		CacheDir:  DefaultCacheDir,
	}
}

// ApplyEnv overrides cfg with the KILN_* variables that getenv reports as
// set and non-empty.
func (cfg *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.CC, "KILN_CC")
	set(&cfg.AR, "KILN_AR")
	set(&cfg.Go, "KILN_GO")
	set(&cfg.LogLevel, "KILN_LOG_LEVEL")
	set(&cfg.LogFormat, "KILN_LOG_FORMAT")
	set(&cfg.BuildFile, "KILN_BUILD_FILE")
	set(&cfg.CacheDir, "KILN_CACHE_DIR")
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	var errs []error
	switch cfg.Command {
	case CommandBuild, CommandInit:
	default:
		errs = append(errs, fmt.Errorf("unknown command %q", cfg.Command))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}
	switch cfg.LogFormat {
	case "text", "json", "auto":
	default:
		errs = append(errs, errors.New("invalid log-format: must be 'text', 'json' or 'auto'"))
	}
	if cfg.CC == "" {
		errs = append(errs, errors.New("compiler name cannot be empty"))
	}
	if cfg.BuildFile == "" {
		errs = append(errs, errors.New("build file path cannot be empty"))
	}
	if cfg.CacheDir == "" {
		errs = append(errs, errors.New("cache directory cannot be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
