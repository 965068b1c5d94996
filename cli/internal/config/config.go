// Package config provides scamatch configuration with a defined load order:
// CLI flags > environment variables > local config > global config > defaults.
//
// Paths:
//   - Local: .scagate.toml in the working directory
//   - Global: XDG config dir, e.g. ~/.config/scagate/config.toml (see os.UserConfigDir)
//
// Environment variables (override config files when set):
//   - SCAGATE_POLICY (file-not-found policy: pass, empty, error)
//   - SCAGATE_COLOR (report color mode: auto, always, never)
//   - SCAGATE_FAIL_STALE (also fail on stale suppressions: 1/true/yes/on, 0/false/no/off)
//
// The generator is a pure transform and reads no configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"scagate/cli/internal/erruser"
	"scagate/cli/internal/suppress"
)

// Config holds all scamatch configuration.
type Config struct {
	// Policy is the suppressions-file-not-found policy: pass, empty, or error.
	Policy string `toml:"policy"`
	// Color is the report color mode: auto, always, or never.
	Color string `toml:"color"`
	// FailStale also fails the run when stale suppressions exist. Default
	// false: stale entries are informational only.
	FailStale bool `toml:"fail_stale"`
}

// Overrides represents optional CLI flag overrides. A non-nil pointer means
// "override with this value".
type Overrides struct {
	Policy    *string
	Color     *string
	FailStale *bool
}

// LoadOptions configures Load. All fields are optional.
type LoadOptions struct {
	// GlobalConfigPath is the global config file path; if empty, the XDG
	// path is used.
	GlobalConfigPath string
	// LocalConfigPath is the local config file path; if empty,
	// .scagate.toml in the working directory is used.
	LocalConfigPath string
	// Env is the environment key=value slice; if nil, os.Environ() is used.
	Env []string
	// Overrides are applied last (highest precedence).
	Overrides *Overrides
}

const (
	// The original tool refused to run without the suppression file, so
	// the default policy is the strict one.
	_defaultPolicy = string(suppress.PolicyError)
	_defaultColor  = "auto"
)

// validColor is the set of allowed color modes.
var validColor = map[string]struct{}{"auto": {}, "always": {}, "never": {}}

// DefaultConfig returns the default configuration (no I/O).
func DefaultConfig() Config {
	return Config{
		Policy:    _defaultPolicy,
		Color:     _defaultColor,
		FailStale: false,
	}
}

// Load loads configuration with precedence: defaults < global file < local
// file < env < overrides. Missing config files are ignored. Invalid TOML or
// invalid values return an error.
func Load(opts LoadOptions) (*Config, error) {
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	cfg := DefaultConfig()

	globalPath := opts.GlobalConfigPath
	if globalPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, erruser.New("Could not determine config directory.", err)
		}
		globalPath = filepath.Join(dir, "scagate", "config.toml")
	}
	if err := mergeFile(&cfg, globalPath); err != nil {
		return nil, err
	}

	localPath := opts.LocalConfigPath
	if localPath == "" {
		localPath = ".scagate.toml"
	}
	if err := mergeFile(&cfg, localPath); err != nil {
		return nil, err
	}

	if err := mergeEnv(&cfg, opts.Env); err != nil {
		return nil, err
	}

	if o := opts.Overrides; o != nil {
		if o.Policy != nil && *o.Policy != "" {
			cfg.Policy = *o.Policy
		}
		if o.Color != nil && *o.Color != "" {
			cfg.Color = *o.Color
		}
		if o.FailStale != nil {
			cfg.FailStale = *o.FailStale
		}
	}

	if _, err := suppress.ParsePolicy(cfg.Policy); err != nil {
		return nil, err
	}
	if _, ok := validColor[cfg.Color]; !ok {
		return nil, erruser.New("Invalid color mode; use auto, always, or never.", nil)
	}
	return &cfg, nil
}

// mergeFile merges the TOML file at path into cfg. A missing file is not an
// error; unreadable or invalid TOML is.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return erruser.New(fmt.Sprintf("Could not read config file %s.", path), err)
	}
	var fileCfg Config
	md, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return erruser.New(fmt.Sprintf("Invalid TOML in config file %s.", path), err)
	}
	for _, key := range md.Keys() {
		switch key.String() {
		case "policy":
			cfg.Policy = fileCfg.Policy
		case "color":
			cfg.Color = fileCfg.Color
		case "fail_stale":
			cfg.FailStale = fileCfg.FailStale
		}
	}
	return nil
}

// mergeEnv merges SCAGATE_* variables from env into cfg.
func mergeEnv(cfg *Config, env []string) error {
	for _, kv := range env {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch key {
		case "SCAGATE_POLICY":
			cfg.Policy = val
		case "SCAGATE_COLOR":
			cfg.Color = val
		case "SCAGATE_FAIL_STALE":
			b, err := parseBool(val)
			if err != nil {
				return erruser.New("Invalid SCAGATE_FAIL_STALE; use 1/true/yes/on or 0/false/no/off.", err)
			}
			cfg.FailStale = b
		}
	}
	return nil
}

// parseBool accepts the usual toggle spellings, case-insensitively.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized boolean %q", s)
}
