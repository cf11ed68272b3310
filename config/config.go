// Package config resolves generation options for intlwrap.
//
// Options come from a small project configuration file (intlwrap.yaml, with
// l10n.yaml as a fallback name) found by walking up the directory tree, with
// INTLWRAP_* environment variables layered on top. A missing or malformed
// configuration never fails generation; it degrades to defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/intlwrap/intlwrap/errors"
)

// Fixed defaults used when configuration is absent or incomplete.
const (
	DefaultHeader    = "Generated by the wrapper generator"
	DefaultClassName = "Messages"
)

// Naming strategies. Scan discovers the class name in the catalogue file;
// Config derives it from the configured class name. The strategies are
// mutually exclusive alternatives, not layered overrides.
const (
	NamingScan   = "scan"
	NamingConfig = "config"
)

// Config file names searched for, in preference order.
var configFileNames = []string{"intlwrap.yaml", "l10n.yaml"}

// Options holds the resolved generation options.
type Options struct {
	// Header is the comment line identifying the artifact as generated.
	Header string `mapstructure:"header"`

	// ClassName is the output class base name used by the config naming
	// strategy ("AppMessages" or just "App").
	ClassName string `mapstructure:"class_name"`

	// Naming selects the class-naming strategy: "scan" or "config".
	Naming string `mapstructure:"naming"`
}

// Default returns the options used when no configuration exists.
func Default() Options {
	return Options{
		Header:    DefaultHeader,
		ClassName: DefaultClassName,
		Naming:    NamingScan,
	}
}

// Resolve loads options for a generation rooted at startDir. The returned
// Options are always usable; the error, when non-nil, wraps
// ErrConfigUnavailable and exists only so the caller can log the degradation.
func Resolve(startDir string) (Options, error) {
	v := newViper()

	var cfgErr error
	if path := findProjectConfig(startDir); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			cfgErr = errors.Wrapf(errors.ErrConfigUnavailable, "read %s: %v", path, err)
		}
	}

	return unmarshal(v, cfgErr)
}

// ResolveFromFile loads options from a specific configuration file.
func ResolveFromFile(path string) (Options, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Default(), errors.Wrapf(errors.ErrConfigUnavailable, "read %s: %v", path, err)
	}
	return unmarshal(v, nil)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("INTLWRAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper, cfgErr error) (Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Default(), errors.Wrapf(errors.ErrConfigUnavailable, "unmarshal options: %v", err)
	}
	return normalize(opts), cfgErr
}

// normalize substitutes defaults for missing or invalid individual options.
func normalize(opts Options) Options {
	if opts.Header == "" {
		opts.Header = DefaultHeader
	}
	if opts.ClassName == "" {
		opts.ClassName = DefaultClassName
	}
	if opts.Naming != NamingScan && opts.Naming != NamingConfig {
		opts.Naming = NamingScan
	}
	return opts
}

// findProjectConfig walks up the directory tree from startDir looking for a
// configuration file. Returns the first match, or "" when none exists.
func findProjectConfig(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}
