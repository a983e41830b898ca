// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/contrast/base/errors"
	"cogentcore.org/contrast/base/iox/tomlx"
	"cogentcore.org/contrast/base/iox/yamlx"
)

const (
	// DefaultMaxIterations is the default [Config.MaxIterations].
	DefaultMaxIterations = 7

	// DefaultMinWidth is the default [Config.MinWidth].
	DefaultMinWidth = 0.1

	// DefaultTieZone is the default [Config.TieZone]. It is a provisional
	// heuristic that stands in for a perceptual distance metric.
	DefaultTieZone = 0.5
)

// Config contains the tunable parameters of the snapping search.
// The zero value is not valid; start from [DefaultConfig].
type Config struct {

	// MaxIterations is the maximum number of bisection steps
	// taken along each of the four paths.
	MaxIterations int `default:"7" toml:"max-iterations" yaml:"max-iterations" json:"maxIterations"`

	// MinWidth is the lightness interval width, in lightness units,
	// below which a path stops bisecting.
	MinWidth float32 `default:"0.1" toml:"min-width" yaml:"min-width" json:"minWidth"`

	// TieZone is how far, in lightness units, a passing adjustment may be
	// from the smallest passing adjustment and still count as tied with it.
	TieZone float32 `default:"0.5" toml:"tie-zone" yaml:"tie-zone" json:"tieZone"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		MinWidth:      DefaultMinWidth,
		TieZone:       DefaultTieZone,
	}
}

// Validate returns an error describing every invalid field, or nil.
func (cf Config) Validate() error {
	var errs []error
	if cf.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("snap.Config: MaxIterations must be at least 1, got %d", cf.MaxIterations))
	}
	if !(cf.MinWidth > 0) {
		errs = append(errs, fmt.Errorf("snap.Config: MinWidth must be positive, got %g", cf.MinWidth))
	}
	if !(cf.TieZone >= 0) {
		errs = append(errs, fmt.Errorf("snap.Config: TieZone must not be negative, got %g", cf.TieZone))
	}
	return errors.Join(errs...)
}

// Open reads the config from the given TOML (.toml) or YAML (.yaml, .yml)
// file on top of the current values, and then validates it.
func (cf *Config) Open(filename string) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(cf, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(cf, filename)
	default:
		return fmt.Errorf("snap.Config.Open: unsupported config file type %q", filename)
	}
	if err != nil {
		return fmt.Errorf("snap.Config.Open: %w", err)
	}
	return cf.Validate()
}

// OpenConfig returns the [DefaultConfig] overlaid with the
// values in the given config file; see [Config.Open].
func OpenConfig(filename string) (Config, error) {
	cf := DefaultConfig()
	err := cf.Open(filename)
	return cf, err
}
