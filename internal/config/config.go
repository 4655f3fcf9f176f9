// Package config provides configuration management for oklch16.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/guilhermegouw/oklch16/internal/palette"
)

const appName = "oklch16"

// Config is the top-level configuration structure.
type Config struct {
	Theme   *Theme   `json:"theme,omitempty"`
	Options *Options `json:"options,omitempty"`
	files   []string
}

// Theme overrides the built-in parameter defaults. Unset fields keep the
// built-in value.
type Theme struct {
	FG  *float32 `json:"fg,omitempty"`
	BG  *float32 `json:"bg,omitempty"`
	NL  *float32 `json:"nl,omitempty"`
	NC  *float32 `json:"nc,omitempty"`
	NHO *float32 `json:"nho,omitempty"`
	BL  *float32 `json:"bl,omitempty"`
	BC  *float32 `json:"bc,omitempty"`
	BHO *float32 `json:"bho,omitempty"`
}

// Options holds optional configuration settings.
//
//nolint:govet // Field order is intentional for JSON readability.
type Options struct {
	Color   string `json:"color,omitempty"`
	DataDir string `json:"data_directory,omitempty"`
	Debug   bool   `json:"debug,omitempty"`
}

// NewConfig creates a new Config with initialized sections.
func NewConfig() *Config {
	return &Config{
		Theme:   &Theme{},
		Options: &Options{},
	}
}

// Params returns the built-in defaults with the configured overrides applied.
func (c *Config) Params() palette.Params {
	p := palette.DefaultParams()
	c.Apply(&p)
	return p
}

// Apply overwrites the fields of p that are set in the configuration.
func (c *Config) Apply(p *palette.Params) {
	if c.Theme == nil {
		return
	}
	fields := []struct {
		src *float32
		dst *float32
	}{
		{c.Theme.FG, &p.FG},
		{c.Theme.BG, &p.BG},
		{c.Theme.NL, &p.NL},
		{c.Theme.NC, &p.NC},
		{c.Theme.NHO, &p.NHO},
		{c.Theme.BL, &p.BL},
		{c.Theme.BC, &p.BC},
		{c.Theme.BHO, &p.BHO},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}

// IsSet reports whether a config file set the named theme parameter.
func (c *Config) IsSet(name string) bool {
	if c.Theme == nil {
		return false
	}
	var v *float32
	switch name {
	case "fg":
		v = c.Theme.FG
	case "bg":
		v = c.Theme.BG
	case "nl":
		v = c.Theme.NL
	case "nc":
		v = c.Theme.NC
	case "nho":
		v = c.Theme.NHO
	case "bl":
		v = c.Theme.BL
	case "bc":
		v = c.Theme.BC
	case "bho":
		v = c.Theme.BHO
	}
	return v != nil
}

// Files returns the config files that were read, in load order.
func (c *Config) Files() []string {
	return c.files
}

// DataDir returns the data directory path from configuration.
func (c *Config) DataDir() string {
	if c.Options != nil && c.Options.DataDir != "" {
		return c.Options.DataDir
	}
	return filepath.Join(xdg.DataHome, appName)
}

// DebugLogPath returns where debug logging writes to.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.DataDir(), "debug.log")
}

// ColorMode returns the configured color mode, or "" when unset.
func (c *Config) ColorMode() string {
	if c.Options == nil {
		return ""
	}
	return c.Options.Color
}
