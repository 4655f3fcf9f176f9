package preview

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// ColorMode selects when output is colored.
type ColorMode string

// Color modes accepted by the --color flag.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// String implements pflag.Value.
func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *ColorMode) Set(s string) error {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		*m = ColorMode(s)
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string {
	return "mode"
}

// Enabled reports whether output written to w should be colored. In auto
// mode the terminal profile of w decides, which honors NO_COLOR and
// CLICOLOR_FORCE.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return termenv.NewOutput(w).Profile != termenv.Ascii
	}
}
