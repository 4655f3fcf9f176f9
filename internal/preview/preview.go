// Package preview renders a generated palette as key/value text, optionally
// colored for the terminal.
package preview

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/guilhermegouw/oklch16/internal/palette"
)

// Options controls rendering.
type Options struct {
	// Color wraps names and hex values in ANSI color sequences.
	Color bool
}

// Format renders p as two sections, [colors.normal] and [colors.bright],
// each with one `name = "#rrggbb"` line per slot. Stripping the ANSI
// sequences from colored output gives the plain output.
func Format(p palette.Palette, opts Options) string {
	width := nameWidth()

	var b strings.Builder
	for i, g := range p.Groups() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[" + g.Name + "]\n")
		for _, slot := range g.Slots {
			b.WriteString(formatSlot(slot, width, opts))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatSlot(slot palette.Slot, width int, opts Options) string {
	name := pad(slot.Name, width)
	value := `"` + slot.RGB.Hex() + `"`

	if opts.Color {
		st := NewSlotStyles(slot)
		name = st.Name.Render(name)
		value = st.Value.Render(value)
	}
	return name + " = " + value
}

// SlotStyles holds the lipgloss styles used for one slot.
type SlotStyles struct {
	// Name draws text in the slot color.
	Name lipgloss.Style
	// Value draws the ink color on a swatch of the slot color.
	Value lipgloss.Style
}

// NewSlotStyles builds the styles for slot.
func NewSlotStyles(slot palette.Slot) SlotStyles {
	swatch := ToColor(slot.RGB)
	return SlotStyles{
		Name:  lipgloss.NewStyle().Foreground(swatch),
		Value: lipgloss.NewStyle().Foreground(ToColor(slot.Ink)).Background(swatch),
	}
}

// ToColor converts an 8-bit palette color to an opaque color.Color.
func ToColor(c palette.RGB) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func nameWidth() int {
	width := 0
	for _, name := range palette.SlotNames {
		width = max(width, uniseg.StringWidth(name))
	}
	return width
}

func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
