// Package palette computes a 16-color ANSI terminal theme from a handful of
// Oklch parameters.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Slot names in print order. Both groups use the same order.
const (
	Black   = "black"
	Red     = "red"
	Yellow  = "yellow"
	Green   = "green"
	Cyan    = "cyan"
	Blue    = "blue"
	Magenta = "magenta"
	White   = "white"
)

// SlotNames lists the slot names of a group in print order.
var SlotNames = [8]string{Black, Red, Yellow, Green, Cyan, Blue, Magenta, White}

// spectral are the six chromatic slots, indexed by hue step.
var spectral = [6]string{Red, Yellow, Green, Cyan, Blue, Magenta}

// Params are the inputs of a theme. Luminosity and chroma are nominally in
// [0,1] but are never clamped; hue offsets are in degrees.
type Params struct {
	FG  float32 `json:"fg"`
	BG  float32 `json:"bg"`
	NL  float32 `json:"nl"`
	NC  float32 `json:"nc"`
	NHO float32 `json:"nho"`
	BL  float32 `json:"bl"`
	BC  float32 `json:"bc"`
	BHO float32 `json:"bho"`
}

// DefaultParams returns the stock dark theme.
func DefaultParams() Params {
	return Params{
		FG:  1.00,
		BG:  0.00,
		NL:  0.75,
		NC:  0.22,
		NHO: 0.00,
		BL:  0.90,
		BC:  0.15,
		BHO: 0.00,
	}
}

// Color is a point in the Oklch color space. H is in degrees and only
// meaningful when C > 0.
type Color struct {
	L, C, H float32
}

// Gray returns the achromatic color with lightness l.
func Gray(l float32) Color {
	return Color{L: l}
}

// RGB converts c to 8-bit sRGB. Out-of-gamut results are clamped per channel.
func (c Color) RGB() RGB {
	col := colorful.OkLch(float64(c.L), float64(c.C), float64(c.H)).Clamped()
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Ink returns the text color used on top of c: black on light colors and
// white otherwise. Lightness of exactly 0.5 gets white ink.
func (c Color) Ink() RGB {
	if c.L > 0.5 {
		return RGB{}
	}
	return RGB{R: 0xff, G: 0xff, B: 0xff}
}

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb" in lowercase.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Slot is one named entry of a palette group.
type Slot struct {
	Name   string
	Source Color
	RGB    RGB
	Ink    RGB
}

func newSlot(name string, c Color) Slot {
	return Slot{
		Name:   name,
		Source: c,
		RGB:    c.RGB(),
		Ink:    c.Ink(),
	}
}

// Palette is a generated theme: eight normal and eight bright slots.
type Palette struct {
	Normal [8]Slot
	Bright [8]Slot
}

// Group is a named palette section.
type Group struct {
	Name  string
	Slots [8]Slot
}

// Groups returns the normal and bright groups in print order.
func (p Palette) Groups() []Group {
	return []Group{
		{Name: "colors.normal", Slots: p.Normal},
		{Name: "colors.bright", Slots: p.Bright},
	}
}

// Generate builds the palette for p. It is a pure function of its input.
//
// The grays swap roles across the two groups: normal black is the
// background, normal white matches the lightness of the normal colors,
// bright black sits halfway between the background and the normal colors,
// and bright white is the foreground.
func Generate(p Params) Palette {
	pfg := Gray(p.FG)
	pbg := Gray(p.BG)
	sfg := Gray(p.NL)
	sbg := Gray((p.BG + p.NL) / 2)

	var out Palette
	out.Normal = group(pbg, sfg, p.NL, p.NC, p.NHO)
	out.Bright = group(sbg, pfg, p.BL, p.BC, p.BHO)
	return out
}

func group(black, white Color, l, c, hueOffset float32) [8]Slot {
	var slots [8]Slot
	slots[0] = newSlot(Black, black)
	for i, name := range spectral {
		slots[i+1] = newSlot(name, Color{L: l, C: c, H: Hue(hueOffset, i)})
	}
	slots[7] = newSlot(White, white)
	return slots
}

// Hue returns the hue in degrees of spectral step i (0 = red .. 5 = magenta)
// for the given offset. The result is not reduced modulo 360.
func Hue(offset float32, i int) float32 {
	return 30 + offset + 60*float32(i)
}
