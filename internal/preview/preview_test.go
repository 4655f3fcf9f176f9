package preview

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/guilhermegouw/oklch16/internal/palette"
)

var lineRegex = regexp.MustCompile(`^([a-z]+) *= "(#[0-9a-f]{6})"$`)

func TestFormat_Plain(t *testing.T) {
	pal := palette.Generate(palette.DefaultParams())
	out := Format(pal, Options{})

	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain output should not contain escape sequences")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 19 {
		t.Fatalf("expected 19 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "[colors.normal]" {
		t.Errorf("expected normal header, got %q", lines[0])
	}
	if lines[9] != "" {
		t.Errorf("expected blank separator line, got %q", lines[9])
	}
	if lines[10] != "[colors.bright]" {
		t.Errorf("expected bright header, got %q", lines[10])
	}

	check := func(lines []string, slots [8]palette.Slot) {
		for i, line := range lines {
			m := lineRegex.FindStringSubmatch(line)
			if m == nil {
				t.Errorf("malformed line %q", line)
				continue
			}
			if m[1] != slots[i].Name {
				t.Errorf("line %d: expected name %q, got %q", i, slots[i].Name, m[1])
			}
			if m[2] != slots[i].RGB.Hex() {
				t.Errorf("line %d: expected %s, got %s", i, slots[i].RGB.Hex(), m[2])
			}
			if idx := strings.Index(line, " = "); idx != 7 {
				t.Errorf("line %q: expected separator at column 7, got %d", line, idx)
			}
		}
	}
	check(lines[1:9], pal.Normal)
	check(lines[11:19], pal.Bright)

	if lines[1] != `black   = "#000000"` {
		t.Errorf("unexpected normal black line %q", lines[1])
	}
	if lines[18] != `white   = "#ffffff"` {
		t.Errorf("unexpected bright white line %q", lines[18])
	}
	if lines[7] != `magenta = "`+pal.Normal[6].RGB.Hex()+`"` {
		t.Errorf("unexpected magenta line %q", lines[7])
	}
}

func TestFormat_ColorStripsToPlain(t *testing.T) {
	params := []palette.Params{
		palette.DefaultParams(),
		{FG: 0.1, BG: 0.98, NL: 0.45, NC: 0.2, NHO: 10, BL: 0.35, BC: 0.1, BHO: -10},
	}

	for _, p := range params {
		pal := palette.Generate(p)
		plain := Format(pal, Options{})
		colored := Format(pal, Options{Color: true})

		if !strings.Contains(colored, "\x1b[") {
			t.Error("colored output should contain escape sequences")
		}
		if got := ansi.Strip(colored); got != plain {
			t.Errorf("stripped output differs from plain:\n%s\nvs\n%s", got, plain)
		}
	}
}

func TestToColor(t *testing.T) {
	r, g, b, a := ToColor(palette.RGB{R: 0xff, G: 0x80, B: 0x00}).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
}

func TestColorMode_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{in: "auto", want: ColorAuto},
		{in: "always", want: ColorAlways},
		{in: "never", want: ColorNever},
		{in: "sometimes", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m ColorMode
			err := m.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && m != tt.want {
				t.Errorf("expected %q, got %q", tt.want, m)
			}
		})
	}
}

func TestColorMode_String(t *testing.T) {
	var m ColorMode
	if m.String() != "auto" {
		t.Errorf("expected zero value to print as auto, got %q", m.String())
	}
	m = ColorNever
	if m.String() != "never" {
		t.Errorf("expected never, got %q", m.String())
	}
}

func TestColorMode_Enabled(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	var buf bytes.Buffer

	if !ColorAlways.Enabled(&buf) {
		t.Error("always should enable color")
	}
	if ColorNever.Enabled(&buf) {
		t.Error("never should disable color")
	}
	if ColorAuto.Enabled(&buf) {
		t.Error("auto should disable color for a non-terminal writer")
	}
}

func TestFormat_DefaultTheme(t *testing.T) {
	want := `[colors.normal]
black   = "#000000"
red     = "#ff6852"
yellow  = "#e4a200"
green   = "#00d25a"
cyan    = "#00cefa"
blue    = "#7a9fff"
magenta = "#f770ef"
white   = "#aeaeae"

[colors.bright]
black   = "#414141"
red     = "#ffb6a2"
yellow  = "#ffd95a"
green   = "#90faa8"
cyan    = "#2bf8ff"
blue    = "#b7d8ff"
magenta = "#ffb9ff"
white   = "#ffffff"
`
	if got := Format(palette.Generate(palette.DefaultParams()), Options{}); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
