// Package cmd provides the CLI commands for oklch16.
package cmd

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/guilhermegouw/oklch16/internal/config"
	"github.com/guilhermegouw/oklch16/internal/debug"
	"github.com/guilhermegouw/oklch16/internal/palette"
	"github.com/guilhermegouw/oklch16/internal/preview"
)

// paramFlag describes one of the eight theme parameter flags.
type paramFlag struct {
	name  string
	usage string
	field func(*palette.Params) *float32
}

var paramFlags = []paramFlag{
	{"fg", "Foreground luminosity", func(p *palette.Params) *float32 { return &p.FG }},
	{"bg", "Background luminosity", func(p *palette.Params) *float32 { return &p.BG }},
	{"nl", "Normal colors luminosity", func(p *palette.Params) *float32 { return &p.NL }},
	{"nc", "Normal colors chroma", func(p *palette.Params) *float32 { return &p.NC }},
	{"nho", "Normal colors hue offset in degrees", func(p *palette.Params) *float32 { return &p.NHO }},
	{"bl", "Bright colors luminosity", func(p *palette.Params) *float32 { return &p.BL }},
	{"bc", "Bright colors chroma", func(p *palette.Params) *float32 { return &p.BC }},
	{"bho", "Bright colors hue offset in degrees", func(p *palette.Params) *float32 { return &p.BHO }},
}

// writeClipboard copies text to the system clipboard.
var writeClipboard = clipboard.WriteAll

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oklch16",
		Short: "Generate a 16-color terminal theme from Oklch parameters",
		Long: `oklch16 computes the 8 normal and 8 bright ANSI colors of a terminal
theme from a few perceptual parameters in the Oklch color space.

The six chromatic colors of a tier share one lightness and chroma and are
spaced 60 degrees apart in hue, starting at 30 degrees plus the tier's hue
offset. Black and white are grays derived from the foreground, background
and normal lightness.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addParamFlags(cmd)
	mode := preview.ColorAuto
	cmd.PersistentFlags().String("config", "", "Read parameter defaults from this file")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().Var(&mode, "color", "Color the preview: auto, always or never")
	cmd.Flags().Bool("copy", false, "Copy the plain theme text to the clipboard")

	cmd.AddCommand(newParamsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func addParamFlags(cmd *cobra.Command) {
	defaults := palette.DefaultParams()
	for _, f := range paramFlags {
		cmd.PersistentFlags().Float32(f.name, *f.field(&defaults), f.usage)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	stopDebug := startDebug(cmd, cfg)
	defer stopDebug()

	params, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}
	debug.Event("cmd", "params", fmt.Sprintf("%+v", params))

	pal := palette.Generate(params)
	logPalette(pal)

	mode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	text := preview.Format(pal, preview.Options{Color: mode.Enabled(out)})
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("writing theme: %w", err)
	}

	copyText, err := cmd.Flags().GetBool("copy")
	if err != nil {
		return fmt.Errorf("getting copy flag: %w", err)
	}
	if copyText {
		if err := writeClipboard(preview.Format(pal, preview.Options{})); err != nil {
			debug.Error("cmd", err, "copying to clipboard")
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}

// loadConfig reads the --config file when given, and the standard
// locations otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("getting config flag: %w", err)
	}
	if path != "" {
		return config.LoadFromFile(path)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveParams layers explicitly set flags over the configured defaults.
func resolveParams(cmd *cobra.Command, cfg *config.Config) (palette.Params, error) {
	params := cfg.Params()
	for _, f := range paramFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetFloat32(f.name)
		if err != nil {
			return params, fmt.Errorf("getting %s flag: %w", f.name, err)
		}
		*f.field(&params) = v
	}
	return params, nil
}

func resolveColorMode(cmd *cobra.Command, cfg *config.Config) (preview.ColorMode, error) {
	if cmd.Flags().Changed("color") {
		mode, ok := cmd.Flags().Lookup("color").Value.(*preview.ColorMode)
		if !ok {
			return "", fmt.Errorf("color flag has unexpected type %s", cmd.Flags().Lookup("color").Value.Type())
		}
		return *mode, nil
	}
	var mode preview.ColorMode
	if s := cfg.ColorMode(); s != "" {
		if err := mode.Set(s); err != nil {
			return "", fmt.Errorf("config option color: %w", err)
		}
		return mode, nil
	}
	return preview.ColorAuto, nil
}

// startDebug enables debug logging when requested by flag or config, and
// returns the function that turns it off again.
func startDebug(cmd *cobra.Command, cfg *config.Config) func() {
	debugMode, err := cmd.Flags().GetBool("debug")
	if err != nil {
		debugMode = false
	}
	if !debugMode && (cfg.Options == nil || !cfg.Options.Debug) {
		return func() {}
	}

	if err := debug.Enable(cfg.DebugLogPath()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to enable debug logging: %v\n", err)
		return func() {}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Debug: %s\n", debug.LogPath())
	return debug.Disable
}

func logPalette(pal palette.Palette) {
	if !debug.IsEnabled() {
		return
	}
	for _, g := range pal.Groups() {
		for _, slot := range g.Slots {
			debug.Event("palette", g.Name, fmt.Sprintf("%s L=%g C=%g H=%g -> %s ink %s",
				slot.Name, slot.Source.L, slot.Source.C, slot.Source.H, slot.RGB.Hex(), slot.Ink.Hex()))
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
