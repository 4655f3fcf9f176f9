package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/oklch16/internal/config"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show the resolved theme parameters",
		Long: `Display the parameters a theme would be generated from, after
applying the config file and any flags given on the command line:
  - Foreground and background luminosity
  - Normal and bright tier luminosity, chroma and hue offset
  - The config file that was consulted`,
		Args: cobra.NoArgs,
		RunE: runParams,
	}
}

func runParams(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	params, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Theme Parameters")
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintln(out)

	for _, f := range paramFlags {
		source := "default"
		switch {
		case cmd.Flags().Changed(f.name):
			source = "flag"
		case cfg.IsSet(f.name):
			source = "config"
		}
		fmt.Fprintf(out, "  %-4s %8.3f  %-36s (%s)\n", f.name, *f.field(&params), f.usage, source)
	}
	fmt.Fprintln(out)

	printConfigFiles(out, cfg)
	return nil
}

func printConfigFiles(out io.Writer, cfg *config.Config) {
	files := cfg.Files()
	if len(files) == 0 {
		fmt.Fprintln(out, "Config File: (none)")
		return
	}
	for _, path := range files {
		fmt.Fprintf(out, "Config File: %s\n", path)
	}
}
