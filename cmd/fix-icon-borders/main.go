// Package main implements fix-icon-borders, which clears a fixed-width
// border of icon images to transparency.
package main

import (
	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/cmd"
	"github.com/pursue-app/pursue-tools/internal/config"
	"github.com/pursue-app/pursue-tools/internal/icons"
	"github.com/pursue-app/pursue-tools/internal/logging"
)

func main() {
	cmd.Main(rootCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fix-icon-borders [images_dir]",
	Short: "Make the border of icon images transparent",
	Long: `Rewrite every icon matching the pattern in images_dir (default "images") as a
PNG whose outer border is fully transparent. Interior pixels are unchanged.
Files that cannot be processed are reported and skipped.

Settings are read from --config, then overridden by the argument and flags.`,
	Args:          cobra.RangeArgs(0, 1),
	SilenceErrors: true,
	RunE:          runFix,
}

type fixFlags struct {
	configPath string
	border     int
	pattern    string
}

var (
	fixOpts   = &fixFlags{}
	newLogger func() *logging.Logger
)

func init() {
	rootCmd.Flags().StringVarP(&fixOpts.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().IntVar(&fixOpts.border, "border", config.DefaultBorder, "Border width in pixels")
	rootCmd.Flags().StringVar(&fixOpts.pattern, "pattern", config.DefaultIconPattern, "Glob of the icons inside images_dir")
	newLogger = cmd.AddLogLevelFlag(rootCmd, "warn")

	rootCmd.AddCommand(cmd.NewVersionCmd())
}

func runFix(c *cobra.Command, args []string) error {
	c.SilenceUsage = true

	cfg, err := config.Load(fixOpts.configPath)
	if err != nil {
		return err
	}
	icfg := cfg.Icons

	if len(args) == 1 {
		icfg.Dir = args[0]
	}
	if c.Flags().Changed("border") {
		icfg.Border = fixOpts.border
	}
	if c.Flags().Changed("pattern") {
		icfg.Pattern = fixOpts.pattern
	}

	_, err = icons.FixBorders(icfg, c.OutOrStdout(), newLogger().WithTool("fix-icon-borders"))
	return err
}
