// Package main implements generate-densities, which writes resized copies
// of icon images into an Android drawable resource tree.
package main

import (
	"log/slog"
	"strconv"

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
	Use:   "generate-densities [source_dir] [res_dir] [base_size]",
	Short: "Generate density-specific icon copies",
	Long: `Resize every icon matching ic_icon* in source_dir (default "images") into
res_dir/drawable-{mdpi,hdpi,xhdpi,xxhdpi,xxxhdpi} at 1x, 1.5x, 2x, 3x and 4x
base_size (default 64). Outputs are PNG files named after the source.

A base_size that is not an integer is ignored. Settings are read from
--config, then overridden by the arguments.`,
	Args:          cobra.RangeArgs(0, 3),
	SilenceErrors: true,
	RunE:          runGenerate,
}

var (
	configPath string
	newLogger  func() *logging.Logger
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	newLogger = cmd.AddLogLevelFlag(rootCmd, "warn")

	rootCmd.AddCommand(cmd.NewVersionCmd())
}

func runGenerate(c *cobra.Command, args []string) error {
	c.SilenceUsage = true
	logger := newLogger().WithTool("generate-densities")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	dcfg := applyArgs(cfg.Densities, args, logger)

	_, err = icons.GenerateDensities(dcfg, c.OutOrStdout(), logger)
	return err
}

// applyArgs overrides cfg with the positional arguments.
func applyArgs(cfg config.DensitiesConfig, args []string, logger *logging.Logger) config.DensitiesConfig {
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
	if len(args) > 1 {
		cfg.ResDir = args[1]
	}
	if len(args) > 2 {
		size, err := strconv.Atoi(args[2])
		if err != nil {
			logger.Warn("Ignoring non-integer base size",
				slog.String("base_size", args[2]),
				slog.Int("using", cfg.BaseSize))
		} else {
			cfg.BaseSize = size
		}
	}
	return cfg
}
