// Package main implements split-chapters, which splits a markdown file
// into one file per "## " chapter.
package main

import (
	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/cmd"
	"github.com/pursue-app/pursue-tools/internal/logging"
	"github.com/pursue-app/pursue-tools/internal/splitter"
)

func main() {
	cmd.Main(rootCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "split-chapters <source.md> <out_dir>",
	Short: "Split a markdown file into chapter files",
	Long: `Split a markdown file on "## " headings. Each chapter runs from its heading
to the line before the next one and is written byte for byte to
<out_dir>/NN-slug.md. Text before the first chapter is dropped.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runSplit,
}

var (
	dryRun    bool
	newLogger func() *logging.Logger
)

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the files without writing them")
	newLogger = cmd.AddLogLevelFlag(rootCmd, "warn")

	rootCmd.AddCommand(cmd.NewVersionCmd())
}

func runSplit(c *cobra.Command, args []string) error {
	c.SilenceUsage = true

	s := splitter.New(splitter.Options{
		Mode:     splitter.Chapters,
		DryRun:   dryRun,
		Reporter: splitter.NewTextReporter(c.OutOrStdout(), dryRun),
		Logger:   newLogger().WithTool("split-chapters"),
	})

	_, err := s.Split(args[0], args[1])
	return err
}
