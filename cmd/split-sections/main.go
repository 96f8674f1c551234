// Package main implements split-sections, which splits markdown files
// into one file per "### " section.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/cmd"
	"github.com/pursue-app/pursue-tools/internal/errors"
	"github.com/pursue-app/pursue-tools/internal/logging"
	"github.com/pursue-app/pursue-tools/internal/splitter"
)

func main() {
	cmd.Main(rootCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "split-sections <source.md>...",
	Short: "Split markdown files into section files",
	Long: `Split each markdown file on "### " headings into a directory beside it named
after the file: specs/ui/04-screens.md is split into specs/ui/04-screens/.
Numbered headings such as "### 4.2 Screen List" are written as
4.2-screen-list.md, others as NN-slug.md.

Sources are processed in order. A failing source is reported and the
others are still split; the exit status is non-zero if any failed.`,
	Args:          cobra.MinimumNArgs(1),
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
	logger := newLogger().WithTool("split-sections")

	s := splitter.New(splitter.Options{
		Mode:     splitter.Sections,
		DryRun:   dryRun,
		Reporter: splitter.NewTextReporter(c.OutOrStdout(), dryRun),
		Logger:   logger,
	})

	if len(args) == 1 {
		_, err := s.Split(args[0], "")
		return err
	}

	failed := 0
	for i, source := range args {
		if i > 0 {
			_, _ = fmt.Fprintln(c.OutOrStdout())
		}
		if _, err := s.Split(source, ""); err != nil {
			logger.Debug("Source failed", slog.String("source", source), slog.Any("error", err))
			_, _ = fmt.Fprintf(c.ErrOrStderr(), "%s: %v\n", source, err)
			failed++
		}
	}

	if failed > 0 {
		return errors.Input("%d of %d sources failed", failed, len(args))
	}
	return nil
}
