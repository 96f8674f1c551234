package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/splitter"
)

var outlineJSON bool

// outlineCmd prints the headings of a markdown file.
var outlineCmd = &cobra.Command{
	Use:   "outline <source.md>",
	Short: "List the headings of a markdown file",
	Long: `List every heading of a markdown file as a CommonMark parser sees it, one
"<line>: <marker> <text>" row per heading. Headings inside fenced code blocks
are not listed; setext headings are.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		c.SilenceUsage = true

		abs, doc, err := splitter.LoadSource(args[0])
		if err != nil {
			return err
		}
		entries := splitter.Outline(doc)
		newLogger().WithFile(abs).Debug("Outlined markdown", "headings", len(entries))

		out := c.OutOrStdout()
		if outlineJSON {
			if entries == nil {
				entries = []splitter.OutlineEntry{}
			}
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				return fmt.Errorf("error encoding outline: %w", err)
			}
			return nil
		}
		return splitter.WriteOutline(out, entries)
	},
}

func init() {
	outlineCmd.Flags().BoolVarP(&outlineJSON, "json", "j", false, "Output the outline as JSON")
}
