// Package cmd holds the pieces shared by the pursue-tools binaries: the
// version subcommand, the --log-level flag and the process entry point.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/pkg/version"
)

// NewVersionCmd returns a `version` subcommand. Each binary adds its own
// instance so flag state is not shared.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the pursue-tools version, git commit, build date and Go toolchain.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetVersion()
			if !asJSON {
				_, err := fmt.Fprintln(c.OutOrStdout(), info)
				return err
			}

			encoder := json.NewEncoder(c.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(info); err != nil {
				return fmt.Errorf("error encoding version info: %w", err)
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&asJSON, "json", "j", false, "Output version information as JSON")
	return c
}
