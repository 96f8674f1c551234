// Package main implements the pursue-tools MCP server executable.
// It provides a Model Context Protocol server that exposes the markdown
// splitters and icon asset tools to editor agents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/cmd"
	"github.com/pursue-app/pursue-tools/internal/config"
	"github.com/pursue-app/pursue-tools/internal/errors"
	"github.com/pursue-app/pursue-tools/internal/logging"
	"github.com/pursue-app/pursue-tools/internal/security"
	"github.com/pursue-app/pursue-tools/internal/server"
	"github.com/pursue-app/pursue-tools/pkg/version"
)

func main() {
	cmd.Main(rootCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pursue-tools-mcp",
	Short: "pursue-tools MCP server",
	Long: `pursue-tools MCP server provides a Model Context Protocol server over stdio
that exposes the markdown splitters and the icon asset tools as MCP tools.

With --root, tool calls may only read and write below the given directories,
and relative paths in tool arguments resolve against the first root. Without
it they resolve against the working directory. System directories and any
--block directory are always refused.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runServer,
}

// serverFlags holds the flags for the server command
type serverFlags struct {
	roots      []string
	blocked    []string
	configPath string
}

var (
	serverOpts = &serverFlags{}
	newLogger  func() *logging.Logger
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
	rootCmd.Flags().StringArrayVar(&serverOpts.roots, "root", nil, "Directory tool calls may access (repeatable)")
	rootCmd.Flags().StringArrayVar(&serverOpts.blocked, "block", nil, "Directory tool calls may never access (repeatable)")
	rootCmd.Flags().StringVarP(&serverOpts.configPath, "config", "c", "", "YAML configuration file with the icon tool defaults")
	newLogger = cmd.AddLogLevelFlag(rootCmd, "info")

	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(cmd.NewVersionCmd())
}

// runServer starts the MCP server
func runServer(c *cobra.Command, args []string) error {
	if versionFlag, _ := c.Flags().GetBool("version"); versionFlag {
		_, _ = fmt.Fprintln(c.OutOrStdout(), version.GetVersion().String())
		return nil
	}
	c.SilenceUsage = true

	logger := newLogger()

	cfg, err := config.Load(serverOpts.configPath)
	if err != nil {
		return err
	}

	validator, err := newValidator(serverOpts.roots, serverOpts.blocked)
	if err != nil {
		return err
	}

	srv, err := server.New(&server.Options{
		Logger:    logger,
		Validator: validator,
		Config:    cfg,
	})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return errors.Wrap(err, "failed to create server")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	transport := mcp.NewStdioTransport()

	logger.Info("pursue-tools MCP server starting",
		slog.String("version", version.GetVersion().Version),
		slog.Any("roots", validator.Roots()),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	if err := srv.Serve(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", slog.Any("error", err))
		return err
	}

	logger.Info("pursue-tools MCP server stopped")
	return nil
}

// newValidator restricts tool paths to roots and refuses blocked, both made
// absolute. Relative tool paths resolve against the first root.
func newValidator(roots, blocked []string) (*security.DefaultValidator, error) {
	absRoots, err := absPaths(roots)
	if err != nil {
		return nil, err
	}
	absBlocked, err := absPaths(blocked)
	if err != nil {
		return nil, err
	}

	v := security.NewDefaultValidator().WithAllowedPaths(absRoots).WithBlockedPaths(absBlocked)
	if len(absRoots) > 0 {
		v = v.WithBaseDir(absRoots[0])
	}
	return v, nil
}

func absPaths(paths []string) ([]string, error) {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.ConfigurationWithCause(err, "invalid directory %q", p)
		}
		abs = append(abs, a)
	}
	return abs, nil
}
