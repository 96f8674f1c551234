// Package server exposes the markdown and icon tools over the Model
// Context Protocol.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pursue-app/pursue-tools/internal/config"
	"github.com/pursue-app/pursue-tools/internal/logging"
	"github.com/pursue-app/pursue-tools/internal/security"
	"github.com/pursue-app/pursue-tools/internal/tools"
	"github.com/pursue-app/pursue-tools/internal/tools/assets"
	"github.com/pursue-app/pursue-tools/internal/tools/markdown"
	"github.com/pursue-app/pursue-tools/pkg/version"
)

// Name is the implementation name the server announces.
const Name = "pursue-tools-mcp"

// toolLogger lets *logging.Logger satisfy tools.Logger.
type toolLogger struct {
	*logging.Logger
}

func (l toolLogger) WithTool(toolName string) tools.Logger {
	return toolLogger{l.Logger.WithTool(toolName)}
}

// Server is an MCP server with every pursue tool installed.
type Server struct {
	mcp      *mcp.Server
	registry *tools.Registry
	logger   *logging.Logger
}

// Options configures New. Zero values are filled in.
type Options struct {
	// Logger defaults to stderr at $LOG_LEVEL, or info.
	Logger *logging.Logger

	// Validator guards every path argument. It defaults to a validator
	// that only blocks the system directories.
	Validator security.Validator

	// Config supplies the icon tool defaults. Nil means the built-in ones.
	Config *config.Config
}

// New builds the server and installs the tools.
func New(opts *Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.LevelFromEnv("info"))
	}
	if opts.Validator == nil {
		opts.Validator = security.NewDefaultValidator()
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    Name,
			Version: version.GetVersion().Version,
		}, nil),
		registry: tools.NewRegistry(),
		logger:   opts.Logger,
	}

	toolCtx := &tools.Context{
		Logger:    toolLogger{opts.Logger},
		Validator: opts.Validator,
		Config:    opts.Config,
	}
	all := slices.Concat(
		markdown.CreateMarkdownTools(toolCtx),
		assets.CreateAssetTools(toolCtx),
	)
	if err := s.registry.Register(all...); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	s.registry.Install(s.mcp)

	s.logger.Debug("Registered tools",
		slog.Int("count", s.registry.Count()),
		slog.Any("tools", s.registry.List()))

	return s, nil
}

// GetRegistry returns the installed tools.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// Serve connects to transport and blocks until the client ends the
// session or ctx is done. In the latter case it returns ctx.Err().
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	session, err := s.mcp.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("failed to connect MCP server: %w", err)
	}
	s.logger.Debug("Session connected", slog.String("transport", fmt.Sprintf("%T", transport)))

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case err := <-done:
		s.logger.Info("Client closed the session")
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down", slog.String("reason", context.Cause(ctx).Error()))
		return ctx.Err()
	}
}
