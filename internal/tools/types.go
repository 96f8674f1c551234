// Package tools provides the registry and common types for the MCP tools.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pursue-app/pursue-tools/internal/config"
)

// ServerTool pairs a tool schema with the function that registers its
// typed handler on a server.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(*mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger    Logger
	Validator Validator

	// Config supplies defaults for arguments a call leaves out.
	// Nil means the built-in defaults.
	Config *config.Config
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
}

// Validator defines the path validation interface.
type Validator interface {
	ValidatePath(path string) error
	SanitizePath(path string) (string, error)
}

// Defaults returns the configuration tools fall back on.
func (c *Context) Defaults() *config.Config {
	if c.Config == nil {
		return config.Default()
	}
	return c.Config
}

// ToolLogger returns a logger scoped to the named tool, or a no-op logger
// when the context has none.
func (c *Context) ToolLogger(toolName string) Logger {
	if c.Logger == nil {
		return nopLogger{}
	}
	return c.Logger.WithTool(toolName)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)    {}
func (nopLogger) Info(string, ...any)     {}
func (nopLogger) Warn(string, ...any)     {}
func (nopLogger) Error(string, ...any)    {}
func (nopLogger) WithTool(string) Logger { return nopLogger{} }
