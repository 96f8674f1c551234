package tools

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Registry holds the tools a server exposes, keyed by name.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*ServerTool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*ServerTool)}
}

// Register adds tools in order. It stops at the first tool that is
// malformed or whose name is taken; tools before it stay registered.
func (r *Registry) Register(tools ...*ServerTool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tool := range tools {
		if err := checkTool(tool); err != nil {
			return err
		}
		if _, taken := r.byName[tool.Tool.Name]; taken {
			return fmt.Errorf("tool %s is already registered", tool.Tool.Name)
		}
		r.byName[tool.Tool.Name] = tool
	}
	return nil
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (*ServerTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.byName[name]
	return tool, ok
}

// List returns the tool names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Count returns how many tools are registered.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

// Install adds every tool to server in name order.
func (r *Registry) Install(server *mcp.Server) {
	for _, name := range r.List() {
		tool, _ := r.Get(name)
		tool.RegisterFunc(server)
	}
}

func checkTool(tool *ServerTool) error {
	switch {
	case tool == nil || tool.Tool == nil:
		return fmt.Errorf("tool has nil schema")
	case tool.Tool.Name == "":
		return fmt.Errorf("tool name cannot be empty")
	case tool.Tool.Description == "":
		return fmt.Errorf("tool %s has empty description", tool.Tool.Name)
	case tool.RegisterFunc == nil:
		return fmt.Errorf("tool %s has nil register function", tool.Tool.Name)
	}
	return nil
}

// ToolBuilder binds a typed handler to a tool name and description. The
// input schema is inferred from T when the tool is installed.
type ToolBuilder[T any] struct {
	tool    *mcp.Tool
	handler func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[T]) (*mcp.CallToolResultFor[any], error)
}

// NewToolBuilder starts a tool whose arguments decode into T.
func NewToolBuilder[T any](name, description string) *ToolBuilder[T] {
	return &ToolBuilder[T]{tool: &mcp.Tool{Name: name, Description: description}}
}

// WithHandler sets the function serving tools/call for this tool.
func (b *ToolBuilder[T]) WithHandler(handler func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[T]) (*mcp.CallToolResultFor[any], error)) *ToolBuilder[T] {
	b.handler = handler
	return b
}

// Build returns the ServerTool. It panics when no handler was set.
func (b *ToolBuilder[T]) Build() *ServerTool {
	if b.handler == nil {
		panic(fmt.Sprintf("handler not set for tool %s", b.tool.Name))
	}

	tool, handler := b.tool, b.handler
	return &ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}
