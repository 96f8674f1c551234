// Package prompts provides centralized management for the tool descriptions
// served by the pursue-tools MCP server.
package prompts

// ToolPrompts contains all prompts for MCP tools
type ToolPrompts struct {
	// Markdown tool prompts
	SplitMarkdown   string
	OutlineMarkdown string

	// Asset tool prompts
	FixIconBorders    string
	GenerateDensities string
}

// Default returns the default prompts configuration
func Default() *ToolPrompts {
	return &ToolPrompts{
		SplitMarkdown:     SplitMarkdownToolDescription,
		OutlineMarkdown:   OutlineMarkdownToolDescription,
		FixIconBorders:    FixIconBordersToolDescription,
		GenerateDensities: GenerateDensitiesToolDescription,
	}
}
