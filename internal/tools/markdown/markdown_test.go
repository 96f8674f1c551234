package markdown

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pursue-app/pursue-tools/internal/security"
	"github.com/pursue-app/pursue-tools/internal/splitter"
	"github.com/pursue-app/pursue-tools/internal/tools"
)

func createTestContext(root string) *tools.Context {
	return &tools.Context{
		Validator: security.NewDefaultValidator().WithBaseDir(root).WithAllowedPaths([]string{root}),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func resultText(result *mcp.CallToolResultFor[any]) string {
	var parts []string
	for _, c := range result.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func split(t *testing.T, ctx *tools.Context, args SplitArgs) *mcp.CallToolResultFor[any] {
	t.Helper()
	result, err := SplitHandler(ctx)(context.Background(), nil, &mcp.CallToolParamsFor[SplitArgs]{Arguments: args})
	require.NoError(t, err, "handler must report failures in the result")
	return result
}

func outline(t *testing.T, ctx *tools.Context, args OutlineArgs) *mcp.CallToolResultFor[any] {
	t.Helper()
	result, err := OutlineHandler(ctx)(context.Background(), nil, &mcp.CallToolParamsFor[OutlineArgs]{Arguments: args})
	require.NoError(t, err, "handler must report failures in the result")
	return result
}

func TestCreateMarkdownTools(t *testing.T) {
	created := CreateMarkdownTools(createTestContext(t.TempDir()))
	require.Len(t, created, 2)

	assert.Equal(t, "split_markdown", created[0].Tool.Name)
	assert.Equal(t, "outline_markdown", created[1].Tool.Name)
	for _, tool := range created {
		assert.NotEmpty(t, tool.Tool.Description)
		assert.NotNil(t, tool.RegisterFunc)
	}
}

func TestSplitChapters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "book.md"), "# Book\n## 1. Intro\nA\n## 2. Setup\nB\n")

	result := split(t, createTestContext(root), SplitArgs{Source: "book.md", Mode: "chapters", OutDir: "chapters"})
	require.False(t, result.IsError, resultText(result))

	outDir := filepath.Join(root, "chapters")
	intro, err := os.ReadFile(filepath.Join(outDir, "01-intro.md"))
	require.NoError(t, err)
	assert.Equal(t, "## 1. Intro\nA\n", string(intro))
	setup, err := os.ReadFile(filepath.Join(outDir, "02-setup.md"))
	require.NoError(t, err)
	assert.Equal(t, "## 2. Setup\nB\n", string(setup))

	text := resultText(result)
	assert.Contains(t, text, "Wrote "+filepath.Join(outDir, "01-intro.md")+" (2 lines)")
	assert.Contains(t, text, "Done. 2 files in "+outDir)
	assert.Equal(t, 2, result.Meta["files"])
	assert.Equal(t, outDir, result.Meta["out_dir"])
}

func TestSplitSectionsDerivesOutDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "specs", "04-screens.md"), "### 4.1 Home\nx\n### Extras\ny\n")

	result := split(t, createTestContext(root), SplitArgs{Source: "specs/04-screens.md", Mode: "sections"})
	require.False(t, result.IsError, resultText(result))

	outDir := filepath.Join(root, "specs", "04-screens")
	assert.FileExists(t, filepath.Join(outDir, "4.1-home.md"))
	assert.FileExists(t, filepath.Join(outDir, "02-extras.md"))
}

func TestSplitDryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "book.md"), "## One\n")

	result := split(t, createTestContext(root), SplitArgs{Source: "book.md", Mode: "chapter", OutDir: "out", DryRun: true})
	require.False(t, result.IsError, resultText(result))

	assert.Contains(t, resultText(result), "Would write "+filepath.Join(root, "out", "01-one.md"))
	assert.NoDirExists(t, filepath.Join(root, "out"))
	assert.Equal(t, true, result.Meta["dry_run"])
}

func TestSplitErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "flat.md"), "# Title only\n")
	writeFile(t, filepath.Join(root, "book.md"), "## One\n")

	tests := []struct {
		name string
		args SplitArgs
		want string
	}{
		{"unknown mode", SplitArgs{Source: "book.md", Mode: "parts", OutDir: "out"}, `Invalid mode`},
		{"missing mode", SplitArgs{Source: "book.md", OutDir: "out"}, `Invalid mode`},
		{"empty source", SplitArgs{Mode: "chapters", OutDir: "out"}, "source cannot be empty"},
		{"chapters without out_dir", SplitArgs{Source: "book.md", Mode: "chapters"}, "out_dir is required for chapter splitting"},
		{"source outside root", SplitArgs{Source: "../elsewhere.md", Mode: "chapters", OutDir: "out"}, "Path validation failed for source"},
		{"out_dir outside root", SplitArgs{Source: "book.md", Mode: "chapters", OutDir: "/elsewhere"}, "Path validation failed for out_dir"},
		{"missing source", SplitArgs{Source: "absent.md", Mode: "chapters", OutDir: "out"}, "Source file does not exist: " + filepath.Join(root, "absent.md")},
		{"no headings", SplitArgs{Source: "flat.md", Mode: "chapters", OutDir: "out"}, "No ## chapters found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := split(t, createTestContext(root), tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(result), tt.want)
		})
	}
	assert.NoDirExists(t, filepath.Join(root, "out"), "failed splits must not create the output directory")
}

func TestOutline(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "book.md"), "# Book\n\n```\n## not a heading\n```\n\n## Intro\n\nSetext\n------\n")
	ctx := createTestContext(root)

	result := outline(t, ctx, OutlineArgs{Source: "book.md"})
	require.False(t, result.IsError, resultText(result))
	assert.Equal(t, "1: # Book\n7: ## Intro\n9: ## Setext\n", resultText(result))

	result = outline(t, ctx, OutlineArgs{Source: "book.md", Format: "json"})
	require.False(t, result.IsError, resultText(result))
	var entries []splitter.OutlineEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(result)), &entries))
	assert.Equal(t, []splitter.OutlineEntry{
		{Level: 1, Line: 1, Text: "Book"},
		{Level: 2, Line: 7, Text: "Intro"},
		{Level: 2, Line: 9, Text: "Setext"},
	}, entries)
}

func TestOutlineEmptyAndErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "plain.md"), "just text\n")
	ctx := createTestContext(root)

	result := outline(t, ctx, OutlineArgs{Source: "plain.md"})
	assert.False(t, result.IsError)
	assert.Equal(t, "No headings found.", resultText(result))

	result = outline(t, ctx, OutlineArgs{Source: "plain.md", Format: "json"})
	assert.Equal(t, "[]", resultText(result))

	result = outline(t, ctx, OutlineArgs{Source: "plain.md", Format: "yaml"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "Invalid format")

	result = outline(t, ctx, OutlineArgs{Source: "missing.md"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "Source file does not exist")
}
