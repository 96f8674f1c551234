// Package markdown provides the markdown splitting tools using the MCP SDK patterns.
package markdown

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pursue-app/pursue-tools/internal/prompts"
	"github.com/pursue-app/pursue-tools/internal/splitter"
	"github.com/pursue-app/pursue-tools/internal/tools"
)

// SplitArgs represents the arguments for the split_markdown tool.
type SplitArgs struct {
	Source string `json:"source" jsonschema:"Path of the markdown file to split"`
	Mode   string `json:"mode" jsonschema:"Either chapters (split on ## headings) or sections (split on ### headings)"`
	OutDir string `json:"out_dir,omitempty" jsonschema:"Output directory. Required for chapters. Defaults to a directory beside the source for sections"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"List the files that would be written without writing them"`
}

// OutlineArgs represents the arguments for the outline_markdown tool.
type OutlineArgs struct {
	Source string `json:"source" jsonschema:"Path of the markdown file"`
	Format string `json:"format,omitempty" jsonschema:"text (default) or json"`
}

// CreateMarkdownTools creates all markdown tools.
func CreateMarkdownTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateSplitTool(ctx),
		CreateOutlineTool(ctx),
	}
}

// CreateSplitTool creates the split_markdown tool.
func CreateSplitTool(ctx *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[SplitArgs]("split_markdown", prompts.Default().SplitMarkdown).
		WithHandler(SplitHandler(ctx)).
		Build()
}

// CreateOutlineTool creates the outline_markdown tool.
func CreateOutlineTool(ctx *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[OutlineArgs]("outline_markdown", prompts.Default().OutlineMarkdown).
		WithHandler(OutlineHandler(ctx)).
		Build()
}

// SplitHandler returns the handler of the split_markdown tool. Failures
// are reported in the result, never as a protocol error.
func SplitHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[SplitArgs]) (*mcp.CallToolResultFor[any], error) {
	logger := ctx.ToolLogger("split_markdown")

	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SplitArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments

		mode, ok := splitter.ModeByName(args.Mode)
		if !ok {
			return tools.InvalidFieldError("mode", `expected "chapters" or "sections", got "`+args.Mode+`"`), nil
		}

		source, resp := tools.ValidatePathWithContext(ctx, "source", args.Source)
		if resp != nil {
			return resp, nil
		}

		outDir := args.OutDir
		if outDir == "" && mode.OutputDir != nil {
			outDir = mode.OutputDir(source)
		}
		if outDir == "" {
			return tools.ErrorResponsef("out_dir is required for %s splitting", mode.Name), nil
		}
		outDir, resp = tools.ValidatePathWithContext(ctx, "out_dir", outDir)
		if resp != nil {
			return resp, nil
		}

		var report bytes.Buffer
		s := splitter.New(splitter.Options{
			Mode:     mode,
			DryRun:   args.DryRun,
			Reporter: splitter.NewTextReporter(&report, args.DryRun),
		})

		result, err := s.Split(source, outDir)
		if err != nil {
			logger.Warn("Split failed", slog.String("source", source), slog.Any("error", err))
			builder := tools.NewResponse()
			if report.Len() > 0 {
				builder.WithText(report.String())
			}
			return builder.WithTextf("Error: %v", err).AsError().Build(), nil
		}

		logger.Info("Split markdown",
			slog.String("source", result.Source),
			slog.String("out_dir", result.OutDir),
			slog.Int("files", len(result.Files)),
			slog.Bool("dry_run", result.DryRun))

		return tools.NewResponse().
			WithText(report.String()).
			WithMeta("out_dir", result.OutDir).
			WithMeta("files", len(result.Files)).
			WithMeta("dry_run", result.DryRun).
			Build(), nil
	}
}

// OutlineHandler returns the handler of the outline_markdown tool.
func OutlineHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[OutlineArgs]) (*mcp.CallToolResultFor[any], error) {
	logger := ctx.ToolLogger("outline_markdown")

	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[OutlineArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments

		if args.Format != "" && args.Format != "text" && args.Format != "json" {
			return tools.InvalidFieldError("format", `expected "text" or "json", got "`+args.Format+`"`), nil
		}

		source, resp := tools.ValidatePathWithContext(ctx, "source", args.Source)
		if resp != nil {
			return resp, nil
		}

		_, doc, err := splitter.LoadSource(source)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		entries := splitter.Outline(doc)
		logger.Debug("Outlined markdown", slog.String("source", source), slog.Int("headings", len(entries)))

		if args.Format == "json" {
			if entries == nil {
				entries = []splitter.OutlineEntry{}
			}
			return tools.JSONResponse(entries), nil
		}

		if len(entries) == 0 {
			return tools.SuccessResponse("No headings found."), nil
		}
		var out bytes.Buffer
		if err := splitter.WriteOutline(&out, entries); err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}
		return tools.SuccessResponse(out.String()), nil
	}
}
