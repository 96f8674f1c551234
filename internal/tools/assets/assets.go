// Package assets provides the icon asset tools using the MCP SDK patterns.
package assets

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pursue-app/pursue-tools/internal/icons"
	"github.com/pursue-app/pursue-tools/internal/prompts"
	"github.com/pursue-app/pursue-tools/internal/tools"
)

// FixBordersArgs represents the arguments for the fix_icon_borders tool.
type FixBordersArgs struct {
	Dir     string `json:"dir,omitempty" jsonschema:"Directory holding the icons"`
	Pattern string `json:"pattern,omitempty" jsonschema:"Glob of the files to fix inside dir"`
	Border  *int   `json:"border,omitempty" jsonschema:"Border width in pixels"`
}

// DensitiesArgs represents the arguments for the generate_densities tool.
type DensitiesArgs struct {
	SourceDir string `json:"source_dir,omitempty" jsonschema:"Directory holding the source icons"`
	ResDir    string `json:"res_dir,omitempty" jsonschema:"Android resource directory receiving the drawable-* folders"`
	Pattern   string `json:"pattern,omitempty" jsonschema:"Glob of the source icons inside source_dir"`
	BaseSize  *int   `json:"base_size,omitempty" jsonschema:"Icon size in dp at mdpi"`
}

// CreateAssetTools creates all icon asset tools.
func CreateAssetTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateFixBordersTool(ctx),
		CreateDensitiesTool(ctx),
	}
}

// CreateFixBordersTool creates the fix_icon_borders tool.
func CreateFixBordersTool(ctx *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[FixBordersArgs]("fix_icon_borders", prompts.Default().FixIconBorders).
		WithHandler(FixBordersHandler(ctx)).
		Build()
}

// CreateDensitiesTool creates the generate_densities tool.
func CreateDensitiesTool(ctx *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[DensitiesArgs]("generate_densities", prompts.Default().GenerateDensities).
		WithHandler(DensitiesHandler(ctx)).
		Build()
}

// FixBordersHandler returns the handler of the fix_icon_borders tool.
func FixBordersHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[FixBordersArgs]) (*mcp.CallToolResultFor[any], error) {
	logger := ctx.ToolLogger("fix_icon_borders")

	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[FixBordersArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments
		cfg := ctx.Defaults().Icons

		if args.Dir != "" {
			cfg.Dir = args.Dir
		}
		if args.Pattern != "" {
			cfg.Pattern = args.Pattern
		}
		if args.Border != nil {
			cfg.Border = *args.Border
		}

		dir, resp := tools.ValidatePathWithContext(ctx, "dir", cfg.Dir)
		if resp != nil {
			return resp, nil
		}
		cfg.Dir = dir

		var out bytes.Buffer
		result, err := icons.FixBorders(cfg, &out, nil)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		logger.Info("Fixed icon borders",
			slog.String("dir", cfg.Dir),
			slog.Int("processed", len(result.Processed)),
			slog.Int("failed", len(result.Failed)))

		return batchResponse(out.String(), result), nil
	}
}

// DensitiesHandler returns the handler of the generate_densities tool.
func DensitiesHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[DensitiesArgs]) (*mcp.CallToolResultFor[any], error) {
	logger := ctx.ToolLogger("generate_densities")

	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[DensitiesArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments
		cfg := ctx.Defaults().Densities

		if args.SourceDir != "" {
			cfg.SourceDir = args.SourceDir
		}
		if args.ResDir != "" {
			cfg.ResDir = args.ResDir
		}
		if args.Pattern != "" {
			cfg.Pattern = args.Pattern
		}
		if args.BaseSize != nil {
			cfg.BaseSize = *args.BaseSize
		}

		sourceDir, resp := tools.ValidatePathWithContext(ctx, "source_dir", cfg.SourceDir)
		if resp != nil {
			return resp, nil
		}
		resDir, resp := tools.ValidatePathWithContext(ctx, "res_dir", cfg.ResDir)
		if resp != nil {
			return resp, nil
		}
		cfg.SourceDir, cfg.ResDir = sourceDir, resDir

		var out bytes.Buffer
		result, err := icons.GenerateDensities(cfg, &out, nil)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		logger.Info("Generated densities",
			slog.String("source_dir", cfg.SourceDir),
			slog.String("res_dir", cfg.ResDir),
			slog.Int("processed", len(result.Processed)),
			slog.Int("failed", len(result.Failed)))

		return batchResponse(out.String(), result), nil
	}
}

// batchResponse reports the batch transcript. Skipped files do not make
// the call an error.
func batchResponse(transcript string, result *icons.BatchResult) *mcp.CallToolResultFor[any] {
	failed := make([]string, 0, len(result.Failed))
	for _, f := range result.Failed {
		failed = append(failed, f.Path)
	}

	return tools.NewResponse().
		WithText(transcript).
		WithMeta("matched", len(result.Matched)).
		WithMeta("processed", len(result.Processed)).
		WithMeta("failed", failed).
		Build()
}
