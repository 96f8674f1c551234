package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool handlers report user mistakes as results with IsError set and keep
// their Go error for protocol failures. Error texts start with "Error: ".

// ErrorResponse is a failed call carrying message.
func ErrorResponse(message string) *mcp.CallToolResultFor[any] {
	return NewResponse().WithText("Error: " + message).AsError().Build()
}

// ErrorResponsef is ErrorResponse with a format string.
func ErrorResponsef(format string, args ...any) *mcp.CallToolResultFor[any] {
	return ErrorResponse(fmt.Sprintf(format, args...))
}

// SuccessResponse is a call that produced text.
func SuccessResponse(text string) *mcp.CallToolResultFor[any] {
	return NewResponse().WithText(text).Build()
}

// JSONResponse renders data as indented JSON text.
func JSONResponse(data any) *mcp.CallToolResultFor[any] {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorResponsef("cannot encode result: %v", err)
	}
	return SuccessResponse(string(encoded))
}

// EmptyFieldError reports a missing argument.
func EmptyFieldError(field string) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("%s cannot be empty", field)
}

// InvalidFieldError reports an argument with an unusable value.
func InvalidFieldError(field, reason string) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("Invalid %s: %s", field, reason)
}

// ValidatePathWithContext resolves a path argument through the context's
// validator. A non-nil result means the path was refused and should be
// returned to the caller as is.
func ValidatePathWithContext(ctx *Context, field, path string) (string, *mcp.CallToolResultFor[any]) {
	if path == "" {
		return "", EmptyFieldError(field)
	}

	resolved, err := ctx.Validator.SanitizePath(path)
	if err != nil {
		return "", ErrorResponsef("Path validation failed for %s: %v", field, err)
	}
	return resolved, nil
}

// ResponseBuilder assembles a result from text blocks and metadata.
type ResponseBuilder struct {
	result *mcp.CallToolResultFor[any]
}

// NewResponse starts an empty, successful result.
func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{result: &mcp.CallToolResultFor[any]{}}
}

// WithText appends a text block.
func (rb *ResponseBuilder) WithText(text string) *ResponseBuilder {
	rb.result.Content = append(rb.result.Content, &mcp.TextContent{Text: text})
	return rb
}

// WithTextf appends a formatted text block.
func (rb *ResponseBuilder) WithTextf(format string, args ...any) *ResponseBuilder {
	return rb.WithText(fmt.Sprintf(format, args...))
}

// WithMeta sets a metadata key. Results without metadata carry no _meta.
func (rb *ResponseBuilder) WithMeta(key string, value any) *ResponseBuilder {
	if rb.result.Meta == nil {
		rb.result.Meta = map[string]any{}
	}
	rb.result.Meta[key] = value
	return rb
}

// AsError flags the result as a failed call.
func (rb *ResponseBuilder) AsError() *ResponseBuilder {
	rb.result.IsError = true
	return rb
}

// Build returns the result. The builder must not be reused.
func (rb *ResponseBuilder) Build() *mcp.CallToolResultFor[any] {
	return rb.result
}
