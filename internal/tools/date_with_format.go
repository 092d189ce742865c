// internal/tools/date_with_format.go
package tools

import (
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/tempusmcp/tempus/internal/mcp"
)

// danglingPercent reports whether the pattern ends in an unpaired '%'.
// strftime.Layout passes a trailing '%' through as a literal, but a
// specifier with nothing after it is caller error, not a literal.
func danglingPercent(pattern string) bool {
	trailing := 0
	for i := len(pattern) - 1; i >= 0 && pattern[i] == '%'; i-- {
		trailing++
	}
	return trailing%2 == 1
}

// DateWithFormatDefinition describes the formatted-date tool for discovery.
func DateWithFormatDefinition() mcp.Definition {
	return mcp.Definition{
		Name:        DateWithFormatName,
		Description: "Get the current date with a specific strftime format (e.g. '%Y-%m-%d', '%B %d, %Y').",
		InputSchema: mcp.InputSchema{
			Type: "object",
			Properties: map[string]mcp.Property{
				"format": {
					Type:        "string",
					Description: "The datetime format string",
					Default:     DefaultFormat,
				},
			},
		},
	}
}

// DateWithFormatTool pairs the definition with its handler.
func DateWithFormatTool() mcp.Tool {
	return mcp.Tool{Definition: DateWithFormatDefinition(), Handler: DateWithFormat}
}

// DateWithFormat renders the current time using the caller-supplied
// strftime pattern. A pattern the converter cannot translate is an
// invalid-argument failure, never an internal fault.
func DateWithFormat(args map[string]any) ([]mcp.ContentPart, error) {
	pattern := DefaultFormat
	if v, ok := args["format"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, mcp.InvalidArgumentf("Invalid format string - expected a string, got %T", v)
		}
		pattern = s
	}

	if danglingPercent(pattern) {
		return nil, mcp.InvalidArgumentf("Invalid format string - dangling '%%' at end of format")
	}
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return nil, mcp.InvalidArgumentf("Invalid format string - %v", err)
	}

	return []mcp.ContentPart{{Type: "text", Text: time.Now().Format(layout)}}, nil
}
