// internal/tools/current_date.go
package tools

import (
	"fmt"
	"time"

	"github.com/tempusmcp/tempus/internal/mcp"
)

// longForm renders month name, day, year and a 12-hour clock with AM/PM.
const longForm = "January 2, 2006 at 3:04 PM"

// CurrentDateDefinition describes the date-and-time tool for discovery.
func CurrentDateDefinition() mcp.Definition {
	return mcp.Definition{
		Name:        CurrentDateName,
		Description: "Get the current date and time in a human-readable format.",
		InputSchema: mcp.InputSchema{
			Type:       "object",
			Properties: map[string]mcp.Property{},
		},
	}
}

// CurrentDateTool pairs the definition with its handler.
func CurrentDateTool() mcp.Tool {
	return mcp.Tool{Definition: CurrentDateDefinition(), Handler: CurrentDate}
}

// CurrentDate returns the current local date and time as a single text part.
func CurrentDate(args map[string]any) ([]mcp.ContentPart, error) {
	now := time.Now()
	text := fmt.Sprintf("Current date and time: %s", now.Format(longForm))
	return []mcp.ContentPart{{Type: "text", Text: text}}, nil
}
