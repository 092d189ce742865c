// internal/tools/tools.go
// Package tools implements the date/time tools the server exposes.
package tools

import "github.com/tempusmcp/tempus/internal/mcp"

const (
	// CurrentDateName is the canonical name for the date-and-time tool.
	CurrentDateName = "get_current_date"
	// DateWithFormatName is the canonical name for the formatted-date tool.
	DateWithFormatName = "get_date_with_format"
)

// DefaultFormat is the strftime pattern used when the caller omits one.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

// All returns every tool in its advertised order.
func All() []mcp.Tool {
	return []mcp.Tool{
		CurrentDateTool(),
		DateWithFormatTool(),
	}
}
