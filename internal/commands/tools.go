// internal/commands/tools.go
package tempus

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tempusmcp/tempus/internal/mcp"
	"github.com/tempusmcp/tempus/internal/tools"
)

var toolName = color.New(color.FgCyan, color.Bold).SprintFunc()
var required = color.New(color.FgRed).SprintFunc()

// toolsCmd prints the advertised tool catalog in discovery order.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server advertises",
	Run: func(cmd *cobra.Command, args []string) {
		printToolCatalog(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func printToolCatalog(out io.Writer) {
	for _, t := range tools.All() {
		def := t.Definition
		fmt.Fprintf(out, "%s\n", toolName(def.Name))
		fmt.Fprintf(out, "  %s\n", def.Description)
		printProperties(out, def.InputSchema)
		fmt.Fprintln(out)
	}
}

func printProperties(out io.Writer, schema mcp.InputSchema) {
	if len(schema.Properties) == 0 {
		fmt.Fprintln(out, "  (no arguments)")
		return
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	requiredSet := map[string]bool{}
	for _, name := range schema.Required {
		requiredSet[name] = true
	}

	for _, name := range names {
		prop := schema.Properties[name]
		line := fmt.Sprintf("  - %s (%s)", name, prop.Type)
		if prop.Description != "" {
			line += ": " + prop.Description
		}
		if prop.Default != nil {
			line += fmt.Sprintf(" [default: %v]", prop.Default)
		}
		if requiredSet[name] {
			line += " " + required("[required]")
		}
		fmt.Fprintln(out, line)
	}
}
