// internal/commands/serve.go
package tempus

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tempusmcp/tempus/internal/logging"
	"github.com/tempusmcp/tempus/internal/mcp"
	"github.com/tempusmcp/tempus/internal/tools"
)

// serveCmd runs the MCP server over stdio. Stdout carries protocol frames;
// all logging goes to stderr or the configured log file.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP stdio server",
	Long:  `Serve the tool catalog over stdin/stdout using JSON-RPC 2.0 with Content-Length framing. The process exits when stdin closes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		registry := mcp.NewRegistry()
		for _, t := range tools.All() {
			if err := registry.Register(t); err != nil {
				return err
			}
		}
		dispatcher := mcp.NewDispatcher(registry, cfg.ValidateArgs())

		srv := mcp.NewServer(cfg.ServerName(), cfg.ServerVersion(), registry, dispatcher)
		srv.SetDebug(cfg.Debug)

		logging.LogEvent("%s %s serving %d tools on stdio", cfg.ServerName(), cfg.ServerVersion(), registry.Len())
		defer logging.LogEvent("%s shutting down", cfg.ServerName())

		return srv.Serve(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
