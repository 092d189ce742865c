package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}
	fmt.Fprintf(out, "  Server Name:    %s\n", cfg.ServerName())
	fmt.Fprintf(out, "  Server Version: %s\n", cfg.ServerVersion())
	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Strict Args:    %v\n", cfg.ValidateArgs())
	fmt.Fprintf(out, "  Log File:       %s\n", cfg.LogFilePath())
}
