// cmd/tempus/main.go
package main

import (
	cmd "github.com/tempusmcp/tempus/internal/commands"
)

// main starts the tempus CLI application by delegating to the
// cobra root command defined in the tempus package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
