// cmd/rag/main.go
package main

import (
	cmd "github.com/ozkanacar/bolumrag/internal/commands"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the rag CLI application by delegating to the cobra root
// command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
