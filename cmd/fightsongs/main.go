// cmd/fightsongs/main.go
package main

import (
	cmd "github.com/mwiater/fightsongs/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the fightsongs CLI by delegating to the cobra root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
