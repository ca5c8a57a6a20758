package main

import (
	"os"

	"github.com/m04kA/SMC-CareSlotService/cmd/careslots/commands"
)

// Set during build with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// errors are already printed by the printer package
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
