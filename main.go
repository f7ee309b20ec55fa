package main

import (
	"os"

	"github.com/pixel-tools/cfgcheck/cmd"
)

func main() {
	// Execute the root command, exit code carries the check result.
	os.Exit(cmd.Execute())
}
