package main

import (
	"github.com/go-drift/sheet/cmd/sheetsnap/cmd"
)

// Version information set at build time.
var (
	version   = "0.1.0-dev"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version, buildTime)
	cmd.Execute()
}
