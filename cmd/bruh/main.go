package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/bruh/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	build := cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
	if err := cli.Execute(build); err != nil {
		fmt.Fprintf(os.Stderr, "bruh: %v\n", err)
		os.Exit(1)
	}
}
