package main

import (
	"runtime"

	"github.com/bnema/hdmiprobe/internal/cli/cmd"
	"github.com/bnema/hdmiprobe/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Run CLI (shows help if no subcommand)
	cmd.Execute()
}
