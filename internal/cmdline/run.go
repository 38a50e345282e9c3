package cmdline

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"trawl/internal/commands"
)

// runCommand invokes cmd.Run, wrapping it in a CPU profile when profilePath
// is set. Profiling is an observability side channel: it never changes the
// command's return value or exit code.
func runCommand(cmd commands.Command, args []string, profilePath string, stderr io.Writer) error {
	if profilePath == "" {
		return cmd.Run(args)
	}

	f, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("create profile output: %w", err)
	}
	fmt.Fprintf(stderr, "trawl: writing CPU profile to %s\n", profilePath)
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}

	runErr := cmd.Run(args)

	pprof.StopCPUProfile()
	if err := f.Close(); err != nil {
		fmt.Fprintf(stderr, "trawl: close profile output: %v\n", err)
	}
	return runErr
}
