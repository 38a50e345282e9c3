package cmdline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"trawl/internal/commands"
	"trawl/internal/logging"
	"trawl/internal/project"
	"trawl/internal/settings"
)

// Options customizes one Execute run. Zero values wire the process defaults:
// stdout/stderr, the current directory, settings layered from built-in
// defaults plus the environment, and a logger derived from settings.
type Options struct {
	Settings *settings.Settings
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Dir      string
}

// Execute runs one trawl invocation and returns its process exit code:
// 0 for success or the command listing, 2 for usage errors and unknown
// commands, otherwise whatever the command reported.
func Execute(argv []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	s := opts.Settings
	if s == nil {
		s = settings.New()
		s.SetDict(settings.Defaults(), settings.PriorityDefault)
		if err := settings.ApplyEnv(s); err != nil {
			fmt.Fprintf(opts.Stderr, "trawl: %v\n", err)
			return 1
		}
	}

	root, inProject := project.Find(opts.Dir)
	if inProject {
		if _, err := project.Apply(s, root); err != nil {
			fmt.Fprintf(opts.Stderr, "trawl: %v\n", err)
			return 1
		}
	}

	registry, err := Discover(s, inProject)
	if err != nil {
		// Configuration errors abort before any command can run.
		fmt.Fprintf(opts.Stderr, "trawl: %v\n", err)
		return 1
	}

	name, argv := popCommandName(argv)
	if name == "" {
		printCommands(opts.Stdout, s, registry, inProject)
		return 0
	}
	cmd, ok := registry[name]
	if !ok {
		printUnknownCommand(opts.Stdout, s, name, inProject)
		return 2
	}

	s.SetDict(cmd.DefaultSettings(), settings.PriorityCommand)

	fs, parserOut := newParser(name, cmd)
	cmd.AddOptions(fs)
	addGenericOptions(fs)

	err = fs.Parse(argv[1:])
	parserOut.w = opts.Stderr
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.Usage()
			return 0
		}
		fmt.Fprintf(opts.Stderr, "trawl %s: error: %v\n", name, err)
		fmt.Fprintf(opts.Stderr, "Run \"trawl %s -h\" for usage.\n", name)
		return 2
	}

	generic := readGenericOptions(fs)
	for _, pair := range generic.setPairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			fmt.Fprintf(opts.Stderr, "trawl %s: error: invalid --set value %q (expected key=value)\n", name, pair)
			return 2
		}
		s.Set(key, value, settings.PriorityCmdline)
	}
	if generic.logLevel != "" {
		s.Set("log_level", generic.logLevel, settings.PriorityCmdline)
	}

	logger, closeLog, err := buildLogger(s, generic.logFile, opts.Stderr, opts.Logger)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "trawl: %v\n", err)
		return 1
	}
	defer closeLog()

	s.Freeze()
	cmd.Bind(s, logger, opts.Stdout, opts.Stderr)

	if err := cmd.ProcessOptions(fs.Args(), fs); err != nil {
		return reportPipelineError(fs, opts.Stderr, name, err)
	}

	if err := runCommand(cmd, fs.Args(), generic.profile, opts.Stderr); err != nil {
		return reportPipelineError(fs, opts.Stderr, name, err)
	}
	return cmd.ExitCode()
}

// reportPipelineError converts a UsageError into parser-style output with
// exit code 2; anything else is a plain failure with exit code 1. An error
// message stands alone, so the help dump prints only for bare help requests.
func reportPipelineError(fs *pflag.FlagSet, stderr io.Writer, name string, err error) int {
	var usageErr *commands.UsageError
	if !errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "trawl %s: %v\n", name, err)
		return 1
	}
	if usageErr.Message != "" {
		fmt.Fprintf(stderr, "trawl %s: error: %s\n", name, usageErr.Message)
	} else if usageErr.PrintHelp {
		fs.Usage()
	}
	return 2
}

// buildLogger derives the invocation logger from settings and the generic
// log flags, tagging it with a fresh run ID. The returned closer releases
// the log file handle when one was opened.
func buildLogger(s *settings.Settings, logFile string, stderr io.Writer, override *slog.Logger) (*slog.Logger, func(), error) {
	if override != nil {
		return override, func() {}, nil
	}

	output := io.Writer(stderr)
	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		output = f
		closer = func() { _ = f.Close() }
	}

	logger, err := logging.New(logging.Options{
		Level:  s.GetString("log_level"),
		Format: s.GetString("log_format"),
		Output: output,
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger.With("run_id", uuid.NewString()), closer, nil
}
