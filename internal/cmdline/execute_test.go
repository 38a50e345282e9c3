package cmdline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"trawl/internal/cmdline"
	"trawl/internal/commands"
	"trawl/internal/logging"
	"trawl/internal/plugins"
	"trawl/internal/project"
	"trawl/internal/settings"
)

func runExecute(t *testing.T, argv []string, s *settings.Settings, dir string) (int, string, string) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	var stdout, stderr bytes.Buffer
	code := cmdline.Execute(argv, cmdline.Options{
		Settings: s,
		Stdout:   &stdout,
		Stderr:   &stderr,
		Logger:   logging.NewNop(),
		Dir:      dir,
	})
	return code, stdout.String(), stderr.String()
}

func TestExecuteNoCommandPrintsSortedListing(t *testing.T) {
	resetPlugins(t)

	code, stdout, _ := runExecute(t, []string{"trawl"}, newTestSettings(t), "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if !strings.Contains(stdout, "no active project") {
		t.Fatalf("listing header missing, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Available commands:") {
		t.Fatalf("listing missing commands section:\n%s", stdout)
	}
	if !strings.Contains(stdout, "More commands are available when run from a project directory") {
		t.Fatalf("listing missing out-of-project note:\n%s", stdout)
	}

	// Global commands appear in alphabetical order; project-only ones are hidden.
	last := -1
	for _, name := range []string{"fetch", "settings", "startproject", "version"} {
		idx := strings.Index(stdout, name)
		if idx < 0 {
			t.Fatalf("listing missing command %q:\n%s", name, stdout)
		}
		if idx < last {
			t.Fatalf("command %q out of sorted order:\n%s", name, stdout)
		}
		last = idx
	}
	if strings.Contains(stdout, "crawl") {
		t.Fatalf("project-only command listed outside a project:\n%s", stdout)
	}
}

func TestExecuteListingInsideProject(t *testing.T) {
	resetPlugins(t)
	dir := t.TempDir()
	if _, err := project.Scaffold(dir, "newsroom", "Newsroom"); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}

	code, stdout, _ := runExecute(t, []string{"trawl"}, newTestSettings(t), dir)
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if !strings.Contains(stdout, "project: newsroom") {
		t.Fatalf("expected project header, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "crawl") {
		t.Fatalf("project command missing from listing:\n%s", stdout)
	}
	if strings.Contains(stdout, "More commands are available") {
		t.Fatalf("in-project listing should not carry the out-of-project note:\n%s", stdout)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	resetPlugins(t)

	code, stdout, _ := runExecute(t, []string{"trawl", "bogus"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if !strings.Contains(stdout, "Unknown command: bogus") {
		t.Fatalf("missing unknown-command notice:\n%s", stdout)
	}
}

func TestExecuteUsageErrorSkipsRun(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		process: func(args []string, fs *pflag.FlagSet) error {
			return commands.Usagef("exactly one target required")
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if !strings.Contains(stderr, "exactly one target required") {
		t.Fatalf("usage message missing from stderr:\n%s", stderr)
	}
	if stub.runCalled {
		t.Fatal("run must not execute after a usage error")
	}
}

func TestExecuteUsageErrorWithHelpPrintsUsage(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		process: func(args []string, fs *pflag.FlagSet) error {
			return commands.UsageHelp()
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if !strings.Contains(stderr, "Usage:") || !strings.Contains(stderr, "trawl probe") {
		t.Fatalf("help text missing from stderr:\n%s", stderr)
	}
}

func TestExecuteUsageErrorMessageSuppressesHelp(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		process: func(args []string, fs *pflag.FlagSet) error {
			return &commands.UsageError{Message: "target missing", PrintHelp: true}
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if !strings.Contains(stderr, "target missing") {
		t.Fatalf("usage message missing from stderr:\n%s", stderr)
	}
	if strings.Contains(stderr, "Usage:") {
		t.Fatalf("help must not print alongside an error message:\n%s", stderr)
	}
}

func TestExecuteHelpFlagExitsZero(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{name: "probe"}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe", "-h"}, newTestSettings(t), "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Fatalf("help output missing:\n%s", stderr)
	}
	if stub.runCalled {
		t.Fatal("run must not execute for -h")
	}
}

func TestExecuteUnknownFlagIsUsageError(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{name: "probe"}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe", "--nope"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if got := strings.Count(stderr, "unknown flag"); got != 1 {
		t.Fatalf("parse error reported %d times, want exactly once:\n%s", got, stderr)
	}
	if strings.Contains(stderr, "Options:") {
		t.Fatalf("unexpected usage dump after a parse error:\n%s", stderr)
	}
	if stub.runCalled {
		t.Fatal("run must not execute after a parse error")
	}
}

func TestExecutePassesOperandsAndFlagsBeforeCommand(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{name: "probe"}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, _ := runExecute(t, []string{"trawl", "probe", "alpha", "-L", "debug", "beta"}, newTestSettings(t), "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if len(stub.runArgs) != 2 || stub.runArgs[0] != "alpha" || stub.runArgs[1] != "beta" {
		t.Fatalf("unexpected operands: %v", stub.runArgs)
	}
}

func TestExecuteCommandDefaultsRoundTrip(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name:     "probe",
		defaults: map[string]any{"concurrency": 4, "editor": "probe-editor"},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	s := newTestSettings(t)
	// Simulates the env-seeded EDITOR, which outranks command defaults.
	s.Set("editor", "vim", settings.PriorityCmdline)

	code, _, _ := runExecute(t, []string{"trawl", "probe"}, s, "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}

	if got := s.GetInt("concurrency", 0); got != 4 {
		t.Fatalf("command default missing: got %d want 4", got)
	}
	priority, _ := s.PriorityOf("concurrency")
	if priority != settings.PriorityCommand {
		t.Fatalf("unexpected priority for command default: got %v", priority)
	}
	if got := s.GetString("editor"); got != "vim" {
		t.Fatalf("higher-priority editor overridden: got %q", got)
	}
	if !s.Frozen() {
		t.Fatal("settings must be frozen after binding")
	}
}

func TestExecuteSetFlagWritesAtCmdlinePriority(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{name: "probe", defaults: map[string]any{"user_agent": "probe-agent"}}
	plugins.Register("probe", func() commands.Command { return stub })

	s := newTestSettings(t)
	code, _, _ := runExecute(t, []string{"trawl", "probe", "-s", "user_agent=custom"}, s, "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if got := s.GetString("user_agent"); got != "custom" {
		t.Fatalf("unexpected user_agent: got %q", got)
	}
	priority, _ := s.PriorityOf("user_agent")
	if priority != settings.PriorityCmdline {
		t.Fatalf("unexpected priority: got %v", priority)
	}
}

func TestExecuteMalformedSetFlag(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{name: "probe"}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe", "-s", "novalue"}, newTestSettings(t), "")
	if code != 2 {
		t.Fatalf("unexpected exit code: got %d want 2", code)
	}
	if !strings.Contains(stderr, "expected key=value") {
		t.Fatalf("expected key=value error:\n%s", stderr)
	}
}

func TestExecuteCommandFlagWinsCollision(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		addOpts: func(fs *pflag.FlagSet) {
			fs.Bool("profile", false, "toggle probe profiling mode")
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	// With the generic string flag, --profile would demand a value.
	code, _, stderr := runExecute(t, []string{"trawl", "probe", "--profile"}, newTestSettings(t), "")
	if code != 0 {
		t.Fatalf("unexpected exit code: got %d want 0", code)
	}
	if strings.Contains(stderr, "writing CPU profile") {
		t.Fatalf("generic profiling must not trigger for the command's flag:\n%s", stderr)
	}
	if !stub.runCalled {
		t.Fatal("expected run to execute")
	}
}

func TestExecuteProfileWritesStatsFile(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		run: func(c *stubCommand, args []string) error {
			// A little work so the profiler has something to sample.
			total := 0
			for i := 0; i < 1_000_000; i++ {
				total += i % 7
			}
			_ = total
			c.SetExitCode(3)
			return nil
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	profilePath := filepath.Join(t.TempDir(), "probe.pprof")
	code, _, stderr := runExecute(t, []string{"trawl", "probe", "--profile", profilePath}, newTestSettings(t), "")
	if code != 3 {
		t.Fatalf("profiling altered the exit code: got %d want 3", code)
	}
	if !strings.Contains(stderr, "writing CPU profile to "+profilePath) {
		t.Fatalf("missing profile diagnostic on stderr:\n%s", stderr)
	}
	info, err := os.Stat(profilePath)
	if err != nil {
		t.Fatalf("profile file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("profile file is empty")
	}
}

func TestExecuteRunErrorExitsOne(t *testing.T) {
	resetPlugins(t)
	stub := &stubCommand{
		name: "probe",
		run: func(c *stubCommand, args []string) error {
			return os.ErrPermission
		},
	}
	plugins.Register("probe", func() commands.Command { return stub })

	code, _, stderr := runExecute(t, []string{"trawl", "probe"}, newTestSettings(t), "")
	if code != 1 {
		t.Fatalf("unexpected exit code: got %d want 1", code)
	}
	if !strings.Contains(stderr, "permission denied") {
		t.Fatalf("expected run error on stderr:\n%s", stderr)
	}
}
