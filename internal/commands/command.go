package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"trawl/internal/settings"
)

// Command is a named unit of work selected by the first CLI token.
// Implementations embed Base for the default behaviors and override only
// what they need.
type Command interface {
	// Name is the token that selects the command, unique within the registry.
	Name() string
	// Syntax is the usage fragment shown after the command name.
	Syntax() string
	// ShortDesc is the one-line summary used in command listings.
	ShortDesc() string
	// LongDesc is the help body; empty falls back to ShortDesc.
	LongDesc() string
	// RequiresProject reports whether the command is hidden outside a
	// recognized project directory.
	RequiresProject() bool
	// DefaultSettings contributes low-priority settings before user input.
	DefaultSettings() map[string]any
	// AddOptions registers command-specific flags. Names registered here win
	// over the dispatcher's generic flags.
	AddOptions(fs *pflag.FlagSet)
	// ProcessOptions validates positional operands and parsed flags before
	// any side-effecting work. Returning *UsageError aborts with exit code 2.
	ProcessOptions(args []string, fs *pflag.FlagSet) error
	// Run performs the work. Expected operational failures are reported via
	// SetExitCode, not via the returned error.
	Run(args []string) error
	// Bind attaches the frozen settings store, logger, and output streams.
	Bind(s *settings.Settings, logger *slog.Logger, stdout, stderr io.Writer)
	// ExitCode is read once after Run returns; zero unless Run set it.
	ExitCode() int
}

// Base supplies the default Command behaviors shared by every subcommand.
// It replaces inheritance with an embedded helper: commands override the
// methods they care about and leave the rest to Base.
type Base struct {
	Settings *settings.Settings
	Logger   *slog.Logger
	Stdout   io.Writer
	Stderr   io.Writer

	exitCode int
}

// Syntax returns an empty usage fragment.
func (b *Base) Syntax() string { return "" }

// LongDesc returns "" so help output falls back to the short description.
func (b *Base) LongDesc() string { return "" }

// RequiresProject reports false; project-only commands override this.
func (b *Base) RequiresProject() bool { return false }

// DefaultSettings contributes nothing.
func (b *Base) DefaultSettings() map[string]any { return nil }

// AddOptions registers no command-specific flags.
func (b *Base) AddOptions(*pflag.FlagSet) {}

// ProcessOptions accepts any input.
func (b *Base) ProcessOptions([]string, *pflag.FlagSet) error { return nil }

// Bind stores the settings, logger, and output streams on the command.
func (b *Base) Bind(s *settings.Settings, logger *slog.Logger, stdout, stderr io.Writer) {
	b.Settings = s
	b.Logger = logger
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	b.Stdout = stdout
	b.Stderr = stderr
}

// SetExitCode records the process exit code reported after Run.
func (b *Base) SetExitCode(code int) { b.exitCode = code }

// ExitCode returns the recorded exit code, zero by default.
func (b *Base) ExitCode() int { return b.exitCode }
