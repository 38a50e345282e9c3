package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"trawl/internal/commands"
)

const (
	flagProfile  = "profile"
	flagSet      = "set"
	flagLogLevel = "loglevel"
	flagLogFile  = "logfile"
)

// parserOutput is the flag set's output stream. It starts muted so pflag's
// own failure reporting stays silent during the parse; Execute attaches the
// error stream once the parse outcome is known and remains the single
// reporter.
type parserOutput struct {
	w io.Writer
}

func (o *parserOutput) Write(p []byte) (int, error) {
	if o.w == nil {
		return len(p), nil
	}
	return o.w.Write(p)
}

// newParser builds the shared flag set for one command. Help output renders
// the command's usage line, description, and registered flags.
func newParser(name string, cmd commands.Command) (*pflag.FlagSet, *parserOutput) {
	out := &parserOutput{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		usage := "trawl " + name
		if syntax := strings.TrimSpace(cmd.Syntax()); syntax != "" {
			usage += " " + syntax
		}
		desc := cmd.LongDesc()
		if desc == "" {
			desc = cmd.ShortDesc()
		}
		fmt.Fprintf(out, "Usage:\n  %s\n\n%s\n\nOptions:\n%s", usage, desc, fs.FlagUsages())
	}
	return fs, out
}

type genericOptions struct {
	profile  string
	setPairs []string
	logLevel string
	logFile  string
}

// addGenericOptions registers the dispatcher-wide flags, skipping any name
// or shorthand the command claimed first. Command definitions win collisions.
func addGenericOptions(fs *pflag.FlagSet) {
	if fs.Lookup(flagProfile) == nil {
		fs.String(flagProfile, "", "write a CPU profile of the command to `FILE`")
	}
	if fs.Lookup(flagSet) == nil && fs.ShorthandLookup("s") == nil {
		fs.StringArrayP(flagSet, "s", nil, "set a setting as `key=value` (repeatable)")
	}
	if fs.Lookup(flagLogLevel) == nil && fs.ShorthandLookup("L") == nil {
		fs.StringP(flagLogLevel, "L", "", "log level (debug, info, warn, error)")
	}
	if fs.Lookup(flagLogFile) == nil {
		fs.String(flagLogFile, "", "append log output to `FILE`")
	}
}

// readGenericOptions collects the generic flag values after parsing. A flag
// the command redefined with another type reads as unset.
func readGenericOptions(fs *pflag.FlagSet) genericOptions {
	var opts genericOptions
	opts.profile, _ = fs.GetString(flagProfile)
	opts.setPairs, _ = fs.GetStringArray(flagSet)
	opts.logLevel, _ = fs.GetString(flagLogLevel)
	opts.logFile, _ = fs.GetString(flagLogFile)
	return opts
}
