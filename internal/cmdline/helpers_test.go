package cmdline_test

import (
	"testing"

	"github.com/spf13/pflag"

	"trawl/internal/commands"
	"trawl/internal/plugins"
	"trawl/internal/settings"
)

// stubCommand is a scriptable Command implementation for dispatcher tests.
type stubCommand struct {
	commands.Base

	name     string
	short    string
	requires bool
	defaults map[string]any
	addOpts  func(fs *pflag.FlagSet)
	process  func(args []string, fs *pflag.FlagSet) error
	run      func(c *stubCommand, args []string) error

	runCalled bool
	runArgs   []string
}

func (c *stubCommand) Name() string { return c.name }

func (c *stubCommand) ShortDesc() string {
	if c.short == "" {
		return "stub command"
	}
	return c.short
}

func (c *stubCommand) RequiresProject() bool { return c.requires }

func (c *stubCommand) DefaultSettings() map[string]any { return c.defaults }

func (c *stubCommand) AddOptions(fs *pflag.FlagSet) {
	if c.addOpts != nil {
		c.addOpts(fs)
	}
}

func (c *stubCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if c.process != nil {
		return c.process(args, fs)
	}
	return nil
}

func (c *stubCommand) Run(args []string) error {
	c.runCalled = true
	c.runArgs = args
	if c.run != nil {
		return c.run(c, args)
	}
	return nil
}

func newTestSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s := settings.New()
	s.SetDict(settings.Defaults(), settings.PriorityDefault)
	return s
}

func resetPlugins(t *testing.T) {
	t.Helper()
	plugins.Reset()
	t.Cleanup(plugins.Reset)
}
