package commands

import (
	"fmt"

	"github.com/spf13/pflag"
)

type settingsCommand struct {
	Base

	getKey string
}

func newSettingsCommand() *settingsCommand { return &settingsCommand{} }

func (c *settingsCommand) Name() string      { return "settings" }
func (c *settingsCommand) Syntax() string    { return "[options]" }
func (c *settingsCommand) ShortDesc() string { return "Print the layered settings" }

func (c *settingsCommand) LongDesc() string {
	return "Print every setting with the layer it came from, or one raw value with --get."
}

func (c *settingsCommand) AddOptions(fs *pflag.FlagSet) {
	fs.StringVar(&c.getKey, "get", "", "print the raw value of one setting `KEY`")
}

func (c *settingsCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 0 {
		return Usagef("unexpected arguments: %v", args)
	}
	return nil
}

func (c *settingsCommand) Run(args []string) error {
	if c.getKey != "" {
		fmt.Fprintln(c.Stdout, c.Settings.GetString(c.getKey))
		return nil
	}

	entries := c.Settings.Entries()
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Key,
			fmt.Sprintf("%v", entry.Value),
			entry.Priority.String(),
		})
	}
	RenderTable(c.Stdout, []string{"Setting", "Value", "Source"}, rows)
	return nil
}
