package commands

import (
	"fmt"

	"github.com/spf13/pflag"
)

type listCommand struct {
	Base
}

func newListCommand() *listCommand { return &listCommand{} }

func (c *listCommand) Name() string          { return "list" }
func (c *listCommand) ShortDesc() string     { return "List spiders declared by the project" }
func (c *listCommand) RequiresProject() bool { return true }

func (c *listCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 0 {
		return Usagef("unexpected arguments: %v", args)
	}
	return nil
}

func (c *listCommand) Run(args []string) error {
	proj, err := loadProject(c.Settings)
	if err != nil {
		return err
	}
	for _, name := range proj.SpiderNames() {
		fmt.Fprintln(c.Stdout, name)
	}
	return nil
}
