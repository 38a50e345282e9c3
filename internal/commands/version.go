package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"trawl/internal/version"
)

type versionCommand struct {
	Base

	verbose bool
}

func newVersionCommand() *versionCommand { return &versionCommand{} }

func (c *versionCommand) Name() string      { return "version" }
func (c *versionCommand) Syntax() string    { return "[options]" }
func (c *versionCommand) ShortDesc() string { return "Print trawl version" }

func (c *versionCommand) AddOptions(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "also print the go runtime and platform")
}

func (c *versionCommand) Run(args []string) error {
	fmt.Fprintf(c.Stdout, "trawl %s\n", version.Version)
	if c.verbose {
		fmt.Fprintf(c.Stdout, "go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
