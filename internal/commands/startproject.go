package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trawl/internal/project"
)

var projectNameRE = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

type startProjectCommand struct {
	Base
}

func newStartProjectCommand() *startProjectCommand { return &startProjectCommand{} }

func (c *startProjectCommand) Name() string      { return "startproject" }
func (c *startProjectCommand) Syntax() string    { return "<name> [dir]" }
func (c *startProjectCommand) ShortDesc() string { return "Create a new trawl project" }

func (c *startProjectCommand) LongDesc() string {
	return "Create a " + project.FileName + " scaffold for a new project in <dir>\n" +
		"(default: a directory named after the project)."
}

func (c *startProjectCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) < 1 || len(args) > 2 {
		return Usagef("expected <name> and optional [dir], got %d arguments", len(args))
	}
	if !projectNameRE.MatchString(args[0]) {
		return Usagef("invalid project name %q (lowercase letters, digits, - and _ only)", args[0])
	}
	return nil
}

func (c *startProjectCommand) Run(args []string) error {
	name := args[0]
	dir := name
	if len(args) == 2 {
		dir = args[1]
	}

	title := cases.Title(language.English).String(
		strings.NewReplacer("-", " ", "_", " ").Replace(name))

	path, err := project.Scaffold(dir, name, title)
	if err != nil {
		fmt.Fprintf(c.Stderr, "startproject: %v\n", err)
		c.SetExitCode(1)
		return nil
	}

	fmt.Fprintf(c.Stdout, "New trawl project %q created in %s\n", name, dir)
	fmt.Fprintf(c.Stdout, "Edit %s to declare spiders, then run \"trawl list\" inside the project.\n", path)
	return nil
}
