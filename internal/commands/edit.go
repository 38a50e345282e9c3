package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"trawl/internal/project"
)

type editCommand struct {
	Base
}

func newEditCommand() *editCommand { return &editCommand{} }

func (c *editCommand) Name() string          { return "edit" }
func (c *editCommand) ShortDesc() string     { return "Edit the project file in your editor" }
func (c *editCommand) RequiresProject() bool { return true }

func (c *editCommand) LongDesc() string {
	return "Open " + project.FileName + " in the editor named by the editor setting\n" +
		"(seeded from the EDITOR environment variable)."
}

func (c *editCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 0 {
		return Usagef("unexpected arguments: %v", args)
	}
	if strings.TrimSpace(c.Settings.GetString("editor")) == "" {
		return Usagef("no editor configured; set the EDITOR environment variable")
	}
	return nil
}

func (c *editCommand) Run(args []string) error {
	// EDITOR may carry flags ("code --wait"), so split on whitespace.
	parts := strings.Fields(c.Settings.GetString("editor"))
	path := filepath.Join(c.Settings.GetString("project_root"), project.FileName)

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.SetExitCode(exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
