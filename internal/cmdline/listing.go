package cmdline

import (
	"fmt"
	"io"
	"sort"

	"trawl/internal/commands"
	"trawl/internal/settings"
	"trawl/internal/version"
)

func header(s *settings.Settings, inProject bool) string {
	if inProject {
		return fmt.Sprintf("Trawl %s - project: %s", version.Version, s.GetString("project_name"))
	}
	return fmt.Sprintf("Trawl %s - no active project", version.Version)
}

// printCommands writes the full sorted command listing. This is the exit-0
// response to an invocation without a command token.
func printCommands(w io.Writer, s *settings.Settings, registry map[string]commands.Command, inProject bool) {
	fmt.Fprintf(w, "%s\n\n", header(s, inProject))
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  trawl <command> [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available commands:")

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, registry[name].ShortDesc()})
	}
	commands.RenderTable(w, []string{"Command", "Description"}, rows)

	if !inProject {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "More commands are available when run from a project directory")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Use "trawl <command> -h" to see more info about a command`)
}

// printUnknownCommand writes the header plus the unknown-command notice.
func printUnknownCommand(w io.Writer, s *settings.Settings, name string, inProject bool) {
	fmt.Fprintf(w, "%s\n\n", header(s, inProject))
	fmt.Fprintf(w, "Unknown command: %s\n\n", name)
	fmt.Fprintln(w, `Use "trawl" to see available commands`)
}
