package cmdline

import "strings"

// popCommandName returns the first token after argv[0] that does not begin
// with the flag marker, together with argv with that token spliced out.
// Flags that precede the command stay in place for the option pipeline. An
// empty name means no command was requested.
func popCommandName(argv []string) (string, []string) {
	for i := 1; i < len(argv); i++ {
		if strings.HasPrefix(argv[i], "-") {
			continue
		}
		name := argv[i]
		rest := make([]string, 0, len(argv)-1)
		rest = append(rest, argv[:i]...)
		rest = append(rest, argv[i+1:]...)
		return name, rest
	}
	return "", argv
}
