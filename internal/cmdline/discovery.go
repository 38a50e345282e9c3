package cmdline

import (
	"fmt"

	"trawl/internal/commands"
	"trawl/internal/plugins"
	"trawl/internal/settings"
)

// Discover builds the merged command registry for one invocation. Sources
// merge in order built-ins, plugin registry, then the project's
// commands_module, each overwriting same-named entries from the previous.
//
// Built-in and commands_module entries that require a project are omitted
// entirely when inProject is false. Plugin-registry entries are exempt from
// that filter. A plugin or module entry without a working factory is a fatal
// configuration error, not a silent skip.
func Discover(s *settings.Settings, inProject bool) (map[string]commands.Command, error) {
	registry := make(map[string]commands.Command)

	for _, cmd := range commands.Builtins() {
		if cmd.RequiresProject() && !inProject {
			continue
		}
		registry[cmd.Name()] = cmd
	}

	for _, entry := range plugins.Entries() {
		if entry.New == nil {
			return nil, fmt.Errorf("invalid plugin entry %q: no factory registered", entry.Name)
		}
		cmd := entry.New()
		if cmd == nil {
			return nil, fmt.Errorf("invalid plugin entry %q: factory returned no command", entry.Name)
		}
		registry[entry.Name] = cmd
	}

	if module := s.GetString("commands_module"); module != "" {
		factories, ok := plugins.Module(module)
		if !ok {
			return nil, fmt.Errorf("commands_module %q is not registered", module)
		}
		for _, factory := range factories {
			if factory == nil {
				return nil, fmt.Errorf("commands_module %q contains an empty factory", module)
			}
			cmd := factory()
			if cmd == nil {
				return nil, fmt.Errorf("commands_module %q factory returned no command", module)
			}
			if cmd.RequiresProject() && !inProject {
				continue
			}
			registry[cmd.Name()] = cmd
		}
	}

	return registry, nil
}
