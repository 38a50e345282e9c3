// Package plugins holds the static registration tables that replace runtime
// code scanning for command discovery.
//
// External command providers call Register from an init function to add a
// named command factory to the plugin registry. Project-override command sets
// are grouped under a module name via RegisterModule and selected through the
// commands_module setting. The dispatcher treats both tables as read-only
// discovery sources.
package plugins

import (
	"sort"
	"sync"

	"trawl/internal/commands"
)

// Factory constructs a plugin-provided command instance.
type Factory func() commands.Command

// Entry is one plugin registration: a command name and its factory.
type Entry struct {
	Name string
	New  Factory
}

var (
	mu       sync.Mutex
	registry []Entry
	modules  = make(map[string][]Factory)
)

// Register adds a command factory to the plugin registry. Later
// registrations with the same name shadow earlier ones when the registry is
// merged. Typically called from a plugin package's init function.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, Entry{Name: name, New: factory})
}

// Entries returns the registered plugins in registration order.
func Entries() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// RegisterModule groups command factories under a module name that a project
// can select via its commands_module setting.
func RegisterModule(name string, factories ...Factory) {
	mu.Lock()
	defer mu.Unlock()
	modules[name] = append(modules[name], factories...)
}

// Module returns the factories registered under name.
func Module(name string) ([]Factory, bool) {
	mu.Lock()
	defer mu.Unlock()
	factories, ok := modules[name]
	if !ok {
		return nil, false
	}
	out := make([]Factory, len(factories))
	copy(out, factories)
	return out, true
}

// ModuleNames returns the registered module names sorted alphabetically.
func ModuleNames() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears both tables. Test support only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
	modules = make(map[string][]Factory)
}
