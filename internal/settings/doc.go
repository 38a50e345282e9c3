// Package settings implements the priority-layered key/value store shared by
// every trawl subcommand.
//
// Values are written with an explicit priority (built-in defaults, command
// defaults, project file, environment, command line) and reads always return
// the highest-priority write for a key. The store is frozen once a command is
// bound so subcommands observe a stable, read-only view of configuration.
//
// Build stores through New plus Defaults and ApplyEnv so every invocation
// layers configuration in the same order.
package settings
