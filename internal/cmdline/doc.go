// Package cmdline hosts the trawl dispatcher: command discovery, name
// resolution, the option/argument pipeline, and the execution wrapper.
//
// Execute builds the merged command registry (built-ins, registered plugins,
// then the project's commands_module, later sources overriding earlier ones),
// pops the command token from argv, layers the command's default settings
// into the store, parses flags through a shared pflag set, and runs the
// command — optionally under a CPU profile. Usage errors surface as
// parser-style messages with exit code 2; missing or unknown commands print
// the registry listing.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through commands.
package cmdline
