// Package commands defines the Command contract every trawl subcommand
// implements, the Base helper supplying default behavior, and the built-in
// command set.
//
// A subcommand declares its name, help text, default settings, and flags, then
// receives a frozen settings store and logger before Run is invoked with its
// positional operands. Validation hooks reject bad input with UsageError
// values so the dispatcher can render parser-style errors instead of stack
// traces.
//
// Built-in commands live one per file in this package; Builtins returns the
// compiled-in table the dispatcher merges with plugin-provided commands.
package commands
