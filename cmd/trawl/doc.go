// Package main hosts the trawl CLI entrypoint.
//
// The binary stays deliberately thin: it hands os.Args to the dispatcher in
// internal/cmdline and exits with whatever code the pipeline reports. Command
// discovery, settings layering, flag parsing, and execution all live in the
// internal packages so they stay testable without a process boundary.
package main
