// Package project locates, loads, and scaffolds trawl project files.
//
// A project is any directory holding a trawl.toml file; Find walks upward
// from the working directory the way version-control tools locate their
// repository root. The file declares the project name, a free-form settings
// table layered into the settings store at project priority, and the spiders
// (named seed-URL sets) that crawl operates on.
//
// Load validates structure eagerly so commands can assume spider names are
// unique and every spider has at least one start URL.
package project
