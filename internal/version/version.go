// Package version records the trawl release string surfaced by the CLI.
package version

// Version is the current trawl release.
const Version = "0.4.0"
