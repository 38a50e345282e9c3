package settings

import "trawl/internal/version"

const (
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultMaxDepth       = 2
	defaultRequestTimeout = 30
	defaultCacheDir       = ".trawl/cache"
)

// Defaults returns the built-in configuration baseline. Every key a
// subcommand reads has an entry here so unset lookups stay predictable.
func Defaults() map[string]any {
	return map[string]any{
		"user_agent":      "trawl/" + version.Version,
		"log_level":       defaultLogLevel,
		"log_format":      defaultLogFormat,
		"max_depth":       defaultMaxDepth,
		"request_timeout": defaultRequestTimeout,
		"cache_dir":       defaultCacheDir,
		"commands_module": "",
		"editor":          "",
	}
}
