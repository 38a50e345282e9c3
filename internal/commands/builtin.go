package commands

// Builtins returns the compiled-in command table. Order is irrelevant; each
// command is keyed by Name when the registry merges sources.
func Builtins() []Command {
	return []Command{
		newCacheCommand(),
		newCrawlCommand(),
		newEditCommand(),
		newFetchCommand(),
		newListCommand(),
		newSettingsCommand(),
		newStartProjectCommand(),
		newVersionCommand(),
	}
}
