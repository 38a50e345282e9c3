package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"trawl/internal/cache"
	"trawl/internal/project"
)

type cacheCommand struct {
	Base

	clear bool
}

func newCacheCommand() *cacheCommand { return &cacheCommand{} }

func (c *cacheCommand) Name() string          { return "cache" }
func (c *cacheCommand) Syntax() string        { return "[options]" }
func (c *cacheCommand) ShortDesc() string     { return "Inspect or clear the project page cache" }
func (c *cacheCommand) RequiresProject() bool { return true }

func (c *cacheCommand) AddOptions(fs *pflag.FlagSet) {
	fs.BoolVar(&c.clear, "clear", false, "remove every cached page")
}

func (c *cacheCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 0 {
		return Usagef("unexpected arguments: %v", args)
	}
	return nil
}

func (c *cacheCommand) Run(args []string) error {
	store, err := cache.Open(project.CacheDir(c.Settings))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if c.clear {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.Stdout, "cache cleared")
		return nil
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}

	rows := [][]string{
		{"pages", strconv.FormatInt(stats.Pages, 10)},
		{"size", humanize.Bytes(uint64(stats.Bytes))},
		{"oldest", formatFetchTime(stats.Oldest)},
		{"newest", formatFetchTime(stats.Newest)},
	}
	RenderTable(c.Stdout, []string{"Key", "Value"}, rows)
	return nil
}

func formatFetchTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
