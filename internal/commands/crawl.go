package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/pflag"

	"trawl/internal/cache"
	"trawl/internal/crawl"
	"trawl/internal/project"
)

type crawlCommand struct {
	Base

	depth    int
	depthSet bool
	spider   project.Spider
}

func newCrawlCommand() *crawlCommand { return &crawlCommand{} }

func (c *crawlCommand) Name() string          { return "crawl" }
func (c *crawlCommand) Syntax() string        { return "[options] <spider>" }
func (c *crawlCommand) ShortDesc() string     { return "Run a spider declared by the project" }
func (c *crawlCommand) RequiresProject() bool { return true }

func (c *crawlCommand) LongDesc() string {
	return "Run the named spider from the project file, caching every fetched page.\n" +
		"Spiders are declared as [[spiders]] entries in " + project.FileName + "."
}

func (c *crawlCommand) DefaultSettings() map[string]any {
	// Crawls use a tighter per-request deadline than one-off fetches.
	return map[string]any{"request_timeout": 20}
}

func (c *crawlCommand) AddOptions(fs *pflag.FlagSet) {
	fs.IntVar(&c.depth, "depth", 0, "crawl depth, overriding the spider's max_depth")
}

func (c *crawlCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 1 {
		return Usagef("expected one <spider> argument, got %d", len(args))
	}
	c.depthSet = fs.Changed("depth")
	if c.depthSet && c.depth < 0 {
		return Usagef("depth must be zero or greater, got %d", c.depth)
	}
	proj, err := loadProject(c.Settings)
	if err != nil {
		return err
	}
	spider, ok := proj.Spider(args[0])
	if !ok {
		return Usagef("unknown spider %q (run \"trawl list\")", args[0])
	}
	c.spider = spider
	return nil
}

func (c *crawlCommand) Run(args []string) error {
	cacheDir := project.CacheDir(c.Settings)
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("ensure cache directory: %w", err)
	}

	// One crawl per project at a time; concurrent runs would race on the db.
	lock := flock.New(filepath.Join(cacheDir, "crawl.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire crawl lock: %w", err)
	}
	if !locked {
		fmt.Fprintln(c.Stderr, "another crawl is already running in this project")
		c.SetExitCode(1)
		return nil
	}
	defer func() { _ = lock.Unlock() }()

	store, err := cache.Open(cacheDir)
	if err != nil {
		return err
	}
	defer store.Close()

	// An explicit --depth wins outright, even at zero. Otherwise the spider's
	// max_depth applies, falling back to the max_depth setting when unset.
	depth := c.depth
	if !c.depthSet {
		depth = c.spider.MaxDepth
		if depth == 0 {
			depth = c.Settings.GetInt("max_depth", 0)
		}
	}

	timeout := time.Duration(c.Settings.GetInt("request_timeout", 20)) * time.Second
	fetcher := crawl.NewFetcher(c.Settings.GetString("user_agent"), timeout)
	engine := crawl.NewEngine(fetcher, store, c.Logger)

	summary, err := engine.Run(context.Background(), c.spider, depth)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout, "crawl %s: %d fetched, %d failed, %d skipped\n",
		c.spider.Name, summary.Fetched, summary.Failed, summary.Skipped)
	if summary.Fetched == 0 && (summary.Failed > 0 || summary.Skipped > 0) {
		c.SetExitCode(1)
	}
	return nil
}
