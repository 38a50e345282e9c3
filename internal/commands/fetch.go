package commands

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"trawl/internal/crawl"
)

type fetchCommand struct {
	Base

	headers bool
}

func newFetchCommand() *fetchCommand { return &fetchCommand{} }

func (c *fetchCommand) Name() string      { return "fetch" }
func (c *fetchCommand) Syntax() string    { return "[options] <url>" }
func (c *fetchCommand) ShortDesc() string { return "Fetch a URL using the trawl downloader" }
func (c *fetchCommand) LongDesc() string {
	return "Fetch a URL using the trawl downloader and print its body to stdout."
}

func (c *fetchCommand) AddOptions(fs *pflag.FlagSet) {
	fs.BoolVar(&c.headers, "headers", false, "print response headers instead of the body")
}

func (c *fetchCommand) ProcessOptions(args []string, fs *pflag.FlagSet) error {
	if len(args) != 1 {
		return Usagef("expected one <url> argument, got %d", len(args))
	}
	parsed, err := url.Parse(args[0])
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Usagef("invalid URL %q (expected http or https)", args[0])
	}
	return nil
}

func (c *fetchCommand) Run(args []string) error {
	timeout := time.Duration(c.Settings.GetInt("request_timeout", 30)) * time.Second
	fetcher := crawl.NewFetcher(c.Settings.GetString("user_agent"), timeout)

	result, err := fetcher.Fetch(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(c.Stderr, "fetch failed: %v\n", err)
		c.SetExitCode(1)
		return nil
	}

	c.Logger.Debug("fetched", "url", result.URL, "status", result.Status, "bytes", len(result.Body))
	if c.headers {
		fmt.Fprintf(c.Stdout, "HTTP %d\n", result.Status)
		keys := make([]string, 0, len(result.Headers))
		for key := range result.Headers {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(c.Stdout, "%s: %s\n", key, strings.Join(result.Headers[key], ", "))
		}
		return nil
	}
	_, err = c.Stdout.Write(result.Body)
	return err
}
