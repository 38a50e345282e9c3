// Package cache persists fetched pages in a per-project SQLite database.
//
// The store keys pages by URL, keeps the response status, body, crawl depth,
// and fetch timestamp, and serves the cache subcommand's stats and clear
// operations. A crawl rewrites a page's row on re-fetch so the cache always
// holds the most recent copy.
package cache
