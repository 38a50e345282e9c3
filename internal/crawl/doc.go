// Package crawl implements the HTTP fetcher and the breadth-first crawl
// engine behind the fetch and crawl subcommands.
//
// The engine walks a spider's seed URLs level by level, persisting each
// response into the page cache and following in-scope links until the depth
// limit. It is deliberately single-threaded; the dispatcher, not the crawler,
// is the interesting machinery in this codebase.
package crawl
