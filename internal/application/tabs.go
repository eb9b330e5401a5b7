package application

import (
	"context"
	"sync"
)

// TabFetchFunc performs the single fetch backing one tab.
type TabFetchFunc func(ctx context.Context, tab string) (any, error)

// TabController memoizes fetch-per-tab for views with mutually exclusive
// sub-views. A tab is fetched at most once for the controller's lifetime;
// concurrent selections of the same tab share the one in-flight call, and
// selecting a different tab never blocks on another tab's fetch. A failed
// fetch is not cached, so re-selecting that tab retries.
type TabController struct {
	fetch TabFetchFunc

	mu      sync.Mutex
	entries map[string]*tabEntry
}

type tabEntry struct {
	settled chan struct{}
	value   any
	err     error
}

func NewTabController(fetch TabFetchFunc) *TabController {
	return &TabController{fetch: fetch, entries: map[string]*tabEntry{}}
}

// Select returns the tab's result, fetching it on first selection and
// waiting on an in-flight fetch started by an earlier selection.
func (c *TabController) Select(ctx context.Context, tab string) (any, error) {
	c.mu.Lock()
	entry, ok := c.entries[tab]
	if !ok {
		entry = &tabEntry{settled: make(chan struct{})}
		c.entries[tab] = entry
		go c.run(ctx, tab, entry)
	}
	c.mu.Unlock()

	select {
	case <-entry.settled:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return entry.value, entry.err
}

// Peek reports the cached result for a tab without triggering a fetch.
func (c *TabController) Peek(tab string) (any, bool) {
	c.mu.Lock()
	entry, ok := c.entries[tab]
	c.mu.Unlock()

	if !ok {
		return nil, false
	}
	select {
	case <-entry.settled:
	default:
		return nil, false
	}
	if entry.err != nil {
		return nil, false
	}
	return entry.value, true
}

func (c *TabController) run(ctx context.Context, tab string, entry *tabEntry) {
	entry.value, entry.err = c.fetch(ctx, tab)

	if entry.err != nil {
		c.mu.Lock()
		if c.entries[tab] == entry {
			delete(c.entries, tab)
		}
		c.mu.Unlock()
	}

	close(entry.settled)
}
