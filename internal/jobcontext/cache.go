package jobcontext

import (
	"context"
	"sync"
	"time"
)

// DefaultPostingCacheTTL bounds how long an extracted posting is served
// before a fresh fetch is required.
const DefaultPostingCacheTTL = 24 * time.Hour

// Source produces a posting for a URL, typically by fetching and extracting
// it. Injected so the cache can be exercised without network access.
type Source interface {
	FetchPosting(ctx context.Context, url string) (*Posting, error)
}

// CachedProviderConfig holds configuration for the cached provider.
type CachedProviderConfig struct {
	CacheTTL  time.Duration
	SkipCache bool // forces fresh fetches, for testing
}

// DefaultCachedProviderConfig returns sensible defaults.
func DefaultCachedProviderConfig() *CachedProviderConfig {
	return &CachedProviderConfig{
		CacheTTL:  DefaultPostingCacheTTL,
		SkipCache: false,
	}
}

type cacheEntry struct {
	posting   *Posting
	fetchedAt time.Time
}

// CachedProvider wraps a Source with an in-process TTL cache keyed by URL.
// Entries past the TTL are never served; they are refetched on demand.
type CachedProvider struct {
	source    Source
	cacheTTL  time.Duration
	skipCache bool

	mu      sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time // stubbed in tests
}

// NewCachedProvider creates a provider over the given source.
func NewCachedProvider(source Source, config *CachedProviderConfig) *CachedProvider {
	if config == nil {
		config = DefaultCachedProviderConfig()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultPostingCacheTTL
	}
	return &CachedProvider{
		source:    source,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		entries:   make(map[string]cacheEntry),
		now:       time.Now,
	}
}

// CachedPosting extends Posting with cache metadata.
type CachedPosting struct {
	*Posting
	FromCache bool
}

// Get returns the posting for a URL, served from cache when a fresh entry
// exists and fetched through the source otherwise.
func (p *CachedProvider) Get(ctx context.Context, url string) (*CachedPosting, error) {
	return p.get(ctx, url, false)
}

// GetFresh bypasses the cache, fetches the posting, and replaces any cached
// entry with the fresh result.
func (p *CachedProvider) GetFresh(ctx context.Context, url string) (*CachedPosting, error) {
	return p.get(ctx, url, true)
}

func (p *CachedProvider) get(ctx context.Context, url string, forceRefresh bool) (*CachedPosting, error) {
	if !forceRefresh && !p.skipCache {
		if posting, ok := p.lookup(url); ok {
			return &CachedPosting{Posting: posting, FromCache: true}, nil
		}
	}

	posting, err := p.source.FetchPosting(ctx, url)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.entries[url] = cacheEntry{posting: posting, fetchedAt: p.now()}
	p.mu.Unlock()

	return &CachedPosting{Posting: posting, FromCache: false}, nil
}

// lookup returns the cached posting when present and within TTL. Expired
// entries are evicted on access.
func (p *CachedProvider) lookup(url string) (*Posting, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[url]
	if !ok {
		return nil, false
	}
	if p.now().Sub(entry.fetchedAt) > p.cacheTTL {
		delete(p.entries, url)
		return nil, false
	}
	return entry.posting, true
}
