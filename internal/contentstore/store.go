// Package contentstore is the content access layer: cached, deduplicated
// reads over the content gateway with total silent fallback to the bundled
// datasets. Callers never observe a fetch failure on the list operations;
// they only see data plus the Source it came from.
package contentstore

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/content/fallback"
	"github.com/adichatupes-source/Portfolio/internal/logger"
)

// Source tells which path produced a result, so callers and tests can
// distinguish live data from fallback without relying on log output.
// API responses never expose it.
type Source int

const (
	SourceLive Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceLive {
		return "live"
	}
	return "fallback"
}

// Fetcher is the gateway client surface the store depends on.
type Fetcher interface {
	ListBlogPosts(ctx context.Context) ([]content.BlogPost, error)
	ListCaseStudies(ctx context.Context) ([]content.CaseStudy, error)
}

// Options tune the cache windows. Now is injectable for tests; the zero
// value means time.Now.
type Options struct {
	FreshFor   time.Duration
	EvictAfter time.Duration
	Now        func() time.Time
}

// Store owns the in-memory content cache. It is an explicit dependency, not
// a package global: construct one per process and hand it to consumers.
//
// One in-flight fetch per cache key is enforced through singleflight;
// concurrent callers share the outstanding operation's result. A fetched
// list stays fresh for FreshFor; after that a stale read returns immediately
// and triggers a background revalidation. Entries unused for EvictAfter are
// evicted.
type Store struct {
	fetcher    Fetcher // nil means no gateway configured: fallback only
	freshFor   time.Duration
	evictAfter time.Duration
	now        func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	value     any
	source    Source
	fetchedAt time.Time
	lastUsed  time.Time
}

type fetched struct {
	value  any
	source Source
}

// New builds a store over the given fetcher. A nil fetcher skips the network
// entirely and serves the bundled datasets.
func New(fetcher Fetcher, opts Options) *Store {
	if opts.FreshFor == 0 {
		opts.FreshFor = 5 * time.Minute
	}
	if opts.EvictAfter == 0 {
		opts.EvictAfter = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		fetcher:    fetcher,
		freshFor:   opts.FreshFor,
		evictAfter: opts.EvictAfter,
		now:        opts.Now,
		entries:    map[string]*entry{},
	}
}

// BlogPosts returns the blog post list. The error is non-nil only when ctx
// is done before the shared fetch settles; fetch failures are absorbed and
// answered with the fallback dataset.
func (s *Store) BlogPosts(ctx context.Context) ([]content.BlogPost, Source, error) {
	v, src, err := s.get(ctx, content.TypeBlogPosts)
	if err != nil {
		return nil, src, err
	}
	return v.([]content.BlogPost), src, nil
}

// CaseStudies returns the case study list, same contract as BlogPosts.
func (s *Store) CaseStudies(ctx context.Context) ([]content.CaseStudy, Source, error) {
	v, src, err := s.get(ctx, content.TypeCaseStudies)
	if err != nil {
		return nil, src, err
	}
	return v.([]content.CaseStudy), src, nil
}

// BlogPostBySlug scans the settled blog list for the first matching slug.
// A nil record with a nil error means not found; while the backing fetch is
// still pending the call simply blocks, so not-found is only ever reported
// after the fetch settled.
func (s *Store) BlogPostBySlug(ctx context.Context, slug string) (*content.BlogPost, Source, error) {
	posts, src, err := s.BlogPosts(ctx)
	if err != nil {
		return nil, src, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], src, nil
		}
	}
	return nil, src, nil
}

// CaseStudyBySlug is the case-study counterpart of BlogPostBySlug.
func (s *Store) CaseStudyBySlug(ctx context.Context, slug string) (*content.CaseStudy, Source, error) {
	studies, src, err := s.CaseStudies(ctx)
	if err != nil {
		return nil, src, err
	}
	for i := range studies {
		if studies[i].Slug == slug {
			return &studies[i], src, nil
		}
	}
	return nil, src, nil
}

func (s *Store) get(ctx context.Context, t content.Type) (any, Source, error) {
	key := t.CacheKey()
	now := s.now()

	s.mu.Lock()
	s.evictLocked(now)
	if e, ok := s.entries[key]; ok {
		e.lastUsed = now
		value, source := e.value, e.source
		stale := now.Sub(e.fetchedAt) > s.freshFor
		s.mu.Unlock()
		if stale {
			s.revalidate(t)
		}
		return value, source, nil
	}
	s.mu.Unlock()

	// Cache miss: join or start the single in-flight fetch for this key.
	// The fetch runs on a detached context so a departing caller cannot
	// cancel it; the result still populates the cache for the next one.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		f := s.fetch(fetchCtx, t)
		s.storeEntry(t, f)
		return f, nil
	})

	select {
	case res := <-ch:
		f := res.Val.(fetched)
		return f.value, f.source, nil
	case <-ctx.Done():
		return nil, SourceFallback, ctx.Err()
	}
}

// revalidate refreshes a stale entry in the background. A failed
// revalidation keeps the stale live value instead of downgrading it to the
// static dataset.
func (s *Store) revalidate(t content.Type) {
	key := t.CacheKey()
	s.group.DoChan(key, func() (any, error) {
		f := s.fetch(context.Background(), t)

		s.mu.Lock()
		defer s.mu.Unlock()
		now := s.now()
		if e, ok := s.entries[key]; ok && f.source == SourceFallback && e.source == SourceLive {
			// Push the freshness window forward so the next access does
			// not immediately retry.
			e.fetchedAt = now
			return fetched{value: e.value, source: e.source}, nil
		}
		s.entries[key] = &entry{value: f.value, source: f.source, fetchedAt: now, lastUsed: now}
		return f, nil
	})
}

// fetch performs the network read with exactly one retry, then falls back.
func (s *Store) fetch(ctx context.Context, t content.Type) fetched {
	if s.fetcher == nil {
		return fetched{value: s.fallbackFor(t), source: SourceFallback}
	}

	value, err := s.fetchOnce(ctx, t)
	if err != nil {
		logger.WarnWithFields("content fetch failed, retrying", logger.Fields{
			"content_type": t.String(),
			"error":        err.Error(),
		})
		value, err = s.fetchOnce(ctx, t)
	}
	if err != nil {
		logger.ErrorWithFields("content fetch failed, serving fallback dataset", logger.Fields{
			"content_type": t.String(),
			"error":        err.Error(),
		})
		return fetched{value: s.fallbackFor(t), source: SourceFallback}
	}
	return fetched{value: value, source: SourceLive}
}

func (s *Store) fetchOnce(ctx context.Context, t content.Type) (any, error) {
	switch t {
	case content.TypeCaseStudies:
		studies, err := s.fetcher.ListCaseStudies(ctx)
		if err != nil {
			return nil, err
		}
		if studies == nil {
			studies = []content.CaseStudy{}
		}
		return studies, nil
	default:
		posts, err := s.fetcher.ListBlogPosts(ctx)
		if err != nil {
			return nil, err
		}
		if posts == nil {
			posts = []content.BlogPost{}
		}
		return posts, nil
	}
}

func (s *Store) fallbackFor(t content.Type) any {
	if t == content.TypeCaseStudies {
		return fallback.CaseStudies()
	}
	return fallback.BlogPosts()
}

func (s *Store) storeEntry(t content.Type, f fetched) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.entries[t.CacheKey()] = &entry{value: f.value, source: f.source, fetchedAt: now, lastUsed: now}
}

func (s *Store) evictLocked(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.lastUsed) > s.evictAfter {
			delete(s.entries, key)
		}
	}
}
