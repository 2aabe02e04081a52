package images

import (
	"context"
	"log/slog"
	"sync"

	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

// Fetcher downloads photo bytes served by the backend
type Fetcher interface {
	FetchImage(ctx context.Context, rel string) ([]byte, error)
}

// Loader fetches card photos in the background and caches them in memory.
// Concurrent requests for the same path collapse into a single fetch.
type Loader struct {
	fetcher Fetcher
	log     *slog.Logger

	mu       sync.Mutex
	cache    map[string][]byte
	inflight map[string][]func([]byte)
}

// NewLoader creates a photo loader on top of the backend client
func NewLoader(fetcher Fetcher, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		fetcher:  fetcher,
		log:      log,
		cache:    make(map[string][]byte),
		inflight: make(map[string][]func([]byte)),
	}
}

// Load delivers the photo bytes for rel through callback. Cached photos are
// delivered synchronously; anything else fetches in the background. Failures
// are logged and the callback is never invoked, so the caller's placeholder
// stays up.
func (l *Loader) Load(rel string, callback func([]byte)) {
	if rel == "" {
		return
	}

	l.mu.Lock()
	if data, ok := l.cache[rel]; ok {
		l.mu.Unlock()
		prometheus.ThumbnailFetches.WithLabelValues("cached").Inc()
		callback(data)
		return
	}
	pending, fetching := l.inflight[rel]
	l.inflight[rel] = append(pending, callback)
	l.mu.Unlock()

	if fetching {
		return
	}
	go l.fetch(rel)
}

func (l *Loader) fetch(rel string) {
	data, err := l.fetcher.FetchImage(context.Background(), rel)

	l.mu.Lock()
	callbacks := l.inflight[rel]
	delete(l.inflight, rel)
	if err == nil {
		l.cache[rel] = data
	}
	l.mu.Unlock()

	if err != nil {
		prometheus.ThumbnailFetches.WithLabelValues("error").Inc()
		l.log.Warn("photo fetch failed", "path", rel, "error", err)
		return
	}

	prometheus.ThumbnailFetches.WithLabelValues("fetched").Inc()
	for _, cb := range callbacks {
		cb(data)
	}
}
