package images

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int32
	delay time.Duration
	data  []byte
	err   error
}

func (f *fakeFetcher) FetchImage(ctx context.Context, rel string) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.err
}

func (f *fakeFetcher) set(data []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data, f.err = data, err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoader_DeliversFetchedBytes(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte("png bytes")}
	loader := NewLoader(fetcher, testLogger())

	delivered := make(chan []byte, 1)
	loader.Load("/uploads/actor_a1.png", func(data []byte) {
		delivered <- data
	})

	select {
	case data := <-delivered:
		if string(data) != "png bytes" {
			t.Errorf("Delivered %q, expected fetched bytes", data)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected callback delivery")
	}
}

func TestLoader_SecondLoadHitsCache(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte("png bytes")}
	loader := NewLoader(fetcher, testLogger())

	first := make(chan struct{})
	loader.Load("/uploads/actor_a1.png", func([]byte) { close(first) })
	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("Expected first load to finish")
	}

	// Cached delivery happens on the calling goroutine
	var cached []byte
	loader.Load("/uploads/actor_a1.png", func(data []byte) { cached = data })
	if string(cached) != "png bytes" {
		t.Errorf("Cached delivery = %q, expected synchronous cache hit", cached)
	}

	if calls := atomic.LoadInt32(&fetcher.calls); calls != 1 {
		t.Errorf("Expected 1 fetch, got %d", calls)
	}
}

func TestLoader_ConcurrentLoadsCollapse(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte("png bytes"), delay: 50 * time.Millisecond}
	loader := NewLoader(fetcher, testLogger())

	var wg sync.WaitGroup
	var delivered int32
	for i := 0; i < 5; i++ {
		wg.Add(1)
		loader.Load("/uploads/actor_a1.png", func([]byte) {
			atomic.AddInt32(&delivered, 1)
			wg.Done()
		})
	}
	wg.Wait()

	if calls := atomic.LoadInt32(&fetcher.calls); calls != 1 {
		t.Errorf("Expected concurrent loads to share 1 fetch, got %d", calls)
	}
	if delivered != 5 {
		t.Errorf("Expected 5 deliveries, got %d", delivered)
	}
}

func TestLoader_EmptyPathIgnored(t *testing.T) {
	fetcher := &fakeFetcher{}
	loader := NewLoader(fetcher, testLogger())

	loader.Load("", func([]byte) {
		t.Error("Callback invoked for empty path")
	})

	time.Sleep(50 * time.Millisecond)
	if calls := atomic.LoadInt32(&fetcher.calls); calls != 0 {
		t.Errorf("Expected no fetches, got %d", calls)
	}
}

func TestLoader_FailureNotCached(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	loader := NewLoader(fetcher, testLogger())

	loader.Load("/uploads/gone.png", func([]byte) {
		t.Error("Callback invoked for failed fetch")
	})

	// Wait out the failed fetch, then retry with a healthy fetcher
	time.Sleep(50 * time.Millisecond)
	fetcher.set([]byte("recovered"), nil)

	delivered := make(chan []byte, 1)
	loader.Load("/uploads/gone.png", func(data []byte) { delivered <- data })

	select {
	case data := <-delivered:
		if string(data) != "recovered" {
			t.Errorf("Delivered %q, expected retry to succeed", data)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected the retry to fetch again")
	}

	if calls := atomic.LoadInt32(&fetcher.calls); calls != 2 {
		t.Errorf("Expected 2 fetches, got %d", calls)
	}
}
