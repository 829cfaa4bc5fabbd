package fetcher

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// requestIDKey is the context key correlating a response with the Fetch
// call that issued it. Responses cannot be keyed by URL: redirects rewrite
// the response URL away from the one that was requested.
const requestIDKey = "requestID"

// SessionFetcher fetches pages over a single shared colly collector. The
// collector's limit rule provides the fixed inter-request delay and bounds
// transport-level parallelism; the collector itself is safe for concurrent
// use, so one SessionFetcher serves every worker of a run.
type SessionFetcher struct {
	collector *colly.Collector
	nextID    uint64

	mu     sync.Mutex
	bodies map[string][]byte
}

// NewSessionFetcher creates a SessionFetcher with the given inter-request
// delay, per-request timeout and parallelism bound.
func NewSessionFetcher(delay time.Duration, timeout time.Duration, parallelism int) (*SessionFetcher, error) {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(timeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: parallelism,
		Delay:       delay,
	}); err != nil {
		return nil, fmt.Errorf("configuring rate limit: %w", err)
	}

	sf := &SessionFetcher{
		collector: c,
		bodies:    make(map[string][]byte),
	}
	c.OnResponse(func(r *colly.Response) {
		id := r.Ctx.Get(requestIDKey)
		if id == "" {
			return
		}
		sf.mu.Lock()
		sf.bodies[id] = r.Body
		sf.mu.Unlock()
	})
	return sf, nil
}

// Fetch retrieves url through the shared session and parses the body into
// a document. Redirects are followed. Connection failures, timeouts and
// non-2xx statuses all come back as errors.
func (sf *SessionFetcher) Fetch(url string) (*goquery.Document, error) {
	id := strconv.FormatUint(atomic.AddUint64(&sf.nextID, 1), 10)
	ctx := colly.NewContext()
	ctx.Put(requestIDKey, id)

	if err := sf.collector.Request(http.MethodGet, url, nil, ctx, nil); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	sf.mu.Lock()
	body, ok := sf.bodies[id]
	delete(sf.bodies, id)
	sf.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("fetching %s: no response captured", url)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
