package fetcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserFetcher fetches pages through a headless browser. It exists for
// page revisions that render their result tables with JavaScript; the
// plain session fetcher is the default.
type BrowserFetcher struct {
	browser *rod.Browser
	delay   time.Duration
}

// NewBrowserFetcher launches a headless browser. delay is the fixed pause
// before each navigation, mirroring the session fetcher's throttle.
func NewBrowserFetcher(delay time.Duration) (*BrowserFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("mute-audio")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &BrowserFetcher{browser: browser, delay: delay}, nil
}

// Close shuts the browser down.
func (bf *BrowserFetcher) Close() error {
	if bf.browser != nil {
		return bf.browser.Close()
	}
	return nil
}

// Fetch navigates a fresh tab to url, waits for the page to settle and
// parses the rendered HTML.
func (bf *BrowserFetcher) Fetch(url string) (*goquery.Document, error) {
	time.Sleep(bf.delay)

	page, err := bf.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for %s to load: %w", url, err)
	}
	// Result tables fill in shortly after load; give the page a moment to
	// stabilize but do not fail the fetch if it never fully settles.
	_ = page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond)

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading HTML of %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
