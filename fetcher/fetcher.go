package fetcher

import "github.com/PuerkitoBio/goquery"

// Fetcher retrieves a page and hands back its parsed document tree.
// Implementations throttle their own request rate; a transport failure of
// any kind comes back as an error the caller treats as "no data for this
// page", never as a reason to stop a run.
type Fetcher interface {
	Fetch(url string) (*goquery.Document, error)
}
