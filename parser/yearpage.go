package parser

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

const yearPageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// targetParties are the party labels retained from a national results
// table; every other row is ignored.
var targetParties = []models.Party{models.PartyDemocratic, models.PartyRepublican}

// Candidate is one party's row from a national per-year results page.
type Candidate struct {
	Party          models.Party
	Name           string
	ElectoralVotes *int64
	PopularVotes   *int64
	IsWinner       bool
	WinnerImageURL *string
}

// YearScraper fetches national per-year results pages. It deliberately
// keeps its own HTTP client, headers and timeout, independent of the
// session used for state pages.
type YearScraper struct {
	baseURL string
	client  *http.Client
}

// NewYearScraper creates a YearScraper rooted at baseURL.
func NewYearScraper(baseURL string, timeout time.Duration) *YearScraper {
	return &YearScraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ScrapeYear fetches and parses the results page for one election year.
// Any fetch or structural failure degrades to an empty slice plus
// diagnostics; callers treat that as "national data unavailable for this
// year" and fill downstream fields with absent values.
func (ys *YearScraper) ScrapeYear(year int) ([]Candidate, []string) {
	pageURL := fmt.Sprintf("%s/%d-election/", ys.baseURL, year)

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, []string{fmt.Sprintf("year %d: building request: %v", year, err)}
	}
	req.Header.Set("User-Agent", yearPageUserAgent)

	resp, err := ys.client.Do(req)
	if err != nil {
		return nil, []string{fmt.Sprintf("year %d: fetching %s: %v", year, pageURL, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, []string{fmt.Sprintf("year %d: HTTP %d from %s", year, resp.StatusCode, pageURL)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, []string{fmt.Sprintf("year %d: parsing response body: %v", year, err)}
	}

	return ParseYearPage(doc, ys.baseURL, year)
}

// ParseYearPage extracts the per-party candidate rows from a national
// results page: candidate name, electoral and popular vote counts, and for
// the winning row the winner image URL.
func ParseYearPage(doc *goquery.Document, baseURL string, year int) ([]Candidate, []string) {
	var candidates []Candidate
	var diags []string
	if doc == nil {
		return candidates, diags
	}

	winnerImage := findWinnerImage(doc, baseURL)

	tbody := findResultsBody(doc)
	if tbody == nil {
		diags = append(diags, fmt.Sprintf("year %d: results table body not found", year))
		return candidates, diags
	}

	var winningParty models.Party
	tbody.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 6 {
			return true
		}

		party := models.ParseParty(strings.TrimSpace(cells.Eq(3).Text()))
		switch party {
		case models.PartyDemocratic, models.PartyRepublican:
		default:
			return true
		}

		name := strings.TrimSpace(cells.Eq(2).Text())
		if idx := strings.Index(name, "("); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}

		evText := strings.TrimSpace(cells.Eq(4).Text())
		pvText := strings.TrimSpace(cells.Eq(5).Text())
		ev := ParseVoteCount(evText)
		pv := ParseVoteCount(pvText)
		if ev == nil && evText != "" {
			diags = append(diags, fmt.Sprintf("year %d: unparseable electoral vote text %q for %s", year, evText, party))
		}
		if pv == nil && pvText != "" {
			diags = append(diags, fmt.Sprintf("year %d: unparseable popular vote text %q for %s", year, pvText, party))
		}

		c := Candidate{
			Party:          party,
			Name:           name,
			ElectoralVotes: ev,
			PopularVotes:   pv,
		}
		if strings.Contains(tr.AttrOr("class", ""), "winner") {
			c.IsWinner = true
			c.WinnerImageURL = winnerImage
			winningParty = party
		}
		candidates = append(candidates, c)

		// Both target parties found; the rest of the table is third
		// parties and totals.
		return len(candidates) < len(targetParties)
	})

	if winningParty != "" && winnerImage == nil {
		// Last resort: candidate headshots carry the party in their alt
		// text.
		if img := findCandidateImageByParty(doc, baseURL, winningParty); img != nil {
			for i := range candidates {
				if candidates[i].Party == winningParty {
					candidates[i].WinnerImageURL = img
				}
			}
		} else {
			diags = append(diags, fmt.Sprintf("year %d: winner identified (%s) but no image URL found", year, winningParty))
		}
	}

	if len(candidates) == 0 {
		diags = append(diags, fmt.Sprintf("year %d: no candidate rows extracted", year))
	} else if len(candidates) < len(targetParties) {
		diags = append(diags, fmt.Sprintf("year %d: only %d/%d target parties found", year, len(candidates), len(targetParties)))
	}

	return candidates, diags
}

// findResultsBody locates the national results table body by its container
// class, else by scanning every table for the literal party names.
func findResultsBody(doc *goquery.Document) *goquery.Selection {
	if tbody := doc.Find("div.table-responsive tbody").First(); tbody.Length() > 0 {
		return tbody
	}
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		text := table.Text()
		if !strings.Contains(text, string(models.PartyDemocratic)) && !strings.Contains(text, string(models.PartyRepublican)) {
			return true
		}
		if tbody := table.Find("tbody").First(); tbody.Length() > 0 {
			found = tbody
			return false
		}
		return true
	})
	return found
}

func findWinnerImage(doc *goquery.Document, baseURL string) *string {
	for _, container := range []string{"div.winner-image", "div.presidential_candidate_winner"} {
		img := doc.Find(container + " img").First()
		if src, ok := img.Attr("src"); ok && src != "" {
			return resolveURL(baseURL, src)
		}
	}
	return nil
}

func findCandidateImageByParty(doc *goquery.Document, baseURL string, party models.Party) *string {
	var result *string
	doc.Find("img.candidate-image").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt := strings.ToLower(img.AttrOr("alt", ""))
		if !strings.Contains(alt, strings.ToLower(string(party))) {
			return true
		}
		if src, ok := img.Attr("src"); ok && src != "" {
			result = resolveURL(baseURL, src)
			return false
		}
		return true
	})
	return result
}

// resolveURL joins a possibly relative src against the site base URL.
func resolveURL(baseURL, src string) *string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return &src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return &src
	}
	resolved := base.ResolveReference(ref).String()
	return &resolved
}
