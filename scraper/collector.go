package scraper

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/NinoBendianishvili/DataScraping-Midterm/fetcher"
	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
	"github.com/NinoBendianishvili/DataScraping-Midterm/parser"
)

// NationalSource supplies national per-year results. Implemented by
// parser.YearScraper; faked in tests.
type NationalSource interface {
	ScrapeYear(year int) ([]parser.Candidate, []string)
}

// Collector coordinates a full scrape: national year data first, then the
// state directory, then every state page on a bounded worker pool, merging
// state-level percentages with the cached national data.
type Collector struct {
	fetcher  fetcher.Fetcher
	national NationalSource
	baseURL  string
	years    []int
	yearSet  map[int]bool
	workers  int

	// yearCache is fully built during the sequential national phase and
	// read-only once state workers start; that ordering is what keeps it
	// lock-free.
	yearCache map[int]*models.YearRecord
}

// NewCollector builds a Collector. Target years are deduplicated and
// sorted; workers is the state-task concurrency bound.
func NewCollector(f fetcher.Fetcher, national NationalSource, baseURL string, targetYears []int, workers int) *Collector {
	yearSet := make(map[int]bool)
	var years []int
	for _, y := range targetYears {
		if !yearSet[y] {
			yearSet[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	if workers <= 0 {
		workers = 5
	}
	return &Collector{
		fetcher:   f,
		national:  national,
		baseURL:   strings.TrimRight(baseURL, "/"),
		years:     years,
		yearSet:   yearSet,
		workers:   workers,
		yearCache: make(map[int]*models.YearRecord),
	}
}

// ScrapeAllStates runs the whole pipeline and returns every election
// result it could assemble. Failures degrade to skipped units (field, year
// or state) and are logged; only an empty state directory yields an empty
// result set. The order of the returned slice is task completion order and
// is not guaranteed to be stable.
func (c *Collector) ScrapeAllStates() []models.ElectionResult {
	c.buildNationalCache()

	states := c.fetchStateList()
	if len(states) == 0 {
		log.Printf("Warning: no states discovered, nothing to scrape\n")
		return []models.ElectionResult{}
	}
	log.Printf("Discovered %d states\n", len(states))

	var (
		results []models.ElectionResult
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, c.workers)
	)
	for name, path := range states {
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			stateResults, err := c.scrapeSingleState(name, path)
			if err != nil {
				log.Printf("Error scraping state %s: %v (state skipped)\n", name, err)
				return
			}
			mu.Lock()
			results = append(results, stateResults...)
			mu.Unlock()
		}(name, path)
	}
	wg.Wait()

	log.Printf("Scraping completed: %d results across %d states\n", len(results), len(states))
	return results
}

// buildNationalCache sequentially scrapes each target year's national page
// and caches one shared YearRecord per year. A failed year is cached with
// absent fields so state tasks can still link against it.
func (c *Collector) buildNationalCache() {
	for _, year := range c.years {
		candidates, diags := c.national.ScrapeYear(year)
		for _, d := range diags {
			log.Printf("Warning [national]: %s\n", d)
		}

		var demLeader, repLeader, winnerImage *string
		var demVotes, repVotes, totalVotes *int64
		for _, cand := range candidates {
			switch cand.Party {
			case models.PartyDemocratic:
				name := cand.Name
				demLeader = &name
				demVotes = cand.PopularVotes
			case models.PartyRepublican:
				name := cand.Name
				repLeader = &name
				repVotes = cand.PopularVotes
			}
			if cand.IsWinner && cand.WinnerImageURL != nil {
				winnerImage = cand.WinnerImageURL
			}
		}
		if demVotes != nil && repVotes != nil {
			total := *demVotes + *repVotes
			totalVotes = &total
		}

		record, diags := models.NewYearRecord(year, demLeader, repLeader, demVotes, repVotes, totalVotes, winnerImage)
		for _, d := range diags {
			log.Printf("Warning [national]: %s\n", d)
		}
		c.yearCache[year] = record
	}
}

// fetchStateList retrieves and parses the state directory page.
func (c *Collector) fetchStateList() map[string]string {
	doc, err := c.fetcher.Fetch(c.baseURL + "/states")
	if err != nil {
		log.Printf("Error fetching state directory: %v\n", err)
		return nil
	}
	states, diags := parser.ExtractStateList(doc)
	for _, d := range diags {
		log.Printf("Warning [state list]: %s\n", d)
	}
	return states
}

// scrapeSingleState fetches one state page and assembles its per-year
// results against the national cache. A per-year construction failure
// skips that year only.
func (c *Collector) scrapeSingleState(name, path string) ([]models.ElectionResult, error) {
	doc, err := c.fetcher.Fetch(c.resolvePath(path))
	if err != nil {
		return nil, err
	}

	ev := parser.ExtractElectoralVotes(doc)
	state, err := models.NewStateRecord(name, ev, nil)
	if err != nil {
		return nil, err
	}

	rows, diags := parser.ExtractYearRows(doc, c.yearSet)
	for _, d := range diags {
		log.Printf("Warning [%s]: %s\n", name, d)
	}

	var results []models.ElectionResult
	for _, row := range rows {
		yearRecord, ok := c.yearCache[row.Year]
		if !ok {
			// Extraction already filtered to target years, so every row's
			// year has a cache entry; guard anyway.
			log.Printf("Warning [%s]: year %d missing from national cache, row skipped\n", name, row.Year)
			continue
		}
		result, err := models.NewElectionResult(state, yearRecord, row.DemPct, row.RepPct, row.Winner)
		if err != nil {
			log.Printf("Error [%s]: %v (year skipped)\n", name, err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Collector) resolvePath(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
