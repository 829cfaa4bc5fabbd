// Package report renders HTML analysis reports from election results: a
// bar-chart report of national and per-state vote shares, and a choropleth
// report with one U.S. map per election year. Charts are drawn client-side
// by Plotly loaded from its CDN; the reports only embed the prepared data.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

// stateAbbr maps state display names to USPS abbreviations for the
// choropleth's USA-states location mode. Unknown names are skipped.
var stateAbbr = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
	"California": "CA", "Colorado": "CO", "Connecticut": "CT", "Delaware": "DE",
	"District of Columbia": "DC", "Florida": "FL", "Georgia": "GA", "Hawaii": "HI",
	"Idaho": "ID", "Illinois": "IL", "Indiana": "IN", "Iowa": "IA", "Kansas": "KS",
	"Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS",
	"Missouri": "MO", "Montana": "MT", "Nebraska": "NE", "Nevada": "NV",
	"New Hampshire": "NH", "New Jersey": "NJ", "New Mexico": "NM", "New York": "NY",
	"North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH", "Oklahoma": "OK",
	"Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI",
	"South Carolina": "SC", "South Dakota": "SD", "Tennessee": "TN", "Texas": "TX",
	"Utah": "UT", "Vermont": "VT", "Virginia": "VA", "Washington": "WA",
	"West Virginia": "WV", "Wisconsin": "WI", "Wyoming": "WY",
}

type nationalChart struct {
	Years []int     `json:"years"`
	Dem   []float64 `json:"dem"`
	Rep   []float64 `json:"rep"`
}

type stateChart struct {
	Name  string     `json:"name"`
	ID    string     `json:"id"`
	Years []int      `json:"years"`
	Dem   []*float64 `json:"dem"`
	Rep   []*float64 `json:"rep"`
}

type barChartPage struct {
	YearsAnalyzed string
	National      nationalChart
	States        []stateChart
}

// WriteBarChartReport renders the national popular-vote share chart and
// one percentage chart per state into a single HTML page.
func WriteBarChartReport(results []models.ElectionResult, path string) error {
	page := buildBarChartPage(results)
	return renderToFile(barChartTemplate, page, path)
}

func buildBarChartPage(results []models.ElectionResult) barChartPage {
	// National share: the YearRecord is shared per year, so the first
	// record seen for a year carries the same votes as every other.
	type votes struct{ dem, rep int64 }
	national := make(map[int]votes)
	byState := make(map[string]map[int]models.ElectionResult)
	yearSet := make(map[int]bool)

	for _, r := range results {
		year := r.Year.Year
		yearSet[year] = true
		if _, ok := national[year]; !ok && r.Year.DemVotes != nil && r.Year.RepVotes != nil {
			national[year] = votes{dem: *r.Year.DemVotes, rep: *r.Year.RepVotes}
		}
		if byState[r.State.Name] == nil {
			byState[r.State.Name] = make(map[int]models.ElectionResult)
		}
		byState[r.State.Name][year] = r
	}

	var years []int
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	var page barChartPage
	if len(years) > 0 {
		page.YearsAnalyzed = fmt.Sprintf("%d - %d", years[0], years[len(years)-1])
	} else {
		page.YearsAnalyzed = "N/A"
	}

	for _, y := range years {
		v, ok := national[y]
		total := v.dem + v.rep
		if !ok || total <= 0 {
			continue
		}
		page.National.Years = append(page.National.Years, y)
		page.National.Dem = append(page.National.Dem, float64(v.dem)/float64(total)*100)
		page.National.Rep = append(page.National.Rep, float64(v.rep)/float64(total)*100)
	}

	var stateNames []string
	for name := range byState {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for _, name := range stateNames {
		chart := stateChart{Name: name, ID: domID(name)}
		hasData := false
		for _, y := range years {
			r, ok := byState[name][y]
			if !ok {
				continue
			}
			chart.Years = append(chart.Years, y)
			chart.Dem = append(chart.Dem, r.DemPercentage)
			chart.Rep = append(chart.Rep, r.RepPercentage)
			if r.DemPercentage != nil || r.RepPercentage != nil {
				hasData = true
			}
		}
		if hasData {
			page.States = append(page.States, chart)
		}
	}
	return page
}

type yearMap struct {
	Year int      `json:"year"`
	Dem  []string `json:"dem"`
	Rep  []string `json:"rep"`
}

type mapsPage struct {
	YearsAnalyzed string
	Maps          []yearMap
}

// WriteChoroplethReport renders one USA choropleth per election year,
// coloring each state by its winning party, behind a year selector.
func WriteChoroplethReport(results []models.ElectionResult, path string) error {
	page := buildMapsPage(results)
	return renderToFile(mapsTemplate, page, path)
}

func buildMapsPage(results []models.ElectionResult) mapsPage {
	byYear := make(map[int]*yearMap)
	for _, r := range results {
		abbr, ok := stateAbbr[r.State.Name]
		if !ok {
			continue
		}
		year := r.Year.Year
		m := byYear[year]
		if m == nil {
			m = &yearMap{Year: year}
			byYear[year] = m
		}
		switch r.Winner {
		case models.PartyDemocratic:
			m.Dem = append(m.Dem, abbr)
		case models.PartyRepublican:
			m.Rep = append(m.Rep, abbr)
		case models.PartyOther, models.PartyUnknown, "":
			// Not mapped: the choropleth only colors two-party wins.
		}
	}

	var years []int
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var page mapsPage
	if len(years) > 0 {
		page.YearsAnalyzed = fmt.Sprintf("%d - %d", years[0], years[len(years)-1])
	} else {
		page.YearsAnalyzed = "N/A"
	}
	for _, y := range years {
		m := byYear[y]
		sort.Strings(m.Dem)
		sort.Strings(m.Rep)
		page.Maps = append(page.Maps, *m)
	}
	return page
}

func domID(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func renderToFile(tmpl *template.Template, data any, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
