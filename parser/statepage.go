package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

var (
	reEVHeading   = regexp.MustCompile(`(\d+)\s+[Ee]lectoral\s+[Vv]otes?`)
	reLeadingYear = regexp.MustCompile(`^(\d{4})`)
	reDemLabel    = regexp.MustCompile(`D:\s*([\d.]+)\s*%`)
	reRepLabel    = regexp.MustCompile(`R:\s*([\d.]+)\s*%`)
)

// ExtractElectoralVotes pulls the state's electoral vote count out of a
// state page. Search order: the dedicated class-tagged element, then a
// heading matching "N electoral votes", then a large-font styled span.
// First match wins; nil when nothing matches.
func ExtractElectoralVotes(doc *goquery.Document) *int {
	if doc == nil {
		return nil
	}

	if text := doc.Find(".electoral-votes, .ev-count").First().Text(); text != "" {
		if ev := parseEVToken(text); ev != nil {
			return ev
		}
	}

	var fromHeading *int
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if m := reEVHeading.FindStringSubmatch(h.Text()); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				fromHeading = &n
				return false
			}
		}
		return true
	})
	if fromHeading != nil {
		return fromHeading
	}

	var fromSpan *int
	doc.Find("span[style*='font-size']").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if ev := parseEVToken(span.Text()); ev != nil {
			fromSpan = ev
			return false
		}
		return true
	})
	return fromSpan
}

func parseEVToken(text string) *int {
	token := strings.TrimSpace(text)
	if m := reEVHeading.FindStringSubmatch(token); m != nil {
		token = m[1]
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// YearRow is one historical result row from a state page: the election
// year, the two state-level percentages and the winner derived from them.
// National leader names and vote counts do not appear on this page type.
type YearRow struct {
	Year   int
	DemPct *float64
	RepPct *float64
	Winner models.Party
}

// ExtractYearRows parses the historical-results table on a state page into
// per-year rows, keeping only years in targetYears. Hidden rows are
// skipped. Percentages come from the nested sub-table in the second cell
// (positions 0 and 2) or, when no sub-table exists, from labeled text like
// "D: 51.3%" / "R: 46.8%".
func ExtractYearRows(doc *goquery.Document, targetYears map[int]bool) ([]YearRow, []string) {
	var rows []YearRow
	var diags []string
	if doc == nil {
		return rows, diags
	}

	table := findResultsTable(doc)
	if table == nil {
		diags = append(diags, "state page: results table not found")
		return rows, diags
	}

	trs := table.Find("tr.toggle-row")
	if trs.Length() == 0 {
		trs = table.Find("tbody tr")
	}

	trs.Each(func(_ int, tr *goquery.Selection) {
		if style, ok := tr.Attr("style"); ok && strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none") {
			return
		}

		// Direct children only: the percentage sub-table nests its own tds.
		cells := tr.ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}

		year, ok := extractRowYear(cells.Eq(0))
		if !ok {
			diags = append(diags, fmt.Sprintf("state page: no 4-digit year in row %q", strings.TrimSpace(cells.Eq(0).Text())))
			return
		}
		if !targetYears[year] {
			return
		}

		demPct, repPct := extractRowPercentages(cells.Eq(1))
		rows = append(rows, YearRow{
			Year:   year,
			DemPct: demPct,
			RepPct: repPct,
			Winner: models.DetermineWinner(demPct, repPct),
		})
	})

	return rows, diags
}

// findResultsTable locates the historical table by its id, falling back to
// class and text heuristics when the id is absent.
func findResultsTable(doc *goquery.Document) *goquery.Selection {
	if table := doc.Find("table#recent_elections").First(); table.Length() > 0 {
		return table
	}
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		class := table.AttrOr("class", "")
		if strings.Contains(class, "election") || strings.Contains(table.Text(), "Presidential Election") {
			found = table
			return false
		}
		return true
	})
	return found
}

func extractRowYear(cell *goquery.Selection) (int, bool) {
	if m := reLeadingYear.FindStringSubmatch(strings.TrimSpace(cell.Text())); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y, true
		}
	}
	// The year is sometimes wrapped in a nested tag instead of sitting in
	// the cell text directly.
	var year int
	var ok bool
	cell.Find("a, span, b, strong").EachWithBreak(func(_ int, tag *goquery.Selection) bool {
		if m := reLeadingYear.FindStringSubmatch(strings.TrimSpace(tag.Text())); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				year, ok = y, true
				return false
			}
		}
		return true
	})
	return year, ok
}

func extractRowPercentages(cell *goquery.Selection) (*float64, *float64) {
	nested := cell.Find("table").First()
	if nested.Length() > 0 {
		tds := nested.Find("tr").First().Find("td")
		var demPct, repPct *float64
		if tds.Length() >= 1 {
			demPct = ParsePercentage(tds.Eq(0).Text())
		}
		if tds.Length() >= 3 {
			repPct = ParsePercentage(tds.Eq(2).Text())
		}
		return demPct, repPct
	}

	text := cell.Text()
	var demPct, repPct *float64
	if m := reDemLabel.FindStringSubmatch(text); m != nil {
		demPct = ParsePercentage(m[1])
	}
	if m := reRepLabel.FindStringSubmatch(text); m != nil {
		repPct = ParsePercentage(m[1])
	}
	return demPct, repPct
}
