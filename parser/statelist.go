package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const federalDistrict = "District of Columbia"

// maxStateNameLen guards against navigation text mis-extracted as a state
// name; no real state name comes close to this length.
const maxStateNameLen = 30

var (
	reEVAnnotation   = regexp.MustCompile(`\s*\(\d+(\s*EV)?\)\s*$`)
	reLeadingOrdinal = regexp.MustCompile(`^\d+[.)]?\s+`)
	reDigitsOnly     = regexp.MustCompile(`^\d+$`)
)

// ExtractStateList parses the state directory page into a map from state
// display name to the relative path of its state page. Names are cleaned of
// electoral-vote annotations and leading ordinal numbers, deduplicated, and
// guarded against obviously bogus extractions. The directory markup is not
// consistent about the federal district, so its entry is recovered through
// progressively wider fallback scans when the primary pass misses it.
func ExtractStateList(doc *goquery.Document) (map[string]string, []string) {
	states := make(map[string]string)
	var diags []string
	if doc == nil {
		return states, diags
	}

	record := func(sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		name := CleanStateName(sel.Text())
		if name == "" {
			return
		}
		if reDigitsOnly.MatchString(name) {
			diags = append(diags, fmt.Sprintf("state list: rejected purely numeric name %q", name))
			return
		}
		if len([]rune(name)) > maxStateNameLen {
			diags = append(diags, fmt.Sprintf("state list: rejected implausibly long name %q", name))
			return
		}
		if _, seen := states[name]; seen {
			return
		}
		states[name] = href
	}

	// Primary pass: state links listed under the directory headings.
	doc.Find("ul li a[href*='/states/'], ol li a[href*='/states/']").Each(func(_ int, sel *goquery.Selection) {
		record(sel)
	})

	if _, ok := states[federalDistrict]; !ok {
		// The district is missing from the heading-based listing on some
		// revisions of the page. Widen the search: every list element first,
		// then every anchor.
		doc.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			if !strings.Contains(li.Text(), federalDistrict) {
				return true
			}
			// A list item can wrap several anchors; the one naming the
			// district wins over the first.
			link := li.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
				return strings.Contains(a.Text(), federalDistrict)
			}).First()
			if link.Length() == 0 {
				link = li.Find("a").First()
			}
			if href, ok := link.Attr("href"); ok && href != "" {
				states[federalDistrict] = href
				return false
			}
			return true
		})
	}
	if _, ok := states[federalDistrict]; !ok {
		doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if !strings.Contains(a.Text(), federalDistrict) {
				return true
			}
			if href, ok := a.Attr("href"); ok && href != "" {
				states[federalDistrict] = href
				return false
			}
			return true
		})
	}
	if _, ok := states[federalDistrict]; !ok {
		diags = append(diags, "state list: District of Columbia not found by any search path")
	}

	return states, diags
}

// CleanStateName trims a raw directory entry down to the state display
// name: surrounding whitespace, a trailing electoral-vote annotation like
// "(9)" and a leading ordinal like "12." are removed.
func CleanStateName(raw string) string {
	name := strings.TrimSpace(raw)
	name = reEVAnnotation.ReplaceAllString(name, "")
	name = reLeadingOrdinal.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
