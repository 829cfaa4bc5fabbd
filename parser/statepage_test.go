package parser

import (
	"testing"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

func TestExtractElectoralVotes(t *testing.T) {
	tests := []struct {
		name string
		html string
		want *int
	}{
		{
			"dedicated class element",
			`<html><body><div class="electoral-votes">16</div></body></html>`,
			iptr(16),
		},
		{
			"class element with annotation text",
			`<html><body><span class="ev-count">16 Electoral Votes</span></body></html>`,
			iptr(16),
		},
		{
			"heading fallback",
			`<html><body><h2>Georgia: 16 Electoral Votes</h2></body></html>`,
			iptr(16),
		},
		{
			"heading fallback single vote",
			`<html><body><h3>1 electoral vote</h3></body></html>`,
			iptr(1),
		},
		{
			"styled span fallback",
			`<html><body><span style="font-size: 48px">16</span></body></html>`,
			iptr(16),
		},
		{
			"nothing matches",
			`<html><body><p>Georgia</p></body></html>`,
			nil,
		},
		{
			"styled span with junk skipped",
			`<html><body><span style="font-size: 12px">menu</span><span style="font-size: 48px">16</span></body></html>`,
			iptr(16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractElectoralVotes(docFromHTML(t, tt.html))
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("ExtractElectoralVotes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func iptr(n int) *int { return &n }

const stateTableHTML = `<html><body>
<table id="recent_elections">
<tbody>
	<tr class="toggle-row"><td>2020</td><td>
		<table><tr><td>49.47%</td><td>vs</td><td>49.24%</td></tr></table>
	</td></tr>
	<tr class="toggle-row" style="display: none;"><td>2018</td><td>
		<table><tr><td>55.0%</td><td>vs</td><td>40.0%</td></tr></table>
	</td></tr>
	<tr class="toggle-row"><td>2016</td><td>
		<table><tr><td>45.64%</td><td>vs</td><td>50.77%</td></tr></table>
	</td></tr>
	<tr class="toggle-row"><td>2012</td><td>
		<table><tr><td>45.48%</td><td>vs</td><td>53.30%</td></tr></table>
	</td></tr>
</tbody>
</table>
</body></html>`

func TestExtractYearRows(t *testing.T) {
	targets := map[int]bool{2020: true, 2016: true}
	rows, diags := ExtractYearRows(docFromHTML(t, stateTableHTML), targets)

	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(rows), rows)
	}

	if rows[0].Year != 2020 {
		t.Errorf("rows[0].Year = %d, want 2020", rows[0].Year)
	}
	if rows[0].DemPct == nil || *rows[0].DemPct != 49.47 {
		t.Errorf("rows[0].DemPct = %v, want 49.47", rows[0].DemPct)
	}
	if rows[0].RepPct == nil || *rows[0].RepPct != 49.24 {
		t.Errorf("rows[0].RepPct = %v, want 49.24", rows[0].RepPct)
	}
	if rows[0].Winner != models.PartyDemocratic {
		t.Errorf("rows[0].Winner = %q, want %q", rows[0].Winner, models.PartyDemocratic)
	}

	if rows[1].Year != 2016 {
		t.Errorf("rows[1].Year = %d, want 2016", rows[1].Year)
	}
	if rows[1].Winner != models.PartyRepublican {
		t.Errorf("rows[1].Winner = %q, want %q", rows[1].Winner, models.PartyRepublican)
	}
}

func TestExtractYearRowsSkipsHiddenRows(t *testing.T) {
	targets := map[int]bool{2018: true}
	rows, _ := ExtractYearRows(docFromHTML(t, stateTableHTML), targets)
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0 (hidden row must be skipped): %+v", len(rows), rows)
	}
}

func TestExtractYearRowsLabeledText(t *testing.T) {
	html := `<html><body>
	<table class="election-history"><tbody>
		<tr><td>2020 Presidential Election</td><td>D: 49.47% R: 49.24%</td></tr>
	</tbody></table>
	</body></html>`

	rows, diags := ExtractYearRows(docFromHTML(t, html), map[int]bool{2020: true})
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].DemPct == nil || *rows[0].DemPct != 49.47 {
		t.Errorf("DemPct = %v, want 49.47", rows[0].DemPct)
	}
	if rows[0].RepPct == nil || *rows[0].RepPct != 49.24 {
		t.Errorf("RepPct = %v, want 49.24", rows[0].RepPct)
	}
}

func TestExtractYearRowsNestedYearTag(t *testing.T) {
	html := `<html><body>
	<table id="recent_elections"><tbody>
		<tr class="toggle-row"><td><a href="/2020_Election">2020</a></td><td>
			<table><tr><td>49.47%</td><td>vs</td><td>49.24%</td></tr></table>
		</td></tr>
	</tbody></table>
	</body></html>`

	rows, _ := ExtractYearRows(docFromHTML(t, html), map[int]bool{2020: true})
	if len(rows) != 1 || rows[0].Year != 2020 {
		t.Fatalf("got %+v, want one row for 2020", rows)
	}
}

func TestExtractYearRowsMissingTable(t *testing.T) {
	html := `<html><body><p>no results here</p></body></html>`
	rows, diags := ExtractYearRows(docFromHTML(t, html), map[int]bool{2020: true})
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
	if len(diags) != 1 {
		t.Errorf("expected one missing-table diagnostic, got %v", diags)
	}
}
