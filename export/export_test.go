package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

func fptr(f float64) *float64 { return &f }
func iptr(n int) *int         { return &n }
func i64ptr(n int64) *int64   { return &n }
func sptr(s string) *string   { return &s }

func sampleResults(t *testing.T) []models.ElectionResult {
	t.Helper()

	state, err := models.NewStateRecord("Georgia", iptr(16), nil)
	if err != nil {
		t.Fatalf("NewStateRecord: %v", err)
	}
	year, _ := models.NewYearRecord(2020, sptr("Joe Biden"), sptr("Donald Trump"),
		i64ptr(81283501), i64ptr(74223975), i64ptr(155507476),
		sptr("https://www.270towin.com/images/biden.jpg"))

	full, err := models.NewElectionResult(state, year, fptr(49.47), fptr(49.24), models.PartyDemocratic)
	if err != nil {
		t.Fatalf("NewElectionResult: %v", err)
	}

	sparseState, err := models.NewStateRecord("Vermont", nil, nil)
	if err != nil {
		t.Fatalf("NewStateRecord: %v", err)
	}
	sparseYear, _ := models.NewYearRecord(2016, nil, nil, nil, nil, nil, nil)
	sparse, err := models.NewElectionResult(sparseState, sparseYear, nil, nil, "")
	if err != nil {
		t.Fatalf("NewElectionResult: %v", err)
	}

	return []models.ElectionResult{full, sparse}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.csv")
	if err := WriteCSV(sampleResults(t), path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 records", len(rows))
	}

	wantHeader := []string{
		"state_name", "electoral_votes", "total_population",
		"year", "dem_leader", "rep_leader",
		"dem_national_votes", "rep_national_votes", "total_national_votes",
		"dem_state_percentage", "rep_state_percentage",
		"state_winner", "winner_image_url",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	full := rows[1]
	if full[0] != "Georgia" || full[1] != "16" || full[3] != "2020" {
		t.Errorf("full row = %v", full)
	}
	if full[6] != "81283501" || full[9] != "49.47" || full[11] != "Democratic" {
		t.Errorf("full row values = %v", full)
	}

	sparse := rows[2]
	if sparse[0] != "Vermont" {
		t.Errorf("sparse row state = %q, want Vermont", sparse[0])
	}
	for _, idx := range []int{1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12} {
		if sparse[idx] != "" {
			t.Errorf("sparse row[%d] = %q, want empty cell", idx, sparse[idx])
		}
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteJSON(sampleResults(t), path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written JSON: %v", err)
	}

	var records []map[string]map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshaling written JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	full := records[0]
	if got := full["state_info"]["state_name"]; got != "Georgia" {
		t.Errorf("state_name = %v, want Georgia", got)
	}
	if got := full["year_info"]["year"]; got != float64(2020) {
		t.Errorf("year = %v, want 2020", got)
	}
	if got := full["year_info"]["dem_national_votes"]; got != float64(81283501) {
		t.Errorf("dem_national_votes = %v, want 81283501", got)
	}
	if got := full["state_election_details"]["state_winner"]; got != "Democratic" {
		t.Errorf("state_winner = %v, want Democratic", got)
	}

	sparse := records[1]
	if got := sparse["state_info"]["electoral_votes"]; got != nil {
		t.Errorf("sparse electoral_votes = %v, want null", got)
	}
	if got := sparse["state_election_details"]["state_winner"]; got != nil {
		t.Errorf("sparse state_winner = %v, want null", got)
	}
	if got := sparse["year_info"]["winner_image_url"]; got != nil {
		t.Errorf("sparse winner_image_url = %v, want null", got)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := WriteJSON(nil, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written JSON: %v", err)
	}
	var records []interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshaling written JSON: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
