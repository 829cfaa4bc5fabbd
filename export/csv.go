package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

var csvHeader = []string{
	"state_name", "electoral_votes", "total_population",
	"year", "dem_leader", "rep_leader",
	"dem_national_votes", "rep_national_votes", "total_national_votes",
	"dem_state_percentage", "rep_state_percentage",
	"state_winner", "winner_image_url",
}

// WriteCSV saves the results as a flat CSV file, creating the target
// directory if needed. Absent fields render as empty cells.
func WriteCSV(results []models.ElectionResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(csvRow(r)); err != nil {
			return fmt.Errorf("writing CSV row for %s/%d: %w", r.State.Name, r.Year.Year, err)
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(r models.ElectionResult) []string {
	return []string{
		r.State.Name,
		intCell(r.State.ElectoralVotes),
		intCell(r.State.TotalPopulation),
		strconv.Itoa(r.Year.Year),
		strCell(r.Year.DemLeader),
		strCell(r.Year.RepLeader),
		int64Cell(r.Year.DemVotes),
		int64Cell(r.Year.RepVotes),
		int64Cell(r.Year.TotalVotes),
		floatCell(r.DemPercentage),
		floatCell(r.RepPercentage),
		string(r.Winner),
		strCell(r.Year.WinnerImageURL),
	}
}

func strCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intCell(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func int64Cell(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func floatCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
