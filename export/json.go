package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
)

// resultJSON mirrors the nested export shape: state facts, national year
// facts and the state-level election details.
type resultJSON struct {
	StateInfo struct {
		StateName       string `json:"state_name"`
		ElectoralVotes  *int   `json:"electoral_votes"`
		TotalPopulation *int   `json:"total_population"`
	} `json:"state_info"`
	YearInfo struct {
		Year               int     `json:"year"`
		DemLeader          *string `json:"dem_leader"`
		RepLeader          *string `json:"rep_leader"`
		DemNationalVotes   *int64  `json:"dem_national_votes"`
		RepNationalVotes   *int64  `json:"rep_national_votes"`
		TotalNationalVotes *int64  `json:"total_national_votes"`
		WinnerImageURL     *string `json:"winner_image_url"`
	} `json:"year_info"`
	StateElectionDetails struct {
		DemStatePercentage *float64 `json:"dem_state_percentage"`
		RepStatePercentage *float64 `json:"rep_state_percentage"`
		StateWinner        *string  `json:"state_winner"`
	} `json:"state_election_details"`
}

// WriteJSON saves the results as an indented JSON array of nested records,
// creating the target directory if needed. Absent fields render as null.
func WriteJSON(results []models.ElectionResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	records := make([]resultJSON, 0, len(results))
	for _, r := range results {
		records = append(records, toJSON(r))
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("serializing results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func toJSON(r models.ElectionResult) resultJSON {
	var rec resultJSON
	rec.StateInfo.StateName = r.State.Name
	rec.StateInfo.ElectoralVotes = r.State.ElectoralVotes
	rec.StateInfo.TotalPopulation = r.State.TotalPopulation
	rec.YearInfo.Year = r.Year.Year
	rec.YearInfo.DemLeader = r.Year.DemLeader
	rec.YearInfo.RepLeader = r.Year.RepLeader
	rec.YearInfo.DemNationalVotes = r.Year.DemVotes
	rec.YearInfo.RepNationalVotes = r.Year.RepVotes
	rec.YearInfo.TotalNationalVotes = r.Year.TotalVotes
	rec.YearInfo.WinnerImageURL = r.Year.WinnerImageURL
	if r.Winner != "" {
		winner := string(r.Winner)
		rec.StateElectionDetails.StateWinner = &winner
	}
	rec.StateElectionDetails.DemStatePercentage = r.DemPercentage
	rec.StateElectionDetails.RepStatePercentage = r.RepPercentage
	return rec
}
