package models

import "fmt"

// Party identifies which party carried a state in a given year.
// The empty string means the winner could not be determined at all.
type Party string

const (
	PartyDemocratic Party = "Democratic"
	PartyRepublican Party = "Republican"
	PartyOther      Party = "Other"
	PartyUnknown    Party = "Unknown"
)

// ParseParty maps a raw party label from a results table onto a Party.
func ParseParty(s string) Party {
	switch s {
	case "Democratic":
		return PartyDemocratic
	case "Republican":
		return PartyRepublican
	case "Other":
		return PartyOther
	default:
		return PartyUnknown
	}
}

// StateRecord holds state-level facts: display name, electoral vote count
// and total population. It is immutable once constructed.
type StateRecord struct {
	Name            string
	ElectoralVotes  *int
	TotalPopulation *int
}

// NewStateRecord validates and builds a StateRecord. The name must be
// non-empty and electoral votes, when present, non-negative.
func NewStateRecord(name string, electoralVotes *int, totalPopulation *int) (StateRecord, error) {
	if name == "" {
		return StateRecord{}, fmt.Errorf("state name must be a non-empty string")
	}
	if electoralVotes != nil && *electoralVotes < 0 {
		return StateRecord{}, fmt.Errorf("state %s: electoral votes must be non-negative, got %d", name, *electoralVotes)
	}
	if totalPopulation != nil && *totalPopulation < 0 {
		return StateRecord{}, fmt.Errorf("state %s: total population must be non-negative, got %d", name, *totalPopulation)
	}
	return StateRecord{
		Name:            name,
		ElectoralVotes:  electoralVotes,
		TotalPopulation: totalPopulation,
	}, nil
}

// YearRecord holds national facts for one election year: leader names and
// popular vote counts. One YearRecord is shared by pointer across every
// ElectionResult of the same year, since the data is national rather than
// state-level.
type YearRecord struct {
	Year           int
	DemLeader      *string
	RepLeader      *string
	DemVotes       *int64
	RepVotes       *int64
	TotalVotes     *int64
	WinnerImageURL *string
}

// NewYearRecord builds a YearRecord. Negative vote counts are coerced to
// absent rather than rejected; each coercion is reported as a diagnostic so
// the caller can log it with context.
func NewYearRecord(year int, demLeader, repLeader *string, demVotes, repVotes, totalVotes *int64, winnerImageURL *string) (*YearRecord, []string) {
	var diags []string
	check := func(v *int64, label string) *int64 {
		if v != nil && *v < 0 {
			diags = append(diags, fmt.Sprintf("year %d: %s votes %d is negative, storing absent", year, label, *v))
			return nil
		}
		return v
	}
	return &YearRecord{
		Year:           year,
		DemLeader:      demLeader,
		RepLeader:      repLeader,
		DemVotes:       check(demVotes, "Democratic"),
		RepVotes:       check(repVotes, "Republican"),
		TotalVotes:     check(totalVotes, "total"),
		WinnerImageURL: winnerImageURL,
	}, diags
}

// ElectionResult links one state and one year with that state's percentage
// outcome. It is the unit of output for the whole pipeline.
type ElectionResult struct {
	State         StateRecord
	Year          *YearRecord
	DemPercentage *float64
	RepPercentage *float64
	Winner        Party
}

// NewElectionResult validates percentages and builds the link record.
// Percentages outside [0, 100] are a construction failure; the caller
// decides whether that skips a year or a whole state.
func NewElectionResult(state StateRecord, year *YearRecord, demPct, repPct *float64, winner Party) (ElectionResult, error) {
	if year == nil {
		return ElectionResult{}, fmt.Errorf("state %s: year record is required", state.Name)
	}
	if err := checkPercentage(demPct, "Democratic"); err != nil {
		return ElectionResult{}, fmt.Errorf("state %s year %d: %w", state.Name, year.Year, err)
	}
	if err := checkPercentage(repPct, "Republican"); err != nil {
		return ElectionResult{}, fmt.Errorf("state %s year %d: %w", state.Name, year.Year, err)
	}
	return ElectionResult{
		State:         state,
		Year:          year,
		DemPercentage: demPct,
		RepPercentage: repPct,
		Winner:        winner,
	}, nil
}

func checkPercentage(pct *float64, party string) error {
	if pct == nil {
		return nil
	}
	if *pct < 0 || *pct > 100 {
		return fmt.Errorf("%s percentage must be between 0 and 100, got %v", party, *pct)
	}
	return nil
}

// DetermineWinner derives the state winner from the two percentages.
// A strict comparison decides between the major parties; a tie is Other.
// When exactly one percentage is known the winner is also Other — the
// source data treats a single known share as inconclusive. With neither
// present the winner is absent.
func DetermineWinner(demPct, repPct *float64) Party {
	switch {
	case demPct != nil && repPct != nil:
		if *demPct > *repPct {
			return PartyDemocratic
		}
		if *repPct > *demPct {
			return PartyRepublican
		}
		return PartyOther
	case demPct != nil || repPct != nil:
		return PartyOther
	default:
		return ""
	}
}
