package domain

import (
	"time"

	"github.com/google/uuid"
)

// StateReference holds the static attributes of one state after all reference
// tables have been joined. Values are immutable once loaded.
type StateReference struct {
	State           string  `json:"state"`
	Abbreviation    string  `json:"abbrev"`
	MedianAge       float64 `json:"median_age"`
	MedianIncome    float64 `json:"median_income"`
	PercentDemocrat float64 `json:"percent_democrat"`
	AvgTemp         float64 `json:"avg_temp"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// PopularityRecord is one provider score for a state.
type PopularityRecord struct {
	State string  `json:"state"`
	Score float64 `json:"score"`
}

// EnrichedStateRow is a popularity score joined with the state's reference attributes.
type EnrichedStateRow struct {
	StateReference
	Popularity float64 `json:"popularity"`
}

// Enrichment is the result of one pipeline run for a search term.
type Enrichment struct {
	Term    string             `json:"term"`
	Rows    []EnrichedStateRow `json:"rows"`
	Dropped []string           `json:"dropped,omitempty"`
}

// Snapshot is an enrichment stamped with an ID and generation time for
// downstream consumers.
type Snapshot struct {
	ID          string             `json:"id"`
	Term        string             `json:"term"`
	GeneratedAt time.Time          `json:"generated_at"`
	Rows        []EnrichedStateRow `json:"rows"`
}

// NewSnapshot stamps an enrichment with a fresh ID and the current clock time.
func NewSnapshot(e Enrichment) Snapshot {
	return Snapshot{
		ID:          uuid.NewString(),
		Term:        e.Term,
		GeneratedAt: clock.Now().UTC(),
		Rows:        e.Rows,
	}
}
