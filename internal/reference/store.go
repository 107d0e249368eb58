package reference

import (
	"context"
	"fmt"
	"io/fs"
	"slices"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
)

// Store is the immutable reference data shared by every request. It is safe
// for concurrent use because nothing mutates it after Load returns.
type Store struct {
	states    []domain.StateReference
	byName    map[string]domain.StateReference
	prose     Prose
	solutions []domain.Solution
}

// Load reads every reference file from fsys and joins the per-state tables.
func Load(ctx context.Context, fsys fs.FS) (*Store, error) {
	tables, err := LoadTables(ctx, fsys)
	if err != nil {
		return nil, err
	}
	prose, err := loadProse(fsys)
	if err != nil {
		return nil, err
	}
	solutions, err := LoadSolutions(ctx, fsys)
	if err != nil {
		return nil, err
	}

	s := NewStore(tables, prose, solutions)
	if len(s.states) == 0 {
		return nil, fmt.Errorf("reference data: no state appears in every table")
	}
	return s, nil
}

// NewStore inner-joins the tables into one StateReference per state. Only the
// 51 known states and DC are considered. Solutions are ranked by descending
// reduction.
func NewStore(t Tables, prose Prose, solutions []domain.Solution) *Store {
	s := &Store{
		byName:    make(map[string]domain.StateReference, len(domain.States)),
		prose:     prose,
		solutions: rankSolutions(solutions),
	}
	for _, st := range domain.States {
		ref, ok := t.join(st)
		if !ok {
			continue
		}
		s.states = append(s.states, ref)
		s.byName[st.Name] = ref
	}
	return s
}

func (t Tables) join(st domain.State) (domain.StateReference, bool) {
	age, ok1 := t.MedianAge[st.Name]
	income, ok2 := t.MedianIncome[st.Name]
	dem, ok3 := t.PercentDemocrat[st.Name]
	temp, ok4 := t.AvgTemp[st.Name]
	loc, ok5 := t.Locations[st.Name]
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return domain.StateReference{}, false
	}
	return domain.StateReference{
		State:           st.Name,
		Abbreviation:    st.Code,
		MedianAge:       age,
		MedianIncome:    income,
		PercentDemocrat: dem,
		AvgTemp:         temp,
		Latitude:        loc.Lat,
		Longitude:       loc.Lon,
	}, true
}

// Gap names a known state and the tables it is missing from.
type Gap struct {
	State   string
	Missing []string
}

// Coverage lists every known state absent from at least one table.
func (t Tables) Coverage() []Gap {
	var gaps []Gap
	for _, st := range domain.States {
		var missing []string
		if _, ok := t.MedianAge[st.Name]; !ok {
			missing = append(missing, MedianAgeFile)
		}
		if _, ok := t.MedianIncome[st.Name]; !ok {
			missing = append(missing, MedianIncomeFile)
		}
		if _, ok := t.PercentDemocrat[st.Name]; !ok {
			missing = append(missing, PoliticalFile)
		}
		if _, ok := t.AvgTemp[st.Name]; !ok {
			missing = append(missing, AvgTempFile)
		}
		if _, ok := t.Locations[st.Name]; !ok {
			missing = append(missing, LocationsFile)
		}
		if len(missing) > 0 {
			gaps = append(gaps, Gap{State: st.Name, Missing: missing})
		}
	}
	return gaps
}

// Reference implements domain.ReferenceLookup.
func (s *Store) Reference(state string) (domain.StateReference, bool) {
	r, ok := s.byName[state]
	return r, ok
}

// States returns a copy of every joined state in alphabetical order.
func (s *Store) States() []domain.StateReference {
	return slices.Clone(s.states)
}

// Len is the number of states present in every table.
func (s *Store) Len() int { return len(s.states) }

func (s *Store) Prose() Prose { return s.prose }

// Solutions returns a copy of the solutions table, largest reduction first.
func (s *Store) Solutions() []domain.Solution {
	return slices.Clone(s.solutions)
}

// Solution describes one solution relative to the rest of the table.
func (s *Store) Solution(name string) (domain.SolutionInsight, error) {
	return domain.Insight(s.solutions, name)
}

// CheckReadiness reports whether reference data is loaded.
func (s *Store) CheckReadiness(_ context.Context) error {
	if s == nil || len(s.states) == 0 {
		return fmt.Errorf("reference data not loaded")
	}
	return nil
}
