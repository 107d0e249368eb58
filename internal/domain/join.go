package domain

import "fmt"

// JoinOptions controls how abbreviations are attached during the join.
type JoinOptions struct {
	// Positional assigns abbreviations by the record's index in States instead
	// of by state name. Only correct while the provider keeps its alphabetical
	// 51-row order.
	Positional bool
}

// Join inner-joins popularity records with the reference data. Rows keep the
// provider's order; records whose state is missing from the reference data are
// returned in dropped. A state appearing twice keeps its first score.
func Join(records []PopularityRecord, refs ReferenceLookup, opts JoinOptions) (rows []EnrichedStateRow, dropped []string, err error) {
	if opts.Positional && len(records) != len(States) {
		return nil, nil, fmt.Errorf("%w: got %d records, want %d", ErrPositionalMismatch, len(records), len(States))
	}

	rows = make([]EnrichedStateRow, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if _, dup := seen[rec.State]; dup {
			continue
		}
		seen[rec.State] = struct{}{}

		ref, ok := refs.Reference(rec.State)
		if !ok {
			dropped = append(dropped, rec.State)
			continue
		}
		if opts.Positional {
			ref.Abbreviation = States[i].Code
		}
		rows = append(rows, EnrichedStateRow{StateReference: ref, Popularity: rec.Score})
	}
	return rows, dropped, nil
}
