package reference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
)

// LoadSolutions reads the solutions table in file order.
func LoadSolutions(ctx context.Context, fsys fs.FS) ([]domain.Solution, error) {
	return readTable(ctx, fsys, SolutionsFile, parseSolutions)
}

// rankSolutions returns a copy ordered by descending reduction. Ties keep
// file order.
func rankSolutions(solutions []domain.Solution) []domain.Solution {
	out := slices.Clone(solutions)
	slices.SortStableFunc(out, func(a, b domain.Solution) int {
		return cmp.Compare(b.Reduction, a.Reduction)
	})
	return out
}

func parseSolutions(rows [][]string) ([]domain.Solution, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	idx, err := headerIndex(rows[0], solutionColumn, solutionValueColumn)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Solution, 0, len(rows)-1)
	for i, rec := range rows[1:] {
		if len(rec) <= max(idx[0], idx[1]) {
			return nil, fmt.Errorf("line %d: too few columns", i+2)
		}
		name := strings.TrimSpace(rec[idx[0]])
		if name == "" {
			continue
		}
		v, err := ParseNumber(rec[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		out = append(out, domain.Solution{Name: name, Reduction: v})
	}
	return out, nil
}
