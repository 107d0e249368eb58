package domain

import (
	"fmt"
	"strings"
)

// Solution is one climate solution with its projected total atmospheric
// reduction (gigatons CO2-equivalent).
type Solution struct {
	Name      string  `json:"name"`
	Reduction float64 `json:"reduction"`
}

// SolutionInsight puts one solution in context of the whole table.
type SolutionInsight struct {
	Solution
	Rank           int     `json:"rank"`
	Total          int     `json:"total"`
	PercentOfTotal float64 `json:"percent_of_total"`
	Message        string  `json:"message"`
}

// Insight finds name in solutions (sorted by descending reduction) and
// describes its share of the summed reduction and its rank tier.
func Insight(solutions []Solution, name string) (SolutionInsight, error) {
	idx := -1
	var sum float64
	for i, s := range solutions {
		sum += s.Reduction
		if idx < 0 && strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			idx = i
		}
	}
	if idx < 0 {
		return SolutionInsight{}, fmt.Errorf("%w: %q", ErrUnknownSolution, name)
	}

	s := solutions[idx]
	in := SolutionInsight{Solution: s, Rank: idx + 1, Total: len(solutions)}
	if sum > 0 {
		in.PercentOfTotal = s.Reduction / sum * 100
	}
	in.Message = fmt.Sprintf("%s is %s climate solution, ranked %d of %d and accounting for %.1f%% of the total atmospheric reduction.",
		s.Name, rankTier(in.Rank, in.Total), in.Rank, in.Total, in.PercentOfTotal)
	return in, nil
}

func rankTier(rank, total int) string {
	f := float64(rank) / float64(total)
	switch {
	case f <= 0.1:
		return "one of the most impactful"
	case f <= 1.0/3:
		return "a high-impact"
	case f <= 2.0/3:
		return "a moderate-impact"
	default:
		return "a smaller but still meaningful"
	}
}
