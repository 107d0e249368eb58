package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSolutions() []Solution {
	out := make([]Solution, 10)
	for i := range out {
		out[i] = Solution{Name: string(rune('A' + i)), Reduction: float64(10 - i)}
	}
	return out
}

func TestInsight(t *testing.T) {
	sols := sampleSolutions() // reductions 10..1, sum 55

	in, err := Insight(sols, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, in.Rank)
	assert.Equal(t, 10, in.Total)
	assert.InDelta(t, 10.0/55*100, in.PercentOfTotal, 1e-9)
	assert.Contains(t, in.Message, "one of the most impactful")
	assert.Contains(t, in.Message, "ranked 1 of 10")

	in, err = Insight(sols, "C")
	require.NoError(t, err)
	assert.Contains(t, in.Message, "a high-impact")

	in, err = Insight(sols, "F")
	require.NoError(t, err)
	assert.Contains(t, in.Message, "a moderate-impact")

	in, err = Insight(sols, "J")
	require.NoError(t, err)
	assert.Contains(t, in.Message, "a smaller but still meaningful")
}

func TestInsight_Unknown(t *testing.T) {
	_, err := Insight(sampleSolutions(), "Nuclear Fusion")
	require.ErrorIs(t, err, ErrUnknownSolution)
}
