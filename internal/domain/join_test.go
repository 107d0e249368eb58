package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_EnrichesByStateName(t *testing.T) {
	refs := refMap{"California": california, "Texas": texas}
	records := []PopularityRecord{{State: "California", Score: 80}, {State: "Texas", Score: 45}}

	rows, dropped, err := Join(records, refs, JoinOptions{})
	require.NoError(t, err)
	assert.Empty(t, dropped)
	require.Len(t, rows, 2)

	want := EnrichedStateRow{
		StateReference: StateReference{
			State:           "California",
			Abbreviation:    "CA",
			MedianAge:       36.0,
			MedianIncome:    71000,
			PercentDemocrat: 61.7,
			AvgTemp:         59.4,
			Latitude:        36.778259,
			Longitude:       -119.417931,
		},
		Popularity: 80,
	}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Fatalf("california row mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "TX", rows[1].Abbreviation)
}

func TestJoin_InnerJoinDropsUnmatchedStates(t *testing.T) {
	refs := refMap{"California": california, "Texas": texas, "Utah": {State: "Utah", Abbreviation: "UT"}}
	records := []PopularityRecord{
		{State: "California", Score: 80},
		{State: "Guam", Score: 12},
		{State: "Texas", Score: 45},
	}

	rows, dropped, err := Join(records, refs, JoinOptions{})
	require.NoError(t, err)

	var got []string
	for _, r := range rows {
		got = append(got, r.State)
	}
	assert.Equal(t, []string{"California", "Texas"}, got, "Utah has no score, Guam has no reference")
	assert.Equal(t, []string{"Guam"}, dropped)
}

func TestJoin_DuplicateStateKeepsFirst(t *testing.T) {
	refs := refMap{"Texas": texas}
	records := []PopularityRecord{{State: "Texas", Score: 45}, {State: "Texas", Score: 99}}

	rows, _, err := Join(records, refs, JoinOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 45.0, rows[0].Popularity)
}

func TestJoin_Idempotent(t *testing.T) {
	refs := refMap{"California": california, "Texas": texas}
	records := []PopularityRecord{{State: "Texas", Score: 45}, {State: "California", Score: 80}}

	first, _, err := Join(records, refs, JoinOptions{})
	require.NoError(t, err)
	second, _, err := Join(records, refs, JoinOptions{})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestJoin_EmptyIntersection(t *testing.T) {
	rows, dropped, err := Join([]PopularityRecord{{State: "Guam", Score: 1}}, refMap{}, JoinOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, []string{"Guam"}, dropped)
}

func TestJoin_PositionalRequiresFullResult(t *testing.T) {
	_, _, err := Join([]PopularityRecord{{State: "Texas"}}, refMap{"Texas": texas}, JoinOptions{Positional: true})
	require.ErrorIs(t, err, ErrPositionalMismatch)
}

func TestJoin_PositionalAssignsByIndex(t *testing.T) {
	refs := refMap{}
	records := make([]PopularityRecord, len(States))
	for i, s := range States {
		records[i] = PopularityRecord{State: s.Name, Score: float64(i)}
		refs[s.Name] = StateReference{State: s.Name, Abbreviation: s.Code}
	}
	// Swap two entries: positional mode labels them by slot, not by name.
	records[0], records[1] = records[1], records[0]

	rows, _, err := Join(records, refs, JoinOptions{Positional: true})
	require.NoError(t, err)
	assert.Equal(t, "Alaska", rows[0].State)
	assert.Equal(t, "AL", rows[0].Abbreviation)

	rows, _, err = Join(records, refs, JoinOptions{})
	require.NoError(t, err)
	assert.Equal(t, "AK", rows[0].Abbreviation)
}
