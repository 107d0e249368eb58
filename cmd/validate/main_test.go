package main

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BundledData(t *testing.T) {
	assert.Equal(t, 0, run(os.DirFS("../../data")))
}

// bundledData copies the shipped data directory into memory so a test can
// replace individual files.
func bundledData(t *testing.T) fstest.MapFS {
	t.Helper()
	entries, err := os.ReadDir("../../data")
	require.NoError(t, err)
	fsys := fstest.MapFS{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join("../../data", e.Name()))
		require.NoError(t, err)
		fsys[e.Name()] = &fstest.MapFile{Data: data}
	}
	return fsys
}

func TestRun_UnsortedSolutionsFile(t *testing.T) {
	fsys := bundledData(t)
	require.Zero(t, run(fsys))

	fsys[reference.SolutionsFile] = &fstest.MapFile{Data: []byte(
		"Solution,Total Atmospheric Reduction\n" +
			"Nuclear,16.09\n" +
			"Refrigerant Management,89.74\n")}
	assert.Equal(t, 1, run(fsys))
}

func TestValidateCoverage(t *testing.T) {
	tables := reference.Tables{
		MedianAge:       map[string]float64{"Ohio": 39.4, "Atlantis": 30},
		MedianIncome:    map[string]float64{"Ohio": 54021},
		PercentDemocrat: map[string]float64{"Ohio": 43.5},
		AvgTemp:         map[string]float64{"Ohio": 50.7},
		Locations:       map[string]reference.LatLon{},
	}

	p := validateCoverage(tables)

	assert.False(t, p.passed())
	assert.Contains(t, p.errors, "Ohio: missing from "+reference.LocationsFile)
	assert.Contains(t, p.errors, reference.MedianAgeFile+`: unknown state "Atlantis"`)
}

func TestValidateRanges(t *testing.T) {
	ok := domain.StateReference{State: "Ohio", MedianAge: 39.4, MedianIncome: 54021, PercentDemocrat: 43.5, AvgTemp: 50.7, Latitude: 40.4, Longitude: -82.9}
	bad := ok
	bad.State = "Nowhere"
	bad.PercentDemocrat = 143.5

	assert.True(t, validateRanges([]domain.StateReference{ok}).passed())

	p := validateRanges([]domain.StateReference{ok, bad})
	assert.Len(t, p.errors, 1)
	assert.Contains(t, p.errors[0], "Nowhere: Percent Democrat")
}

func TestValidateSolutions(t *testing.T) {
	sorted := []domain.Solution{{Name: "A", Reduction: 10}, {Name: "B", Reduction: 5}}
	assert.True(t, validateSolutions(sorted).passed())

	unsorted := []domain.Solution{{Name: "A", Reduction: 5}, {Name: "B", Reduction: 10}, {Name: "a", Reduction: 0}}
	p := validateSolutions(unsorted)
	assert.Contains(t, p.errors, "B: not sorted by descending reduction")
	assert.Contains(t, p.errors, `duplicate solution "a"`)
	assert.Contains(t, p.errors, "a: non-positive reduction 0")

	assert.False(t, validateSolutions(nil).passed())
}

func TestValidateProse(t *testing.T) {
	prose := reference.Prose{
		{ID: "intro", Paragraphs: []reference.Paragraph{{Key: "title", Text: "T"}, {Key: "p1", Text: "x"}}},
		{ID: "a1", Paragraphs: []reference.Paragraph{{Key: "p1", Text: "x"}}},
		{ID: "a2", Paragraphs: []reference.Paragraph{{Key: "p1", Text: " "}}},
	}

	p := validateProse(prose)
	assert.Equal(t, []string{
		`section "a2" paragraph "p1" is empty`,
		`missing section "a3"`,
	}, p.errors)
}
