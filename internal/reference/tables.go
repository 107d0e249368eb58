package reference

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"golang.org/x/sync/errgroup"
)

// File names inside the data directory.
const (
	MedianAgeFile    = "med_age.csv"
	MedianIncomeFile = "median_income.csv"
	PoliticalFile    = "political.csv"
	AvgTempFile      = "avg_temp.csv"
	LocationsFile    = "state_locations.csv"
	ProseFile        = "prose.json"
	SolutionsFile    = "solutions.csv"
)

// Column headers the loaders look up by name.
const (
	stateColumn         = "State"
	incomeYearColumn    = "2017"
	avgTempColumn       = "AvgTemp"
	placeNameColumn     = "Place Name"
	latitudeColumn      = "Latitude"
	longitudeColumn     = "Longitude"
	solutionColumn      = "Solution"
	solutionValueColumn = "Total Atmospheric Reduction"
)

// LatLon is a state's representative coordinate.
type LatLon struct {
	Lat float64
	Lon float64
}

// Tables holds each reference table keyed by state name, before joining.
type Tables struct {
	MedianAge       map[string]float64
	MedianIncome    map[string]float64
	PercentDemocrat map[string]float64
	AvgTemp         map[string]float64
	Locations       map[string]LatLon
}

// LoadTables reads the five per-state tables from fsys concurrently.
func LoadTables(ctx context.Context, fsys fs.FS) (Tables, error) {
	var t Tables
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		t.MedianAge, err = readTable(ctx, fsys, MedianAgeFile, parseMedianAge)
		return err
	})
	g.Go(func() (err error) {
		t.MedianIncome, err = readTable(ctx, fsys, MedianIncomeFile, parseMedianIncome)
		return err
	})
	g.Go(func() (err error) {
		t.PercentDemocrat, err = readTable(ctx, fsys, PoliticalFile, parsePolitical)
		return err
	})
	g.Go(func() (err error) {
		t.AvgTemp, err = readTable(ctx, fsys, AvgTempFile, parseAvgTemp)
		return err
	})
	g.Go(func() (err error) {
		t.Locations, err = readTable(ctx, fsys, LocationsFile, parseLocations)
		return err
	})

	if err := g.Wait(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

func readTable[T any](ctx context.Context, fsys fs.FS, name string, parse func([][]string) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("read %s: %w", name, err)
	}
	rows, err := readCSV(fsys, name)
	if err != nil {
		return zero, err
	}
	v, err := parse(rows)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func readCSV(fsys fs.FS, name string) ([][]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// ParseNumber converts a reference value to float64, tolerating thousands
// separators, a leading "$", and a trailing "%": "71,000" -> 71000.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return v, nil
}

// parseMedianAge reads a headerless "state,age" table.
func parseMedianAge(rows [][]string) (map[string]float64, error) {
	return columnValues(rows, 0, 0, 1)
}

// parseMedianIncome reads the 2017 column of a table with one column per year.
func parseMedianIncome(rows [][]string) (map[string]float64, error) {
	return namedColumn(rows, stateColumn, incomeYearColumn)
}

// parsePolitical reads the Democrat share, the second column of a
// State, Democrat, Republican, Dem Adv, N, Classification table.
func parsePolitical(rows [][]string) (map[string]float64, error) {
	return columnValues(rows, 1, 0, 1)
}

func parseAvgTemp(rows [][]string) (map[string]float64, error) {
	return namedColumn(rows, stateColumn, avgTempColumn)
}

func parseLocations(rows [][]string) (map[string]LatLon, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	idx, err := headerIndex(rows[0], placeNameColumn, latitudeColumn, longitudeColumn)
	if err != nil {
		return nil, err
	}

	out := make(map[string]LatLon, len(rows)-1)
	for i, rec := range rows[1:] {
		if len(rec) <= max(idx[0], idx[1], idx[2]) {
			return nil, fmt.Errorf("line %d: too few columns", i+2)
		}
		lat, err := ParseNumber(rec[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		lon, err := ParseNumber(rec[idx[2]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		name := domain.NormalizePlaceName(rec[idx[0]])
		if name == "" {
			continue
		}
		out[name] = LatLon{Lat: lat, Lon: lon}
	}
	return out, nil
}

func namedColumn(rows [][]string, keyName, valueName string) (map[string]float64, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	idx, err := headerIndex(rows[0], keyName, valueName)
	if err != nil {
		return nil, err
	}
	return columnValues(rows, 1, idx[0], idx[1])
}

// columnValues maps rows[skip:] key column to parsed value column. Blank state
// names are ignored.
func columnValues(rows [][]string, skip, keyCol, valueCol int) (map[string]float64, error) {
	if len(rows) < skip {
		return nil, errors.New("empty table")
	}
	out := make(map[string]float64, len(rows)-skip)
	for i, rec := range rows[skip:] {
		if len(rec) <= max(keyCol, valueCol) {
			return nil, fmt.Errorf("line %d: too few columns", i+skip+1)
		}
		state := strings.TrimSpace(rec[keyCol])
		if state == "" {
			continue
		}
		v, err := ParseNumber(rec[valueCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+skip+1, err)
		}
		out[state] = v
	}
	return out, nil
}

func headerIndex(header []string, names ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := make([]int, len(names))
	for i, n := range names {
		p, ok := pos[n]
		if !ok {
			return nil, fmt.Errorf("missing column %q", n)
		}
		idx[i] = p
	}
	return idx, nil
}
