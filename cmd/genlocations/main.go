// Command genlocations turns a raw place-name geocoding export into the
// state_locations.csv reference table. Place names are normalized to state
// names, rows that are not one of the 50 states or DC are dropped, and the
// output is sorted by state name.
//
// Usage:
//
//	go run ./cmd/genlocations \
//	  -in raw_locations.csv \
//	  -out data/state_locations.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
)

var header = []string{"Place Name", "Latitude", "Longitude"}

type location struct {
	name     string
	lat, lon string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "", "raw location CSV with Place Name, Latitude, Longitude columns")
	out := flag.String("out", "", "output path for the normalized state location table")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -out")
	}

	src, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	locs, skipped, err := readLocations(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeLocations(dst, locs); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", *out, err)
	}
	if err := dst.Close(); err != nil {
		return err
	}

	log.Printf("wrote %d states to %s (%d rows skipped)", len(locs), *out, len(skipped))
	for _, s := range skipped {
		log.Printf("skipped: %s", s)
	}
	if missing := missingStates(locs); len(missing) > 0 {
		log.Printf("missing %d states: %s", len(missing), strings.Join(missing, ", "))
	}
	return nil
}

// readLocations parses the raw table. Rows whose normalized name is not a known
// state, or that repeat a state already seen, are returned in skipped.
func readLocations(r io.Reader) (locs []location, skipped []string, err error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data rows")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, h := range header {
		if _, ok := idx[h]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", h)
		}
	}

	seen := map[string]bool{}
	for line, row := range rows[1:] {
		place := get(row, idx, "Place Name")
		name := domain.NormalizePlaceName(place)
		if _, ok := domain.CodeForName(name); !ok || seen[name] {
			skipped = append(skipped, place)
			continue
		}
		lat, lon := get(row, idx, "Latitude"), get(row, idx, "Longitude")
		if _, err := reference.ParseNumber(lat); err != nil {
			return nil, nil, fmt.Errorf("line %d: latitude: %w", line+2, err)
		}
		if _, err := reference.ParseNumber(lon); err != nil {
			return nil, nil, fmt.Errorf("line %d: longitude: %w", line+2, err)
		}
		seen[name] = true
		locs = append(locs, location{name: name, lat: lat, lon: lon})
	}

	slices.SortFunc(locs, func(a, b location) int { return strings.Compare(a.name, b.name) })
	return locs, skipped, nil
}

func writeLocations(w io.Writer, locs []location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, l := range locs {
		if err := cw.Write([]string{l.name, l.lat, l.lon}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func missingStates(locs []location) []string {
	have := make(map[string]bool, len(locs))
	for _, l := range locs {
		have[l.name] = true
	}
	var missing []string
	for _, st := range domain.States {
		if !have[st.Name] {
			missing = append(missing, st.Name)
		}
	}
	return missing
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
