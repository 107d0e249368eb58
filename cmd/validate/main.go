// Command validate performs integrity checks on the bundled reference data:
// every state appears in every table, values fall in plausible ranges, the
// solutions table is sorted, and the page copy has the sections the dashboard
// renders.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// bounds is an inclusive plausible range for one characteristic.
type bounds struct {
	min, max float64
}

var ranges = map[domain.Characteristic]bounds{
	domain.MedianAge:       {15, 70},
	domain.MedianIncome:    {10_000, 250_000},
	domain.PercentDemocrat: {0, 100},
	domain.AvgTemp:         {0, 90},
	domain.Latitude:        {18, 72},
	domain.Longitude:       {-180, -60},
}

// requiredSections are the prose sections the page renders.
var requiredSections = []string{"intro", "a1", "a2", "a3"}

func main() {
	dataDir := flag.String("data-dir", "data", "directory containing the reference data files")
	flag.Parse()

	os.Exit(run(os.DirFS(*dataDir)))
}

func run(fsys fs.FS) int {
	fmt.Println("=== Reference Data Validation ===")
	fmt.Println()

	ctx := context.Background()
	tables, err := reference.LoadTables(ctx, fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load tables: %v\n", err)
		return 1
	}
	solutions, err := reference.LoadSolutions(ctx, fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load solutions: %v\n", err)
		return 1
	}
	store, err := reference.Load(ctx, fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load reference store: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCoverage(tables),
		validateRanges(store.States()),
		validateSolutions(solutions),
		validateProse(store.Prose()),
	}

	allPassed := report(phases)
	fmt.Printf("\nStates: %d of %d joined, %d solutions, %d prose sections\n",
		store.Len(), len(domain.States), len(store.Solutions()), len(store.Prose()))

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func report(phases []*phase) bool {
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}
	return allPassed
}

// ── Phase 1: Coverage ──
// Every known state must appear in every table, and no table may carry names
// outside the known set.

func validateCoverage(t reference.Tables) *phase {
	p := &phase{name: "Phase 1: Table Coverage"}

	for _, g := range t.Coverage() {
		p.errorf("%s: missing from %s", g.State, strings.Join(g.Missing, ", "))
	}

	checkUnknown(p, reference.MedianAgeFile, keys(t.MedianAge))
	checkUnknown(p, reference.MedianIncomeFile, keys(t.MedianIncome))
	checkUnknown(p, reference.PoliticalFile, keys(t.PercentDemocrat))
	checkUnknown(p, reference.AvgTempFile, keys(t.AvgTemp))
	checkUnknown(p, reference.LocationsFile, keys(t.Locations))
	return p
}

func checkUnknown(p *phase, file string, names []string) {
	for _, name := range names {
		if _, ok := domain.CodeForName(name); !ok {
			p.errorf("%s: unknown state %q", file, name)
		}
	}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ── Phase 2: Value Ranges ──

func validateRanges(states []domain.StateReference) *phase {
	p := &phase{name: "Phase 2: Value Ranges"}

	for _, ref := range states {
		row := domain.EnrichedStateRow{StateReference: ref}
		for _, c := range domain.Characteristics {
			v, err := c.Value(row)
			if err != nil {
				p.errorf("%s: %v", ref.State, err)
				continue
			}
			b := ranges[c]
			if math.IsNaN(v) || v < b.min || v > b.max {
				p.errorf("%s: %s = %v outside [%v, %v]", ref.State, c.Label(), v, b.min, b.max)
			}
		}
	}
	return p
}

// ── Phase 3: Solutions ──
// Checked in file order: the page ranks solutions, but the file must already
// list them by descending reduction.

func validateSolutions(solutions []domain.Solution) *phase {
	p := &phase{name: "Phase 3: Solutions Table"}

	if len(solutions) == 0 {
		p.errorf("no solutions loaded")
		return p
	}
	seen := map[string]bool{}
	for i, s := range solutions {
		key := strings.ToLower(s.Name)
		if seen[key] {
			p.errorf("duplicate solution %q", s.Name)
		}
		seen[key] = true
		if s.Reduction <= 0 {
			p.errorf("%s: non-positive reduction %v", s.Name, s.Reduction)
		}
		if i > 0 && s.Reduction > solutions[i-1].Reduction {
			p.errorf("%s: not sorted by descending reduction", s.Name)
		}
		if _, err := domain.Insight(solutions, s.Name); err != nil {
			p.errorf("%s: %v", s.Name, err)
		}
	}
	return p
}

// ── Phase 4: Prose ──

func validateProse(prose reference.Prose) *phase {
	p := &phase{name: "Phase 4: Page Copy"}

	for _, id := range requiredSections {
		sec, ok := prose.Section(id)
		if !ok {
			p.errorf("missing section %q", id)
			continue
		}
		if len(sec.Paragraphs) == 0 {
			p.errorf("section %q has no paragraphs", id)
		}
		for _, para := range sec.Paragraphs {
			if strings.TrimSpace(para.Text) == "" {
				p.errorf("section %q paragraph %q is empty", id, para.Key)
			}
		}
	}
	if intro, ok := prose.Section("intro"); ok && intro.Text("title") == "" {
		p.errorf("intro has no title")
	}
	return p
}
