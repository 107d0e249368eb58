package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is one shaded area of the choropleth.
type Region struct {
	Code      string  `json:"code"`
	Value     float64 `json:"value"`
	HoverText string  `json:"hover_text"`
}

// Choropleth is a US state map shaded by popularity.
type Choropleth struct {
	Term    string   `json:"term"`
	Title   string   `json:"title"`
	Regions []Region `json:"regions"`
}

// ScatterPoint is one state plotted as (characteristic, popularity).
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// ScatterChart plots popularity against one characteristic, with an optional
// trendline. Trendline is nil when the fit is degenerate.
type ScatterChart struct {
	Term             string         `json:"term"`
	Characteristic   Characteristic `json:"characteristic"`
	Title            string         `json:"title"`
	XTitle           string         `json:"x_title"`
	YTitle           string         `json:"y_title"`
	Points           []ScatterPoint `json:"points"`
	Trendline        []Point        `json:"trendline,omitempty"`
	Fit              *Line          `json:"fit,omitempty"`
	TrendlineOmitted bool           `json:"trendline_omitted"`
}

const (
	choroplethColorScale = "Reds"
	colorBarTitle        = "Search Popularity"
)

// BuildChoropleth maps each row's abbreviation to its popularity score.
func BuildChoropleth(term string, rows []EnrichedStateRow) Choropleth {
	regions := make([]Region, len(rows))
	for i, r := range rows {
		regions[i] = Region{Code: r.Abbreviation, Value: r.Popularity, HoverText: HoverText(r.StateReference)}
	}
	return Choropleth{
		Term:    term,
		Title:   fmt.Sprintf(`"%s" Search Popularity by State`, term),
		Regions: regions,
	}
}

// HoverText lists a state's static attributes as <br>-separated lines.
func HoverText(ref StateReference) string {
	var b strings.Builder
	line := func(label, prefix string, v float64) {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(prefix)
		b.WriteString(formatValue(v))
		b.WriteString("<br>")
	}
	line("Median Age", "", ref.MedianAge)
	line("Median Income", "", ref.MedianIncome)
	line("Percent Democrat", "%", ref.PercentDemocrat)
	line("Avg Temp", "", ref.AvgTemp)
	line("Latitude", "", ref.Latitude)
	line("Longitude", "", ref.Longitude)
	return b.String()
}

// formatValue renders whole numbers with a trailing ".0" so 71000 reads "71000.0".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEN") {
		s += ".0"
	}
	return s
}

// BuildScatter plots popularity against c and fits a trendline. A degenerate fit
// yields a chart without a trendline rather than an error.
func BuildScatter(term string, rows []EnrichedStateRow, c Characteristic) (ScatterChart, error) {
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	points := make([]ScatterPoint, len(rows))
	for i, r := range rows {
		x, err := c.Value(r)
		if err != nil {
			return ScatterChart{}, err
		}
		xs[i], ys[i] = x, r.Popularity
		points[i] = ScatterPoint{X: x, Y: r.Popularity, Label: r.Abbreviation}
	}

	chart := ScatterChart{
		Term:           term,
		Characteristic: c,
		Title:          fmt.Sprintf("%s Search Popularity by %s of State", term, c.Label()),
		XTitle:         c.Label(),
		YTitle:         term + " Search Popularity",
		Points:         points,
	}

	trend, line, err := TrendLine(xs, ys)
	switch {
	case IsDegenerate(err):
		chart.TrendlineOmitted = true
	case err != nil:
		return ScatterChart{}, err
	default:
		chart.Trendline = trend
		chart.Fit = &line
	}
	return chart, nil
}
