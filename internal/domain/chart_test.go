package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []EnrichedStateRow {
	return []EnrichedStateRow{
		{StateReference: california, Popularity: 80},
		{StateReference: texas, Popularity: 45},
	}
}

func TestBuildChoropleth(t *testing.T) {
	c := BuildChoropleth("Climate Change", sampleRows())

	assert.Equal(t, `"Climate Change" Search Popularity by State`, c.Title)
	require.Len(t, c.Regions, 2)
	for _, r := range c.Regions {
		assert.True(t, IsStateCode(r.Code), r.Code)
	}
	assert.Equal(t, Region{
		Code:      "CA",
		Value:     80,
		HoverText: "Median Age: 36.0<br>Median Income: 71000.0<br>Percent Democrat: %61.7<br>Avg Temp: 59.4<br>Latitude: 36.778259<br>Longitude: -119.417931<br>",
	}, c.Regions[0])
}

func TestChoropleth_Figure(t *testing.T) {
	fig := BuildChoropleth("solar", sampleRows()).Figure()

	require.Len(t, fig.Data, 1)
	tr := fig.Data[0]
	assert.Equal(t, "choropleth", tr.Type)
	assert.Equal(t, "USA-states", tr.LocationMode)
	assert.Equal(t, "Reds", tr.ColorScale)
	assert.Equal(t, []string{"CA", "TX"}, tr.Locations)
	assert.Equal(t, []float64{80, 45}, tr.Z)
	assert.Equal(t, "usa", fig.Layout.Geo.Scope)

	data, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"locationmode":"USA-states"`)
	assert.Contains(t, string(data), `"colorbar":{"title":{"text":"Search Popularity"}}`)
}

func TestBuildScatter(t *testing.T) {
	chart, err := BuildScatter("Climate Change", sampleRows(), MedianAge)
	require.NoError(t, err)

	assert.Equal(t, "Climate Change Search Popularity by Median Age of State", chart.Title)
	assert.Equal(t, "Median Age", chart.XTitle)
	assert.Equal(t, "Climate Change Search Popularity", chart.YTitle)
	assert.Equal(t, []ScatterPoint{{X: 36.0, Y: 80, Label: "CA"}, {X: 34.4, Y: 45, Label: "TX"}}, chart.Points)
	assert.False(t, chart.TrendlineOmitted)
	require.Len(t, chart.Trendline, 2)
	assert.Equal(t, 34.4, chart.Trendline[0].X)
	require.NotNil(t, chart.Fit)

	fig := chart.Figure()
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "markers", fig.Data[0].Mode)
	assert.Equal(t, []string{"CA", "TX"}, fig.Data[0].HoverText)
	assert.Equal(t, "lines", fig.Data[1].Mode)
	assert.Equal(t, "Median Age", fig.Layout.XAxis.Title.Text)
}

func TestBuildScatter_TrendlineNoLongerThanScatter(t *testing.T) {
	rows := sampleRows()
	dup := rows[0]
	dup.State, dup.Abbreviation, dup.Popularity = "Oregon", "OR", 70
	rows = append(rows, dup) // same median age as California

	chart, err := BuildScatter("x", rows, MedianAge)
	require.NoError(t, err)
	assert.Len(t, chart.Points, 3)
	assert.Len(t, chart.Trendline, 2)
}

func TestBuildScatter_DegenerateOmitsTrendline(t *testing.T) {
	chart, err := BuildScatter("x", sampleRows()[:1], MedianAge)
	require.NoError(t, err)
	assert.True(t, chart.TrendlineOmitted)
	assert.Nil(t, chart.Trendline)
	assert.Nil(t, chart.Fit)
	assert.Len(t, chart.Figure().Data, 1)
}

func TestBuildScatter_UnknownCharacteristic(t *testing.T) {
	_, err := BuildScatter("x", sampleRows(), Characteristic("population"))
	require.ErrorIs(t, err, ErrUnknownCharacteristic)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "71000.0", formatValue(71000))
	assert.Equal(t, "61.7", formatValue(61.7))
	assert.Equal(t, "-0.5", formatValue(-0.5))
}
