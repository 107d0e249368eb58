package domain

// Figure is a chart in the plotly.js figure shape: a list of traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly.js trace. Only the fields this service emits are modelled.
type Trace struct {
	Type         string    `json:"type"`
	Mode         string    `json:"mode,omitempty"`
	Name         string    `json:"name,omitempty"`
	X            []float64 `json:"x,omitempty"`
	Y            []float64 `json:"y,omitempty"`
	Locations    []string  `json:"locations,omitempty"`
	Z            []float64 `json:"z,omitempty"`
	LocationMode string    `json:"locationmode,omitempty"`
	ColorScale   string    `json:"colorscale,omitempty"`
	ColorBar     *ColorBar `json:"colorbar,omitempty"`
	Text         []string  `json:"text,omitempty"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	HoverText    []string  `json:"hovertext,omitempty"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

type GeoLayout struct {
	Scope string `json:"scope"`
}

type Layout struct {
	Title Title      `json:"title"`
	Geo   *GeoLayout `json:"geo,omitempty"`
	XAxis *Axis      `json:"xaxis,omitempty"`
	YAxis *Axis      `json:"yaxis,omitempty"`
}

// Figure converts the choropleth to a plotly.js figure restricted to the USA.
func (c Choropleth) Figure() Figure {
	locs := make([]string, len(c.Regions))
	z := make([]float64, len(c.Regions))
	text := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		locs[i], z[i], text[i] = r.Code, r.Value, r.HoverText
	}
	return Figure{
		Data: []Trace{{
			Type:         "choropleth",
			Locations:    locs,
			Z:            z,
			LocationMode: "USA-states",
			ColorScale:   choroplethColorScale,
			ColorBar:     &ColorBar{Title: Title{Text: colorBarTitle}},
			Text:         text,
		}},
		Layout: Layout{
			Title: Title{Text: c.Title},
			Geo:   &GeoLayout{Scope: "usa"},
		},
	}
}

// Figure converts the scatter chart to a plotly.js figure with up to two traces.
func (s ScatterChart) Figure() Figure {
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		xs[i], ys[i], labels[i] = p.X, p.Y, p.Label
	}
	data := []Trace{{
		Type:      "scatter",
		Mode:      "markers",
		Name:      "States",
		X:         xs,
		Y:         ys,
		HoverInfo: "text",
		HoverText: labels,
	}}
	if !s.TrendlineOmitted {
		tx := make([]float64, len(s.Trendline))
		ty := make([]float64, len(s.Trendline))
		for i, p := range s.Trendline {
			tx[i], ty[i] = p.X, p.Y
		}
		data = append(data, Trace{Type: "scatter", Mode: "lines", Name: "Trendline", X: tx, Y: ty})
	}
	return Figure{
		Data: data,
		Layout: Layout{
			Title: Title{Text: s.Title},
			XAxis: &Axis{Title: Title{Text: s.XTitle}},
			YAxis: &Axis{Title: Title{Text: s.YTitle}},
		},
	}
}
