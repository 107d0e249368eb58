package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/render"
	"github.com/go-chi/chi/v5"
	"gonum.org/v1/plot/vg"
)

const maxImageInches = 20

type characteristicJSON struct {
	Key   domain.Characteristic `json:"key"`
	Label string                `json:"label"`
}

type choroplethResponse struct {
	Chart  domain.Choropleth `json:"chart"`
	Figure domain.Figure     `json:"figure"`
}

type scatterResponse struct {
	Chart  domain.ScatterChart `json:"chart"`
	Figure domain.Figure       `json:"figure"`
}

func (s *Server) handleCharacteristics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, characteristicList())
}

func characteristicList() []characteristicJSON {
	out := make([]characteristicJSON, len(domain.Characteristics))
	for i, c := range domain.Characteristics {
		out[i] = characteristicJSON{Key: c, Label: c.Label()}
	}
	return out
}

func (s *Server) handleChoropleth(w http.ResponseWriter, r *http.Request) {
	chart, err := s.dashboard.Choropleth(r.Context(), s.term(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, choroplethResponse{Chart: chart, Figure: chart.Figure()})
}

func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	chart, err := s.scatter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scatterResponse{Chart: chart, Figure: chart.Figure()})
}

func (s *Server) handleScatterPNG(w http.ResponseWriter, r *http.Request) {
	width, err := inches(r, "width", render.DefaultWidth)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	height, err := inches(r, "height", render.DefaultHeight)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	chart, err := s.scatter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.ScatterPNG(&buf, chart, width, height); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	e, err := s.dashboard.Enrich(r.Context(), s.term(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleProse(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.content.Prose())
}

func (s *Server) handleSolutions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.content.Solutions())
}

func (s *Server) handleSolution(w http.ResponseWriter, r *http.Request) {
	insight, err := s.content.Solution(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insight)
}

func (s *Server) scatter(r *http.Request) (domain.ScatterChart, error) {
	c := s.opts.DefaultCharacteristic
	if v := strings.TrimSpace(r.URL.Query().Get("characteristic")); v != "" {
		parsed, err := domain.ParseCharacteristic(v)
		if err != nil {
			return domain.ScatterChart{}, err
		}
		c = parsed
	}
	return s.dashboard.Scatter(r.Context(), s.term(r), c)
}

// term returns the "term" query parameter, falling back to the configured
// default only when the parameter is absent. An explicit empty term is passed
// through so the pipeline can reject it.
func (s *Server) term(r *http.Request) string {
	q := r.URL.Query()
	if !q.Has("term") {
		return s.opts.DefaultTerm
	}
	return q.Get("term")
}

// inches reads an optional positive size parameter expressed in inches.
func inches(r *http.Request, key string, def vg.Length) (vg.Length, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 || f > maxImageInches {
		return 0, badRequest("%s must be a number of inches in (0, %d]", key, maxImageInches)
	}
	return vg.Length(f) * vg.Inch, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
