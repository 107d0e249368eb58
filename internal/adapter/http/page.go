package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const (
	introSection = "intro"
	defaultTitle = "State Search Trends"
)

type indexData struct {
	Title                 string
	Intro                 *reference.Section
	Sections              []reference.Section
	Characteristics       []characteristicJSON
	DefaultCharacteristic domain.Characteristic
	DefaultTerm           string
	Solutions             []domain.Solution
}

func (s *Server) indexData() indexData {
	prose := s.content.Prose()
	data := indexData{
		Title:                 defaultTitle,
		Characteristics:       characteristicList(),
		DefaultCharacteristic: s.opts.DefaultCharacteristic,
		DefaultTerm:           s.opts.DefaultTerm,
		Solutions:             s.content.Solutions(),
	}
	for _, sec := range prose {
		if sec.ID == introSection {
			data.Intro = &sec
			if t := sec.Text("title"); t != "" {
				data.Title = t
			}
			continue
		}
		data.Sections = append(data.Sections, sec)
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, s.indexData()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
