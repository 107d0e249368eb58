package reference

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/iancoleman/orderedmap"
)

// Paragraph is one keyed block of text inside a prose section.
type Paragraph struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Section is a named group of paragraphs, e.g. "intro" or "a1".
type Section struct {
	ID         string      `json:"id"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Text returns the paragraph with the given key, or "".
func (s Section) Text(key string) string {
	for _, p := range s.Paragraphs {
		if p.Key == key {
			return p.Text
		}
	}
	return ""
}

// Prose is the page copy in file order.
type Prose []Section

// Section looks up a section by ID.
func (p Prose) Section(id string) (Section, bool) {
	for _, s := range p {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func loadProse(fsys fs.FS) (Prose, error) {
	data, err := fs.ReadFile(fsys, ProseFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ProseFile, err)
	}
	p, err := parseProse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProseFile, err)
	}
	return p, nil
}

// parseProse decodes {"section": {"p1": "...", ...}, ...} keeping key order,
// which a plain map would lose.
func parseProse(data []byte) (Prose, error) {
	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("decode prose: %w", err)
	}

	prose := make(Prose, 0, len(root.Keys()))
	for _, id := range root.Keys() {
		v, _ := root.Get(id)
		sec := Section{ID: id}
		switch body := v.(type) {
		case orderedmap.OrderedMap:
			sec.Paragraphs = paragraphs(&body)
		case *orderedmap.OrderedMap:
			sec.Paragraphs = paragraphs(body)
		case string:
			sec.Paragraphs = []Paragraph{{Key: id, Text: body}}
		default:
			return nil, fmt.Errorf("section %q: unexpected %T", id, v)
		}
		prose = append(prose, sec)
	}
	return prose, nil
}

func paragraphs(m *orderedmap.OrderedMap) []Paragraph {
	keys := m.Keys()
	out := make([]Paragraph, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		text, ok := v.(string)
		if !ok {
			text = fmt.Sprint(v)
		}
		out = append(out, Paragraph{Key: k, Text: text})
	}
	return out
}
