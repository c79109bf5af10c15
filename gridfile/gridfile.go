package gridfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Cell characters of the rows form.
const (
	openChar    = '1'
	openAlt     = '.'
	blockedChar = '0'
	blockedAlt  = '#'
)

// Document is the YAML form of a grid and an optional pair of endpoints.
type Document struct {
	Rows        []string `yaml:"rows,omitempty"`
	Cells       [][]int  `yaml:"cells,flow,omitempty"`
	Source      *[2]int  `yaml:"source,flow,omitempty"`
	Destination *[2]int  `yaml:"destination,flow,omitempty"`
}

// Decode parses one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoCells
		}
		return nil, fmt.Errorf("gridfile: decode: %w", err)
	}
	if _, err := doc.Values(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and decodes the document stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Values returns the grid as a fresh [][]int, converting the rows form to
// 1 (open) and 0 (blocked).
func (d *Document) Values() ([][]int, error) {
	switch {
	case len(d.Rows) > 0 && len(d.Cells) > 0:
		return nil, ErrBothForms
	case len(d.Cells) > 0:
		out := make([][]int, len(d.Cells))
		for i, row := range d.Cells {
			out[i] = append([]int(nil), row...)
		}
		return out, nil
	case len(d.Rows) > 0:
		return parseRows(d.Rows)
	default:
		return nil, ErrNoCells
	}
}

// Grid builds a GridGraph from the document with the given options.
func (d *Document) Grid(opts gridgraph.GridOptions) (*gridgraph.GridGraph, error) {
	values, err := d.Values()
	if err != nil {
		return nil, err
	}

	return gridgraph.NewGridGraph(values, opts)
}

// Endpoints returns the stored source and destination as points. ok is false
// unless both are present.
func (d *Document) Endpoints() (src, dst gridgraph.Point, ok bool) {
	if d.Source == nil || d.Destination == nil {
		return src, dst, false
	}

	return gridgraph.Pt(d.Source[0], d.Source[1]), gridgraph.Pt(d.Destination[0], d.Destination[1]), true
}

// SetEndpoints records src and dst in the document.
func (d *Document) SetEndpoints(src, dst gridgraph.Point) {
	s, t := [2]int{src.X, src.Y}, [2]int{dst.X, dst.Y}
	d.Source, d.Destination = &s, &t
}

// FromValues wraps values in a rows-form document. Values of 1 or more are
// written as '1', everything else as '0'.
func FromValues(values [][]int) *Document {
	rows := make([]string, len(values))
	for r, line := range values {
		var sb strings.Builder
		sb.Grow(len(line))
		for _, v := range line {
			if v >= 1 {
				sb.WriteByte(openChar)
			} else {
				sb.WriteByte(blockedChar)
			}
		}
		rows[r] = sb.String()
	}

	return &Document{Rows: rows}
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gridfile: encode: %w", err)
	}

	return enc.Close()
}

func parseRows(rows []string) ([][]int, error) {
	out := make([][]int, len(rows))
	for r, line := range rows {
		out[r] = make([]int, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case openChar, openAlt:
				out[r][c] = 1
			case blockedChar, blockedAlt:
				out[r][c] = 0
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadCell, line[c], r, c)
			}
		}
	}

	return out, nil
}
