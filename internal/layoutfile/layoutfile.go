// Package layoutfile reads YAML documents describing a figure and
// the successive splits producing its axes.
//
//	width: 800
//	height: 600
//	splits:
//	  - label: main
//	    x: 2
//	    y: [[0, 0.3], [0.4, 1]]
//	    exclude: [2]
//	  - ref: main.0.1
//	    replace: true
//	    x: 3
//
// Each created axes is labelled <label>.<i>.<j>, or <label> when the split
// has a single cell, so that later steps may split it further.
// A step without ref splits the figure: its current axes, that is the last
// created one, or the subplot area for the first step.
package layoutfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benoitkugler/sunder"
	"github.com/benoitkugler/sunder/figure"
	"gopkg.in/yaml.v3"
)

// Document is the content of a layout file.
type Document struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Subplot *Subplot `yaml:"subplot"`
	Splits  []Step   `yaml:"splits"`
}

// Subplot overrides the default subplot area.
type Subplot struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// Step is one call to sunder.Split.
type Step struct {
	// Ref is the label of the axes to split;
	// empty means the figure itself.
	Ref string `yaml:"ref"`
	// Replace removes the reference axes once split.
	Replace bool      `yaml:"replace"`
	X       Partition `yaml:"x"`
	Y       Partition `yaml:"y"`
	Select  Selection `yaml:"select"`
	Exclude Selection `yaml:"exclude"`
	Label   string    `yaml:"label"`
	OnError string    `yaml:"on_error"`
}

// Partition accepts either a slice count (3), a list of
// [lo, hi] spans, or the textual form of sunder.ParsePartition.
type Partition struct{ sunder.Partition }

func (p *Partition) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		out, err := sunder.ParsePartition(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		p.Partition = out
	case yaml.SequenceNode:
		var spans [][2]float64
		if err := value.Decode(&spans); err != nil {
			return fmt.Errorf("line %d: partition: %w", value.Line, err)
		}
		p.Partition = sunder.Spans(spans...)
	default:
		return fmt.Errorf("line %d: partition must be a number or a list of spans", value.Line)
	}
	return nil
}

// Selection accepts a list whose items are either
// linear indexes (3) or positions ([0, 2]).
type Selection struct{ sunder.Selection }

func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		out, err := sunder.ParseSelection(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		s.Selection = out
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: selection must be a list", value.Line)
	}
	s.Selection = sunder.Selection{}
	for _, item := range value.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			var k int
			if err := item.Decode(&k); err != nil {
				return fmt.Errorf("line %d: selection: %w", item.Line, err)
			}
			s.Selection = append(s.Selection, sunder.Index(k))
		case yaml.SequenceNode:
			var c [2]int
			if err := item.Decode(&c); err != nil {
				return fmt.Errorf("line %d: selection: %w", item.Line, err)
			}
			s.Selection = append(s.Selection, sunder.At(c[0], c[1]))
		default:
			return fmt.Errorf("line %d: selection items must be an index or an [i, j] pair", item.Line)
		}
	}
	return nil
}

// Load reads and parses the layout file at `path`.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("layoutfile: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("layoutfile: %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a layout document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("layoutfile: decode: %w", err)
	}
	if doc.Width < 0 || doc.Height < 0 {
		return Document{}, errors.New("layoutfile: negative figure size")
	}
	return doc, nil
}

// NewFigure returns an empty figure with the size and subplot
// area of the document.
func (doc Document) NewFigure() *figure.Figure {
	w, h := doc.Width, doc.Height
	if w == 0 {
		w = figure.DefaultWidth
	}
	if h == 0 {
		h = figure.DefaultHeight
	}
	fig := figure.New(w, h)
	if sp := doc.Subplot; sp != nil {
		fig.Params = figure.SubplotParams{Left: sp.Left, Right: sp.Right, Bottom: sp.Bottom, Top: sp.Top}
	}
	return fig
}

func parseErrorMode(s string) (sunder.ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return sunder.StrictErrorMode, nil
	case "warn":
		return sunder.WarnErrorMode, nil
	case "ignore":
		return sunder.IgnoreErrorMode, nil
	default:
		return 0, fmt.Errorf("unknown error mode %q", s)
	}
}

// Apply runs the splits of the document on `fig`, in order,
// and returns the created axes by label.
func (doc Document) Apply(fig *figure.Figure) (map[string]*figure.Axes, error) {
	labels := make(map[string]*figure.Axes)
	for n, step := range doc.Splits {
		var ref sunder.Reference = fig
		if step.Ref != "" {
			ax, ok := labels[step.Ref]
			if !ok {
				return nil, fmt.Errorf("layoutfile: split %d: unknown reference %q", n, step.Ref)
			}
			ref = ax
		}
		mode, err := parseErrorMode(step.OnError)
		if err != nil {
			return nil, fmt.Errorf("layoutfile: split %d: %w", n, err)
		}

		res, err := sunder.Split(ref, step.X.Partition, step.Y.Partition, sunder.Options{
			Select:    step.Select.Selection,
			Exclude:   step.Exclude.Selection,
			ErrorMode: mode,
		})
		if err != nil {
			return nil, fmt.Errorf("layoutfile: split %d: %w", n, err)
		}

		// the new cells may reuse the label of the replaced one
		if step.Replace {
			if ax, ok := ref.(*figure.Axes); ok {
				fig.Remove(ax)
				delete(labels, step.Ref)
			}
		}

		label := step.Label
		if label == "" {
			label = fmt.Sprintf("split%d", n)
		}
		if res.One != nil {
			res.One.SetLabel(label)
			labels[label] = res.One
		} else {
			for i := 0; i < res.Grid.Nx(); i++ {
				for j := 0; j < res.Grid.Ny(); j++ {
					if ax := res.Grid.At(i, j); ax != nil {
						name := fmt.Sprintf("%s.%d.%d", label, i, j)
						ax.SetLabel(name)
						labels[name] = ax
					}
				}
			}
		}

	}
	return labels, nil
}
