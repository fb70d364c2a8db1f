package svg

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/render"
)

func TestWriteSVG(t *testing.T) {
	fig := figure.New(200, 100)
	ax, err := fig.AddAxes(figure.Bbox{X0: 0, Y0: 0, X1: 0.5, Y1: 1})
	if err != nil {
		t.Fatal(err)
	}
	ax.SetLabel("left")

	var buf bytes.Buffer
	style := render.Style{Face: color.NRGBA{R: 0xff, A: 0xff}, Edge: color.Black, LineWidth: 2, Opacity: 1}
	if err := WriteSVG(&buf, fig, style); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`d="M0.000,0.000 L100.000,0.000 L100.000,100.000 L0.000,100.000 Z"`,
		"fill:#ff0000;fill-opacity:1;fill-rule:nonzero",
		"stroke:#000000;stroke-opacity:1;stroke-width:2",
		">left</text>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}

	// the document must be well formed
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("invalid xml: %s", err)
			}
			break
		}
	}
}
