package plot

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/sunder/figure"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func newPlot(t *testing.T, title string) *gonum.Plot {
	t.Helper()
	p := gonum.New()
	p.Title.Text = title
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	p.Add(line)
	return p
}

func newFigure(t *testing.T) *figure.Figure {
	t.Helper()
	fig := figure.New(400, 200)
	for i, bb := range []figure.Bbox{
		{X0: 0.05, Y0: 0.1, X1: 0.45, Y1: 0.9},
		{X0: 0.55, Y0: 0.1, X1: 0.95, Y1: 0.9},
		{X0: 0.9, Y0: 0.9, X1: 1, Y1: 1},
	} {
		ax, err := fig.AddAxes(bb)
		if err != nil {
			t.Fatal(err)
		}
		if i < 2 {
			ax.SetPlot(newPlot(t, "plot"))
		}
	}
	return fig
}

func TestRegion(t *testing.T) {
	c := draw.New(vgimg.New(200, 100))
	got := Region(c, figure.Bbox{X0: 0.25, Y0: 0.5, X1: 0.75, Y1: 1}).Rectangle
	want := vg.Rectangle{Min: vg.Point{X: 50, Y: 50}, Max: vg.Point{X: 150, Y: 100}}
	if got != want {
		t.Errorf("expected region %v, got %v", want, got)
	}
}

func TestDraw(t *testing.T) {
	fig := newFigure(t)
	if n := Draw(fig, draw.New(vgimg.New(4*vg.Inch, 2*vg.Inch))); n != 2 {
		t.Errorf("expected 2 drawn plots, got %d", n)
	}
}

func TestWritePNG(t *testing.T) {
	fig := newFigure(t)
	var buf bytes.Buffer
	if err := WritePNG(&buf, fig, 4*vg.Inch, 2*vg.Inch); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("can't decode png: %s", err)
	}
	if b := img.Bounds(); b.Dx() <= b.Dy() {
		t.Errorf("unexpected image size %v", b)
	}
}

func TestWriteSVG(t *testing.T) {
	fig := newFigure(t)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, fig, 4*vg.Inch, 2*vg.Inch); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
}
