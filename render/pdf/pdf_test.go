package pdf

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/render"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

func TestWritePDF(t *testing.T) {
	fig := figure.New(300, 200)
	fig.Gca()

	var buf bytes.Buffer
	if err := WritePDF(&buf, fig, render.DefaultStyle); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF document: %q", buf.Bytes()[:10])
	}
}

func TestBounds(t *testing.T) {
	fig := figure.New(200, 100)
	boxes := []figure.Bbox{
		{X0: 0.1, Y0: 0.5, X1: 0.4, Y1: 0.9},
		{X0: 0.5, Y0: 0.2, X1: 0.7, Y1: 0.6},
	}
	for _, bb := range boxes {
		if _, err := fig.AddAxes(bb); err != nil {
			t.Fatal(err)
		}
	}

	pdf := gofpdf.New("P", "pt", "", "")
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: 200, Ht: 100})
	rd := NewRenderer(pdf)
	style := render.DefaultStyle
	style.Background = nil
	render.Figure(fig, rd, 200, 100, style)
	if err := pdf.Error(); err != nil {
		t.Fatal(err)
	}

	want := boxes[0].Pixels(200, 100).Union(boxes[1].Pixels(200, 100))
	if got := rd.Bounds(); got != want {
		t.Errorf("expected bounds %v, got %v", want, got)
	}
}

func TestLineBoundingBox(t *testing.T) {
	got := lineBoundingBox(fixed.P(10, 2), fixed.P(3, 8))
	want := fixed.Rectangle26_6{Min: fixed.P(3, 2), Max: fixed.P(10, 8)}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtendDegenerate(t *testing.T) {
	top := lineBoundingBox(fixed.P(2, 1), fixed.P(9, 1))
	right := lineBoundingBox(fixed.P(9, 1), fixed.P(9, 6))
	got := extend(top, right)
	want := fixed.Rectangle26_6{Min: fixed.P(2, 1), Max: fixed.P(9, 6)}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBoundsSingleSegment(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "", "")
	pdf.AddPage()
	rd := NewRenderer(pdf)
	_, s := rd.SetupDrawers(false, true)
	s.Clear()
	s.Start(fixed.P(10, 20))
	s.Line(fixed.P(50, 20))
	s.Stop(false)
	s.Draw()

	want := fixed.Rectangle26_6{Min: fixed.P(10, 20), Max: fixed.P(50, 20)}
	if got := rd.Bounds(); got != want {
		t.Errorf("expected bounds %v, got %v", want, got)
	}
}
