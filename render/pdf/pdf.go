// Package pdf implements a PDF backend to render figure layouts,
// by wrapping github.com/jung-kurt/gofpdf.
package pdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/render"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ render.Driver  = (*Renderer)(nil)
	_ render.Filler  = (*filler)(nil)
	_ render.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf     *gofpdf.Fpdf
	bounds  fixed.Rectangle26_6 // union of the drawn paths
	hasDraw bool
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	r           *Renderer
	a           fixed.Point26_6     // current point, used to compute boundingBox
	boundingBox fixed.Rectangle26_6 // bouding box for the current path
	started     bool
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// Bounds returns the union of the bounding boxes of the drawn paths.
func (rd *Renderer) Bounds() fixed.Rectangle26_6 { return rd.bounds }

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f render.Filler, s render.Stroker) {
	if willFill {
		f = &filler{pather: pather{r: rd}}
	}
	if willStroke {
		s = &stroker{pather: pather{r: rd}}
	}
	return f, s
}

// WritePDF renders the layout of `fig` as a one page document,
// one point per figure pixel.
func WritePDF(w io.Writer, fig *figure.Figure, style render.Style) error {
	pdf := gofpdf.New("P", "pt", "", "")
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: float64(fig.Width), Ht: float64(fig.Height)})
	render.Figure(fig, NewRenderer(pdf), fig.Width, fig.Height, style)
	return pdf.Output(w)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {
	p.boundingBox = fixed.Rectangle26_6{}
	p.a = fixed.Point26_6{}
	p.started = false
}

func (p *pather) Start(a fixed.Point26_6) {
	p.r.pdf.MoveTo(fixedTof(a))
	p.a = a
	box := fixed.Rectangle26_6{Min: a, Max: a}
	if p.started {
		box = extend(p.boundingBox, box)
	}
	p.boundingBox, p.started = box, true
}

func (p *pather) Line(b fixed.Point26_6) {
	p.r.pdf.LineTo(fixedTof(b))
	p.boundingBox = extend(p.boundingBox, lineBoundingBox(p.a, b))
	p.a = b
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.r.pdf.ClosePath()
	}
}

// commit records the extent of the path about to be drawn
func (p *pather) commit() {
	if !p.started {
		return
	}
	if !p.r.hasDraw {
		p.r.bounds, p.r.hasDraw = p.boundingBox, true
		return
	}
	p.r.bounds = extend(p.r.bounds, p.boundingBox)
}

func rgb(c color.Color) (r, g, b, a int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), int(n.A)
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.r.pdf.SetFillColor(r, g, b)
	f.r.pdf.SetAlpha(opacity*float64(a)/255., "Normal")
}

func (f *filler) Draw() {
	f.commit()
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.r.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	s.r.pdf.SetDrawColor(r, g, b)
	s.r.pdf.SetAlpha(opacity*float64(a)/255., "Normal")
}

func (s *stroker) SetStrokeOptions(options render.StrokeOptions) {
	s.r.pdf.SetLineWidth(float64(options.LineWidth) / 64)
}

func (s *stroker) Draw() {
	s.commit()
	s.r.pdf.DrawPath("D")
}
