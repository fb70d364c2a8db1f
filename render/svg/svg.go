// Package svg implements an SVG backend to render figure layouts,
// by wrapping github.com/ajstarks/svgo.
package svg

import (
	"fmt"
	"image/color"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/render"
)

var _ render.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer accumulates each path and emits it
// as an SVG path element when drawn.
type Renderer struct {
	canvas *svgo.SVG
}

func NewRenderer(canvas *svgo.SVG) *Renderer { return &Renderer{canvas: canvas} }

type drawer struct {
	render.Path
	canvas *svgo.SVG
	style  string // fill or stroke attributes
	rule   string
	width  float64
}

func (d *drawer) SetWinding(useNonZeroWinding bool) {
	d.rule = "evenodd"
	if useNonZeroWinding {
		d.rule = "nonzero"
	}
}

func (d *drawer) SetStrokeOptions(options render.StrokeOptions) {
	d.width = float64(options.LineWidth) / 64
}

type fillDrawer struct{ drawer }

func (d *fillDrawer) SetColor(c color.Color, opacity float64) {
	hex, a := cssColor(c)
	d.style = fmt.Sprintf("fill:%s;fill-opacity:%g;fill-rule:%s;stroke:none", hex, a*opacity, d.rule)
}

func (d *fillDrawer) Draw() { d.canvas.Path(d.Path.ToSVGPath(), d.style) }

type strokeDrawer struct{ drawer }

func (d *strokeDrawer) SetColor(c color.Color, opacity float64) {
	hex, a := cssColor(c)
	d.style = fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%g;stroke-width:%g", hex, a*opacity, d.width)
}

func (d *strokeDrawer) Draw() { d.canvas.Path(d.Path.ToSVGPath(), d.style) }

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f render.Filler, s render.Stroker) {
	if willFill {
		f = &fillDrawer{drawer{canvas: rd.canvas, rule: "nonzero"}}
	}
	if willStroke {
		s = &strokeDrawer{drawer{canvas: rd.canvas}}
	}
	return f, s
}

func cssColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}

// WriteSVG renders the layout of `fig` to `w`, adding the
// axes labels in their top left corner.
func WriteSVG(w io.Writer, fig *figure.Figure, style render.Style) error {
	canvas := svgo.New(w)
	canvas.Start(fig.Width, fig.Height)
	render.Figure(fig, NewRenderer(canvas), fig.Width, fig.Height, style)
	for _, ax := range fig.Axes() {
		if ax.Label() == "" {
			continue
		}
		r := ax.Position().Pixels(fig.Width, fig.Height)
		canvas.Text(r.Min.X.Round()+4, r.Min.Y.Round()+12, ax.Label(), "font-size:10px;font-family:sans-serif")
	}
	canvas.End()
	return nil
}
