// Package raster implements a raster backend to render figure layouts,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/render"
	"github.com/srwiley/rasterx"
)

var _ render.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing on a width x height surface
// through `scanner`.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterFigure uses a ScannerGV instance to render the
// layout of `fig` into an image and returns it.
func RasterFigure(fig *figure.Figure, style render.Style) *image.RGBA {
	w, h := fig.Width, fig.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	render.Figure(fig, NewRenderer(w, h, scanner), w, h, style)
	return img
}

// WritePNG rasterizes the layout of `fig` and encodes it to `w`.
func WritePNG(w io.Writer, fig *figure.Figure, style render.Style) error {
	return png.Encode(w, RasterFigure(fig, style))
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f render.Filler, s render.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetStrokeOptions(options render.StrokeOptions) {
	s.SetStroke(options.LineWidth, 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
}
