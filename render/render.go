// Package render draws the layout of a figure: the figure background,
// then every axes as a filled and stroked rectangle.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
// See render/raster, render/pdf and render/svg.
package render

import (
	"image/color"

	"github.com/benoitkugler/sunder/figure"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any figure knowledge:
// points are already expressed in device space.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// SetWinding decides to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
}

// Style holds the colors used to draw a figure layout.
// A nil color disables the corresponding operation.
type Style struct {
	Background color.Color // figure background
	Face       color.Color // axes fill
	Edge       color.Color // axes outline
	LineWidth  float64     // in pixels
	Opacity    float64
}

// DefaultStyle paints white axes with a black frame on a light gray background.
var DefaultStyle = Style{
	Background: color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	Face:       color.White,
	Edge:       color.Black,
	LineWidth:  1,
	Opacity:    1,
}

// Figure draws the layout of `fig` on a w x h surface.
func Figure(fig *figure.Figure, d Driver, w, h int, style Style) {
	if style.Background != nil {
		full := fixed.Rectangle26_6{Max: fixed.P(w, h)}
		drawPath(d, RectPath(full), style.Background, nil, style)
	}
	for _, ax := range fig.Axes() {
		drawPath(d, RectPath(ax.Position().Pixels(w, h)), style.Face, style.Edge, style)
	}
}

func drawPath(d Driver, path Path, fill, stroke color.Color, style Style) {
	filler, stroker := d.SetupDrawers(fill != nil, stroke != nil)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(true)
		for _, op := range path {
			op.drawTo(filler)
		}
		filler.Stop(false)
		filler.SetColor(fill, style.Opacity)
		filler.Draw()
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{LineWidth: fixed.Int26_6(style.LineWidth * 64)})
		for _, op := range path {
			op.drawTo(stroker)
		}
		stroker.Stop(false)
		stroker.SetColor(stroke, style.Opacity)
		stroker.Draw()
	}
}
