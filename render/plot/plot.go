// Package plot draws the gonum plots attached to the axes of a figure,
// each one inside the region of its axes.
package plot

import (
	"io"

	"github.com/benoitkugler/sunder/figure"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Region returns the part of `c` covered by `bb`.
// Both figure fractions and vg coordinates grow upward.
func Region(c draw.Canvas, bb figure.Bbox) draw.Canvas {
	size := c.Rectangle.Size()
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(bb.X0)*size.X, Y: c.Min.Y + vg.Length(bb.Y0)*size.Y},
			Max: vg.Point{X: c.Min.X + vg.Length(bb.X1)*size.X, Y: c.Min.Y + vg.Length(bb.Y1)*size.Y},
		},
	}
}

// Draw draws every plot of `fig` on `c`. Axes without plot are skipped.
// It returns the number of drawn plots.
func Draw(fig *figure.Figure, c draw.Canvas) int {
	n := 0
	for _, ax := range fig.Axes() {
		p := ax.Plot()
		if p == nil {
			continue
		}
		p.Draw(Region(c, ax.Position()))
		n++
	}
	return n
}

// WritePNG draws the plots of `fig` on a width x height image
// and encodes it to `w`.
func WritePNG(w io.Writer, fig *figure.Figure, width, height vg.Length) error {
	c := vgimg.New(width, height)
	Draw(fig, draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// WriteSVG draws the plots of `fig` on a width x height SVG document.
func WriteSVG(w io.Writer, fig *figure.Figure, width, height vg.Length) error {
	c := vgsvg.New(width, height)
	Draw(fig, draw.New(c))
	_, err := c.WriteTo(w)
	return err
}
