package figure

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// ErrInvalidBbox is returned when a bounding box can't be used to place an axes.
var ErrInvalidBbox = errors.New("figure: invalid bounding box")

// Bbox is a rectangle expressed in figure fractions:
// (0, 0) is the bottom left corner of the figure, (1, 1) the top right one.
type Bbox struct{ X0, Y0, X1, Y1 float64 }

// Width returns the horizontal extent of the box.
func (b Bbox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b Bbox) Height() float64 { return b.Y1 - b.Y0 }

// Union returns the smallest box containing both b and o.
func (b Bbox) Union(o Bbox) Bbox {
	return Bbox{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// Validate checks that every coordinate is finite and that
// the box has a non negative extent.
func (b Bbox) Validate() error {
	for _, v := range [...]float64{b.X0, b.Y0, b.X1, b.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non finite coordinate in %s", ErrInvalidBbox, b)
		}
	}
	if b.X1 < b.X0 || b.Y1 < b.Y0 {
		return fmt.Errorf("%w: negative extent in %s", ErrInvalidBbox, b)
	}
	return nil
}

// Pixels maps the box to the device space of a w x h surface,
// where the origin is the top left corner and y grows downward.
func (b Bbox) Pixels(w, h int) fixed.Rectangle26_6 {
	fw, fh := float64(w), float64(h)
	return fixed.Rectangle26_6{
		Min: fToFixed(b.X0*fw, (1-b.Y1)*fh),
		Max: fToFixed(b.X1*fw, (1-b.Y0)*fh),
	}
}

func (b Bbox) String() string {
	return fmt.Sprintf("Bbox([[%g, %g], [%g, %g]])", b.X0, b.Y0, b.X1, b.Y1)
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
