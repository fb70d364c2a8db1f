package pdf

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the bouding box of a path segment

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// lineBoundingBox evaluates the segment at its ends, which are
// the only critical points of a line.
func lineBoundingBox(a, b fixed.Point26_6) fixed.Rectangle26_6 {
	p0x, p0y := fixedTof(a)
	p1x, p1y := fixedTof(b)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range [...]float64{0, 1} {
		x, y := bezierLine(p0x, p1x, t), bezierLine(p0y, p1y, t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return fixed.Rectangle26_6{Min: fToFixed(minX, minY), Max: fToFixed(maxX, maxY)}
}

// extend returns the smallest box containing `a` and `b`.
// Unlike fixed.Rectangle26_6.Union, degenerate boxes (segments or
// points) are not ignored.
func extend(a, b fixed.Rectangle26_6) fixed.Rectangle26_6 {
	if b.Min.X < a.Min.X {
		a.Min.X = b.Min.X
	}
	if b.Min.Y < a.Min.Y {
		a.Min.Y = b.Min.Y
	}
	if b.Max.X > a.Max.X {
		a.Max.X = b.Max.X
	}
	if b.Max.Y > a.Max.Y {
		a.Max.Y = b.Max.Y
	}
	return a
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
