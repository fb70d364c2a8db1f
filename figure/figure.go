// Package figure provides a minimal figure/axes object model:
// a Figure is a drawing surface holding an ordered list of Axes,
// each Axes being placed at a bounding box expressed in figure fractions.
//
// Rendering is delegated to the render packages.
package figure

import (
	"fmt"
	"sync"
)

// SubplotParams delimits the default axes area of a figure,
// in figure fractions.
type SubplotParams struct {
	Left, Right, Bottom, Top float64
}

// DefaultSubplotParams mirrors the usual plotting defaults.
var DefaultSubplotParams = SubplotParams{Left: 0.125, Right: 0.9, Bottom: 0.11, Top: 0.88}

// Bbox returns the region delimited by the parameters.
func (p SubplotParams) Bbox() Bbox {
	return Bbox{X0: p.Left, Y0: p.Bottom, X1: p.Right, Y1: p.Top}
}

// Figure is a drawing surface of Width x Height pixels.
// It is safe for concurrent use.
type Figure struct {
	Width, Height int
	Params        SubplotParams

	mu      sync.Mutex
	axes    []*Axes
	current *Axes
}

// New returns an empty figure using DefaultSubplotParams.
func New(width, height int) *Figure {
	return &Figure{Width: width, Height: height, Params: DefaultSubplotParams}
}

// AddAxes creates a new axes at `bbox`, which becomes the current axes.
func (f *Figure) AddAxes(bbox Bbox) (*Axes, error) {
	if err := bbox.Validate(); err != nil {
		return nil, fmt.Errorf("figure: add axes: %w", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addAxes(bbox), nil
}

func (f *Figure) addAxes(bbox Bbox) *Axes {
	ax := &Axes{fig: f, pos: bbox}
	f.axes = append(f.axes, ax)
	f.current = ax
	return ax
}

// Current returns the current axes, or nil if the figure has none.
func (f *Figure) Current() *Axes {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Gca returns the current axes, creating one over
// the subplot area if needed.
func (f *Figure) Gca() *Axes {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return f.addAxes(f.Params.Bbox())
	}
	return f.current
}

// Sca makes `ax` the current axes. It panics if `ax` belongs to another figure.
func (f *Figure) Sca(ax *Axes) {
	if ax.fig != f {
		panic("figure: Sca called with axes from another figure")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = ax
}

// Axes returns the axes of the figure, in creation order.
func (f *Figure) Axes() []*Axes {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Axes(nil), f.axes...)
}

// Remove detaches `ax` from the figure. If it was the current axes,
// the last remaining axes (if any) becomes current.
func (f *Figure) Remove(ax *Axes) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.axes {
		if a == ax {
			f.axes = append(f.axes[:i], f.axes[i+1:]...)
			break
		}
	}
	if f.current == ax {
		f.current = nil
		if n := len(f.axes); n > 0 {
			f.current = f.axes[n-1]
		}
	}
}
