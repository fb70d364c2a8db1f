package figure

import "gonum.org/v1/plot"

// Axes is a drawable rectangular region of a Figure.
// Its position is fixed at creation time.
type Axes struct {
	fig   *Figure
	pos   Bbox
	label string
	plot  *plot.Plot
}

// Figure returns the figure owning the axes.
func (a *Axes) Figure() *Figure { return a.fig }

// Position returns the bounding box of the axes, in figure fractions.
func (a *Axes) Position() Bbox { return a.pos }

// Label returns the optional name of the axes.
func (a *Axes) Label() string { return a.label }

// SetLabel names the axes. Labels are shown by the previews
// and used by layout files to refer to previously created axes.
func (a *Axes) SetLabel(label string) { a.label = label }

// Plot returns the content drawn in the axes, or nil.
func (a *Axes) Plot() *plot.Plot { return a.plot }

// SetPlot attaches a gonum plot, which will be drawn inside the axes
// region by the render/plot package.
func (a *Axes) SetPlot(p *plot.Plot) { a.plot = p }
