package sunder

import "github.com/benoitkugler/sunder/figure"

// Grid holds the axes created by Split, indexed by x slice
// then y slice (top to bottom). Cells which were not selected,
// or were excluded, are nil.
type Grid struct {
	nx, ny int
	boxes  [][]figure.Bbox
	cells  [][]*figure.Axes
}

func newGrid(xs, ys [][2]float64) *Grid {
	g := &Grid{nx: len(xs), ny: len(ys)}
	g.boxes = make([][]figure.Bbox, g.nx)
	g.cells = make([][]*figure.Axes, g.nx)
	for i, x := range xs {
		g.boxes[i] = make([]figure.Bbox, g.ny)
		g.cells[i] = make([]*figure.Axes, g.ny)
		for j, y := range ys {
			g.boxes[i][j] = figure.Bbox{X0: x[0], Y0: y[0], X1: x[1], Y1: y[1]}
		}
	}
	return g
}

// Nx returns the number of x slices.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the number of y slices.
func (g *Grid) Ny() int { return g.ny }

// At returns the axes of cell (i, j), or nil for an empty cell.
func (g *Grid) At(i, j int) *figure.Axes { return g.cells[i][j] }

// Bbox returns the bounds of cell (i, j), even for empty cells.
func (g *Grid) Bbox(i, j int) figure.Bbox { return g.boxes[i][j] }

// Flatten returns the non empty cells, ordered by x slice then y slice,
// that is column by column, from top to bottom.
func (g *Grid) Flatten() []*figure.Axes {
	var out []*figure.Axes
	for _, col := range g.cells {
		for _, ax := range col {
			if ax != nil {
				out = append(out, ax)
			}
		}
	}
	return out
}

// Count returns the number of non empty cells.
func (g *Grid) Count() int { return len(g.Flatten()) }

// Extent returns the union of the non empty cell bounds.
// The boolean is false when the grid is empty.
func (g *Grid) Extent() (figure.Bbox, bool) {
	var (
		out  figure.Bbox
		seen bool
	)
	for i, col := range g.cells {
		for j, ax := range col {
			if ax == nil {
				continue
			}
			if !seen {
				out, seen = g.boxes[i][j], true
				continue
			}
			out = out.Union(g.boxes[i][j])
		}
	}
	return out, seen
}
