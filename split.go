package sunder

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/sunder/figure"
)

// ErrDetachedAxes is returned when the reference axes
// does not belong to a figure.
var ErrDetachedAxes = errors.New("sunder: axes has no figure")

// Reference is the region being split: either a *figure.Axes
// or a *figure.Figure. A nil Reference uses the current figure.
type Reference interface{}

// Options refines which cells of the grid are created.
type Options struct {
	// Select restricts the created cells to the given ones.
	// A nil Select creates every cell.
	Select Selection
	// Exclude removes cells, after Select is applied.
	Exclude Selection
	// Flatten fills Result.List.
	Flatten bool
	// ErrorMode applies to targets outside of the grid.
	ErrorMode ErrorMode
}

// Result is the outcome of Split.
type Result struct {
	// Grid is always set.
	Grid *Grid
	// One is set when the grid has exactly one cell, and this cell was created.
	One *figure.Axes
	// List holds the created axes, as returned by Grid.Flatten,
	// when Options.Flatten is true.
	List []*figure.Axes
}

// resolveReference returns the figure to add axes to,
// and the bounds to split.
func resolveReference(ref Reference) (*figure.Figure, figure.Bbox, error) {
	switch ref := ref.(type) {
	case nil:
		return resolveReference(figure.Gcf())
	case *figure.Axes:
		if ref == nil {
			return resolveReference(nil)
		}
		if ref.Figure() == nil {
			return nil, figure.Bbox{}, ErrDetachedAxes
		}
		return ref.Figure(), ref.Position(), nil
	case *figure.Figure:
		if ref == nil {
			return resolveReference(nil)
		}
		if ax := ref.Current(); ax != nil {
			return ref, ax.Position(), nil
		}
		return ref, ref.Params.Bbox(), nil
	default:
		return nil, figure.Bbox{}, fmt.Errorf("sunder: unsupported reference type %T", ref)
	}
}

// Split creates new axes by cutting `ref` along x and y, and returns them.
//
// The y slices are enumerated from top to bottom, so that cell (0, 0),
// or Index(1), is the top left one.
// The new axes are added to the reference's figure, the last one
// becoming the current axes.
func Split(ref Reference, x, y Partition, opts Options) (Result, error) {
	fig, bb, err := resolveReference(ref)
	if err != nil {
		return Result{}, err
	}

	xs, err := x.intervals(bb.X0, bb.Width())
	if err != nil {
		return Result{}, fmt.Errorf("sunder: x: %w", err)
	}
	ys, err := y.intervals(bb.Y0, bb.Height())
	if err != nil {
		return Result{}, fmt.Errorf("sunder: y: %w", err)
	}
	reverse(ys)

	grid := newGrid(xs, ys)
	valid, err := mark(grid.nx, grid.ny, opts)
	if err != nil {
		return Result{}, err
	}

	// the figure is left untouched when a cell is invalid
	for i := range grid.boxes {
		for j, bb := range grid.boxes[i] {
			if !valid[i][j] {
				continue
			}
			if err := bb.Validate(); err != nil {
				return Result{}, fmt.Errorf("sunder: cell %d:%d: %w", i, j, err)
			}
		}
	}

	for i := range grid.cells {
		for j := range grid.cells[i] {
			if !valid[i][j] {
				continue
			}
			ax, err := fig.AddAxes(grid.boxes[i][j])
			if err != nil {
				return Result{}, fmt.Errorf("sunder: cell %d:%d: %w", i, j, err)
			}
			grid.cells[i][j] = ax
		}
	}

	res := Result{Grid: grid}
	if grid.nx*grid.ny == 1 {
		res.One = grid.cells[0][0]
	}
	if opts.Flatten {
		res.List = grid.Flatten()
	}
	return res, nil
}

// mark returns which cells should be created.
func mark(nx, ny int, opts Options) ([][]bool, error) {
	valid := make([][]bool, nx)
	for i := range valid {
		valid[i] = make([]bool, ny)
		if opts.Select == nil {
			for j := range valid[i] {
				valid[i][j] = true
			}
		}
	}

	apply := func(sel Selection, v bool) error {
		for _, t := range sel {
			c, err := t.resolve(nx, ny)
			if err != nil {
				switch opts.ErrorMode {
				case StrictErrorMode:
					return err
				case WarnErrorMode:
					logger.Println(err)
				}
				continue
			}
			valid[c.I][c.J] = v
		}
		return nil
	}

	if err := apply(opts.Select, true); err != nil {
		return nil, err
	}
	if err := apply(opts.Exclude, false); err != nil {
		return nil, err
	}
	return valid, nil
}

func reverse(s [][2]float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
