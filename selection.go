package sunder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCellOutOfRange is returned when a selected or excluded cell
// lies outside of the grid.
var ErrCellOutOfRange = errors.New("sunder: cell out of range")

// Cell locates a grid cell: I indexes the x slices (left to right),
// J the y slices (top to bottom).
type Cell struct{ I, J int }

// Target designates one cell of the grid, either by a 1-based
// linear index or by its explicit position.
type Target struct {
	index  int
	cell   Cell
	isCell bool
}

// Index designates a cell by its 1-based linear index.
// Index k maps to the cell ((k-1) mod ny, (k-1) div ny), ny being the
// number of y slices, so that Index(1) is always the top left cell.
// Zero and negative indexes wrap around like negative positions do.
func Index(k int) Target { return Target{index: k} }

// At designates the cell (i, j). Negative positions count from the end.
func At(i, j int) Target { return Target{cell: Cell{i, j}, isCell: true} }

func (t Target) String() string {
	if t.isCell {
		return fmt.Sprintf("%d:%d", t.cell.I, t.cell.J)
	}
	return strconv.Itoa(t.index)
}

// resolve returns the cell designated by `t` in a nx x ny grid.
func (t Target) resolve(nx, ny int) (Cell, error) {
	c := t.cell
	if !t.isCell {
		k := t.index - 1
		c = Cell{I: floorMod(k, ny), J: floorDiv(k, ny)}
	}
	i, okI := wrap(c.I, nx)
	j, okJ := wrap(c.J, ny)
	if !okI || !okJ {
		return Cell{}, fmt.Errorf("%w: %s in a %dx%d grid", ErrCellOutOfRange, t, nx, ny)
	}
	return Cell{I: i, J: j}, nil
}

// wrap maps negative positions to the end of the dimension
// and reports whether the result is in [0, n).
func wrap(v, n int) (int, bool) {
	if v < 0 {
		v += n
	}
	return v, 0 <= v && v < n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int { return a - floorDiv(a, b)*b }

// Selection is a list of targeted cells.
type Selection []Target

// Indices builds a selection from 1-based linear indexes.
func Indices(ks ...int) Selection {
	out := make(Selection, len(ks))
	for i, k := range ks {
		out[i] = Index(k)
	}
	return out
}

// Cells builds a selection from explicit positions.
func Cells(cells ...Cell) Selection {
	out := make(Selection, len(cells))
	for i, c := range cells {
		out[i] = At(c.I, c.J)
	}
	return out
}

func (s Selection) String() string {
	chunks := make([]string, len(s))
	for i, t := range s {
		chunks[i] = t.String()
	}
	return strings.Join(chunks, ",")
}

// ParseSelection reads a comma separated list of targets,
// each being a linear index ("3") or a position ("0:2").
// The empty string returns a nil Selection.
func ParseSelection(s string) (Selection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out Selection
	for _, chunk := range strings.Split(s, ",") {
		chunk = strings.TrimSpace(chunk)
		if is, js, ok := strings.Cut(chunk, ":"); ok {
			i, err := strconv.Atoi(strings.TrimSpace(is))
			if err != nil {
				return nil, fmt.Errorf("sunder: parse selection %q: %w", s, err)
			}
			j, err := strconv.Atoi(strings.TrimSpace(js))
			if err != nil {
				return nil, fmt.Errorf("sunder: parse selection %q: %w", s, err)
			}
			out = append(out, At(i, j))
			continue
		}
		k, err := strconv.Atoi(chunk)
		if err != nil {
			return nil, fmt.Errorf("sunder: parse selection %q: %w", s, err)
		}
		out = append(out, Index(k))
	}
	return out, nil
}
