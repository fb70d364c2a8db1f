// Package sunder splits an axes (or a whole figure) into a grid of
// smaller axes, which makes subplot positioning more pleasant.
//
// The grid is described independently along x and y by a Partition:
// the whole reference extent, n equal slices, or explicit fractional
// spans of the reference extent. Cells may then be selected or excluded,
// either by 1-based linear index or by (i, j) position, where i runs over
// the x slices and j over the y slices, from top to bottom.
//
// A typical use:
//
//	fig := figure.New(800, 600)
//	res, err := sunder.Split(fig, sunder.Even(3), sunder.Even(2), sunder.Options{
//		Exclude: sunder.Indices(4),
//	})
package sunder
