// Command sunder splits a figure into axes and renders the resulting layout.
//
//	sunder -x 3 -y 2 -exclude 4 -o layout.png
//	sunder -config dashboard.yaml -o dashboard.pdf
//	sunder -x 2 -y 2 -demo -o plots.svg
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/benoitkugler/sunder"
	"github.com/benoitkugler/sunder/figure"
	"github.com/benoitkugler/sunder/internal/layoutfile"
	"github.com/benoitkugler/sunder/internal/prompt"
	"github.com/benoitkugler/sunder/render"
	"github.com/benoitkugler/sunder/render/pdf"
	"github.com/benoitkugler/sunder/render/plot"
	"github.com/benoitkugler/sunder/render/raster"
	"github.com/benoitkugler/sunder/render/svg"
	"github.com/benoitkugler/sunder/render/term"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	config := flag.String("config", "", "YAML layout file (overrides the split flags)")
	x := flag.String("x", "", "horizontal split: n, or lo:hi,lo:hi")
	y := flag.String("y", "", "vertical split: n, or lo:hi,lo:hi")
	sel := flag.String("select", "", "cells to create: 1-based indexes or i:j positions")
	exclude := flag.String("exclude", "", "cells to exclude: 1-based indexes or i:j positions")
	output := flag.String("o", "layout.png", "output file (.png, .pdf or .svg)")
	width := flag.Int("width", figure.DefaultWidth, "figure width, in pixels")
	height := flag.Int("height", figure.DefaultHeight, "figure height, in pixels")
	preview := flag.Bool("preview", false, "preview the layout in the terminal")
	interactive := flag.Bool("interactive", false, "ask the split parameters")
	demo := flag.Bool("demo", false, "draw a sample plot in each axes")
	flag.Parse()

	var fig *figure.Figure
	if *config != "" {
		doc, err := layoutfile.Load(*config)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		fig = doc.NewFigure()
		if _, err := doc.Apply(fig); err != nil {
			log.Fatalf("Failed to apply layout: %v", err)
		}
	} else {
		if *interactive {
			ans, err := prompt.Ask(*output)
			if err != nil {
				log.Fatalf("Failed to read answers: %v", err)
			}
			*x, *y, *sel, *exclude, *output = ans.X, ans.Y, ans.Select, ans.Exclude, ans.Output
		}
		fig = figure.New(*width, *height)
		if err := split(fig, *x, *y, *sel, *exclude); err != nil {
			log.Fatal(err)
		}
	}

	if *demo {
		if err := attachDemoPlots(fig); err != nil {
			log.Fatalf("Failed to build plots: %v", err)
		}
	}

	if *preview {
		if err := term.Run(fig); err != nil {
			log.Fatalf("Failed to preview: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := write(&buf, fig, *output, *demo); err != nil {
		log.Fatalf("Failed to render layout: %v", err)
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Layout with %d axes written to %s\n", len(fig.Axes()), *output)
}

// split runs a single split of the figure, labelling
// the new axes with their position in the flattened list.
func split(fig *figure.Figure, x, y, sel, exclude string) error {
	xp, err := sunder.ParsePartition(x)
	if err != nil {
		return err
	}
	yp, err := sunder.ParsePartition(y)
	if err != nil {
		return err
	}
	selection, err := sunder.ParseSelection(sel)
	if err != nil {
		return err
	}
	exclusion, err := sunder.ParseSelection(exclude)
	if err != nil {
		return err
	}
	res, err := sunder.Split(fig, xp, yp, sunder.Options{Select: selection, Exclude: exclusion, Flatten: true})
	if err != nil {
		return err
	}
	for i, ax := range res.List {
		ax.SetLabel(strconv.Itoa(i + 1))
	}
	return nil
}

func attachDemoPlots(fig *figure.Figure) error {
	for i, ax := range fig.Axes() {
		pts := make(plotter.XYs, 50)
		for k := range pts {
			pts[k].X = float64(k) / 49 * 2 * math.Pi
			pts[k].Y = math.Sin(pts[k].X * float64(i+1))
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p := gonum.New()
		p.Title.Text = ax.Label()
		p.Add(line)
		ax.SetPlot(p)
	}
	return nil
}

func write(w io.Writer, fig *figure.Figure, output string, withPlots bool) error {
	ext := strings.ToLower(filepath.Ext(output))
	if withPlots {
		width, height := vg.Length(fig.Width)*vg.Inch/96, vg.Length(fig.Height)*vg.Inch/96
		switch ext {
		case ".png":
			return plot.WritePNG(w, fig, width, height)
		case ".svg":
			return plot.WriteSVG(w, fig, width, height)
		}
		return fmt.Errorf("plots can only be written to .png or .svg files, not %q", ext)
	}
	switch ext {
	case ".png":
		return raster.WritePNG(w, fig, render.DefaultStyle)
	case ".pdf":
		return pdf.WritePDF(w, fig, render.DefaultStyle)
	case ".svg":
		return svg.WriteSVG(w, fig, render.DefaultStyle)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
