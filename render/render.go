// Package render draws an annealed tour with gonum.org/v1/plot.
//
// Cities are shown as a scatter with name labels and the tour as a closed
// polyline in visiting order. The output format follows the file extension
// (png, svg, pdf, jpg) or the explicit format passed to WriteTo.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/satsp/tsp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the edge length of the square canvas.
const Size = 6 * vg.Inch

// ErrNilPlot is returned by Save and WriteTo for a nil plot.
var ErrNilPlot = errors.New("render: nil plot")

var (
	tourColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	homeColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Tour builds a plot of cities and the closed tour through them.
// The tour must be valid for the given cities (see tsp.ValidateTour).
func Tour(cities []tsp.City, tour []string, title string) (*plot.Plot, error) {
	if err := tsp.ValidateCities(cities); err != nil {
		return nil, err
	}
	names := make([]string, len(cities))
	byName := make(map[string]tsp.City, len(cities))
	for i, c := range cities {
		names[i] = c.Name
		byName[c.Name] = c
	}
	if err := tsp.ValidateTour(tour, names); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	path := make(plotter.XYs, len(tour))
	for i, name := range tour {
		c := byName[name]
		path[i].X, path[i].Y = float64(c.X), float64(c.Y)
	}
	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, fmt.Errorf("render: tour line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = tourColor

	// path[len-1] repeats the home city.
	pts := path[:len(path)-1]
	cityDots, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("render: city scatter: %w", err)
	}
	cityDots.GlyphStyle.Shape = draw.CircleGlyph{}
	cityDots.GlyphStyle.Radius = vg.Points(3)

	home, err := plotter.NewScatter(path[:1])
	if err != nil {
		return nil, fmt.Errorf("render: home scatter: %w", err)
	}
	home.GlyphStyle.Shape = draw.SquareGlyph{}
	home.GlyphStyle.Radius = vg.Points(4)
	home.GlyphStyle.Color = homeColor

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    pts,
		Labels: append([]string(nil), tour[:len(tour)-1]...),
	})
	if err != nil {
		return nil, fmt.Errorf("render: labels: %w", err)
	}

	p.Add(line, cityDots, home, labels)
	p.Legend.Add("tour", line)
	p.Legend.Add("home", home)
	p.Legend.Top = true

	return p, nil
}

// Save writes p to path, creating the parent directory if needed.
func Save(p *plot.Plot, path string) error {
	if p == nil {
		return ErrNilPlot
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create %s: %w", dir, err)
		}
	}
	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// WriteTo encodes p in the given format ("png", "svg", "pdf", ...) to w.
func WriteTo(p *plot.Plot, w io.Writer, format string) error {
	if p == nil {
		return ErrNilPlot
	}
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return fmt.Errorf("render: %s: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}
