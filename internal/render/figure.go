package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	black  = color.RGBA{A: 255}
)

type Figure interface {
	Draw(dc draw.Canvas)
}

// Single wraps one plot.
type Single struct{ *plot.Plot }

func (s Single) Draw(dc draw.Canvas) { s.Plot.Draw(dc) }

// Stack draws panels top to bottom with aligned axes.
type Stack []*plot.Plot

func (s Stack) Draw(dc draw.Canvas) {
	rows := make([][]*plot.Plot, len(s))
	for i, p := range s {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows: len(s),
		Cols: 1,
		PadY: vg.Points(8),
	}
	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}
}

// WithBar draws Main on the left and a narrow color bar plot on the right.
type WithBar struct {
	Main, Bar *plot.Plot
	BarRatio  float64
}

func (w WithBar) Draw(dc draw.Canvas) {
	ratio := w.BarRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.15
	}
	width := dc.Max.X - dc.Min.X
	split := vg.Length(1-ratio) * width
	w.Main.Draw(draw.Crop(dc, 0, split-width, 0, 0))
	w.Bar.Draw(draw.Crop(dc, split, 0, 0, 0))
}

// Save writes fig to path in the format named by its extension.
func Save(fig Figure, path string, width, height vg.Length) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("render: output %q has no extension", path)
	}

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fig.Draw(draw.New(c))

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: cannot create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: cannot write %s: %w", path, err)
	}
	return f.Close()
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}
