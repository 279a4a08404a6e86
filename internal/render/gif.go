package render

import (
	"errors"
	"fmt"
	"image"
	imgpalette "image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/physlab/internal/physics"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrTooFewSamples = errors.New("render: animation needs at least two samples")

// EnergyGIF writes an animation in which every frame reveals one more slice
// of the energy curves. Axes are fixed to the full series so frames line
// up. delay is in hundredths of a second.
func EnergyGIF(w io.Writer, times []float64, e physics.Energies, frames, delay int, width, height vg.Length) error {
	n := len(times)
	if n < 2 {
		return ErrTooFewSamples
	}
	if frames <= 0 || frames > n-1 {
		frames = n - 1
	}

	ymax := 0.0
	for _, v := range e.Total {
		ymax = math.Max(ymax, v)
	}
	for _, v := range e.Kinetic {
		ymax = math.Max(ymax, v)
	}
	for _, v := range e.Potential {
		ymax = math.Max(ymax, v)
	}
	if ymax == 0 {
		ymax = 1
	}

	anim := &gif.GIF{}
	for k := 1; k <= frames; k++ {
		upto := 1 + int(math.Ceil(float64(k)*float64(n-1)/float64(frames)))
		if upto > n {
			upto = n
		}

		panels, err := energyPanels(times[:upto], e.Slice(upto))
		if err != nil {
			return err
		}
		for _, p := range panels {
			p.X.Min, p.X.Max = times[0], times[n-1]
			p.Y.Min, p.Y.Max = 0, ymax*1.05
		}

		anim.Image = append(anim.Image, rasterize(panels, width, height))
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

func rasterize(fig Figure, width, height vg.Length) *image.Paletted {
	c := vgimg.New(width, height)
	fig.Draw(draw.New(c))

	img := c.Image()
	bounds := img.Bounds()
	frame := image.NewPaletted(bounds, imgpalette.Plan9)
	imgdraw.FloydSteinberg.Draw(frame, bounds, img, image.Point{})
	return frame
}
