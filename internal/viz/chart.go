package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physlab/internal/physics"
)

// EnergyChart renders kinetic, potential and total energy as one
// asciigraph chart. Series longer than width are downsampled.
func EnergyChart(e physics.Energies, width, height int) string {
	if len(e.Total) == 0 {
		return ""
	}
	series := [][]float64{
		downsample(e.Kinetic, width),
		downsample(e.Potential, width),
		downsample(e.Total, width),
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Green),
		asciigraph.Caption("Energy (J): red kinetic, blue potential, green total"),
	)
}

func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}
