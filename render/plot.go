package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/stgc"
)

// SavePatternPlot saves a step plot of the bit pattern against disk
// angle. The output format follows the file extension (png, svg, pdf).
func SavePatternPlot(path string, p stgc.Pattern) error {
	if p.Len() == 0 {
		return stgc.ErrEmptyPattern
	}
	unit := p.BitAngle()
	pts := make(plotter.XYs, 0, 2*p.Len())
	for i := 0; i < p.Len(); i++ {
		bit := float64(p.Bit(i))
		pts = append(pts,
			plotter.XY{X: float64(i) * unit, Y: bit},
			plotter.XY{X: float64(i+1) * unit, Y: bit},
		)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	pl := plot.New()
	pl.Title.Text = "STGC bit pattern"
	pl.X.Label.Text = "angle [rad]"
	pl.Y.Label.Text = "bit"
	pl.Y.Min, pl.Y.Max = -0.2, 1.2
	pl.Add(line)
	return pl.Save(16*vg.Centimeter, 6*vg.Centimeter, path)
}
