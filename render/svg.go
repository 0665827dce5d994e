// Package render exports encoder geometry to 2D and raster preview
// formats and provides a read-back check for generated STL files. The
// solid STL pipeline itself lives in the sdf dependency.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/soypat/stgc"
	"github.com/soypat/stgc/obj"
)

const (
	diskStyle = "fill:none;stroke:black;stroke-width:0.2"
	slotStyle = "fill:silver;stroke:black;stroke-width:0.1"
	portStyle = "fill:white;stroke:maroon;stroke-width:0.2"
)

// WriteLayoutSVG writes a 2D preview of the encoder layout: the plate
// rim, the disk outline, the axis hole, the slot sectors of the
// pattern's 1-runs and the sensor port windows. Dimensions are emitted
// in millimeters with the disk center in the middle of the canvas.
func WriteLayoutSVG(w io.Writer, k obj.Params) error {
	if err := k.Validate(); err != nil {
		return err
	}
	plateR := k.OuterRadius() + 0.5*k.PortGap
	size := 2*plateR + 4
	canvas := svg.New(w)
	canvas.Start(size, size)
	// Math convention: origin at disk center, y axis up, angles CCW.
	canvas.Gtransform(fmt.Sprintf("translate(%.3f,%.3f) scale(1,-1)", 0.5*size, 0.5*size))

	canvas.Circle(0, 0, plateR, diskStyle)
	canvas.Circle(0, 0, k.OuterRadius(), diskStyle)
	canvas.Circle(0, 0, k.InnerRadius(), diskStyle)
	canvas.Circle(0, 0, 0.5*k.AxisDiameter, diskStyle)

	runs := k.Pattern.Runs()
	sectors := stgc.Layout(runs, k.Pattern.Len())
	for i, r := range runs {
		if r.Bit != 1 {
			continue
		}
		drawSector(canvas, k.InnerRadius(), k.OuterRadius(), sectors[i])
	}

	for h := 0; h < k.HeadCount; h++ {
		a0 := float64(h) * k.HeadPitchAngle()
		a1 := a0 + k.BitAngle()
		near := k.InnerRadius() + k.HeadGap
		far := k.OuterRadius() - k.HeadGap
		xs := []float64{near * math.Cos(a0), far * math.Cos(a0), far * math.Cos(a1), near * math.Cos(a1)}
		ys := []float64{near * math.Sin(a0), far * math.Sin(a0), far * math.Sin(a1), near * math.Sin(a1)}
		canvas.Polygon(xs, ys, portStyle)
	}

	canvas.Gend()
	canvas.End()
	return nil
}

// drawSector emits an annular sector as a closed path of two arcs and
// two radial lines. A full-circle sector has coincident arc endpoints,
// which SVG arcs cannot express, so it degenerates to two circles.
func drawSector(canvas *svg.SVG, inner, outer float64, sec stgc.Sector) {
	if sec.Sweep >= 2*math.Pi-1e-9 {
		canvas.Circle(0, 0, outer, slotStyle)
		canvas.Circle(0, 0, inner, "fill:white;stroke:black;stroke-width:0.1")
		return
	}
	large := 0
	if sec.Sweep > math.Pi {
		large = 1
	}
	s0, c0 := math.Sincos(sec.Start)
	s1, c1 := math.Sincos(sec.End())
	d := fmt.Sprintf("M%.4f,%.4f L%.4f,%.4f A%.4f,%.4f 0 %d,1 %.4f,%.4f L%.4f,%.4f A%.4f,%.4f 0 %d,0 %.4f,%.4f Z",
		inner*c0, inner*s0,
		outer*c0, outer*s0,
		outer, outer, large, outer*c1, outer*s1,
		inner*c1, inner*s1,
		inner, inner, large, inner*c0, inner*s0)
	canvas.Path(d, slotStyle)
}
