package obj

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/soypat/stgc"
	"github.com/soypat/stgc/form2"
)

// SlotProfile returns the 2D cross section of the slotted disk: the
// solid center disc, one annular sector per 1-run of the pattern, and
// the axis hole. An all-0 pattern yields a plain disc without slot
// material; an all-1 pattern yields the disc with a full slot annulus.
func SlotProfile(k Params) (sdf.SDF2, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	runs := k.Pattern.Runs()
	sectors := stgc.Layout(runs, k.Pattern.Len())
	parts := []sdf.SDF2{must2.Circle(k.InnerRadius())}
	for i, r := range runs {
		if r.Bit != 1 {
			continue
		}
		sec := sectors[i]
		parts = append(parts, form2.Sector(k.InnerRadius(), k.OuterRadius(), sec.Start, sec.Sweep))
	}
	s := parts[0]
	if len(parts) > 1 {
		s = sdf.Union2D(parts...)
	}
	return sdf.Difference2D(s, must2.Circle(k.axisHoleRadius())), nil
}

// PortProfile returns the 2D cross section of the sensor port plate: a
// disc slightly larger than the slotted disk with the axis hole and one
// window per sensor head. Each window spans a single bit angle between
// the slot track radii, inset by the head clearance, and consecutive
// windows are one head pitch apart.
func PortProfile(k Params) (sdf.SDF2, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	plate := sdf.Difference2D(
		must2.Circle(k.OuterRadius()+0.5*k.PortGap),
		must2.Circle(k.axisHoleRadius()),
	)
	near := k.InnerRadius() + k.HeadGap
	far := k.OuterRadius() - k.HeadGap
	windows := make([]sdf.SDF2, k.HeadCount)
	for h := range windows {
		a0 := float64(h) * k.HeadPitchAngle()
		a1 := a0 + k.BitAngle()
		windows[h] = must2.Polygon([]r2.Vec{
			polar(near, a0),
			polar(far, a0),
			polar(far, a1),
			polar(near, a1),
		})
	}
	cut := windows[0]
	if len(windows) > 1 {
		cut = sdf.Union2D(windows...)
	}
	return sdf.Difference2D(plate, cut), nil
}

func polar(radius, angle float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{X: radius * c, Y: radius * s}
}
