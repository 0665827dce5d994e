package obj

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Heads returns the sensor head blocks, one per port window, hovering
// HeadGap above the top face of the slotted disk. Each block is
// HeadHeight deep radially, HeadWidth wide tangentially and
// DiskThickness tall, centered over the slot track at the middle of
// its port window.
func Heads(k Params) (sdf.SDF3, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	block := must3.Box(r3.Vec{X: k.HeadHeight, Y: k.HeadWidth, Z: k.DiskThickness}, 0)
	rmid := 0.5 * (k.InnerRadius() + k.OuterRadius())
	zc := 1.5*k.DiskThickness + k.HeadGap
	heads := make([]sdf.SDF3, k.HeadCount)
	for h := range heads {
		angle := float64(h)*k.HeadPitchAngle() + 0.5*k.BitAngle()
		m := sdf.RotateZ(angle).Mul(sdf.Translate3D(r3.Vec{X: rmid, Z: zc}))
		heads[h] = sdf.Transform3D(block, m)
	}
	if len(heads) == 1 {
		return heads[0], nil
	}
	return sdf.Union3D(heads...), nil
}
