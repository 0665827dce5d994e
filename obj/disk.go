package obj

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// SlotDisk returns the slotted encoder disk resting on the XY plane,
// occupying z ∈ [0, DiskThickness].
func SlotDisk(k Params) (sdf.SDF3, error) {
	profile, err := SlotProfile(k)
	if err != nil {
		return nil, err
	}
	s := sdf.Extrude3D(profile, k.DiskThickness)
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: 0.5 * k.DiskThickness})), nil
}

// PortPlate returns the sensor port plate extruded below the XY plane,
// occupying z ∈ [-DiskThickness, 0] so that disk and plate sit back to
// back on the construction plane.
func PortPlate(k Params) (sdf.SDF3, error) {
	profile, err := PortProfile(k)
	if err != nil {
		return nil, err
	}
	s := sdf.Extrude3D(profile, k.DiskThickness)
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: -0.5 * k.DiskThickness})), nil
}

// Assembly returns disk, plate and heads as one SDF3 for preview
// renders. The parts are not meant to be printed as a single body.
func Assembly(k Params) (sdf.SDF3, error) {
	disk, err := SlotDisk(k)
	if err != nil {
		return nil, err
	}
	plate, err := PortPlate(k)
	if err != nil {
		return nil, err
	}
	heads, err := Heads(k)
	if err != nil {
		return nil, err
	}
	return sdf.Union3D(disk, plate, heads), nil
}
