// Package obj builds the three solids of an STGC encoder set from a
// bit pattern and a handful of millimeter dimensions: the slotted
// disk, the sensor port plate and the sensor heads.
package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/sdf/helpers/matter"
	"github.com/soypat/stgc"
)

// DefaultPattern is the 60 bit single-track Gray code of the original
// encoder prototype.
const DefaultPattern = "000000000000111000000110000001111111111111000111111001111110"

// Params defines an STGC encoder disk set. All lengths are in
// millimeters, angles derived from the pattern are in radians.
type Params struct {
	// Pattern selects which angular sectors of the disk are slotted.
	Pattern stgc.Pattern
	// DiskDiameter is the outer diameter of the slotted disk.
	DiskDiameter float64
	// DiskThickness is the extrusion height of disk and plate.
	DiskThickness float64
	// AxisDiameter is the diameter of the shaft hole in disk and plate.
	AxisDiameter float64
	// HeadWidth is the tangential size of a sensor head block.
	HeadWidth float64
	// HeadHeight is the radial size of a sensor head block. Together
	// with HeadGap it fixes the radial depth of the slots.
	HeadHeight float64
	// HeadGap is the clearance between a sensor head and the slot
	// track on every side.
	HeadGap float64
	// PortGap is the clearance between the port plate rim and the
	// disk edge.
	PortGap float64
	// HeadCount is the number of sensor heads (and port windows).
	HeadCount int
	// HeadPitchBits is the head-to-head spacing counted in bits.
	HeadPitchBits int
	// Material compensates internal dimensions for 3D print shrink.
	// The zero value applies no compensation.
	Material matter.Viscoelastic
}

// Default returns the dimensions of the original prototype with the
// default pattern and PLA shrink compensation.
func Default() Params {
	return Params{
		Pattern:       stgc.MustPattern(DefaultPattern),
		DiskDiameter:  30,
		DiskThickness: 2,
		AxisDiameter:  3,
		HeadWidth:     3.4,
		HeadHeight:    2.8,
		HeadGap:       1,
		PortGap:       2,
		HeadCount:     5,
		HeadPitchBits: 5,
		Material:      matter.PLA,
	}
}

// OuterRadius returns the outer radius of the slotted disk.
func (k Params) OuterRadius() float64 { return 0.5 * k.DiskDiameter }

// InnerRadius returns the radius of the solid center of the disk. The
// slot track occupies the annulus between InnerRadius and OuterRadius.
func (k Params) InnerRadius() float64 {
	return k.OuterRadius() - k.HeadHeight - 2*k.HeadGap
}

// BitAngle returns the angular extent of one pattern bit, 2π/N.
func (k Params) BitAngle() float64 { return k.Pattern.BitAngle() }

// HeadPitchAngle returns the angle between two neighboring heads.
func (k Params) HeadPitchAngle() float64 {
	return float64(k.HeadPitchBits) * k.BitAngle()
}

// axisHoleRadius is the shaft hole radius after material compensation.
func (k Params) axisHoleRadius() float64 {
	return 0.5 * k.Material.InternalDimScale(k.AxisDiameter)
}

// Validate checks the parameter set for geometric consistency.
func (k Params) Validate() error {
	if k.Pattern.Len() == 0 {
		return errors.New("obj: parameters have empty pattern")
	}
	switch {
	case k.DiskDiameter <= 0:
		return errors.New("obj: disk diameter <= 0")
	case k.DiskThickness <= 0:
		return errors.New("obj: disk thickness <= 0")
	case k.AxisDiameter <= 0:
		return errors.New("obj: axis diameter <= 0")
	case k.HeadWidth <= 0 || k.HeadHeight <= 0:
		return errors.New("obj: head dimensions <= 0")
	case k.HeadGap < 0 || k.PortGap < 0:
		return errors.New("obj: negative gap")
	case k.HeadCount < 1:
		return errors.New("obj: head count < 1")
	case k.HeadPitchBits < 1:
		return errors.New("obj: head pitch < 1 bit")
	}
	if k.InnerRadius() <= k.axisHoleRadius() {
		return fmt.Errorf("obj: inner radius %.3g does not clear axis hole radius %.3g",
			k.InnerRadius(), k.axisHoleRadius())
	}
	if float64(k.HeadCount)*k.HeadPitchAngle() > 2*math.Pi+1e-9 {
		return errors.New("obj: heads do not fit on one revolution")
	}
	return nil
}
