// Package form2 provides the 2D primitive the encoder profiles are
// built from: an annular circle sector. Constructors panic on invalid
// arguments in the manner of the sdf must-packages.
package form2

import (
	"math"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// sector2 is the SDF2 for an annular circle sector.
type sector2 struct {
	inner, outer float64
	sweep        float64 // 0 means full circle.
	sin, cos     float64 // rotation taking the start edge onto the X axis.
	norm         r2.Vec  // outward normal of the end edge.
	bb           r2.Box
}

// Sector returns the SDF2 for the sector of an annulus with the given
// inner and outer radii, spanning sweep radians counter-clockwise from
// the start angle. An inner radius of zero gives a circle sector. A
// sweep of 2π (within tolerance) gives the full annulus.
func Sector(inner, outer, start, sweep float64) sdf.SDF2 {
	if inner < 0 {
		panic("inner radius < 0")
	}
	if outer <= inner {
		panic("outer radius <= inner radius")
	}
	if sweep <= 0 {
		panic("sweep <= 0")
	}
	if sweep > 2*math.Pi+tolerance {
		panic("sweep > 2π")
	}
	if math.Abs(sweep-2*math.Pi) < tolerance {
		sweep = 0 // full revolution
	}
	s := sector2{
		inner: inner,
		outer: outer,
		sweep: sweep,
		sin:   math.Sin(start),
		cos:   math.Cos(start),
		norm:  r2.Vec{X: -math.Sin(sweep), Y: math.Cos(sweep)},
	}
	d := r2.Vec{X: outer, Y: outer}
	s.bb = r2.Box{Min: r2.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to the annular sector.
func (s *sector2) Evaluate(p r2.Vec) float64 {
	// Undo the start rotation so the sector opens from the X axis.
	q := r2.Vec{
		X: s.cos*p.X + s.sin*p.Y,
		Y: -s.sin*p.X + s.cos*p.Y,
	}
	r := math.Hypot(q.X, q.Y)
	a := r - s.outer
	if s.inner > 0 {
		a = math.Max(a, s.inner-r)
	}
	if s.sweep == 0 {
		return a
	}
	// Combine the two edge half-planes into a wedge: an intersection
	// below π, a union beyond.
	d := r2.Dot(s.norm, q)
	var b float64
	if s.sweep < math.Pi {
		b = math.Max(-q.Y, d)
	} else {
		b = math.Min(-q.Y, d)
	}
	return math.Max(a, b)
}

// Bounds returns the bounding box of the annular sector.
func (s *sector2) Bounds() r2.Box {
	return s.bb
}
