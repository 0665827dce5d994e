package obj_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/stgc"
	"github.com/soypat/stgc/obj"
)

// testParams returns the prototype dimensions with a short pattern and
// no material compensation so radii in tests are exact.
func testParams(pattern string) obj.Params {
	k := obj.Default()
	k.Pattern = stgc.MustPattern(pattern)
	k.HeadCount = 2
	k.HeadPitchBits = 2
	k.Material = matterless
	return k
}

var matterless = obj.Params{}.Material // zero value applies no compensation

func polar(radius, angle float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{X: radius * c, Y: radius * s}
}

func TestDefaultParams(t *testing.T) {
	k := obj.Default()
	if err := k.Validate(); err != nil {
		t.Fatal(err)
	}
	if k.OuterRadius() != 15 {
		t.Errorf("outer radius = %g, want 15", k.OuterRadius())
	}
	if r := k.InnerRadius(); math.Abs(r-10.2) > 1e-12 {
		t.Errorf("inner radius = %g, want 10.2", r)
	}
	if n := k.Pattern.Len(); n != 60 {
		t.Errorf("default pattern has %d bits, want 60", n)
	}
	if a := k.BitAngle(); math.Abs(a-2*math.Pi/60) > 1e-12 {
		t.Errorf("bit angle = %g, want 2π/60", a)
	}
	if a := k.HeadPitchAngle(); math.Abs(a-5*2*math.Pi/60) > 1e-12 {
		t.Errorf("head pitch angle = %g, want 5 bits", a)
	}
}

func TestValidateErrors(t *testing.T) {
	k := obj.Default()
	k.Pattern = stgc.Pattern{}
	if k.Validate() == nil {
		t.Error("empty pattern accepted")
	}
	k = obj.Default()
	k.HeadCount = 0
	if k.Validate() == nil {
		t.Error("zero head count accepted")
	}
	k = obj.Default()
	k.DiskDiameter = 8 // inner radius collapses below the axis hole
	if k.Validate() == nil {
		t.Error("disk without solid center accepted")
	}
	k = obj.Default()
	k.HeadCount = 20
	k.HeadPitchBits = 10
	if k.Validate() == nil {
		t.Error("heads overflowing the disk accepted")
	}
}

func TestSlotProfile(t *testing.T) {
	k := testParams("0011")
	s, err := obj.SlotProfile(k)
	if err != nil {
		t.Fatal(err)
	}
	rmid := 0.5 * (k.InnerRadius() + k.OuterRadius())
	for _, tc := range []struct {
		name   string
		point  r2.Vec
		inside bool
	}{
		// Sectors: bits 0 and 1 are zero (no slot), bits 2 and 3 are slots.
		{"slot track at 0-run", polar(rmid, 0.5 * math.Pi), false},
		{"slot track at 1-run", polar(rmid, 1.5 * math.Pi), true},
		{"solid center", polar(5, 0), true},
		{"axis hole", polar(0.5, 0), false},
		{"outside disk", polar(16, 4), false},
	} {
		d := s.Evaluate(tc.point)
		if (d < 0) != tc.inside {
			t.Errorf("%s: Evaluate(%v) = %g, want inside=%v", tc.name, tc.point, d, tc.inside)
		}
	}
}

func TestSlotProfileDegenerate(t *testing.T) {
	rmid := 12.5
	// All zeros: a plain disc, no slot material on the track.
	k := testParams("0000")
	s, err := obj.SlotProfile(k)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(polar(rmid, 1)); d <= 0 {
		t.Errorf("all-0 pattern has material on slot track, Evaluate = %g", d)
	}
	if d := s.Evaluate(polar(5, 1)); d >= 0 {
		t.Errorf("all-0 pattern lost its solid center, Evaluate = %g", d)
	}
	// All ones: the full annulus is slot material.
	k = testParams("1111")
	s, err = obj.SlotProfile(k)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(polar(rmid, 1)); d >= 0 {
		t.Errorf("all-1 pattern missing annulus material, Evaluate = %g", d)
	}
}

func TestPortProfile(t *testing.T) {
	k := testParams("0011")
	s, err := obj.PortProfile(k)
	if err != nil {
		t.Fatal(err)
	}
	near := k.InnerRadius() + k.HeadGap
	far := k.OuterRadius() - k.HeadGap
	// Centroid of the first window quad (the window edges are chords,
	// so the centroid is the safe interior probe).
	a0, a1 := 0.0, k.BitAngle()
	verts := []r2.Vec{polar(near, a0), polar(far, a0), polar(far, a1), polar(near, a1)}
	var centroid r2.Vec
	for _, v := range verts {
		centroid = r2.Add(centroid, v)
	}
	centroid = r2.Scale(0.25, centroid)
	if d := s.Evaluate(centroid); d <= 0 {
		t.Errorf("port window not cut from plate, Evaluate(%v) = %g", centroid, d)
	}
	// Solid plate beyond the window's far edge.
	if d := s.Evaluate(r2.Vec{X: far + 0.5}); d >= 0 {
		t.Errorf("plate solid missing at rim, Evaluate = %g", d)
	}
	// Axis hole and world outside.
	if d := s.Evaluate(r2.Vec{X: 0.5}); d <= 0 {
		t.Error("axis hole not cut from plate")
	}
	if d := s.Evaluate(r2.Vec{X: k.OuterRadius() + k.PortGap}); d <= 0 {
		t.Error("plate extends past its rim")
	}
}

func TestSlotDiskBounds(t *testing.T) {
	k := testParams("0011")
	s, err := obj.SlotDisk(k)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	const tol = 1e-9
	if math.Abs(bb.Min.Z) > tol || math.Abs(bb.Max.Z-k.DiskThickness) > tol {
		t.Errorf("disk Z extent [%g, %g], want [0, %g]", bb.Min.Z, bb.Max.Z, k.DiskThickness)
	}
	if d := s.Evaluate(r3.Vec{X: 5, Z: 0.5 * k.DiskThickness}); d >= 0 {
		t.Errorf("disk center solid missing, Evaluate = %g", d)
	}
}

func TestPortPlateBounds(t *testing.T) {
	k := testParams("0011")
	s, err := obj.PortPlate(k)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	const tol = 1e-9
	if math.Abs(bb.Min.Z+k.DiskThickness) > tol || math.Abs(bb.Max.Z) > tol {
		t.Errorf("plate Z extent [%g, %g], want [-%g, 0]", bb.Min.Z, bb.Max.Z, k.DiskThickness)
	}
}

func TestHeads(t *testing.T) {
	k := testParams("0011")
	s, err := obj.Heads(k)
	if err != nil {
		t.Fatal(err)
	}
	rmid := 0.5 * (k.InnerRadius() + k.OuterRadius())
	zc := 1.5*k.DiskThickness + k.HeadGap
	for h := 0; h < k.HeadCount; h++ {
		angle := float64(h)*k.HeadPitchAngle() + 0.5*k.BitAngle()
		sin, cos := math.Sincos(angle)
		center := r3.Vec{X: rmid * cos, Y: rmid * sin, Z: zc}
		if d := s.Evaluate(center); d >= 0 {
			t.Errorf("head %d center %v not solid, Evaluate = %g", h, center, d)
		}
	}
	if d := s.Evaluate(r3.Vec{Z: zc}); d <= 0 {
		t.Error("head material found at disk axis")
	}
}

func TestAssembly(t *testing.T) {
	k := testParams("0011")
	s, err := obj.Assembly(k)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	if bb.Min.Z > -k.DiskThickness+1e-9 {
		t.Errorf("assembly bottom %g misses the port plate", bb.Min.Z)
	}
	wantTop := 2*k.DiskThickness + k.HeadGap
	if bb.Max.Z < wantTop-1e-9 {
		t.Errorf("assembly top %g misses the heads, want >= %g", bb.Max.Z, wantTop)
	}
}

func TestPartsRejectInvalidParams(t *testing.T) {
	k := obj.Default()
	k.Pattern = stgc.Pattern{}
	if _, err := obj.SlotDisk(k); err == nil {
		t.Error("SlotDisk accepted empty pattern")
	}
	if _, err := obj.PortPlate(k); err == nil {
		t.Error("PortPlate accepted empty pattern")
	}
	if _, err := obj.Heads(k); err == nil {
		t.Error("Heads accepted empty pattern")
	}
}
