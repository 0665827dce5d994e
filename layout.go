package stgc

import "math"

// Sector is the angular interval a run covers on the disk. Start is
// measured counter-clockwise from the X axis, Sweep is the angular
// extent. Both are in radians.
type Sector struct {
	Start float64
	Sweep float64
}

// End returns the angle at which the sector closes, Start+Sweep.
func (s Sector) End() float64 { return s.Start + s.Sweep }

// Layout converts a run list over an n-bit pattern into sectors. The
// i-th sector corresponds to the i-th run. Sectors are emitted in run
// order starting at angle 0 and partition the full circle: the end of
// the last sector is 2π up to floating point rounding.
func Layout(runs []Run, n int) []Sector {
	if n < 1 {
		panic("Layout with pattern length < 1")
	}
	unit := 2 * math.Pi / float64(n)
	sectors := make([]Sector, len(runs))
	start := 0.0
	for i, r := range runs {
		sweep := float64(r.Length) * unit
		sectors[i] = Sector{Start: start, Sweep: sweep}
		start += sweep
	}
	return sectors
}

// Sectors returns the angular layout of the pattern's runs,
// Layout(p.Runs(), p.Len()).
func (p Pattern) Sectors() []Sector {
	return Layout(p.Runs(), p.Len())
}
