package stgc

// Run is a maximal contiguous block of equal bits in the cyclic
// pattern. Length is counted in bits and is always >= 1.
type Run struct {
	Bit    uint8
	Length int
}

// Runs returns the run-length encoding of the pattern read circularly
// starting at index 0. Because the pattern wraps, a run straddling the
// end of the sequence would be reported twice by a linear scan: once at
// index 0 and once ending at index N-1. When those two runs share a bit
// value they are merged into the first run, so no two circularly
// adjacent runs of the result share a value. The run lengths always sum
// to N.
func (p Pattern) Runs() []Run {
	n := len(p.bits)
	if n == 0 {
		panic("Runs called on empty pattern")
	}
	runs := make([]Run, 0, 8)
	length := 1
	for i := 0; i < n; i++ {
		next := p.bits[(i+1)%n]
		if p.bits[i] != next || i == n-1 {
			runs = append(runs, Run{Bit: p.bits[i], Length: length})
			length = 1
		} else {
			length++
		}
	}
	// Wraparound merge. A single run describes a constant pattern and
	// must not be merged with itself.
	last := len(runs) - 1
	if last > 0 && runs[0].Bit == runs[last].Bit {
		runs[0].Length += runs[last].Length
		runs = runs[:last]
	}
	return runs
}
