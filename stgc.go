// Package stgc generates the geometry of slotted rotary encoder disks
// from a single-track Gray code (STGC) bit pattern.
//
// The bit pattern is read as a cyclic sequence: bit i occupies the
// angular sector [i*2π/N, (i+1)*2π/N) on the disk, measured
// counter-clockwise from the X axis. A 1 bit is a slot (material
// removed up to the outer radius), a 0 bit is solid. This package
// holds the pure pattern arithmetic; the obj package turns it into
// signed distance fields and the render package exports them.
package stgc

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyPattern is returned by ParsePattern for a zero-length pattern.
var ErrEmptyPattern = errors.New("stgc: empty bit pattern")

// BitError describes a pattern character outside of '0' and '1'.
type BitError struct {
	Char byte
	Pos  int
}

func (e *BitError) Error() string {
	return fmt.Sprintf("stgc: invalid pattern character %q at position %d", e.Char, e.Pos)
}

// Pattern is an immutable cyclic sequence of binary values. The zero
// value is an empty pattern and is not valid input for geometry
// generation. Pattern methods perform no I/O and are safe for
// concurrent use.
type Pattern struct {
	bits []uint8
}

// ParsePattern parses a string of '0' and '1' characters into a
// Pattern. It returns ErrEmptyPattern for an empty string and a
// *BitError for any other character.
func ParsePattern(s string) (Pattern, error) {
	if len(s) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	bits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return Pattern{}, &BitError{Char: s[i], Pos: i}
		}
	}
	return Pattern{bits: bits}, nil
}

// MustPattern is like ParsePattern but panics on invalid input.
func MustPattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of bits N in the pattern.
func (p Pattern) Len() int { return len(p.bits) }

// Bit returns the bit at position i. The index is taken modulo N so
// the pattern may be read circularly.
func (p Pattern) Bit(i int) uint8 {
	n := len(p.bits)
	if n == 0 {
		panic("Bit called on empty pattern")
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.bits[i]
}

// BitAngle returns the angular extent of a single bit, 2π/N.
func (p Pattern) BitAngle() float64 {
	if len(p.bits) == 0 {
		panic("BitAngle called on empty pattern")
	}
	return 2 * math.Pi / float64(len(p.bits))
}

// String returns the pattern as a string of '0' and '1' characters.
func (p Pattern) String() string {
	b := make([]byte, len(p.bits))
	for i, bit := range p.bits {
		b[i] = '0' + bit
	}
	return string(b)
}
