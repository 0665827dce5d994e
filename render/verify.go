package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
)

const stlHeaderSize = 84

// VerifySTL reads back a binary STL file and sanity checks it: the
// triangle count in the header must match the file size and no vertex
// or normal may be NaN, infinite or degenerate. It returns the number
// of triangles in the file.
func VerifySTL(path string) (triangles int, err error) {
	fp, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(fp, header[:]); err != nil {
		return 0, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(header[80:])
	if count == 0 {
		return 0, errors.New("STL header indicates 0 triangles")
	}
	info, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if want := int64(stlHeaderSize) + 50*int64(count); info.Size() != want {
		return 0, fmt.Errorf("STL size %d does not match %d triangles", info.Size(), count)
	}

	var buf [50]byte
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(fp, buf[:]); err != nil {
			return i, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		if err := validateTriangle(buf[:]); err != nil {
			return i, fmt.Errorf("STL triangle %d: %w", i, err)
		}
	}
	return int(count), nil
}

func validateTriangle(b []byte) error {
	var f [12]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	for _, v := range f {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return errors.New("NaN/Inf component")
		}
	}
	const tol = 1e-12
	v1, v2, v3 := f[3:6], f[6:9], f[9:12]
	if equalWithin(v1, v2, tol) || equalWithin(v2, v3, tol) || equalWithin(v3, v1, tol) {
		return errors.New("degenerate triangle")
	}
	return nil
}

func equalWithin(a, b []float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}
