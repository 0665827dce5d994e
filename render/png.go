package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera for STLToPNG.
type View struct {
	// Lookat is the point the camera looks at.
	Lookat r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// Eye is the camera position. The mesh is fit to a bi-unit cube
	// before rendering, so eye coordinates are in cube units.
	Eye  r3.Vec
	Near float64
	Far  float64
	// Width and Height are the output image size in pixels. Zero
	// values default to 768x432.
	Width  int
	Height int
}

// DefaultView is an isometric view of the model from the +X+Y+Z octant.
func DefaultView() View {
	return View{
		Up:   r3.Vec{Z: 1},
		Eye:  r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
		Near: 1,
		Far:  10,
	}
}

// STLToPNG renders an STL file to a shaded PNG image.
func STLToPNG(stlPath, pngPath string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		scale = 2  // supersampling factor
		fovy  = 30 // vertical field of view in degrees
	)
	width, height := view.Width, view.Height
	if width == 0 {
		width = 768
	}
	if height == 0 {
		height = 432
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := resize.Resize(uint(width), uint(height), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(pngPath, image)
}
