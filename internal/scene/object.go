package scene

import "github.com/go-gl/mathgl/mgl32"

// Shape identifies one of the shared primitive meshes. Every draw reuses
// the single loaded mesh for its shape.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeSphere
	ShapeCylinder
	ShapeTaperedCylinder
	ShapeCone
	ShapePyramid3
)

// AllShapes lists every primitive the mesh set must load before the first
// frame.
var AllShapes = []Shape{
	ShapePlane,
	ShapeBox,
	ShapeSphere,
	ShapeCylinder,
	ShapeTaperedCylinder,
	ShapeCone,
	ShapePyramid3,
}

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeTaperedCylinder:
		return "tapered-cylinder"
	case ShapeCone:
		return "cone"
	case ShapePyramid3:
		return "pyramid3"
	}
	return "unknown"
}

// Phase determines draw order and depth-write state for an object. All
// opaque objects draw before any transparent one within a frame.
type Phase int

const (
	PhaseOpaque Phase = iota
	PhaseTransparent
)

// Transform holds per-object transform parameters. Rotations are Euler
// angles in degrees, consumed by ModelMatrix in its fixed order.
type Transform struct {
	Scale    mgl32.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Position mgl32.Vec3
}

// Matrix builds the model matrix for this transform.
func (t Transform) Matrix() mgl32.Mat4 {
	return ModelMatrix(t.Scale, t.RotX, t.RotY, t.RotZ, t.Position)
}

// Object is one entry of the declarative draw list. MaterialTag and
// TextureTag may be empty, in which case the corresponding shader state is
// left untouched for that draw. An object with HasColor set renders with a
// flat RGBA color instead of a texture; the two are mutually exclusive.
type Object struct {
	Name        string
	Shape       Shape
	MaterialTag string
	TextureTag  string
	UVScale     mgl32.Vec2
	Transform   Transform
	Phase       Phase
	Color       mgl32.Vec4
	HasColor    bool
}
