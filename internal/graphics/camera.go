package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera is the fixed viewpoint for the still life. There is no input
// driving it; the composition assumes this framing.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{-3.5, 5.5, 12.0},
		Target:      mgl32.Vec3{-5.0, 2.5, 1.0},
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         60.0,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
