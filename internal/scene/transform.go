package scene

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix composes the model transform applied to unit-space geometry.
// The composition order is fixed: translate * rotZ * rotY * rotX * scale.
// Lighting normals downstream assume this order, so no caller composes its
// own model matrix.
func ModelMatrix(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
