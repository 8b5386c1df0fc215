package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const matrixEps = 1e-5

func matricesClose(a, b mgl32.Mat4, eps float32) bool {
	for i := 0; i < 16; i++ {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

// TestModelMatrixCompositionOrder verifies the model matrix equals
// translate * rotZ * rotY * rotX * scale computed independently.
func TestModelMatrixCompositionOrder(t *testing.T) {
	cases := []struct {
		name     string
		scale    mgl32.Vec3
		rx, ry   float32
		rz       float32
		position mgl32.Vec3
	}{
		{"identity", mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0}},
		{"scale-only", mgl32.Vec3{2, 3, 4}, 0, 0, 0, mgl32.Vec3{0, 0, 0}},
		{"translate-only", mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{-7, 2, 1.6}},
		{"backdrop", mgl32.Vec3{10, 5, 7}, 90, 0, 0, mgl32.Vec3{-7, 7, -5}},
		{"lemon", mgl32.Vec3{0.5, 0.5, 0.65}, 0, 90, 0, mgl32.Vec3{-5.6, 0.6, 2.8}},
		{"all-axes", mgl32.Vec3{0.2, 0.25, 0.2}, 195, 42, -15, mgl32.Vec3{-4.1, 0.35, 0.52}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ModelMatrix(tc.scale, tc.rx, tc.ry, tc.rz, tc.position)

			s := mgl32.Scale3D(tc.scale.X(), tc.scale.Y(), tc.scale.Z())
			rx := mgl32.HomogRotate3D(mgl32.DegToRad(tc.rx), mgl32.Vec3{1, 0, 0})
			ry := mgl32.HomogRotate3D(mgl32.DegToRad(tc.ry), mgl32.Vec3{0, 1, 0})
			rz := mgl32.HomogRotate3D(mgl32.DegToRad(tc.rz), mgl32.Vec3{0, 0, 1})
			tr := mgl32.Translate3D(tc.position.X(), tc.position.Y(), tc.position.Z())
			want := tr.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)

			if !matricesClose(got, want, matrixEps) {
				t.Errorf("ModelMatrix mismatch:\ngot  %v\nwant %v", got, want)
			}
		})
	}
}

// TestModelMatrixTranslationLast verifies translation is outermost: the
// transformed origin must land exactly at the position regardless of scale
// and rotation.
func TestModelMatrixTranslationLast(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{3, 0.5, 7}, 33, 120, -80, mgl32.Vec3{-8.2, 0.8, 3.4})
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	want := mgl32.Vec4{-8.2, 0.8, 3.4, 1}
	for i := 0; i < 4; i++ {
		d := origin[i] - want[i]
		if d < -matrixEps || d > matrixEps {
			t.Fatalf("origin transformed to %v, want %v", origin, want)
		}
	}
}

// TestModelMatrixScaleBeforeRotation verifies scale applies in object
// space: a unit X point under scale (2,1,1) and rotY 90 must end up on the
// Z axis at distance 2, not distance 1.
func TestModelMatrixScaleBeforeRotation(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{0, 0, 0})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})

	// rotY(90) maps +X to -Z
	if d := p.Z() + 2; d < -1e-4 || d > 1e-4 {
		t.Errorf("expected z=-2 after scale then rotate, got %v", p)
	}
	if d := p.X(); d < -1e-4 || d > 1e-4 {
		t.Errorf("expected x=0 after rotate, got %v", p)
	}
}
