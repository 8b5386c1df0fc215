// Package geometry generates the primitive meshes the scene draws and owns
// their GL-side buffers. The rest of the repo treats shapes as opaque
// drawable resources selected by scene.Shape.
package geometry

import (
	"math"

	"still-life/internal/scene"
)

// VertexStride is the number of floats per vertex: position, normal, UV.
const VertexStride = 8

// VerticesFor returns the triangle-soup vertex data for a shape in unit
// space. Panics on an unknown shape; the shape enum is closed.
func VerticesFor(shape scene.Shape) []float32 {
	switch shape {
	case scene.ShapePlane:
		return PlaneVertices()
	case scene.ShapeBox:
		return BoxVertices()
	case scene.ShapeSphere:
		return SphereVertices(24, 48)
	case scene.ShapeCylinder:
		return CylinderVertices(36, 1.0)
	case scene.ShapeTaperedCylinder:
		return CylinderVertices(36, 0.5)
	case scene.ShapeCone:
		return CylinderVertices(36, 0.0)
	case scene.ShapePyramid3:
		return Pyramid3Vertices()
	}
	panic("geometry: unknown shape " + shape.String())
}

// PlaneVertices builds a y-up plane spanning [-1,1] on X and Z.
func PlaneVertices() []float32 {
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	idx := []int{0, 1, 2, 0, 2, 3}

	out := make([]float32, 0, len(idx)*VertexStride)
	for _, i := range idx {
		out = append(out,
			corners[i][0], 0, corners[i][1],
			0, 1, 0,
			uvs[i][0], uvs[i][1],
		)
	}
	return out
}

// BoxVertices builds a unit cube centered at the origin, one quad per face
// with an outward face normal.
func BoxVertices() []float32 {
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	h := float32(0.5)
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	idx := []int{0, 1, 2, 0, 2, 3}

	out := make([]float32, 0, len(faces)*len(idx)*VertexStride)
	for _, f := range faces {
		for _, i := range idx {
			out = append(out,
				f.corners[i][0], f.corners[i][1], f.corners[i][2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[i][0], uvs[i][1],
			)
		}
	}
	return out
}

// SphereVertices builds a unit UV sphere centered at the origin. Normals
// equal the normalized positions.
func SphereVertices(stacks, slices int) []float32 {
	point := func(stack, slice int) [VertexStride]float32 {
		phi := math.Pi * float64(stack) / float64(stacks)
		theta := 2 * math.Pi * float64(slice) / float64(slices)
		x := float32(math.Sin(phi) * math.Cos(theta))
		y := float32(math.Cos(phi))
		z := float32(math.Sin(phi) * math.Sin(theta))
		u := float32(slice) / float32(slices)
		v := 1 - float32(stack)/float32(stacks)
		return [VertexStride]float32{x, y, z, x, y, z, u, v}
	}

	out := make([]float32, 0, stacks*slices*6*VertexStride)
	push := func(p [VertexStride]float32) { out = append(out, p[:]...) }
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := point(stack, slice)
			b := point(stack+1, slice)
			c := point(stack+1, slice+1)
			d := point(stack, slice+1)
			push(a)
			push(b)
			push(c)
			push(a)
			push(c)
			push(d)
		}
	}
	return out
}

// CylinderVertices builds a solid of revolution with base radius 1 at y=0
// rising to topRadius at y=1. topRadius 1 is a cylinder, 0.5 the tapered
// cylinder, 0 a cone (the top cap degenerates away).
func CylinderVertices(slices int, topRadius float32) []float32 {
	ring := func(slice int, radius float32) (x, z, u float32) {
		theta := 2 * math.Pi * float64(slice) / float64(slices)
		return radius * float32(math.Cos(theta)), radius * float32(math.Sin(theta)), float32(slice) / float32(slices)
	}

	// Side normals lean with the taper.
	slope := 1.0 - topRadius
	nLen := float32(math.Sqrt(float64(1 + slope*slope)))
	nY := slope / nLen

	out := make([]float32, 0, slices*9*VertexStride)
	side := func(slice int) {
		x0, z0, u0 := ring(slice, 1)
		x1, z1, u1 := ring(slice+1, 1)
		tx0, tz0, _ := ring(slice, topRadius)
		tx1, tz1, _ := ring(slice+1, topRadius)

		n0x, n0z := x0/nLen, z0/nLen
		n1x, n1z := x1/nLen, z1/nLen

		quad := [][VertexStride]float32{
			{x0, 0, z0, n0x, nY, n0z, u0, 0},
			{tx0, 1, tz0, n0x, nY, n0z, u0, 1},
			{tx1, 1, tz1, n1x, nY, n1z, u1, 1},
			{x0, 0, z0, n0x, nY, n0z, u0, 0},
			{tx1, 1, tz1, n1x, nY, n1z, u1, 1},
			{x1, 0, z1, n1x, nY, n1z, u1, 0},
		}
		for _, v := range quad {
			out = append(out, v[:]...)
		}
	}
	endCap := func(slice int, radius, y, ny float32) {
		if radius == 0 {
			return
		}
		x0, z0, _ := ring(slice, radius)
		x1, z1, _ := ring(slice+1, radius)
		// Wind so the cap faces along ny.
		tri := [][VertexStride]float32{
			{0, y, 0, 0, ny, 0, 0.5, 0.5},
			{x0, y, z0, 0, ny, 0, (x0/radius + 1) / 2, (z0/radius + 1) / 2},
			{x1, y, z1, 0, ny, 0, (x1/radius + 1) / 2, (z1/radius + 1) / 2},
		}
		if ny > 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}
		for _, v := range tri {
			out = append(out, v[:]...)
		}
	}

	for slice := 0; slice < slices; slice++ {
		side(slice)
		endCap(slice, 1, 0, -1)
		endCap(slice, topRadius, 1, 1)
	}
	return out
}

// Pyramid3Vertices builds a 3-sided pyramid: an equilateral base of radius
// 1 at y=0 and the apex at y=1.
func Pyramid3Vertices() []float32 {
	base := [3][3]float32{}
	for i := 0; i < 3; i++ {
		theta := 2 * math.Pi * float64(i) / 3
		base[i] = [3]float32{float32(math.Cos(theta)), 0, float32(math.Sin(theta))}
	}
	apex := [3]float32{0, 1, 0}

	out := make([]float32, 0, 12*VertexStride)
	pushTri := func(a, b, c [3]float32) {
		// Flat normal from the winding.
		ux, uy, uz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
		vx, vy, vz := c[0]-a[0], c[1]-a[1], c[2]-a[2]
		nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx
		l := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		if l > 0 {
			nx, ny, nz = nx/l, ny/l, nz/l
		}
		uvs := [3][2]float32{{0, 0}, {1, 0}, {0.5, 1}}
		for i, p := range [3][3]float32{a, b, c} {
			out = append(out, p[0], p[1], p[2], nx, ny, nz, uvs[i][0], uvs[i][1])
		}
	}

	for i := 0; i < 3; i++ {
		pushTri(base[(i+1)%3], base[i], apex)
	}
	pushTri(base[0], base[1], base[2])
	return out
}
