package geometry

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"still-life/internal/scene"
)

type mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// Set owns one GL mesh per primitive shape. A shape is uploaded once no
// matter how many draws reference it.
type Set struct {
	meshes map[scene.Shape]*mesh
}

func NewSet() *Set {
	return &Set{meshes: make(map[scene.Shape]*mesh, len(scene.AllShapes))}
}

// LoadAll uploads every primitive shape. Must run on the context thread
// before the first frame.
func (s *Set) LoadAll() {
	for _, shape := range scene.AllShapes {
		s.Load(shape)
	}
}

// Load uploads the mesh for shape. Idempotent.
func (s *Set) Load(shape scene.Shape) {
	if _, ok := s.meshes[shape]; ok {
		return
	}

	verts := VerticesFor(shape)
	m := &mesh{vertexCount: int32(len(verts) / VertexStride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	s.meshes[shape] = m
}

// Draw issues the draw call for shape. A shape that was never loaded is a
// silent no-op, matching the scene's best-effort handling of missing
// resources.
func (s *Set) Draw(shape scene.Shape) {
	m := s.meshes[shape]
	if m == nil {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

// Dispose releases all GL buffers.
func (s *Set) Dispose() {
	for shape, m := range s.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(s.meshes, shape)
	}
}
