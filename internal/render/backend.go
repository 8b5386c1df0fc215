package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/scene"
)

// Backend is the write-only surface the frame renderer drives. The GL
// implementation maps calls onto shader uniforms and pipeline state; tests
// substitute a recorder. SetTexture and SetColor are mutually exclusive
// toggles: whichever is written last decides whether the next draw samples
// a texture or uses the flat color.
type Backend interface {
	Clear()
	SetDepthWrite(enabled bool)
	SetBlend(enabled bool)
	SetModel(model mgl32.Mat4)
	SetMaterial(m scene.Material)
	SetTexture(slot int32)
	SetColor(color mgl32.Vec4)
	SetUVScale(u, v float32)
	Draw(shape scene.Shape)
}

// TextureIndex resolves texture tags to bound sampler slots. A missing tag
// resolves to -1; the draw still goes through and renders visibly wrong
// rather than failing.
type TextureIndex interface {
	SlotFor(tag string) int32
}
