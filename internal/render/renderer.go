// Package render replays a scene's declarative draw list against a
// backend, sequencing the opaque phase before the transparent one.
package render

import "still-life/internal/scene"

// Renderer draws one frame at a time. It holds no per-frame state of its
// own; everything it needs was produced during scene setup.
type Renderer struct {
	backend  Backend
	textures TextureIndex
	scene    *scene.Scene
}

func New(backend Backend, textures TextureIndex, s *scene.Scene) *Renderer {
	return &Renderer{backend: backend, textures: textures, scene: s}
}

// RenderFrame clears color and depth, draws every opaque object in list
// order, then every transparent object with depth writes disabled, and
// restores depth writes and blending before returning. The restore is
// mandatory: the next frame's opaque phase assumes the default state.
func (r *Renderer) RenderFrame() {
	b := r.backend
	b.Clear()

	b.SetBlend(true)
	b.SetDepthWrite(true)
	for i := range r.scene.Objects {
		if r.scene.Objects[i].Phase == scene.PhaseOpaque {
			r.draw(&r.scene.Objects[i])
		}
	}

	b.SetDepthWrite(false)
	for i := range r.scene.Objects {
		if r.scene.Objects[i].Phase == scene.PhaseTransparent {
			r.draw(&r.scene.Objects[i])
		}
	}

	b.SetDepthWrite(true)
	b.SetBlend(false)
}

// draw issues one object in the fixed per-draw sequence: transform, then
// material, then texture or flat color, then UV scale, then the draw call.
// An empty material tag or a failed lookup leaves the previous material in
// place; a missing texture tag resolves to slot -1.
func (r *Renderer) draw(o *scene.Object) {
	b := r.backend
	b.SetModel(o.Transform.Matrix())

	if o.MaterialTag != "" {
		if m, ok := r.scene.Materials.Find(o.MaterialTag); ok {
			b.SetMaterial(m)
		}
	}

	if o.HasColor {
		b.SetColor(o.Color)
	} else if o.TextureTag != "" {
		b.SetTexture(r.textures.SlotFor(o.TextureTag))
	}

	b.SetUVScale(o.UVScale.X(), o.UVScale.Y())
	b.Draw(o.Shape)
}
