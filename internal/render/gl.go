package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/geometry"
	"still-life/internal/graphics"
	"still-life/internal/scene"
)

// GLBackend implements Backend on the OpenGL pipeline and the scene
// shader. Construction configures the fixed state the frame loop relies
// on: depth testing and standard alpha compositing.
type GLBackend struct {
	shader     *graphics.Shader
	meshes     *geometry.Set
	clearColor mgl32.Vec4
}

func NewGLBackend(shader *graphics.Shader, meshes *geometry.Set, clearColor mgl32.Vec4) *GLBackend {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &GLBackend{
		shader:     shader,
		meshes:     meshes,
		clearColor: clearColor,
	}
}

func (b *GLBackend) Clear() {
	gl.ClearColor(b.clearColor.X(), b.clearColor.Y(), b.clearColor.Z(), b.clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *GLBackend) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

func (b *GLBackend) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (b *GLBackend) SetModel(model mgl32.Mat4) {
	b.shader.SetMatrix4("model", &model[0])
}

func (b *GLBackend) SetMaterial(m scene.Material) {
	b.shader.SetVector3("material.ambientColor", m.AmbientColor.X(), m.AmbientColor.Y(), m.AmbientColor.Z())
	b.shader.SetFloat("material.ambientStrength", m.AmbientStrength)
	b.shader.SetVector3("material.diffuseColor", m.DiffuseColor.X(), m.DiffuseColor.Y(), m.DiffuseColor.Z())
	b.shader.SetVector3("material.specularColor", m.SpecularColor.X(), m.SpecularColor.Y(), m.SpecularColor.Z())
	b.shader.SetFloat("material.shininess", m.Shininess)
}

// SetTexture selects a sampler slot and enables texturing for the next
// draw, overriding any flat color set earlier.
func (b *GLBackend) SetTexture(slot int32) {
	b.shader.SetBool("bUseTexture", true)
	b.shader.SetInt("objectTexture", slot)
}

// SetColor supplies a flat RGBA color and disables texture sampling for
// the next draw.
func (b *GLBackend) SetColor(color mgl32.Vec4) {
	b.shader.SetBool("bUseTexture", false)
	b.shader.SetVector4("objectColor", color.X(), color.Y(), color.Z(), color.W())
}

func (b *GLBackend) SetUVScale(u, v float32) {
	b.shader.SetVector2("UVscale", u, v)
}

func (b *GLBackend) Draw(shape scene.Shape) {
	b.meshes.Draw(shape)
}

// ApplyCamera writes the view and projection matrices and the eye position
// used for specular shading. Called at setup and again on window resize.
func (b *GLBackend) ApplyCamera(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	b.shader.SetMatrix4("view", &view[0])
	b.shader.SetMatrix4("projection", &projection[0])
	b.shader.SetVector3("viewPosition", eye.X(), eye.Y(), eye.Z())
}

// ApplyLights enables lighting and writes the whole rig. Runs once during
// setup; the rig never changes afterwards.
func (b *GLBackend) ApplyLights(rig scene.LightRig) {
	b.shader.SetBool("bUseLighting", true)
	b.shader.SetVector3("globalAmbientColor", rig.GlobalAmbient.X(), rig.GlobalAmbient.Y(), rig.GlobalAmbient.Z())

	for i, l := range rig.Sources {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		b.shader.SetVector3(prefix+"position", l.Position.X(), l.Position.Y(), l.Position.Z())
		b.shader.SetVector3(prefix+"diffuseColor", l.DiffuseColor.X(), l.DiffuseColor.Y(), l.DiffuseColor.Z())
		b.shader.SetVector3(prefix+"specularColor", l.SpecularColor.X(), l.SpecularColor.Y(), l.SpecularColor.Z())
		b.shader.SetFloat(prefix+"focalStrength", l.FocalStrength)
		b.shader.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
	}
}
