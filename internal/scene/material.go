package scene

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a flat value record selected by tag at draw time and written
// into the shader's material block.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialLibrary is an append-only list of materials populated during
// scene setup. Lookup returns the first match for a tag, so a duplicate
// definition can only shadow an earlier one, never replace it.
type MaterialLibrary struct {
	materials []Material
}

func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{}
}

// Define appends a material. Defining the same tag twice is permitted; the
// later entry is unreachable through Find, so a warning is logged.
func (l *MaterialLibrary) Define(m Material) {
	if _, ok := l.Find(m.Tag); ok {
		log.Warn("material tag already defined, new entry is shadowed", "tag", m.Tag)
	}
	l.materials = append(l.materials, m)
}

// Find returns the first material registered under tag.
func (l *MaterialLibrary) Find(tag string) (Material, bool) {
	for _, m := range l.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len reports the number of registered materials, duplicates included.
func (l *MaterialLibrary) Len() int {
	return len(l.materials)
}
