package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is one point source of the fixed studio rig.
type Light struct {
	Position          mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// LightRig is the full lighting setup, written to the shader once during
// scene preparation.
type LightRig struct {
	GlobalAmbient mgl32.Vec3
	Sources       []Light
}

// StillLifeLights returns the four-source rig for the fruit scene: a soft
// cool key, a blue fill, a faint warm accent and a blue backlight over a
// cool ambient base.
func StillLifeLights() LightRig {
	return LightRig{
		GlobalAmbient: mgl32.Vec3{0.10, 0.12, 0.18},
		Sources: []Light{
			{
				Position:          mgl32.Vec3{-5.0, 1.0, -2.0},
				DiffuseColor:      mgl32.Vec3{0.3, 0.33, 0.36},
				SpecularColor:     mgl32.Vec3{0.1, 0.11, 0.12},
				FocalStrength:     2.0,
				SpecularIntensity: 0.02,
			},
			{
				Position:          mgl32.Vec3{-5.0, 3.0, 5.0},
				DiffuseColor:      mgl32.Vec3{0.35, 0.4, 0.55},
				SpecularColor:     mgl32.Vec3{0.17, 0.2, 0.27},
				FocalStrength:     3.5,
				SpecularIntensity: 0.03,
			},
			{
				Position:          mgl32.Vec3{8.0, 10.0, -2.0},
				DiffuseColor:      mgl32.Vec3{0.2, 0.18, 0.15},
				SpecularColor:     mgl32.Vec3{0.1, 0.09, 0.07},
				FocalStrength:     1.0,
				SpecularIntensity: 0.01,
			},
			{
				Position:          mgl32.Vec3{-6.0, 4.0, -8.0},
				DiffuseColor:      mgl32.Vec3{0.25, 0.3, 0.4},
				SpecularColor:     mgl32.Vec3{0.12, 0.15, 0.2},
				FocalStrength:     3.5,
				SpecularIntensity: 0.03,
			},
		},
	}
}
