package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// The shader's light array has exactly four entries; the rig must fill it.
func TestStillLifeLightCount(t *testing.T) {
	rig := StillLifeLights()
	if len(rig.Sources) != 4 {
		t.Fatalf("rig has %d sources, want 4", len(rig.Sources))
	}
}

func TestStillLifeLightsSane(t *testing.T) {
	rig := StillLifeLights()
	if rig.GlobalAmbient == (mgl32.Vec3{}) {
		t.Error("global ambient should not be black")
	}
	for i, l := range rig.Sources {
		if l.DiffuseColor == (mgl32.Vec3{}) {
			t.Errorf("source %d: diffuse color is black", i)
		}
		if l.FocalStrength <= 0 {
			t.Errorf("source %d: focal strength %v, want > 0", i, l.FocalStrength)
		}
		if l.SpecularIntensity <= 0 {
			t.Errorf("source %d: specular intensity %v, want > 0", i, l.SpecularIntensity)
		}
	}
}
