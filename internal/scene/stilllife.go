package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The hand-composed still life: fruit on a table against a backdrop, with
// two transparent containers of generated berries.

// Cluster names, also used as texture tags for the berry draws.
const (
	ClusterStrawberries = "strawberry"
	ClusterBlueberries  = "blueberry"
)

// TextureRef names an image file (relative to the asset directory) and the
// tag draws use to select it.
type TextureRef struct {
	Path string
	Tag  string
}

// Scene owns everything produced by one-time preparation: the material
// library, the light rig and the ordered draw list. Objects are drawn in
// slice order within each phase.
type Scene struct {
	Materials *MaterialLibrary
	Lights    LightRig
	Objects   []Object
}

// StillLifeTextures is the load manifest for the scene. Registration order
// determines sampler slots.
func StillLifeTextures() []TextureRef {
	return []TextureRef{
		{Path: "textures/pineapple.jpg", Tag: "pineapple"},
		{Path: "textures/strawberry.jpg", Tag: "strawberry"},
		{Path: "textures/blueberry.jpg", Tag: "blueberry"},
		{Path: "textures/apple.jpg", Tag: "apple"},
		{Path: "textures/table.jpg", Tag: "table"},
		{Path: "textures/wall.jpg", Tag: "wall"},
		{Path: "textures/orange.jpg", Tag: "orange"},
		{Path: "textures/lemon.jpg", Tag: "lemon"},
		{Path: "textures/pineapple_leaf.jpg", Tag: "pineappleleaf"},
	}
}

// StillLifeClusters returns the berry pile configurations. The strawberry
// pile fills an axis-aligned box; the blueberry pile is rotated rigidly by
// 30 degrees to match its angled container.
func StillLifeClusters() []Cluster {
	return []Cluster{
		{
			Name:        ClusterStrawberries,
			CenterX:     -4.0,
			CenterZ:     0.5,
			Width:       3.0,
			Depth:       2.2,
			Layers:      6,
			BaseRows:    14,
			BaseHeight:  0.3,
			LayerHeight: 0.2,
			CellBias:    0.5,
			PosJitter:   0.05,
			LiftJitter:  0.1,
			BaseScale:   mgl32.Vec3{0.2, 0.25, 0.2},
			ScaleMin:    0.85,
			ScaleRange:  0.3,
			TiltDeg:     30,
		},
		{
			Name:        ClusterBlueberries,
			CenterX:     -3.25,
			CenterZ:     3.0,
			Width:       2.5,
			Depth:       1.5,
			Layers:      5,
			BaseRows:    20,
			BaseHeight:  0.25,
			LayerHeight: 0.17,
			CellBias:    0.6,
			BaseScale:   mgl32.Vec3{0.0446, 0.0595, 0.0446}.Mul(0.85),
			ScaleMin:    1.0,
			ScaleRange:  0.4,
			FullSpin:    true,
			GridYawDeg:  30,
		},
	}
}

func defineStillLifeMaterials(lib *MaterialLibrary) {
	lib.Define(Material{
		Tag:             "pineapple",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.4},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.4},
		Shininess:       0.0,
	})
	lib.Define(Material{
		Tag:             "blueberry",
		AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.2},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.7},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.8},
		Shininess:       0.0,
	})
	lib.Define(Material{
		Tag:             "table",
		AmbientColor:    mgl32.Vec3{0.2, 0.1, 0.05},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.6, 0.3, 0.1},
		SpecularColor:   mgl32.Vec3{0.3, 0.2, 0.1},
		Shininess:       16.0,
	})
	lib.Define(Material{
		Tag:             "wall",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       4.0,
	})
	lib.Define(Material{
		Tag:             "orange",
		AmbientColor:    mgl32.Vec3{0.2, 0.1, 0.0},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{1.0, 0.5, 0.0},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       0.0,
	})
	lib.Define(Material{
		Tag:             "lemon",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.0},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{1.0, 1.0, 0.0},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.4},
		Shininess:       0.0,
	})
	lib.Define(Material{
		Tag:             "apple",
		AmbientColor:    mgl32.Vec3{0.1, 0.0, 0.0},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.8, 0.1, 0.1},
		SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
		Shininess:       5.0,
	})
	lib.Define(Material{
		Tag:             "pineappleleaf",
		AmbientColor:    mgl32.Vec3{0.0, 0.2, 0.0},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.0, 0.8, 0.0},
		SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:       0.0,
	})
	lib.Define(Material{
		Tag:             "transparentBox",
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.7, 0.7, 0.7},
		SpecularColor:   mgl32.Vec3{1.0, 1.0, 1.0},
		Shininess:       40.0,
	})
}

// BuildStillLife composes the complete draw list. It runs the instance
// generator (a no-op if already generated) and returns a scene whose
// objects are ordered opaque-first: table, backdrop, solid fruit, the
// pineapple crown, then every berry instance, and finally the two
// transparent container boxes.
func BuildStillLife(gen *Generator) *Scene {
	gen.Generate()

	s := &Scene{
		Materials: NewMaterialLibrary(),
		Lights:    StillLifeLights(),
	}
	defineStillLifeMaterials(s.Materials)

	unitUV := mgl32.Vec2{1, 1}

	s.Objects = append(s.Objects,
		Object{
			Name:        "table",
			Shape:       ShapePlane,
			MaterialTag: "table",
			TextureTag:  "table",
			UVScale:     mgl32.Vec2{5.0, 5.5},
			Transform: Transform{
				Scale:    mgl32.Vec3{10.0, 1.0, 7.0},
				Position: mgl32.Vec3{-7.0, 0.0, 2.0},
			},
		},
		Object{
			Name:        "backdrop",
			Shape:       ShapePlane,
			MaterialTag: "wall",
			TextureTag:  "wall",
			UVScale:     unitUV,
			Transform: Transform{
				Scale:    mgl32.Vec3{10.0, 5.0, 7.0},
				RotX:     90,
				Position: mgl32.Vec3{-7.0, 7.0, -5.0},
			},
		},
		Object{
			Name:        "pineapple-body",
			Shape:       ShapeSphere,
			MaterialTag: "pineapple",
			TextureTag:  "pineapple",
			UVScale:     mgl32.Vec2{4.5, 4.5},
			Transform: Transform{
				Scale:    mgl32.Vec3{1.55, 2.3, 1.55},
				Position: mgl32.Vec3{-7.4, 2.4, 1.6},
			},
		},
		Object{
			Name:        "pineapple-head",
			Shape:       ShapeTaperedCylinder,
			MaterialTag: "pineapple",
			TextureTag:  "pineapple",
			UVScale:     mgl32.Vec2{1.5, 1.5},
			Transform: Transform{
				Scale:    mgl32.Vec3{1.0, 2.0, 1.0},
				Position: mgl32.Vec3{-7.4, 2.25, 1.6},
			},
		},
	)

	s.Objects = append(s.Objects, pineappleLeaves()...)

	s.Objects = append(s.Objects,
		Object{
			Name:        "orange",
			Shape:       ShapeSphere,
			MaterialTag: "orange",
			TextureTag:  "orange",
			UVScale:     unitUV,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.75, 0.75, 0.75},
				Position: mgl32.Vec3{-8.2, 0.8, 3.4},
			},
		},
		Object{
			Name:        "apple",
			Shape:       ShapeSphere,
			MaterialTag: "apple",
			TextureTag:  "apple",
			UVScale:     unitUV,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.55, 0.5, 0.55},
				Position: mgl32.Vec3{-6.8, 0.7, 3.6},
			},
		},
		Object{
			Name:        "lemon",
			Shape:       ShapeSphere,
			MaterialTag: "lemon",
			TextureTag:  "lemon",
			UVScale:     unitUV,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.5, 0.5, 0.65},
				RotY:     90,
				Position: mgl32.Vec3{-5.6, 0.6, 2.8},
			},
		},
	)

	// Strawberries draw as cones flipped point-down, slightly stretched
	// vertically. They have no material tag: the draw keeps whatever
	// material the previous object set and relies on the texture alone.
	for _, inst := range gen.Instances(ClusterStrawberries) {
		s.Objects = append(s.Objects, Object{
			Name:       "strawberry",
			Shape:      ShapeCone,
			TextureTag: "strawberry",
			UVScale:    unitUV,
			Transform: Transform{
				Scale:    mgl32.Vec3{inst.Scale.X(), inst.Scale.Y() * 1.2, inst.Scale.Z()},
				RotX:     inst.Rotation.X() + 180,
				RotY:     inst.Rotation.Y(),
				RotZ:     inst.Rotation.Z(),
				Position: inst.Position,
			},
		})
	}

	for _, inst := range gen.Instances(ClusterBlueberries) {
		s.Objects = append(s.Objects, Object{
			Name:        "blueberry",
			Shape:       ShapeSphere,
			MaterialTag: "blueberry",
			TextureTag:  "blueberry",
			UVScale:     unitUV,
			Transform: Transform{
				Scale:    inst.Scale,
				RotX:     inst.Rotation.X(),
				RotY:     inst.Rotation.Y(),
				RotZ:     inst.Rotation.Z(),
				Position: inst.Position,
			},
		})
	}

	boxColor := mgl32.Vec4{1.0, 1.0, 1.0, 0.3}
	s.Objects = append(s.Objects,
		Object{
			Name:        "strawberry-box",
			Shape:       ShapeBox,
			MaterialTag: "transparentBox",
			Phase:       PhaseTransparent,
			Color:       boxColor,
			HasColor:    true,
			Transform: Transform{
				Scale:    mgl32.Vec3{3.2, 1.2, 2.4},
				Position: mgl32.Vec3{-4.0, 0.6, 0.5},
			},
		},
		Object{
			Name:        "blueberry-box",
			Shape:       ShapeBox,
			MaterialTag: "transparentBox",
			Phase:       PhaseTransparent,
			Color:       boxColor,
			HasColor:    true,
			Transform: Transform{
				Scale:    mgl32.Vec3{2.5, 0.65, 1.7},
				RotY:     30,
				Position: mgl32.Vec3{-3.25, 0.6, 3.0},
			},
		},
	)

	return s
}

// pineappleLeaves builds the crown: rings of 3-sided pyramids, each leaf
// stacked from segments that shrink toward the tip.
func pineappleLeaves() []Object {
	const (
		numLeaves      = 20
		leafSegments   = 9
		baseLeafHeight = 0.9
		baseLeafWidth  = 1.8
		leafTiltDeg    = 245.0
	)

	out := make([]Object, 0, numLeaves*leafSegments)
	for leaf := 0; leaf < numLeaves; leaf++ {
		ringAngle := float32(leaf) / numLeaves * 360.0
		ringRad := float64(mgl32.DegToRad(ringAngle))

		for segment := 0; segment < leafSegments; segment++ {
			segmentScale := 1.0 - 0.15*float32(segment)
			segmentHeight := float32(baseLeafHeight) * segmentScale

			out = append(out, Object{
				Name:        "pineapple-leaf",
				Shape:       ShapePyramid3,
				MaterialTag: "pineappleleaf",
				TextureTag:  "pineappleleaf",
				UVScale:     mgl32.Vec2{1, 1},
				Transform: Transform{
					Scale: mgl32.Vec3{
						baseLeafWidth * segmentScale,
						segmentHeight,
						baseLeafWidth * segmentScale,
					},
					RotX: leafTiltDeg,
					RotY: ringAngle,
					Position: mgl32.Vec3{
						-7.5 + 0.05*float32(math.Cos(ringRad)),
						4.5 + float32(segment)*segmentHeight*0.9,
						1.6 + 0.05*float32(math.Sin(ringRad)),
					},
				},
			})
		}
	}
	return out
}
