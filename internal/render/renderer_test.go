package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/scene"
)

// recorder implements Backend and TextureIndex and captures the call
// stream so draw sequencing can be checked without a GL context.
type recorder struct {
	ops []string

	depthWrite bool
	blend      bool
	pending    drawRecord

	draws []drawRecord
	slots map[string]int32
}

type drawRecord struct {
	shape      scene.Shape
	depthWrite bool
	blend      bool
	usedColor  bool
	color      mgl32.Vec4
	slot       int32
	uv         [2]float32
}

var (
	_ Backend      = (*recorder)(nil)
	_ TextureIndex = (*recorder)(nil)
)

func newRecorder() *recorder {
	return &recorder{
		depthWrite: true,
		pending:    drawRecord{slot: -1},
		slots:      make(map[string]int32),
	}
}

func (r *recorder) op(name string) { r.ops = append(r.ops, name) }

func (r *recorder) Clear() { r.op("clear") }

func (r *recorder) SetDepthWrite(on bool) {
	r.depthWrite = on
	r.op("depthWrite")
}

func (r *recorder) SetBlend(on bool) {
	r.blend = on
	r.op("blend")
}

func (r *recorder) SetModel(mgl32.Mat4) { r.op("model") }

func (r *recorder) SetMaterial(scene.Material) { r.op("material") }

func (r *recorder) SetTexture(slot int32) {
	r.op("texture")
	r.pending.usedColor = false
	r.pending.slot = slot
}

func (r *recorder) SetColor(c mgl32.Vec4) {
	r.op("color")
	r.pending.usedColor = true
	r.pending.color = c
}

func (r *recorder) SetUVScale(u, v float32) {
	r.op("uv")
	r.pending.uv = [2]float32{u, v}
}

func (r *recorder) Draw(shape scene.Shape) {
	r.op("draw")
	rec := r.pending
	rec.shape = shape
	rec.depthWrite = r.depthWrite
	rec.blend = r.blend
	r.draws = append(r.draws, rec)
	r.pending = drawRecord{slot: -1}
}

func (r *recorder) SlotFor(tag string) int32 {
	if slot, ok := r.slots[tag]; ok {
		return slot
	}
	return -1
}

// TestRenderFramePhaseOrdering runs the full still life through a
// recorder: every transparent draw must come after every opaque one, and
// depth writes must be off for exactly the transparent suffix.
func TestRenderFramePhaseOrdering(t *testing.T) {
	still := scene.BuildStillLife(scene.NewGenerator(1, scene.StillLifeClusters()...))
	rec := newRecorder()
	New(rec, rec, still).RenderFrame()

	if len(rec.draws) != len(still.Objects) {
		t.Fatalf("recorded %d draws for %d objects", len(rec.draws), len(still.Objects))
	}
	if len(rec.ops) == 0 || rec.ops[0] != "clear" {
		t.Error("frame must start by clearing color and depth")
	}

	transparentSeen := false
	for i, d := range rec.draws {
		if d.usedColor {
			transparentSeen = true
			if d.depthWrite {
				t.Fatalf("draw %d: transparent draw with depth writes enabled", i)
			}
			if !d.blend {
				t.Fatalf("draw %d: transparent draw without blending", i)
			}
		} else {
			if transparentSeen {
				t.Fatalf("draw %d: opaque draw after transparent phase began", i)
			}
			if !d.depthWrite {
				t.Fatalf("draw %d: opaque draw with depth writes disabled", i)
			}
		}
	}
	if !transparentSeen {
		t.Fatal("expected a transparent phase")
	}

	// State must be restored after the transparent phase.
	if !rec.depthWrite {
		t.Error("depth writes not restored after frame")
	}
	if rec.blend {
		t.Error("blending not disabled after frame")
	}
}

// TestRenderFramePerDrawSequence checks the fixed per-draw call order on a
// small hand-built scene: model, material, texture-or-color, uv, draw.
func TestRenderFramePerDrawSequence(t *testing.T) {
	s := &scene.Scene{Materials: scene.NewMaterialLibrary()}
	s.Materials.Define(scene.Material{Tag: "table"})
	s.Materials.Define(scene.Material{Tag: "glass"})
	s.Objects = []scene.Object{
		{
			Name:        "table",
			Shape:       scene.ShapePlane,
			MaterialTag: "table",
			TextureTag:  "table",
			UVScale:     mgl32.Vec2{5, 5.5},
		},
		{
			Name:        "pane",
			Shape:       scene.ShapeBox,
			MaterialTag: "glass",
			Phase:       scene.PhaseTransparent,
			Color:       mgl32.Vec4{1, 1, 1, 0.3},
			HasColor:    true,
			UVScale:     mgl32.Vec2{1, 1},
		},
	}

	rec := newRecorder()
	rec.slots["table"] = 4
	New(rec, rec, s).RenderFrame()

	want := []string{
		"clear",
		"blend", "depthWrite", // opaque phase setup
		"model", "material", "texture", "uv", "draw",
		"depthWrite", // transparent phase
		"model", "material", "color", "uv", "draw",
		"depthWrite", "blend", // restore
	}
	if len(rec.ops) != len(want) {
		t.Fatalf("op stream %v, want %v", rec.ops, want)
	}
	for i := range want {
		if rec.ops[i] != want[i] {
			t.Fatalf("op[%d] = %q, want %q (full stream %v)", i, rec.ops[i], want[i], rec.ops)
		}
	}

	if rec.draws[0].slot != 4 {
		t.Errorf("table draw used slot %d, want 4", rec.draws[0].slot)
	}
	if rec.draws[0].uv != [2]float32{5, 5.5} {
		t.Errorf("table draw uv = %v, want [5 5.5]", rec.draws[0].uv)
	}
	if !rec.draws[1].usedColor || rec.draws[1].color != (mgl32.Vec4{1, 1, 1, 0.3}) {
		t.Errorf("pane draw should carry flat color, got %+v", rec.draws[1])
	}
}

// TestRenderFrameMissingLookups verifies the weak-contract behavior: a
// missing texture tag resolves to slot -1 and a missing material is
// skipped, with the draw still issued.
func TestRenderFrameMissingLookups(t *testing.T) {
	s := &scene.Scene{Materials: scene.NewMaterialLibrary()}
	s.Objects = []scene.Object{
		{
			Name:        "ghost",
			Shape:       scene.ShapeSphere,
			MaterialTag: "missing-material",
			TextureTag:  "missing-texture",
			UVScale:     mgl32.Vec2{1, 1},
		},
	}

	rec := newRecorder()
	New(rec, rec, s).RenderFrame()

	if len(rec.draws) != 1 {
		t.Fatalf("expected the draw to go through, got %d draws", len(rec.draws))
	}
	if rec.draws[0].slot != -1 {
		t.Errorf("missing texture should resolve to slot -1, got %d", rec.draws[0].slot)
	}
	for _, op := range rec.ops {
		if op == "material" {
			t.Error("missing material lookup must not write material state")
		}
	}
}
