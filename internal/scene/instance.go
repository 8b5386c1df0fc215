package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one generated copy of a repeated small object.
type Instance struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	// Rotation holds Euler angles in degrees, applied X then Y then Z.
	Rotation mgl32.Vec3
}

// Cluster describes how a pile of instances fills its bounding footprint.
// The pile narrows toward the top: layer i is a square grid with
// (BaseRows - i) cells per side. Each cell gets one instance at a
// deterministic base position plus bounded uniform jitter.
type Cluster struct {
	Name string

	// Footprint on the table.
	CenterX float32
	CenterZ float32
	Width   float32
	Depth   float32

	Layers      int
	BaseRows    int
	BaseHeight  float32 // y of the bottom layer
	LayerHeight float32 // y increment per layer

	// CellBias is the fractional offset into each column cell; rows always
	// use 0.5 (cell center).
	CellBias float32

	// Jitter amplitudes. PosJitter spreads x/z by ±PosJitter/2 around the
	// base position; LiftJitter adds [0, LiftJitter) to the layer height.
	// Amplitudes stay well under the cell size so instances never stray
	// far from their cell.
	PosJitter  float32
	LiftJitter float32

	// Size factor is ScaleMin + U*ScaleRange, applied uniformly to BaseScale.
	BaseScale  mgl32.Vec3
	ScaleMin   float32
	ScaleRange float32

	// Orientation jitter. FullSpin rotates all three axes a full circle;
	// otherwise X and Z tilt within ±TiltDeg/2 and Y spins a full circle.
	TiltDeg  float32
	FullSpin bool

	// GridYawDeg applies a rigid rotation of the whole grid footprint
	// about the cluster center, used to angle an oriented container.
	GridYawDeg float32
}

// InstanceCount is the closed-form instance total: one per grid cell, with
// the grid side shrinking by one per layer.
func (c Cluster) InstanceCount() int {
	n := 0
	for i := 0; i < c.Layers; i++ {
		side := c.BaseRows - i
		n += side * side
	}
	return n
}

func (c Cluster) generate(rng *rand.Rand) []Instance {
	out := make([]Instance, 0, c.InstanceCount())

	yaw := float64(mgl32.DegToRad(c.GridYawDeg))
	sinYaw := float32(math.Sin(-yaw))
	cosYaw := float32(math.Cos(-yaw))

	for layer := 0; layer < c.Layers; layer++ {
		height := c.BaseHeight + float32(layer)*c.LayerHeight
		rows := c.BaseRows - layer

		for row := 0; row < rows; row++ {
			for col := 0; col < rows; col++ {
				x := c.CenterX - c.Width/2 + (float32(col)+c.CellBias)*(c.Width/float32(rows))
				z := c.CenterZ - c.Depth/2 + (float32(row)+0.5)*(c.Depth/float32(rows))

				if c.GridYawDeg != 0 {
					dx := x - c.CenterX
					dz := z - c.CenterZ
					x = c.CenterX + dx*cosYaw - dz*sinYaw
					z = c.CenterZ + dx*sinYaw + dz*cosYaw
				}

				x += (rng.Float32() - 0.5) * c.PosJitter
				z += (rng.Float32() - 0.5) * c.PosJitter
				y := height + rng.Float32()*c.LiftJitter

				size := c.ScaleMin + rng.Float32()*c.ScaleRange

				inst := Instance{
					Position: mgl32.Vec3{x, y, z},
					Scale:    c.BaseScale.Mul(size),
				}
				if c.FullSpin {
					inst.Rotation = mgl32.Vec3{
						rng.Float32() * 360,
						rng.Float32() * 360,
						rng.Float32() * 360,
					}
				} else {
					inst.Rotation = mgl32.Vec3{
						(rng.Float32() - 0.5) * c.TiltDeg,
						rng.Float32() * 360,
						(rng.Float32() - 0.5) * c.TiltDeg,
					}
				}
				out = append(out, inst)
			}
		}
	}
	return out
}

// Generator produces and caches the instance lists for every cluster in
// the scene. Generation runs exactly once; later Generate calls are no-ops
// that keep the existing lists. The jitter source is an explicit seeded
// generator so output is reproducible for a given seed.
type Generator struct {
	rng       *rand.Rand
	clusters  []Cluster
	instances map[string][]Instance
	generated bool
}

func NewGenerator(seed int64, clusters ...Cluster) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		clusters:  clusters,
		instances: make(map[string][]Instance, len(clusters)),
	}
}

// Generate fills the instance cache for all clusters in their declared
// order. A second call returns immediately.
func (g *Generator) Generate() {
	if g.generated {
		return
	}
	for _, c := range g.clusters {
		g.instances[c.Name] = c.generate(g.rng)
	}
	g.generated = true
}

// Instances returns the cached list for a cluster, nil if Generate has not
// run or the name is unknown. The slice must be treated as read-only.
func (g *Generator) Instances(name string) []Instance {
	return g.instances[name]
}
