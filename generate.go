package evergreen

import (
	"math"
	"math/rand/v2"
)

// Generator produces the two target positions of a particle. It holds no
// state besides the tree dimensions and the random source; it is only used
// while a dataset is being built.
type Generator struct {
	treeHeight    float64
	treeRadius    float64
	scatterRadius float64
	rng           *rand.Rand
}

// NewGenerator creates a Generator for the tree dimensions in cfg drawing
// from rng.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{
		treeHeight:    cfg.TreeHeight,
		treeRadius:    cfg.TreeRadius,
		scatterRadius: cfg.ScatterRadius,
		rng:           rng,
	}
}

// TreePosition maps a height ratio in [0, 1] to a point on the tree cone.
// The radius shrinks linearly toward the top; radialOffset pushes ornaments
// just outside the foliage. The angle follows a tight spiral (ratio * 20π)
// with a random turn added so rows don't band.
func (g *Generator) TreePosition(ratio, radialOffset float64) Vec3 {
	y := ratio*g.treeHeight - g.treeHeight/2
	r := (1-ratio)*g.treeRadius + radialOffset
	angle := ratio*math.Pi*20 + g.rng.Float64()*math.Pi*2
	sin, cos := math.Sincos(angle)
	return Vec3{cos * r, y, sin * r}
}

// ScatterPosition returns a point uniformly distributed by volume inside
// the scatter sphere. The cube root on the radius offsets the r² growth of
// shell area.
func (g *Generator) ScatterPosition() Vec3 {
	theta := g.rng.Float64() * math.Pi * 2
	phi := math.Acos(g.rng.Float64()*2 - 1)
	r := math.Cbrt(g.rng.Float64()) * g.scatterRadius
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec3{
		r * sinPhi * cosTheta,
		r * sinPhi * sinTheta,
		r * cosPhi,
	}
}

// FoliagePosition places needle i of count. Foliage uses its own denser
// spiral with ±20% radius jitter so the tree body reads as a volume, not a
// shell; it does not go through TreePosition.
func (g *Generator) FoliagePosition(i, count int) Vec3 {
	ratio := math.Pow(float64(i)/float64(count), 0.8)
	y := ratio*g.treeHeight - g.treeHeight/2
	r := (1 - ratio) * g.treeRadius
	angle := float64(i)*0.1 + g.rng.Float64()
	jittered := r * (0.8 + g.rng.Float64()*0.4)
	sin, cos := math.Sincos(angle)
	return Vec3{cos * jittered, y, sin * jittered}
}

// TopPosition is where the big star sits on the assembled tree.
func (g *Generator) TopPosition() Vec3 {
	return Vec3{0, g.treeHeight/2 + 1, 0}
}

// newRand returns a PCG-backed source. A zero seed picks a random one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
