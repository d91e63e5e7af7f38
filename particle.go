package evergreen

import (
	"math"
	"math/rand/v2"
)

// Particle is one decorative element. Records are built once by
// BuildDataset and never modified; only the transform derived from them
// changes from frame to frame.
type Particle struct {
	// ID is unique within the category and equals the particle's slot in
	// that category's instance buffer.
	ID       int
	Category Category

	ScatterPosition Vec3
	TreePosition    Vec3

	// BaseRotation is the orientation held while assembled.
	BaseRotation Euler
	// RotationSpeed scales the tumble while scattered.
	RotationSpeed float64
	// BaseScale is the uniform scale at full reveal.
	BaseScale float64
	Color     Color

	// Speed and Phase decorrelate the floating motion of particles that
	// share a category.
	Speed float64
	Phase float64
}

// Dataset is the full, fixed set of particles, grouped by category.
type Dataset struct {
	groups [categoryCount][]Particle
}

// Random ranges used while building. Names follow the particle fields they
// feed.
var (
	foliageScale  = Range{0.2, 0.5}
	foliageSpeed  = Range{0.1, 0.3}
	giftScale     = Range{0.5, 0.9}
	giftSpeed     = Range{0, 0.3}
	giftPhase     = Range{0, 10}
	giftRatio     = Range{0, 0.85}
	sphereRatio   = Range{0, 0.95}
	sphereSpin    = Range{0, 0.5}
	miscRatio     = Range{0, 0.9}
	miscSpin      = Range{0, 0.4}
	ornamentDrift = Range{0, 0.2}
	fullTurn      = Range{0, 2 * math.Pi}
	halfTurn      = Range{0, math.Pi}
)

// Radial offsets keep ornaments sitting just outside the foliage.
const (
	giftOffset   = 0.5
	sphereOffset = 0.2
	miscOffset   = 0.3
)

// BuildDataset validates cfg and builds every particle, drawing all random
// values from rng. A nil rng is replaced by a source seeded from cfg.Seed.
// The same config and seed always yield an identical dataset.
func BuildDataset(cfg Config, rng *rand.Rand) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = newRand(cfg.Seed)
	}

	b := &datasetBuilder{
		cfg: cfg,
		pal: pal,
		rng: rng,
		gen: NewGenerator(cfg, rng),
		d:   &Dataset{},
	}
	b.foliage()
	b.gifts()
	b.spheres()
	b.misc()
	b.bigStar()
	return b.d, nil
}

type datasetBuilder struct {
	cfg Config
	pal Palette
	rng *rand.Rand
	gen *Generator
	d   *Dataset
}

// add appends p to its category, assigning the next slot as its ID.
func (b *datasetBuilder) add(p Particle) {
	g := &b.d.groups[p.Category]
	p.ID = len(*g)
	*g = append(*g, p)
}

func (b *datasetBuilder) foliage() {
	n := b.cfg.NeedleCount
	b.d.groups[CategoryFoliage] = make([]Particle, 0, n)
	for i := range n {
		col := b.pal.EmeraldLight
		if b.rng.Float64() > 0.6 {
			col = b.pal.EmeraldDeep
		}
		b.add(Particle{
			Category:        CategoryFoliage,
			TreePosition:    b.gen.FoliagePosition(i, n),
			ScatterPosition: b.gen.ScatterPosition(),
			BaseRotation:    Euler{halfTurn.Random(b.rng), halfTurn.Random(b.rng), 0},
			RotationSpeed:   0.05,
			BaseScale:       foliageScale.Random(b.rng),
			Color:           col,
			Speed:           foliageSpeed.Random(b.rng),
			Phase:           fullTurn.Random(b.rng),
		})
	}
}

// gifts builds box and ribbon pairs. A ribbon shares its box's positions,
// rotation and scale so it sits on the box in both arrangements.
func (b *datasetBuilder) gifts() {
	n := b.cfg.GiftCount
	b.d.groups[CategoryBox] = make([]Particle, 0, n)
	b.d.groups[CategoryRibbon] = make([]Particle, 0, n+b.cfg.MiscCount)
	for range n {
		tree := b.gen.TreePosition(giftRatio.Random(b.rng), giftOffset)
		scatter := b.gen.ScatterPosition()
		scale := giftScale.Random(b.rng)
		col := b.pal.RedVelvet
		if b.rng.Float64() > 0.5 {
			col = b.pal.EmeraldDeep
		}
		rot := Euler{0, fullTurn.Random(b.rng), 0}

		b.add(Particle{
			Category:        CategoryBox,
			TreePosition:    tree,
			ScatterPosition: scatter,
			BaseRotation:    rot,
			RotationSpeed:   0.1,
			BaseScale:       scale,
			Color:           col,
			Speed:           giftSpeed.Random(b.rng),
			Phase:           giftPhase.Random(b.rng),
		})
		b.add(Particle{
			Category:        CategoryRibbon,
			TreePosition:    tree,
			ScatterPosition: scatter,
			BaseRotation:    rot,
			RotationSpeed:   0.1,
			BaseScale:       scale,
			Color:           b.pal.GoldWarm,
			Speed:           giftSpeed.Random(b.rng),
			Phase:           giftPhase.Random(b.rng),
		})
	}
}

func (b *datasetBuilder) spheres() {
	n := b.cfg.SphereCount
	b.d.groups[CategorySphere] = make([]Particle, 0, n)
	for i := range n {
		tree := b.gen.TreePosition(sphereRatio.Random(b.rng), sphereOffset)
		scatter := b.gen.ScatterPosition()

		col := b.pal.GoldMetallic
		switch rnd := b.rng.Float64(); {
		case rnd < 0.3:
			col = b.pal.RedVelvet
		case rnd < 0.6:
			col = b.pal.EmeraldLight
		}

		b.add(Particle{
			Category:        CategorySphere,
			TreePosition:    tree,
			ScatterPosition: scatter,
			BaseRotation:    Euler{halfTurn.Random(b.rng), halfTurn.Random(b.rng), 0},
			RotationSpeed:   sphereSpin.Random(b.rng),
			BaseScale:       0.35,
			Color:           col,
			Speed:           ornamentDrift.Random(b.rng),
			Phase:           float64(i),
		})
	}
}

// misc splits one pooled count 40/30/30 between cones, small stars and
// free-standing ribbons. Free ribbons land in the same buffer as the
// box-attached ones.
func (b *datasetBuilder) misc() {
	for i := range b.cfg.MiscCount {
		p := Particle{
			TreePosition:    b.gen.TreePosition(miscRatio.Random(b.rng), miscOffset),
			ScatterPosition: b.gen.ScatterPosition(),
		}
		kind := b.rng.Float64()
		p.BaseRotation = Euler{halfTurn.Random(b.rng), halfTurn.Random(b.rng), 0}
		p.RotationSpeed = miscSpin.Random(b.rng)
		p.Speed = ornamentDrift.Random(b.rng)
		p.Phase = float64(i)

		switch {
		case kind < 0.4:
			p.Category = CategoryCone
			p.BaseScale = 0.3
			p.Color = b.pal.GoldMetallic
		case kind < 0.7:
			p.Category = CategorySmallStar
			p.BaseScale = 0.4
			p.Color = b.pal.GoldWarm
		default:
			p.Category = CategoryRibbon
			p.BaseScale = 0.6
			p.Color = b.pal.GoldWarm
		}
		b.add(p)
	}
}

func (b *datasetBuilder) bigStar() {
	b.add(Particle{
		Category:        CategoryBigStar,
		TreePosition:    b.gen.TopPosition(),
		ScatterPosition: b.gen.ScatterPosition(),
		RotationSpeed:   0.5,
		BaseScale:       1.8,
		Color:           b.pal.GoldMetallic,
		Speed:           0.2,
	})
}

// Len returns the number of particles in category c.
func (d *Dataset) Len(c Category) int {
	if int(c) >= categoryCount {
		return 0
	}
	return len(d.groups[c])
}

// Total returns the number of particles across all categories.
func (d *Dataset) Total() int {
	n := 0
	for _, g := range d.groups {
		n += len(g)
	}
	return n
}

// At returns a copy of particle i of category c.
func (d *Dataset) At(c Category, i int) Particle {
	return d.groups[c][i]
}

// Particles returns a copy of every particle in category c, in slot order.
func (d *Dataset) Particles(c Category) []Particle {
	if int(c) >= categoryCount {
		return nil
	}
	out := make([]Particle, len(d.groups[c]))
	copy(out, d.groups[c])
	return out
}

// Star returns the big star record.
func (d *Dataset) Star() Particle {
	return d.groups[CategoryBigStar][0]
}
