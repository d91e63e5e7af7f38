package evergreen

import (
	"errors"
	"math"
	"testing"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.NeedleCount = 500
	cfg.GiftCount = 40
	cfg.SphereCount = 40
	cfg.MiscCount = 60
	return cfg
}

func buildTestDataset(t *testing.T, cfg Config, seed uint64) *Dataset {
	t.Helper()
	d, err := BuildDataset(cfg, testRand(seed))
	if err != nil {
		t.Fatalf("BuildDataset: %v", err)
	}
	return d
}

func TestDatasetCounts(t *testing.T) {
	cfg := smallConfig()
	d := buildTestDataset(t, cfg, 1)

	if got := d.Len(CategoryFoliage); got != cfg.NeedleCount {
		t.Errorf("foliage = %d, want %d", got, cfg.NeedleCount)
	}
	if got := d.Len(CategoryBox); got != cfg.GiftCount {
		t.Errorf("boxes = %d, want %d", got, cfg.GiftCount)
	}
	if got := d.Len(CategorySphere); got != cfg.SphereCount {
		t.Errorf("spheres = %d, want %d", got, cfg.SphereCount)
	}
	if got := d.Len(CategoryBigStar); got != 1 {
		t.Errorf("big stars = %d, want 1", got)
	}

	// The misc pool is split between cones, small stars and free ribbons.
	misc := d.Len(CategoryCone) + d.Len(CategorySmallStar) + d.Len(CategoryRibbon) - cfg.GiftCount
	if misc != cfg.MiscCount {
		t.Errorf("misc total = %d, want %d", misc, cfg.MiscCount)
	}

	want := cfg.NeedleCount + 2*cfg.GiftCount + cfg.SphereCount + cfg.MiscCount + 1
	if got := d.Total(); got != want {
		t.Errorf("Total = %d, want %d", got, want)
	}
}

func TestDatasetIDsAreSlots(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 2)
	for _, c := range Categories {
		for i, p := range d.Particles(c) {
			if p.ID != i {
				t.Fatalf("%s slot %d has ID %d", c, i, p.ID)
			}
			if p.Category != c {
				t.Fatalf("%s slot %d has category %s", c, i, p.Category)
			}
		}
	}
}

func TestGiftRibbonsSitOnBoxes(t *testing.T) {
	cfg := smallConfig()
	d := buildTestDataset(t, cfg, 3)
	for i := range cfg.GiftCount {
		box := d.At(CategoryBox, i)
		ribbon := d.At(CategoryRibbon, i)
		if box.TreePosition != ribbon.TreePosition || box.ScatterPosition != ribbon.ScatterPosition {
			t.Fatalf("gift %d: ribbon positions differ from box", i)
		}
		if box.BaseRotation != ribbon.BaseRotation || box.BaseScale != ribbon.BaseScale {
			t.Fatalf("gift %d: ribbon rotation/scale differ from box", i)
		}
	}
}

func TestDatasetColors(t *testing.T) {
	cfg := DefaultConfig()
	pal := DefaultPalette()
	d := buildTestDataset(t, cfg, 4)

	for _, p := range d.Particles(CategoryFoliage) {
		if p.Color != pal.EmeraldDeep && p.Color != pal.EmeraldLight {
			t.Fatalf("foliage color %+v not emerald", p.Color)
		}
	}
	for _, p := range d.Particles(CategoryBox) {
		if p.Color != pal.EmeraldDeep && p.Color != pal.RedVelvet {
			t.Fatalf("box color %+v not emerald or red", p.Color)
		}
	}
	for _, p := range d.Particles(CategoryRibbon) {
		if p.Color != pal.GoldWarm {
			t.Fatalf("ribbon color %+v not warm gold", p.Color)
		}
	}
	gold := 0
	for _, p := range d.Particles(CategorySphere) {
		switch p.Color {
		case pal.GoldMetallic:
			gold++
		case pal.RedVelvet, pal.EmeraldLight:
		default:
			t.Fatalf("sphere color %+v not in palette", p.Color)
		}
	}
	if gold == 0 || gold == cfg.SphereCount {
		t.Errorf("sphere gold count = %d, want a mix", gold)
	}

	// 40% of needles are deep emerald; allow generous slack.
	deep := 0
	for _, p := range d.Particles(CategoryFoliage) {
		if p.Color == pal.EmeraldDeep {
			deep++
		}
	}
	if frac := float64(deep) / float64(cfg.NeedleCount); math.Abs(frac-0.4) > 0.05 {
		t.Errorf("deep emerald fraction = %v, want ~0.4", frac)
	}
}

// The weighted draws need a large pool for stable fractions.
func largePoolDataset(t *testing.T) (Config, *Dataset) {
	t.Helper()
	cfg := smallConfig()
	cfg.NeedleCount = 10
	cfg.GiftCount = 20000
	cfg.SphereCount = 20000
	cfg.MiscCount = 20000
	return cfg, buildTestDataset(t, cfg, 77)
}

func assertFraction(t *testing.T, name string, n, total int, want float64) {
	t.Helper()
	if frac := float64(n) / float64(total); math.Abs(frac-want) > 0.02 {
		t.Errorf("%s fraction = %v, want %v ± 0.02", name, frac, want)
	}
}

func TestMiscPoolSplit(t *testing.T) {
	cfg, d := largePoolDataset(t)
	free := d.Len(CategoryRibbon) - cfg.GiftCount
	assertFraction(t, "cone", d.Len(CategoryCone), cfg.MiscCount, 0.4)
	assertFraction(t, "small star", d.Len(CategorySmallStar), cfg.MiscCount, 0.3)
	assertFraction(t, "free ribbon", free, cfg.MiscCount, 0.3)
}

func TestFreeRibbons(t *testing.T) {
	cfg, d := largePoolDataset(t)
	gold := DefaultPalette().GoldWarm
	ribbons := d.Particles(CategoryRibbon)
	if len(ribbons) <= cfg.GiftCount {
		t.Fatal("no free ribbons built")
	}
	for i, p := range ribbons[cfg.GiftCount:] {
		slot := cfg.GiftCount + i
		if p.ID != slot {
			t.Fatalf("free ribbon at slot %d has ID %d", slot, p.ID)
		}
		assertNear(t, "free ribbon scale", p.BaseScale, 0.6)
		if p.Color != gold {
			t.Fatalf("free ribbon %d color %+v, want warm gold", slot, p.Color)
		}
	}
}

func TestGiftAndSphereColorSplit(t *testing.T) {
	cfg, d := largePoolDataset(t)
	pal := DefaultPalette()

	red := 0
	for _, p := range d.Particles(CategoryBox) {
		if p.Color == pal.RedVelvet {
			red++
		}
	}
	assertFraction(t, "red box", red, cfg.GiftCount, 0.5)

	counts := map[Color]int{}
	for _, p := range d.Particles(CategorySphere) {
		counts[p.Color]++
	}
	assertFraction(t, "red sphere", counts[pal.RedVelvet], cfg.SphereCount, 0.3)
	assertFraction(t, "emerald sphere", counts[pal.EmeraldLight], cfg.SphereCount, 0.3)
	assertFraction(t, "gold sphere", counts[pal.GoldMetallic], cfg.SphereCount, 0.4)
}

func TestMiscSubtypeScales(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 5)
	for _, p := range d.Particles(CategoryCone) {
		assertNear(t, "cone scale", p.BaseScale, 0.3)
	}
	for _, p := range d.Particles(CategorySmallStar) {
		assertNear(t, "small star scale", p.BaseScale, 0.4)
	}
}

func TestBigStarRecord(t *testing.T) {
	cfg := DefaultConfig()
	d := buildTestDataset(t, cfg, 6)
	star := d.Star()
	if star.TreePosition != (Vec3{0, cfg.TreeHeight/2 + 1, 0}) {
		t.Errorf("star tree position = %+v", star.TreePosition)
	}
	assertNear(t, "star scale", star.BaseScale, 1.8)
	if star.Category != CategoryBigStar {
		t.Errorf("star category = %s", star.Category)
	}
}

func TestDatasetSameSeedIdentical(t *testing.T) {
	cfg := smallConfig()
	a := buildTestDataset(t, cfg, 7)
	b := buildTestDataset(t, cfg, 7)
	for _, c := range Categories {
		pa, pb := a.Particles(c), b.Particles(c)
		if len(pa) != len(pb) {
			t.Fatalf("%s: %d vs %d particles", c, len(pa), len(pb))
		}
		for i := range pa {
			if pa[i] != pb[i] {
				t.Fatalf("%s slot %d differs between identical seeds", c, i)
			}
		}
	}
}

func TestDatasetDifferentSeedSameStructure(t *testing.T) {
	cfg := smallConfig()
	a := buildTestDataset(t, cfg, 8)
	b := buildTestDataset(t, cfg, 9)
	for _, c := range []Category{CategoryFoliage, CategoryBox, CategorySphere, CategoryBigStar} {
		if a.Len(c) != b.Len(c) {
			t.Errorf("%s: %d vs %d", c, a.Len(c), b.Len(c))
		}
	}
	if a.At(CategoryFoliage, 0).ScatterPosition == b.At(CategoryFoliage, 0).ScatterPosition {
		t.Error("different seeds produced the same scatter position")
	}
}

func TestDatasetConfigSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 99
	a, err := BuildDataset(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildDataset(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.At(CategorySphere, 3) != b.At(CategorySphere, 3) {
		t.Error("cfg.Seed did not make the build reproducible")
	}
}

func TestDatasetRejectsBadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.GiftCount = 0
	if _, err := BuildDataset(cfg, testRand(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestParticlesReturnsCopy(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 10)
	ps := d.Particles(CategoryBox)
	orig := ps[0].TreePosition
	ps[0].TreePosition = Vec3{100, 100, 100}
	if d.At(CategoryBox, 0).TreePosition != orig {
		t.Error("mutating Particles() result changed the dataset")
	}
}
