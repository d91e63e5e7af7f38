package evergreen

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a 3D vector used for positions and offsets throughout the API.
// Y is up; the tree stands on the Y axis.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Horizontal returns the distance of v from the vertical (Y) axis.
func (v Vec3) Horizontal() float64 {
	return math.Hypot(v.X, v.Z)
}

// Lerp linearly interpolates between v (t=0) and to (t=1).
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		lerp(v.X, to.X, t),
		lerp(v.Y, to.Y, t),
		lerp(v.Z, to.Z, t),
	}
}

// Euler is an orientation in radians, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float64
}

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Range is a general-purpose min/max range used for random draws.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Category classifies a particle. It decides geometry, easing and default
// color, and never changes after the particle is built.
type Category uint8

const (
	CategoryFoliage   Category = iota // dense needle particles forming the tree body
	CategoryBox                       // gift boxes
	CategoryRibbon                    // ribbons, both box-attached and free-standing bows
	CategorySphere                    // baubles
	CategoryCone                      // elongated cone ornaments
	CategorySmallStar                 // small star ornaments
	CategoryBigStar                   // the single tree topper

	categoryCount = int(CategoryBigStar) + 1
)

// Categories lists every category in draw order.
var Categories = [categoryCount]Category{
	CategoryFoliage,
	CategoryBox,
	CategoryRibbon,
	CategorySphere,
	CategoryCone,
	CategorySmallStar,
	CategoryBigStar,
}

var categoryNames = [categoryCount]string{
	"foliage", "box", "ribbon", "sphere", "cone", "small-star", "big-star",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if int(c) < categoryCount {
		return categoryNames[c]
	}
	return "unknown"
}

// Arrangement is the spatial layout the particles are heading toward.
type Arrangement uint8

const (
	Scattered Arrangement = iota // free-floating cloud
	Assembled                    // tree silhouette
)

// String returns "scattered" or "assembled".
func (a Arrangement) String() string {
	if a == Assembled {
		return "assembled"
	}
	return "scattered"
}

// Target returns the progress value the arrangement pulls toward:
// 1 for Assembled, 0 for Scattered.
func (a Arrangement) Target() float64 {
	if a == Assembled {
		return 1
	}
	return 0
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
