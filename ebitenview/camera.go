package ebitenview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/evergreen"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera defaults match the framing of the full tree plus topper.
const (
	DefaultDistance   = 38.0
	DefaultFOV        = 32.0 // degrees, vertical
	DefaultPitch      = 0.12
	DefaultAutoRotate = 0.25 // rad/s at full assembly
	MinDistance       = 20.0
	MaxDistance       = 60.0

	zoomStep     = 4.0
	zoomDuration = 0.25
	nearPlane    = 0.1
	farPlane     = 200.0
)

// Camera is a perspective orbit camera looking at Target from Distance
// along the direction given by Yaw and Pitch.
type Camera struct {
	Target   evergreen.Vec3
	Distance float64
	// FOV is the vertical field of view in degrees.
	FOV   float64
	Yaw   float64
	Pitch float64
	// AutoRotate is the yaw speed in rad/s, scaled by the morph progress so
	// the camera only turns while the tree is assembled.
	AutoRotate float64

	width, height int

	zoom     *gween.Tween
	zoomGoal float64

	viewProj mgl32.Mat4
	focal    float64
	dirty    bool
}

// NewCamera creates a Camera with default framing for a w x h viewport.
func NewCamera(w, h int) *Camera {
	return &Camera{
		Distance:   DefaultDistance,
		FOV:        DefaultFOV,
		Pitch:      DefaultPitch,
		AutoRotate: DefaultAutoRotate,
		width:      w,
		height:     h,
		zoomGoal:   DefaultDistance,
		dirty:      true,
	}
}

// SetViewport resizes the viewport in pixels.
func (c *Camera) SetViewport(w, h int) {
	if w != c.width || h != c.height {
		c.width, c.height = w, h
		c.dirty = true
	}
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (w, h int) {
	return c.width, c.height
}

// ZoomTo animates Distance to d over duration seconds. d is clamped to
// [MinDistance, MaxDistance].
func (c *Camera) ZoomTo(d float64, duration float32, easeFn ease.TweenFunc) {
	d = math.Max(MinDistance, math.Min(d, MaxDistance))
	c.zoomGoal = d
	c.zoom = gween.New(float32(c.Distance), float32(d), duration, easeFn)
}

// ZoomBy moves the zoom goal by steps wheel notches. Positive steps move
// the camera closer.
func (c *Camera) ZoomBy(steps float64) {
	if steps == 0 {
		return
	}
	c.ZoomTo(c.zoomGoal-steps*zoomStep, zoomDuration, ease.OutQuad)
}

// update advances the zoom tween and the auto-rotation.
func (c *Camera) update(dt float32, progress float64) {
	if c.zoom != nil {
		val, done := c.zoom.Update(dt)
		c.Distance = float64(val)
		if done {
			c.zoom = nil
		}
		c.dirty = true
	}
	if c.AutoRotate != 0 && progress > 0 {
		c.Yaw += c.AutoRotate * float64(dt) * progress
		c.dirty = true
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() evergreen.Vec3 {
	cp := math.Cos(c.Pitch)
	return evergreen.Vec3{
		X: c.Target.X + c.Distance*cp*math.Sin(c.Yaw),
		Y: c.Target.Y + c.Distance*math.Sin(c.Pitch),
		Z: c.Target.Z + c.Distance*cp*math.Cos(c.Yaw),
	}
}

func (c *Camera) compute() {
	if !c.dirty {
		return
	}
	c.dirty = false

	aspect := float32(1)
	if c.height > 0 {
		aspect = float32(c.width) / float32(c.height)
	}
	fov := mgl32.DegToRad(float32(c.FOV))
	proj := mgl32.Perspective(fov, aspect, nearPlane, farPlane)

	eye := c.Eye()
	view := mgl32.LookAtV(
		mgl32.Vec3{float32(eye.X), float32(eye.Y), float32(eye.Z)},
		mgl32.Vec3{float32(c.Target.X), float32(c.Target.Y), float32(c.Target.Z)},
		mgl32.Vec3{0, 1, 0},
	)
	c.viewProj = proj.Mul4(view)
	c.focal = float64(c.height) / 2 / math.Tan(float64(fov)/2)
}

// Project maps a world point to screen pixels. depth is the distance along
// the view direction; ok is false for points behind the near plane.
func (c *Camera) Project(p evergreen.Vec3) (sx, sy, depth float64, ok bool) {
	c.compute()
	clip := c.viewProj.Mul4x1(mgl32.Vec4{float32(p.X), float32(p.Y), float32(p.Z), 1})
	w := float64(clip.W())
	if w < nearPlane {
		return 0, 0, w, false
	}
	nx := float64(clip.X()) / w
	ny := float64(clip.Y()) / w
	sx = (nx + 1) / 2 * float64(c.width)
	sy = (1 - ny) / 2 * float64(c.height)
	return sx, sy, w, true
}

// PixelsPerUnit returns how many screen pixels one world unit covers at
// the given depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	c.compute()
	if depth <= 0 {
		return 0
	}
	return c.focal / depth
}
