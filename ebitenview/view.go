// Package ebitenview draws an evergreen scene in an Ebitengine window.
//
// Each instance is projected through an orbit [Camera] and drawn as a flat
// shape whose size follows its matrix scale. Space or a left click flips
// the arrangement, the mouse wheel zooms, P takes a screenshot.
package ebitenview

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/evergreen"
)

// minScale is the instance scale below which nothing is drawn.
const minScale = 1e-4

// starGlint is how far a star's core is blended toward snow white.
const starGlint = 0.6

// shape is how a category is drawn.
type shape uint8

const (
	shapeCircle shape = iota
	shapeRect
	shapeStar
)

// style holds the flat shape and its world-space half extents at scale 1.
type style struct {
	shape  shape
	halfW  float64
	halfH  float64
	minPix float32
}

var styles = [...]style{
	evergreen.CategoryFoliage:   {shape: shapeCircle, halfW: 0.2, halfH: 0.2, minPix: 0.6},
	evergreen.CategoryBox:       {shape: shapeRect, halfW: 0.5, halfH: 0.5, minPix: 1},
	evergreen.CategoryRibbon:    {shape: shapeRect, halfW: 0.52, halfH: 0.08, minPix: 0.5},
	evergreen.CategorySphere:    {shape: shapeCircle, halfW: 0.35, halfH: 0.35, minPix: 1},
	evergreen.CategoryCone:      {shape: shapeRect, halfW: 0.15, halfH: 0.3, minPix: 0.5},
	evergreen.CategorySmallStar: {shape: shapeStar, halfW: 0.5, halfH: 0.5, minPix: 1},
	evergreen.CategoryBigStar:   {shape: shapeStar, halfW: 0.8, halfH: 0.8, minPix: 2},
}

// drawItem is one projected instance, ready to draw.
type drawItem struct {
	x, y   float32
	w, h   float32
	depth  float64
	shape  shape
	color  color.RGBA
	core   color.RGBA
	ribbon bool
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowStats     bool
	ScreenshotDir string
}

// View implements ebiten.Game for a Scene. It owns the scene's instance
// buffer and reads it after every Update.
type View struct {
	// ShowStats draws the FPS and progress overlay.
	ShowStats bool
	// ScreenshotDir is where PNG screenshots are written.
	ScreenshotDir string

	scene  *evergreen.Scene
	buf    *evergreen.InstanceBuffer
	camera *Camera
	bg     color.RGBA
	snow   evergreen.Color

	items []drawItem
	shots []string
	stats overlay
}

// New creates a View for scene. It attaches a fresh InstanceBuffer to the
// scene and routes scripted screenshots to the view.
func New(scene *evergreen.Scene, w, h int) *View {
	v := &View{
		ScreenshotDir: "screenshots",
		scene:         scene,
		buf:           scene.NewInstanceBuffer(),
		camera:        NewCamera(w, h),
		bg:            rgba(scene.Palette().Background),
		snow:          scene.Palette().SnowWhite,
	}
	scene.OnScreenshot = v.Screenshot
	return v
}

// Run opens a window and runs scene until it is closed.
func Run(scene *evergreen.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 720
	}
	v := New(scene, cfg.Width, cfg.Height)
	v.ShowStats = cfg.ShowStats
	if cfg.ScreenshotDir != "" {
		v.ScreenshotDir = cfg.ScreenshotDir
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Camera returns the view's camera.
func (v *View) Camera() *Camera {
	return v.camera
}

// Update handles input and advances the scene by one tick.
func (v *View) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if t := v.scene.Toggle(); t != nil {
			t.Flip()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.Screenshot("manual")
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		v.camera.ZoomBy(wy)
	}

	dt := 1.0 / float64(ebiten.TPS())
	v.scene.Update(dt)
	v.camera.update(float32(dt), v.scene.Progress())
	if v.ShowStats {
		v.stats.update(dt, v)
	}
	return nil
}

// Draw renders the last committed frame.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.bg)
	v.collect()
	for i := range v.items {
		drawShape(screen, &v.items[i])
	}
	if v.ShowStats {
		v.stats.draw(screen)
	}
	v.flushScreenshots(screen)
}

// Layout follows the window size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (v *View) arrangement() evergreen.Arrangement {
	if sig := v.scene.Signal(); sig != nil {
		return sig.Arrangement()
	}
	return evergreen.Assembled
}

// collect projects every visible instance into v.items, sorted far to
// near.
func (v *View) collect() {
	v.items = v.items[:0]
	for _, c := range evergreen.Categories {
		st := styles[c]
		mats := v.buf.Matrices(c)
		cols := v.buf.Colors(c)
		for i, m := range mats {
			scale := evergreen.MatrixScale(m)
			if scale.X < minScale && scale.Y < minScale {
				continue
			}
			sx, sy, depth, ok := v.camera.Project(evergreen.MatrixPosition(m))
			if !ok {
				continue
			}
			ppu := v.camera.PixelsPerUnit(depth)
			col := rgba(cols[i])
			core := col
			if st.shape == shapeStar {
				core = rgba(cols[i].Blend(v.snow, starGlint))
			}
			v.items = append(v.items, drawItem{
				x:      float32(sx),
				y:      float32(sy),
				w:      max(float32(st.halfW*scale.X*ppu), st.minPix),
				h:      max(float32(st.halfH*scale.Y*ppu), st.minPix),
				depth:  depth,
				shape:  st.shape,
				color:  col,
				core:   core,
				ribbon: c == evergreen.CategoryRibbon,
			})
		}
	}
	sort.SliceStable(v.items, func(a, b int) bool {
		return v.items[a].depth > v.items[b].depth
	})
}

func drawShape(dst *ebiten.Image, it *drawItem) {
	switch it.shape {
	case shapeCircle:
		vector.DrawFilledCircle(dst, it.x, it.y, it.w, it.color, true)
	case shapeRect:
		vector.DrawFilledRect(dst, it.x-it.w, it.y-it.h, 2*it.w, 2*it.h, it.color, true)
		if it.ribbon {
			// The bow's vertical band.
			vector.DrawFilledRect(dst, it.x-it.h, it.y-it.w, 2*it.h, 2*it.w, it.color, true)
		}
	case shapeStar:
		arm := it.w / 4
		vector.DrawFilledRect(dst, it.x-it.w, it.y-arm, 2*it.w, 2*arm, it.color, true)
		vector.DrawFilledRect(dst, it.x-arm, it.y-it.h, 2*arm, 2*it.h, it.color, true)
		vector.DrawFilledCircle(dst, it.x, it.y, it.w/2, it.core, true)
	}
}

func rgba(c evergreen.Color) color.RGBA {
	r, g, b := c.RGBA8()
	return color.RGBA{r, g, b, 0xff}
}
