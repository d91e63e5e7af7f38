// Package termview draws an evergreen scene in a terminal with tcell.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

const (
	// DefaultExtent is the world half-height fitted to the screen.
	DefaultExtent = 12.0
	// DefaultAutoRotate is the orbit speed in rad/s at full assembly.
	DefaultAutoRotate = 0.3

	minScale = 1e-3
	// Instances deeper than farDepth behind the tree axis are drawn with
	// their color pulled farFade of the way toward the background.
	farDepth = 2.0
	farFade  = 0.5
	// cellAspect is the height of a terminal cell over its width.
	cellAspect = 2.0
)

var glyphs = [...]rune{
	evergreen.CategoryFoliage:   '*',
	evergreen.CategoryBox:       '■',
	evergreen.CategoryRibbon:    '+',
	evergreen.CategorySphere:    'o',
	evergreen.CategoryCone:      '▲',
	evergreen.CategorySmallStar: '✦',
	evergreen.CategoryBigStar:   '★',
}

// Glyph returns the rune used for category c.
func Glyph(c evergreen.Category) rune {
	if int(c) < len(glyphs) {
		return glyphs[c]
	}
	return '?'
}

// Renderer projects an InstanceBuffer onto a tcell screen with an
// orthographic camera orbiting the Y axis.
type Renderer struct {
	// Extent is the world half-height that fills the screen.
	Extent float64
	// Yaw is the orbit angle in radians.
	Yaw float64
	// AutoRotate is the yaw speed, scaled by morph progress.
	AutoRotate float64

	screen tcell.Screen
	buf    *evergreen.InstanceBuffer
	bg     tcell.Style
	bgCol  evergreen.Color
	styles [len(glyphs)][]tcell.Style
	far    [len(glyphs)][]tcell.Style
	styled bool

	width, height int
	depth         []float64
}

// NewRenderer attaches a fresh InstanceBuffer to scene and returns a
// Renderer drawing it to screen.
func NewRenderer(screen tcell.Screen, scene *evergreen.Scene) *Renderer {
	bgCol := scene.Palette().Background
	r, g, b := bgCol.RGBA8()
	rd := &Renderer{
		bgCol:      bgCol,
		Extent:     DefaultExtent,
		AutoRotate: DefaultAutoRotate,
		screen:     screen,
		buf:        scene.NewInstanceBuffer(),
		bg:         tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))),
	}
	rd.Resize()
	return rd
}

// Resize resyncs the depth buffer with the screen size.
func (rd *Renderer) Resize() {
	rd.width, rd.height = rd.screen.Size()
	n := rd.width * rd.height
	if cap(rd.depth) < n {
		rd.depth = make([]float64, n)
	}
	rd.depth = rd.depth[:n]
}

// Advance turns the orbit by dt seconds at the given progress.
func (rd *Renderer) Advance(dt, progress float64) {
	rd.Yaw += rd.AutoRotate * dt * progress
}

// Project maps a world point to a cell. depth grows toward the viewer.
func (rd *Renderer) Project(p evergreen.Vec3) (x, y int, depth float64, ok bool) {
	if rd.width == 0 || rd.height == 0 {
		return 0, 0, 0, false
	}
	sin, cos := math.Sincos(rd.Yaw)
	vx := p.X*cos - p.Z*sin
	vz := p.X*sin + p.Z*cos

	rows := float64(rd.height) / (2 * rd.Extent)
	fx := float64(rd.width)/2 + vx*rows*cellAspect
	fy := float64(rd.height)/2 - p.Y*rows
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= rd.width || y >= rd.height {
		return x, y, vz, false
	}
	return x, y, vz, true
}

// Draw clears the screen and plots every visible instance, keeping the
// nearest one per cell. It does not call Show.
func (rd *Renderer) Draw() {
	rd.screen.Fill(' ', rd.bg)
	for i := range rd.depth {
		rd.depth[i] = math.Inf(-1)
	}
	rd.refreshStyles()
	for _, c := range evergreen.Categories {
		mats := rd.buf.Matrices(c)
		styles, far := rd.styles[c], rd.far[c]
		for i, m := range mats {
			s := evergreen.MatrixScale(m)
			if s.X < minScale && s.Y < minScale {
				continue
			}
			x, y, d, ok := rd.Project(evergreen.MatrixPosition(m))
			if !ok {
				continue
			}
			cell := y*rd.width + x
			if d < rd.depth[cell] {
				continue
			}
			rd.depth[cell] = d
			style := styles[i]
			if d < -farDepth {
				style = far[i]
			}
			rd.screen.SetContent(x, y, Glyph(c), nil, style)
		}
	}
}

// refreshStyles rebuilds the near and far style of every slot from the
// buffer's colors. Colors are final once the buffer has committed a frame.
func (rd *Renderer) refreshStyles() {
	if rd.styled {
		return
	}
	for _, c := range evergreen.Categories {
		near, far := rd.styles[c][:0], rd.far[c][:0]
		for _, col := range rd.buf.Colors(c) {
			near = append(near, rd.cellStyle(c, col))
			far = append(far, rd.cellStyle(c, fadeColor(col, rd.bgCol)))
		}
		rd.styles[c], rd.far[c] = near, far
	}
	rd.styled = rd.buf.Frame() > 0
}

func (rd *Renderer) cellStyle(c evergreen.Category, col evergreen.Color) tcell.Style {
	r, g, b := col.RGBA8()
	style := rd.bg.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	if c == evergreen.CategoryBigStar {
		style = style.Bold(true)
	}
	return style
}

// fadeColor is the color of an instance at the back of the tree.
func fadeColor(col, bg evergreen.Color) evergreen.Color {
	return col.Blend(bg, farFade)
}
