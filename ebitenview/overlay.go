package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlay is the stats panel in the top-left corner. Its text refreshes
// about twice a second.
type overlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

func (o *overlay) update(dt float64, v *View) {
	o.since += dt
	if o.since < 0.5 && o.text != "" {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nprogress: %.2f -> %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), v.scene.Progress(), v.arrangement())
}

func (o *overlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// Enough for three DebugPrint lines.
		o.img = ebiten.NewImage(200, 52)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
