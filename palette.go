package evergreen

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the fixed colors particles are painted with.
type Palette struct {
	EmeraldDeep  Color
	EmeraldLight Color
	RedVelvet    Color
	GoldMetallic Color
	GoldWarm     Color
	SnowWhite    Color
	Background   Color
}

// PaletteHex is the hex-string form of a Palette, as found in config files.
type PaletteHex struct {
	EmeraldDeep  string `json:"emeraldDeep"`
	EmeraldLight string `json:"emeraldLight"`
	RedVelvet    string `json:"redVelvet"`
	GoldMetallic string `json:"goldMetallic"`
	GoldWarm     string `json:"goldWarm"`
	SnowWhite    string `json:"snowWhite"`
	Background   string `json:"background"`
}

// DefaultPaletteHex is the stock emerald, red and gold scheme.
var DefaultPaletteHex = PaletteHex{
	EmeraldDeep:  "#0B3A2E",
	EmeraldLight: "#105040",
	RedVelvet:    "#8B1A1A",
	GoldMetallic: "#FFD700",
	GoldWarm:     "#FFD983",
	SnowWhite:    "#FFF8E7",
	Background:   "#010806",
}

// DefaultPalette returns DefaultPaletteHex parsed into colors.
func DefaultPalette() Palette {
	p, err := DefaultPaletteHex.Parse()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse converts every hex entry into a Color. Empty entries fall back to
// the default palette.
func (h PaletteHex) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		def  string
		dst  *Color
	}{
		{"emeraldDeep", h.EmeraldDeep, DefaultPaletteHex.EmeraldDeep, &p.EmeraldDeep},
		{"emeraldLight", h.EmeraldLight, DefaultPaletteHex.EmeraldLight, &p.EmeraldLight},
		{"redVelvet", h.RedVelvet, DefaultPaletteHex.RedVelvet, &p.RedVelvet},
		{"goldMetallic", h.GoldMetallic, DefaultPaletteHex.GoldMetallic, &p.GoldMetallic},
		{"goldWarm", h.GoldWarm, DefaultPaletteHex.GoldWarm, &p.GoldWarm},
		{"snowWhite", h.SnowWhite, DefaultPaletteHex.SnowWhite, &p.SnowWhite},
		{"background", h.Background, DefaultPaletteHex.Background, &p.Background},
	}
	for _, f := range fields {
		hex := f.hex
		if hex == "" {
			hex = f.def
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = Color{R: c.R, G: c.G, B: c.B}
	}
	return p, nil
}

// RGBA8 returns the color as 8-bit channels, clamped to the valid range.
func (c Color) RGBA8() (r, g, b uint8) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
}

// Blend mixes c toward o by t in CIE-L*a*b* space.
func (c Color) Blend(o Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendLab(colorful.Color{R: o.R, G: o.G, B: o.B}, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B}
}
