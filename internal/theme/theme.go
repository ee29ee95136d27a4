// Package theme defines the selectable visual themes: background gradient
// colors, the mole/hole palette, and optional sprite overrides loaded from
// the assets directory next to the binary.
package theme

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG format
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Theme describes one visual preset. Themes with a sprite prefix may be
// overridden by images on disk; when an image is missing or unreadable the
// gradient/vector fallback is used. The Default theme has no prefix and
// always draws gradient and circles.
type Theme struct {
	Name     string
	BgTop    color.RGBA
	BgBottom color.RGBA
	Mole     color.RGBA
	Hole     color.RGBA
	Accent   color.RGBA

	prefix     string // assets/images/<prefix>_{bg,mole,hole}.png; empty for none
	bg         *ebiten.Image
	moleSprite *ebiten.Image
	holeSprite *ebiten.Image
	loaded     bool
}

var (
	textColor = color.RGBA{0xf5, 0xf5, 0xeb, 0xff}

	registry = []*Theme{
		{
			Name:     "Default",
			BgTop:    color.RGBA{10, 70, 50, 0xff},
			BgBottom: color.RGBA{230, 140, 70, 0xff},
			Mole:     color.RGBA{150, 90, 50, 0xff},
			Hole:     color.RGBA{90, 55, 30, 0xff},
			Accent:   color.RGBA{255, 220, 130, 0xff},
		},
		{
			Name:     "Jungle",
			BgTop:    color.RGBA{10, 60, 40, 0xff},
			BgBottom: color.RGBA{40, 100, 60, 0xff},
			Mole:     color.RGBA{120, 100, 60, 0xff},
			Hole:     color.RGBA{50, 40, 20, 0xff},
			Accent:   color.RGBA{180, 240, 140, 0xff},
			prefix:   "jungle",
		},
		{
			Name:     "Beach",
			BgTop:    color.RGBA{30, 140, 200, 0xff},
			BgBottom: color.RGBA{240, 220, 160, 0xff},
			Mole:     color.RGBA{190, 130, 80, 0xff},
			Hole:     color.RGBA{170, 140, 90, 0xff},
			Accent:   color.RGBA{255, 240, 180, 0xff},
			prefix:   "beach",
		},
		{
			Name:     "Desert",
			BgTop:    color.RGBA{180, 140, 80, 0xff},
			BgBottom: color.RGBA{240, 200, 130, 0xff},
			Mole:     color.RGBA{140, 90, 40, 0xff},
			Hole:     color.RGBA{110, 80, 40, 0xff},
			Accent:   color.RGBA{255, 230, 150, 0xff},
			prefix:   "desert",
		},
	}
)

// TextColor is the shared HUD/menu text color.
func TextColor() color.RGBA { return textColor }

// Names lists the theme names in menu order.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// Get returns the named theme, falling back to the first (Default) entry
// for unknown names.
func Get(name string) *Theme {
	for _, t := range registry {
		if t.Name == name {
			return t
		}
	}
	return registry[0]
}

// Lerp interpolates between two colors; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: 0xff,
	}
}

// GradientRGBA renders a vertical gradient from top to bottom into a plain
// image, one color per row.
func GradientRGBA(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := Lerp(top, bottom, float64(y)/float64(height))
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Background returns the theme background at the given size: the on-disk
// image when present, otherwise the gradient baked once into an offscreen
// image and reused.
func (t *Theme) Background(width, height int) *ebiten.Image {
	t.load()
	if t.bg == nil {
		t.bg = ebiten.NewImageFromImage(GradientRGBA(width, height, t.BgTop, t.BgBottom))
	}
	return t.bg
}

// MoleSprite returns the theme mole image, or nil to draw vector circles.
func (t *Theme) MoleSprite() *ebiten.Image {
	t.load()
	return t.moleSprite
}

// HoleSprite returns the theme hole image, or nil to draw vector circles.
func (t *Theme) HoleSprite() *ebiten.Image {
	t.load()
	return t.holeSprite
}

func (t *Theme) load() {
	if t.loaded {
		return
	}
	t.loaded = true

	if t.prefix == "" {
		return
	}
	t.bg = loadImage(fmt.Sprintf("assets/images/%s_bg.png", t.prefix))
	t.moleSprite = loadImage(fmt.Sprintf("assets/images/%s_mole.png", t.prefix))
	t.holeSprite = loadImage(fmt.Sprintf("assets/images/%s_hole.png", t.prefix))
}

// loadImage reads a PNG from disk. Missing files are expected (themes ship
// without sprites and fall back to vector drawing); decode failures are
// logged and treated the same way.
func loadImage(path string) *ebiten.Image {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("theme: decoding %s: %v", path, err)
		return nil
	}

	return ebiten.NewImageFromImage(img)
}
