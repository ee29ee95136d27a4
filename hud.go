package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"moleattack/internal/theme"
)

var (
	hudCardColor  = color.RGBA{20, 80, 40, 170}
	gameOverColor = color.RGBA{255, 100, 90, 255}
	buttonColor   = color.RGBA{10, 60, 40, 210}
)

// drawBackground stretches the theme background over the whole screen.
func drawBackground(screen *ebiten.Image, th *theme.Theme) {
	bg := th.Background(ScreenWidth, ScreenHeight)
	bounds := bg.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(ScreenWidth)/float64(bounds.Dx()), float64(ScreenHeight)/float64(bounds.Dy()))
	screen.DrawImage(bg, op)
}

// drawOverlay darkens the whole screen; alpha 0..255.
func drawOverlay(screen *ebiten.Image, alpha uint8) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.RGBA{0, 0, 0, alpha}, false)
}

// exitButtonRect is used both for drawing and for click detection so the
// clickable area always matches what is on screen.
func exitButtonRect() image.Rectangle {
	w := int(textWidth("Exit", 2)) + 20
	h := glyphH*2 + 12
	return image.Rect(ScreenWidth-10-w, 70, ScreenWidth-10, 70+h)
}

func drawExitButton(screen *ebiten.Image, th *theme.Theme) {
	r := exitButtonRect()
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, buttonColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, th.Accent, false)
	drawTextCentered(screen, "Exit", float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+6), 2, theme.TextColor())
}
