package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Bitmap face scaled with GeoM; keeps the retro look without font assets.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

const (
	glyphW = 7
	glyphH = 13
)

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = glyphH * scale * 1.4
	text.Draw(screen, s, hudFace, op)
}

func drawTextCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = glyphH * scale * 1.4
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, hudFace, op)
}

func textWidth(s string, scale float64) float64 {
	return text.Advance(s, hudFace) * scale
}
