package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen Constants
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Mole Attack"
)

func main() {
	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	game := NewGame()

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
