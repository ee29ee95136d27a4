package main

import (
	"fmt"
	"image"
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"moleattack/internal/config"
	"moleattack/internal/theme"
)

const maxNameLength = 16

type menuItem int

const (
	itemName menuItem = iota
	itemDifficulty
	itemTheme
	itemVolume
	itemPlay
	itemQuit
	menuItemCount
)

// Menu keeps the main-menu cursor; the values it edits live in the config.
type Menu struct {
	selected menuItem
	chars    []rune // scratch buffer for text input
}

func NewMenu() *Menu {
	return &Menu{selected: itemPlay}
}

// Menu row geometry, shared by drawing and click detection.
func menuRowRect(i menuItem) image.Rectangle {
	const (
		rowWidth  = 460
		rowHeight = 40
		firstY    = 250
	)
	x := (ScreenWidth - rowWidth) / 2
	y := firstY + int(i)*rowHeight
	return image.Rect(x, y, x+rowWidth, y+rowHeight)
}

func (g *Game) updateMenu() error {
	m := g.menu

	// Selection
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % menuItemCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.selected = (m.selected + menuItemCount - 1) % menuItemCount
	}

	// Left/right cycle the selectors
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.cycleMenuItem(m.selected, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.cycleMenuItem(m.selected, -1)
	}

	// Name entry
	if m.selected == itemName {
		m.chars = ebiten.AppendInputChars(m.chars[:0])
		for _, r := range m.chars {
			if unicode.IsPrint(r) && len(g.cfg.PlayerName) < maxNameLength {
				g.cfg.PlayerName += string(r)
			}
		}
		if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d == 1 || (d > 30 && d%3 == 0) {
			if name := []rune(g.cfg.PlayerName); len(name) > 0 {
				g.cfg.PlayerName = string(name[:len(name)-1])
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.activateMenuItem(m.selected); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i := menuItem(0); i < menuItemCount; i++ {
			if !image.Pt(x, y).In(menuRowRect(i)) {
				continue
			}
			m.selected = i
			switch i {
			case itemDifficulty, itemTheme, itemVolume:
				g.cycleMenuItem(i, 1)
			case itemPlay, itemQuit:
				if err := g.activateMenuItem(i); err != nil {
					return err
				}
			}
			break
		}
	}

	return nil
}

func (g *Game) activateMenuItem(i menuItem) error {
	switch i {
	case itemPlay:
		g.startCountdown()
	case itemQuit:
		g.mixer.Click()
		if err := config.Save(g.cfg, config.FileName); err != nil {
			log.Printf("config: save: %v", err)
		}
		g.saveStats()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) cycleMenuItem(i menuItem, delta int) {
	switch i {
	case itemDifficulty:
		diffs := config.Difficulties()
		idx := 0
		for j, d := range diffs {
			if d == g.cfg.Difficulty {
				idx = j
			}
		}
		g.cfg.Difficulty = diffs[(idx+delta+len(diffs))%len(diffs)]
		g.mixer.Click()
	case itemTheme:
		names := theme.Names()
		idx := 0
		for j, n := range names {
			if n == g.cfg.Theme {
				idx = j
			}
		}
		g.cfg.Theme = names[(idx+delta+len(names))%len(names)]
		g.mixer.Click()
	case itemVolume:
		g.cfg.Volume += 0.25 * float64(delta)
		if g.cfg.Volume < 0 {
			g.cfg.Volume = 0
		}
		if g.cfg.Volume > 1 {
			g.cfg.Volume = 1
		}
		g.mixer.SetVolume(g.cfg.Volume)
		g.mixer.Click()
	}
}

func (g *Game) menuRowLabel(i menuItem) string {
	switch i {
	case itemName:
		name := g.cfg.PlayerName
		if g.menu.selected == itemName && g.Tick%60 < 30 {
			name += "_"
		}
		return fmt.Sprintf("Name: %s", name)
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", g.cfg.Difficulty)
	case itemTheme:
		return fmt.Sprintf("Theme: < %s >", g.cfg.Theme)
	case itemVolume:
		return fmt.Sprintf("Volume: < %d%% >", int(g.cfg.Volume*100+0.5))
	case itemPlay:
		return "Play"
	case itemQuit:
		return "Quit"
	}
	return ""
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	th := theme.Get(g.cfg.Theme)
	drawBackground(screen, th)
	drawOverlay(screen, 120)

	cx := float64(ScreenWidth / 2)
	drawTextCentered(screen, "MOLE ATTACK", cx, 80, 5, th.Accent)
	drawTextCentered(screen, "Welcome!!!", cx, 180, 2, theme.TextColor())

	for i := menuItem(0); i < menuItemCount; i++ {
		r := menuRowRect(i)
		clr := theme.TextColor()
		if i == g.menu.selected {
			clr = th.Accent
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, th.Accent, false)
		}
		drawTextCentered(screen, g.menuRowLabel(i), cx, float64(r.Min.Y+8), 2, clr)
	}

	drawTextCentered(screen, "Arrows to navigate, Enter to select", cx, float64(ScreenHeight-50), 1.5, theme.TextColor())
}
