package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"moleattack/internal/board"
	"moleattack/internal/config"
	"moleattack/internal/entity"
	"moleattack/internal/session"
	"moleattack/internal/sfx"
	"moleattack/internal/stats"
	"moleattack/internal/theme"
)

// Define Modes
type GameMode int

const (
	ModeMenu GameMode = iota
	ModeCountdown
	ModePlaying
	ModeGameOver
)

const (
	countdownFrom = 3
	autoSaveEvery = 10 * time.Second
)

// Game holds global state
type Game struct {
	Mode GameMode
	Tick int

	cfg   *config.Config
	stats *stats.Stats
	mixer *sfx.Mixer
	menu  *Menu

	board      *board.Board
	moles      []*entity.Mole
	sess       *session.Session
	activeMole *entity.Mole
	lastSpawn  time.Time

	countdownStart time.Time
	lastSave       time.Time
}

func NewGame() *Game {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.NewDefault()
	}

	g := &Game{
		Mode:     ModeMenu,
		cfg:      cfg,
		stats:    stats.Load(stats.FileName),
		mixer:    sfx.NewMixer(cfg.Volume),
		menu:     NewMenu(),
		board:    board.New(ScreenWidth, ScreenHeight, board.GridRows, board.GridCols),
		lastSave: time.Now(),
	}
	g.mixer.PlayMusic()
	return g
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	// Mode-Specific Logic Router
	switch g.Mode {
	case ModeMenu:
		return g.updateMenu()
	case ModeCountdown:
		g.updateCountdown()
	case ModePlaying:
		g.updatePlaying()
	case ModeGameOver:
		g.updateGameOver()
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	// Mode-Specific Render Router
	switch g.Mode {
	case ModeMenu:
		g.drawMenu(screen)
	case ModeCountdown:
		g.drawCountdown(screen)
	case ModePlaying:
		g.drawPlaying(screen)
	case ModeGameOver:
		g.drawPlaying(screen)
		g.drawGameOver(screen)
	}
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Always render at 800x600, let Ebiten scale it up
	return ScreenWidth, ScreenHeight
}

// --- Countdown ---

func (g *Game) startCountdown() {
	g.mixer.Click()
	if err := config.Save(g.cfg, config.FileName); err != nil {
		log.Printf("config: save: %v", err)
	}
	g.countdownStart = time.Now()
	g.Mode = ModeCountdown
}

func (g *Game) updateCountdown() {
	if time.Since(g.countdownStart) >= countdownFrom*time.Second {
		g.startSession()
	}
}

func (g *Game) drawCountdown(screen *ebiten.Image) {
	th := theme.Get(g.cfg.Theme)
	drawBackground(screen, th)
	drawOverlay(screen, 150)

	number := countdownFrom - int(time.Since(g.countdownStart).Seconds())
	if number < 1 {
		number = 1
	}
	drawTextCentered(screen, fmt.Sprintf("%d", number), ScreenWidth/2, ScreenHeight/2-glyphH*5, 10, theme.TextColor())
}

// --- Playing ---

func (g *Game) startSession() {
	now := time.Now()
	preset := g.cfg.Difficulty.Preset()

	g.sess = session.New(g.cfg.PlayerName, g.cfg.Difficulty, g.cfg.Theme, now)

	g.moles = g.moles[:0]
	for _, hole := range g.board.Holes {
		g.moles = append(g.moles, entity.NewMole(float64(hole.X), float64(hole.Y), float64(g.board.Radius), preset.MoleVisible))
	}
	g.activeMole = nil
	g.lastSpawn = now
	g.Mode = ModePlaying
	g.mixer.PlayMusic()
}

// spawnMole hides the previous mole (if any) and pops up a random one.
func (g *Game) spawnMole(now time.Time) {
	if g.activeMole != nil {
		g.activeMole.Deactivate()
	}
	g.activeMole = g.moles[rand.Intn(len(g.moles))]
	g.activeMole.Activate(now)
}

func (g *Game) updatePlaying() {
	now := time.Now()
	g.sess.Tick(now)

	if g.sess.Over() {
		g.finishSession()
		return
	}

	if now.Sub(g.lastSpawn) > g.cfg.Difficulty.Preset().SpawnInterval {
		g.spawnMole(now)
		g.lastSpawn = now
	}
	for _, m := range g.moles {
		m.Update(now)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()

		// The Exit button works even mid-round and never counts as a miss.
		if image.Pt(x, y).In(exitButtonRect()) {
			g.mixer.Click()
			g.leaveToMenu()
			return
		}

		hit := false
		for _, m := range g.moles {
			if m.Hit(x, y) {
				m.Deactivate()
				g.sess.AddHit()
				g.stats.TotalHits++
				g.mixer.Splat()
				hit = true
				break
			}
		}
		if !hit {
			g.sess.Miss()
			g.stats.TotalMisses++
		}

		if g.sess.Over() {
			g.finishSession()
			return
		}
	}

	if time.Since(g.lastSave) > autoSaveEvery {
		g.saveStats()
		g.lastSave = time.Now()
	}
}

func (g *Game) finishSession() {
	g.mixer.PauseMusic()
	g.mixer.GameOver()
	g.stats.Record(stats.NewEntry(g.sess.Player, string(g.sess.Difficulty), g.sess.Theme, g.sess.Score))
	g.saveStats()
	g.Mode = ModeGameOver
}

func (g *Game) leaveToMenu() {
	g.sess = nil
	g.activeMole = nil
	g.Mode = ModeMenu
	g.mixer.PlayMusic()
}

func (g *Game) saveStats() {
	if err := g.stats.Save(stats.FileName); err != nil {
		log.Printf("stats: save: %v", err)
	}
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	th := theme.Get(g.sess.Theme)

	// 1. Background
	drawBackground(screen, th)

	// 2. Holes, then moles on top
	for _, m := range g.moles {
		m.DrawHole(screen, th)
	}
	for _, m := range g.moles {
		m.Draw(screen, th)
	}

	// 3. HUD card top-left: score, lives, time
	vector.DrawFilledRect(screen, 10, 10, 230, 110, hudCardColor, false)
	vector.StrokeRect(screen, 10, 10, 230, 110, 2, th.Accent, false)

	remaining := int(g.sess.Remaining().Seconds())
	drawText(screen, fmt.Sprintf("Score: %d", g.sess.Score), 24, 20, 2, theme.TextColor())
	drawText(screen, fmt.Sprintf("Lives: %d", g.sess.Lives), 24, 50, 2, theme.TextColor())
	drawText(screen, fmt.Sprintf("Time: %02d", remaining), 24, 80, 2, theme.TextColor())

	// 4. Player + difficulty top-right
	player := fmt.Sprintf("Player: %s", g.sess.Player)
	diff := fmt.Sprintf("Difficulty: %s", g.sess.Difficulty)
	drawText(screen, player, ScreenWidth-15-textWidth(player, 1.5), 12, 1.5, theme.TextColor())
	drawText(screen, diff, ScreenWidth-15-textWidth(diff, 1.5), 36, 1.5, theme.TextColor())

	// 5. Exit button
	drawExitButton(screen, th)
}

func (g *Game) updateGameOver() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.leaveToMenu()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(exitButtonRect()) {
			g.mixer.Click()
			g.leaveToMenu()
		}
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	drawOverlay(screen, 180)

	cx := float64(ScreenWidth / 2)
	drawTextCentered(screen, "GAME OVER", cx, 140, 5, gameOverColor)
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", g.sess.Score), cx, 240, 2, theme.TextColor())

	y := 300.0
	for i, e := range g.stats.Top(3) {
		line := fmt.Sprintf("%d. %s  %d  (%s)", i+1, e.Player, e.Score, e.Difficulty)
		drawTextCentered(screen, line, cx, y, 2, theme.TextColor())
		y += 32
	}

	drawTextCentered(screen, "Press ESC to return to menu", cx, y+40, 2, theme.TextColor())
}
