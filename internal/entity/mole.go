package entity

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"moleattack/internal/theme"
)

// Mole is one clickable target sitting in a fixed hole. It is either
// hidden or active; an active mole auto-hides after VisibleFor.
type Mole struct {
	X, Y       float64 // hole center
	Radius     float64
	VisibleFor time.Duration

	active    bool
	spawnedAt time.Time
}

func NewMole(x, y, radius float64, visibleFor time.Duration) *Mole {
	return &Mole{
		X:          x,
		Y:          y,
		Radius:     radius,
		VisibleFor: visibleFor,
	}
}

func (m *Mole) Active() bool { return m.active }

// Activate shows the mole starting from the given time.
func (m *Mole) Activate(now time.Time) {
	m.active = true
	m.spawnedAt = now
}

// Deactivate hides the mole.
func (m *Mole) Deactivate() {
	m.active = false
}

// Update auto-hides the mole once it has been visible longer than
// VisibleFor. Called every frame while a session runs.
func (m *Mole) Update(now time.Time) {
	if m.active && now.Sub(m.spawnedAt) > m.VisibleFor {
		m.Deactivate()
	}
}

// Hit reports whether a click at (x, y) lands on this mole while it is
// active.
func (m *Mole) Hit(x, y int) bool {
	if !m.active {
		return false
	}
	dx := float64(x) - m.X
	dy := float64(y) - m.Y
	return dx*dx+dy*dy <= m.Radius*m.Radius
}

// DrawHole renders the static burrow: the theme sprite when present,
// otherwise a slightly larger dark circle.
func (m *Mole) DrawHole(screen *ebiten.Image, th *theme.Theme) {
	if sprite := th.HoleSprite(); sprite != nil {
		m.drawSprite(screen, sprite, m.Radius+8)
		return
	}
	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius)+8, th.Hole, true)
}

// Draw renders the mole if active.
func (m *Mole) Draw(screen *ebiten.Image, th *theme.Theme) {
	if !m.active {
		return
	}

	if sprite := th.MoleSprite(); sprite != nil {
		m.drawSprite(screen, sprite, m.Radius)
		return
	}

	px, py, r := float32(m.X), float32(m.Y), float32(m.Radius)
	dark := theme.Lerp(th.Mole, th.Hole, 0.7)

	// 1. Body
	vector.DrawFilledCircle(screen, px, py, r, th.Mole, true)

	// 2. Ears
	vector.DrawFilledCircle(screen, px-r*0.6, py-r*0.7, r*0.25, dark, true)
	vector.DrawFilledCircle(screen, px+r*0.6, py-r*0.7, r*0.25, dark, true)

	// 3. Eyes
	vector.DrawFilledCircle(screen, px-r*0.35, py-r*0.2, r*0.15, dark, true)
	vector.DrawFilledCircle(screen, px+r*0.35, py-r*0.2, r*0.15, dark, true)

	// 4. Snout
	vector.DrawFilledCircle(screen, px, py+r*0.25, r*0.2, dark, true)
}

func (m *Mole) drawSprite(screen *ebiten.Image, sprite *ebiten.Image, radius float64) {
	bounds := sprite.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*radius/w, 2*radius/h)
	op.GeoM.Translate(m.X-radius, m.Y-radius)
	screen.DrawImage(sprite, op)
}
