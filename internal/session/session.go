// Package session tracks one play-through: score, lives, and the countdown
// from the difficulty's session length to zero.
package session

import (
	"time"

	"github.com/google/uuid"

	"moleattack/internal/config"
)

const StartingLives = 3

// Session is created at Play and discarded when the player leaves the
// results screen.
type Session struct {
	ID         string
	Player     string
	Difficulty config.Difficulty
	Theme      string
	Score      int
	Lives      int

	remaining time.Duration
	lastTick  time.Time
	expired   bool
}

func New(player string, difficulty config.Difficulty, themeName string, now time.Time) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Player:     player,
		Difficulty: difficulty,
		Theme:      themeName,
		Lives:      StartingLives,
		remaining:  difficulty.Preset().SessionLength,
		lastTick:   now,
	}
}

// Tick advances the countdown by the wall-clock delta since the previous
// call. The remaining time never goes below zero and, once it reaches
// zero, stays there.
func (s *Session) Tick(now time.Time) {
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	if s.expired {
		return
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		s.remaining = 0
		s.expired = true
	}
}

func (s *Session) Remaining() time.Duration { return s.remaining }

// AddHit credits one successful whack.
func (s *Session) AddHit() {
	s.Score++
}

// Miss costs a life; lives never go below zero.
func (s *Session) Miss() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// Over reports whether the session has ended, either by the timer running
// out or by the player losing all lives.
func (s *Session) Over() bool {
	return s.expired || s.Lives <= 0
}
