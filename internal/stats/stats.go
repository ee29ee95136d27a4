// Package stats persists lifetime play statistics and the local
// leaderboard as a JSON file next to the binary.
package stats

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	FileName        = "moleattack_stats.json"
	LeaderboardSize = 10
)

// Entry is one finished session on the leaderboard.
type Entry struct {
	ID         string `json:"id"`
	Player     string `json:"player"`
	Difficulty string `json:"difficulty"`
	Theme      string `json:"theme"`
	Score      int    `json:"score"`
	PlayedAt   int64  `json:"played_at"` // unix seconds
}

// NewEntry stamps a leaderboard entry for a session that just ended.
func NewEntry(player, difficulty, themeName string, score int) Entry {
	return Entry{
		ID:         uuid.New().String(),
		Player:     player,
		Difficulty: difficulty,
		Theme:      themeName,
		Score:      score,
		PlayedAt:   time.Now().Unix(),
	}
}

// Stats mirrors moleattack_stats.json.
type Stats struct {
	SessionsPlayed int     `json:"sessions_played"`
	TotalHits      int     `json:"total_hits"`
	TotalMisses    int     `json:"total_misses"`
	BestScore      int     `json:"best_score"`
	Leaderboard    []Entry `json:"leaderboard"`
}

// Load reads the stats file. A missing or corrupt file yields empty stats.
func Load(filename string) *Stats {
	s := &Stats{}
	data, err := os.ReadFile(filename)
	if err == nil {
		json.Unmarshal(data, s)
	}
	return s
}

// Save writes the stats as indented JSON.
func (s *Stats) Save(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Record adds a finished session: bumps the aggregates and inserts the
// entry into the leaderboard, which stays sorted by score descending
// (older entries win ties) and truncated to LeaderboardSize.
func (s *Stats) Record(e Entry) {
	s.SessionsPlayed++
	if e.Score > s.BestScore {
		s.BestScore = e.Score
	}

	s.Leaderboard = append(s.Leaderboard, e)
	sort.SliceStable(s.Leaderboard, func(i, j int) bool {
		return s.Leaderboard[i].Score > s.Leaderboard[j].Score
	})
	if len(s.Leaderboard) > LeaderboardSize {
		s.Leaderboard = s.Leaderboard[:LeaderboardSize]
	}
}

// Top returns up to n leaderboard entries, best first.
func (s *Stats) Top(n int) []Entry {
	if n > len(s.Leaderboard) {
		n = len(s.Leaderboard)
	}
	return s.Leaderboard[:n]
}
