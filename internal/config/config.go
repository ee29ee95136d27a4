package config

import (
	"encoding/json"
	"os"
	"time"
)

const FileName = "moleattack_config.json"

// Difficulty names a spawn/timing preset.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Preset holds the timing knobs for one difficulty.
type Preset struct {
	MoleVisible   time.Duration // how long a mole stays up
	SpawnInterval time.Duration // how often a mole appears
	SessionLength time.Duration // total game time
}

var presets = map[Difficulty]Preset{
	Easy:   {MoleVisible: 1200 * time.Millisecond, SpawnInterval: 900 * time.Millisecond, SessionLength: 30 * time.Second},
	Medium: {MoleVisible: 900 * time.Millisecond, SpawnInterval: 700 * time.Millisecond, SessionLength: 25 * time.Second},
	Hard:   {MoleVisible: 650 * time.Millisecond, SpawnInterval: 550 * time.Millisecond, SessionLength: 20 * time.Second},
}

// Preset returns the timing preset for d. Unknown names get the Easy preset.
func (d Difficulty) Preset() Preset {
	if p, ok := presets[d]; ok {
		return p
	}
	return presets[Easy]
}

// Difficulties lists the selectable difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Config mirrors moleattack_config.json.
type Config struct {
	PlayerName string     `json:"player_name"`
	Difficulty Difficulty `json:"difficulty"`
	Theme      string     `json:"theme"`
	Volume     float64    `json:"volume"` // 0..1 master volume
}

// NewDefault is the fallback when no config file exists or it cannot be read.
func NewDefault() *Config {
	return &Config{
		PlayerName: "Player1",
		Difficulty: Easy,
		Theme:      "Default",
		Volume:     0.5,
	}
}

// Load reads the config from disk. A missing or corrupt file is not an
// error; the defaults are returned instead.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	cfg := NewDefault()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return NewDefault(), nil
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	return cfg, nil
}

// Save writes the config to disk as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
