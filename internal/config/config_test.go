package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name          string
		difficulty    Difficulty
		moleVisible   time.Duration
		spawnInterval time.Duration
		sessionLength time.Duration
	}{
		{"Easy", Easy, 1200 * time.Millisecond, 900 * time.Millisecond, 30 * time.Second},
		{"Medium", Medium, 900 * time.Millisecond, 700 * time.Millisecond, 25 * time.Second},
		{"Hard", Hard, 650 * time.Millisecond, 550 * time.Millisecond, 20 * time.Second},
		{"Unknown falls back to Easy", Difficulty("Nightmare"), 1200 * time.Millisecond, 900 * time.Millisecond, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.difficulty.Preset()
			if p.MoleVisible != tt.moleVisible {
				t.Errorf("MoleVisible = %v, want %v", p.MoleVisible, tt.moleVisible)
			}
			if p.SpawnInterval != tt.spawnInterval {
				t.Errorf("SpawnInterval = %v, want %v", p.SpawnInterval, tt.spawnInterval)
			}
			if p.SessionLength != tt.sessionLength {
				t.Errorf("SessionLength = %v, want %v", p.SessionLength, tt.sessionLength)
			}
		})
	}
}

func TestDifficultiesOrder(t *testing.T) {
	got := Difficulties()
	want := []Difficulty{Easy, Medium, Hard}
	if len(got) != len(want) {
		t.Fatalf("Difficulties() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Difficulties()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	want := NewDefault()
	if *cfg != *want {
		t.Errorf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error for corrupt file: %v", err)
	}
	if *cfg != *NewDefault() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	saved := &Config{PlayerName: "Dana", Difficulty: Hard, Theme: "Beach", Volume: 0.75}
	if err := Save(saved, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("round trip = %+v, want %+v", loaded, saved)
	}
}

func TestLoadClampsVolume(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"Above one", `{"volume": 2.5}`, 1},
		{"Below zero", `{"volume": -0.5}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Volume != tt.want {
				t.Errorf("Volume = %v, want %v", cfg.Volume, tt.want)
			}
		})
	}
}
