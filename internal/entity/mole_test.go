package entity

import (
	"testing"
	"time"
)

func TestHit(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		activate bool
		x, y     int
		want     bool
	}{
		{"Center of active mole", true, 100, 100, true},
		{"Inside radius", true, 110, 110, true},
		{"On the rim", true, 120, 100, true},
		{"Outside radius", true, 125, 100, false},
		{"Center of hidden mole", false, 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMole(100, 100, 20, time.Second)
			if tt.activate {
				m.Activate(now)
			}
			if got := m.Hit(tt.x, tt.y); got != tt.want {
				t.Errorf("Hit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAutoHide(t *testing.T) {
	now := time.Now()
	m := NewMole(0, 0, 10, 800*time.Millisecond)
	m.Activate(now)

	m.Update(now.Add(500 * time.Millisecond))
	if !m.Active() {
		t.Fatal("mole hid before its visible duration elapsed")
	}

	m.Update(now.Add(900 * time.Millisecond))
	if m.Active() {
		t.Fatal("mole still active after its visible duration elapsed")
	}
}

func TestActivateRestartsVisibility(t *testing.T) {
	now := time.Now()
	m := NewMole(0, 0, 10, time.Second)

	m.Activate(now)
	m.Update(now.Add(1200 * time.Millisecond))
	if m.Active() {
		t.Fatal("expected mole hidden after timeout")
	}

	// Re-activating restarts the clock from the new spawn time.
	m.Activate(now.Add(2 * time.Second))
	m.Update(now.Add(2500 * time.Millisecond))
	if !m.Active() {
		t.Fatal("re-activated mole hid too early")
	}
}

func TestDeactivate(t *testing.T) {
	m := NewMole(0, 0, 10, time.Second)
	m.Activate(time.Now())
	m.Deactivate()
	if m.Active() {
		t.Fatal("Deactivate left the mole active")
	}
}
