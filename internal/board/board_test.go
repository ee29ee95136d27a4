package board

import (
	"image"
	"testing"
)

func TestNewLayout(t *testing.T) {
	b := New(800, 600, 3, 3)

	if len(b.Holes) != 9 {
		t.Fatalf("len(Holes) = %d, want 9", len(b.Holes))
	}
	if b.Radius != 44 {
		t.Errorf("Radius = %d, want 44", b.Radius)
	}

	// Row-major corners for an 800x600 screen.
	tests := []struct {
		name string
		idx  int
		want image.Point
	}{
		{"Top left", 0, image.Point{200, 166}},
		{"Top right", 2, image.Point{600, 166}},
		{"Center", 4, image.Point{400, 299}},
		{"Bottom left", 6, image.Point{200, 432}},
		{"Bottom right", 8, image.Point{600, 432}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if b.Holes[tt.idx] != tt.want {
				t.Errorf("Holes[%d] = %v, want %v", tt.idx, b.Holes[tt.idx], tt.want)
			}
		})
	}
}

func TestHolesStayInsideMargins(t *testing.T) {
	const width, height = 800, 600
	b := New(width, height, GridRows, GridCols)

	for i, hole := range b.Holes {
		if hole.X-b.Radius < width/8 || hole.X+b.Radius > width-width/8 {
			t.Errorf("hole %d at %v leaves the horizontal play area", i, hole)
		}
		if hole.Y-b.Radius < height/6 || hole.Y+b.Radius > height-height/6 {
			t.Errorf("hole %d at %v leaves the vertical play area", i, hole)
		}
	}
}

func TestRowMajorOrdering(t *testing.T) {
	b := New(800, 600, 3, 3)

	for i := 1; i < len(b.Holes); i++ {
		prev, cur := b.Holes[i-1], b.Holes[i]
		sameRow := i%b.Cols != 0
		if sameRow && cur.X <= prev.X {
			t.Errorf("hole %d (%v) not right of hole %d (%v)", i, cur, i-1, prev)
		}
		if !sameRow && cur.Y <= prev.Y {
			t.Errorf("hole %d (%v) not below hole %d (%v)", i, cur, i-1, prev)
		}
	}
}
