package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"far away", NewRect(100, 100, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenteredAndExpand(t *testing.T) {
	r := Centered(100, 50, 20, 10).Expand(5, 0)
	if r.X != 85 || r.Right() != 115 {
		t.Fatalf("horizontal span = [%v, %v], want [85, 115]", r.X, r.Right())
	}
	if r.Y != 45 || r.Bottom() != 55 {
		t.Fatalf("vertical span = [%v, %v], want [45, 55]", r.Y, r.Bottom())
	}
	if !r.Contains(100, 50) || r.Contains(115, 50) {
		t.Fatal("Contains disagrees with the box edges")
	}
}
