// Package geom holds the axis-aligned box math used for collision checks.
package geom

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered creates a rectangle of the given size centered on (cx, cy).
func Centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Expand grows the box by dx on both horizontal sides and dy on both vertical sides.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
