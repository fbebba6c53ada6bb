package bounds

import "github.com/Faultbox/midgard-geom/pkg/math"

// Rect is the 2D analogue of AABB.
type Rect struct {
	Min, Max math.Vec2
}

// NewRect creates a rectangle from its corner coordinates.
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{
		Min: math.Vec2{X: minX, Y: minY},
		Max: math.Vec2{X: maxX, Y: maxY},
	}
}

// EmptyRect returns a cleared rectangle.
func EmptyRect() Rect {
	var r Rect
	r.Clear()
	return r
}

// Clear resets r to the empty rectangle.
func (r *Rect) Clear() {
	inf := math.Inf(1)
	r.Min = math.Vec2{X: inf, Y: inf}
	r.Max = math.Vec2{X: -inf, Y: -inf}
}

// IsEmpty reports whether min exceeds max on any axis.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Center returns the midpoint.
func (r Rect) Center() math.Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Size returns width and height.
func (r Rect) Size() math.Vec2 {
	return r.Max.Sub(r.Min)
}

// Area returns width times height. A cleared rectangle reports +Inf.
func (r Rect) Area() float32 {
	s := r.Size()
	return math.Abs(s.X) * math.Abs(s.Y)
}

// Intersects reports whether the rectangles overlap; touching edges count.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return false
	}
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Expand returns the rectangle grown by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	d := math.Vec2{X: amount, Y: amount}
	return Rect{Min: r.Min.Sub(d), Max: r.Max.Add(d)}
}

// ExpandSelf grows r by amount on every side.
func (r *Rect) ExpandSelf(amount float32) {
	*r = r.Expand(amount)
}

// AddPoint grows r to include p.
func (r *Rect) AddPoint(p math.Vec2) {
	r.Min = r.Min.Min(p)
	r.Max = r.Max.Max(p)
}

// Union returns the smallest rectangle holding both.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}
