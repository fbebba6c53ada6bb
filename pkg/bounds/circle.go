package bounds

import "github.com/Faultbox/midgard-geom/pkg/math"

// Circle is the 2D analogue of Sphere.
type Circle struct {
	Center math.Vec2
	Radius float32
}

// NewCircle creates a circle.
func NewCircle(center math.Vec2, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

// EmptyCircle returns a cleared circle.
func EmptyCircle() Circle {
	var c Circle
	c.Clear()
	return c
}

// Clear resets c to the empty circle.
func (c *Circle) Clear() {
	c.Center = math.Vec2{}
	c.Radius = math.Inf(-1)
}

// IsEmpty reports whether the radius is negative.
func (c Circle) IsEmpty() bool {
	return c.Radius < 0
}

// Area returns π r².
func (c Circle) Area() float32 {
	return math.Pi * c.Radius * c.Radius
}

// Intersects reports whether the circles overlap; touching counts.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.Distance(other.Center) <= c.Radius+other.Radius
}

// Contains reports whether p lies inside c, edge included.
func (c Circle) Contains(p math.Vec2) bool {
	return c.Center.Distance(p) <= c.Radius
}

// ContainsCircle reports whether other lies entirely inside c.
func (c Circle) ContainsCircle(other Circle) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	return c.Center.Distance(other.Center)+other.Radius <= c.Radius
}

// Rect returns the rectangle enclosing c.
func (c Circle) Rect() Rect {
	if c.IsEmpty() {
		return EmptyRect()
	}
	r := math.Vec2{X: c.Radius, Y: c.Radius}
	return Rect{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}
