package bounds

import "github.com/Faultbox/midgard-geom/pkg/math"

// Sphere is a bounding sphere.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// NewSphere creates a sphere.
func NewSphere(center math.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// EmptySphere returns a cleared sphere.
func EmptySphere() Sphere {
	var s Sphere
	s.Clear()
	return s
}

// Clear resets s to the empty sphere.
func (s *Sphere) Clear() {
	s.Center = math.Vec3{}
	s.Radius = math.Inf(-1)
}

// IsEmpty reports whether the radius is negative.
func (s Sphere) IsEmpty() bool {
	return s.Radius < 0
}

// Volume returns 4/3 π r³.
func (s Sphere) Volume() float32 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// Intersects reports whether the spheres overlap; touching counts.
func (s Sphere) Intersects(other Sphere) bool {
	return s.Center.Distance(other.Center) <= s.Radius+other.Radius
}

// Contains reports whether p lies inside s, surface included.
func (s Sphere) Contains(p math.Vec3) bool {
	return s.Center.Distance(p) <= s.Radius
}

// ContainsSphere reports whether other lies entirely inside s.
func (s Sphere) ContainsSphere(other Sphere) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.Center.Distance(other.Center)+other.Radius <= s.Radius
}

// AddPoint grows s just enough to include p, keeping the far side fixed.
func (s *Sphere) AddPoint(p math.Vec3) {
	if s.IsEmpty() {
		s.Center = p
		s.Radius = 0
		return
	}
	d := s.Center.Distance(p)
	if d <= s.Radius {
		return
	}
	r := (s.Radius + d) / 2
	s.Center = s.Center.Add(p.Sub(s.Center).Scale((r - s.Radius) / d))
	s.Radius = r
}

// AABB returns the box enclosing s.
func (s Sphere) AABB() AABB {
	if s.IsEmpty() {
		return EmptyAABB()
	}
	r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
