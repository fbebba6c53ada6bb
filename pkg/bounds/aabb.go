// Package bounds provides bounding volumes and their intersection and
// containment tests.
//
// Every shape has an empty form, produced by Clear and the Empty*
// constructors: boxes with min = +Inf and max = -Inf, spheres and circles
// with radius = -Inf. An empty shape contains nothing, is contained by
// nothing and intersects nothing. Growing an empty shape with AddPoint
// yields a degenerate shape at that point.
package bounds

import "github.com/Faultbox/midgard-geom/pkg/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// NewAABB creates a box from its corner coordinates.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: math.Vec3{X: minX, Y: minY, Z: minZ},
		Max: math.Vec3{X: maxX, Y: maxY, Z: maxZ},
	}
}

// AABBFromPoints returns the smallest box holding every point.
func AABBFromPoints(points ...math.Vec3) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b.AddPoint(p)
	}
	return b
}

// EmptyAABB returns a cleared box.
func EmptyAABB() AABB {
	var b AABB
	b.Clear()
	return b
}

// Clear resets b to the empty box.
func (b *AABB) Clear() {
	inf := math.Inf(1)
	b.Min = math.Vec3{X: inf, Y: inf, Z: inf}
	b.Max = math.Vec3{X: -inf, Y: -inf, Z: -inf}
}

// IsEmpty reports whether min exceeds max on any axis.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Volume returns the product of the extents. A cleared box reports +Inf.
func (b AABB) Volume() float32 {
	s := b.Size()
	return math.Abs(s.X) * math.Abs(s.Y) * math.Abs(s.Z)
}

// Intersects reports whether the boxes overlap; touching faces count.
func (b AABB) Intersects(other AABB) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y &&
		b.Min.Z <= other.Max.Z && other.Min.Z <= b.Max.Z
}

// IntersectsSphere reports whether the box and sphere overlap.
func (b AABB) IntersectsSphere(s Sphere) bool {
	if b.IsEmpty() || s.IsEmpty() {
		return false
	}
	closest := s.Center.Clamp(b.Min, b.Max)
	return closest.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// Contains reports whether p lies inside the box, boundary included.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsAABB reports whether other lies entirely inside b.
func (b AABB) ContainsAABB(other AABB) bool {
	if other.IsEmpty() {
		return false
	}
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Expand returns the box grown by amount on every side.
func (b AABB) Expand(amount float32) AABB {
	d := math.Vec3{X: amount, Y: amount, Z: amount}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// ExpandSelf grows b by amount on every side.
func (b *AABB) ExpandSelf(amount float32) {
	*b = b.Expand(amount)
}

// AddPoint grows b to include p.
func (b *AABB) AddPoint(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Union returns the smallest box holding both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// UnionSelf grows b to hold other.
func (b *AABB) UnionSelf(other AABB) {
	*b = b.Union(other)
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]math.Vec3 {
	var c [8]math.Vec3
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Transform returns the box holding b's corners transformed by m.
func (b AABB) Transform(m math.Mat4) AABB {
	if b.IsEmpty() {
		return b
	}
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out.AddPoint(m.TransformPoint(c))
	}
	return out
}

// BoundingSphere returns the sphere through the box corners.
func (b AABB) BoundingSphere() Sphere {
	if b.IsEmpty() {
		return EmptySphere()
	}
	return Sphere{Center: b.Center(), Radius: b.Size().Length() / 2}
}
