package bounds

import "github.com/Faultbox/midgard-geom/pkg/math"

// Ray is a half-line starting at Origin. Direction is normalized.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coords, Y flipped
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return NewRay(near, far.Sub(near))
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math.Abs(r.Direction.Y) < 0.001 {
		return 0, 0, false // parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // behind origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectAABB returns the distance to the first intersection with box.
// A ray starting inside the box reports the exit distance. A ray with no
// direction never hits.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	if box.IsEmpty() || r.Direction == (math.Vec3{}) {
		return 0, false
	}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin.At(axis)
		d := r.Direction.At(axis)
		lo, hi := box.Min.At(axis), box.Max.At(axis)

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectSphere returns the distance to the first intersection with s.
// A ray starting inside the sphere reports the exit distance.
func (r Ray) IntersectSphere(s Sphere) (t float32, hit bool) {
	if s.IsEmpty() || r.Direction == (math.Vec3{}) {
		return 0, false
	}

	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
