package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

func TestRayIntersectAABB(t *testing.T) {
	box := NewAABB(-1, -1, -1, 1, 1, 1)

	tests := []struct {
		name    string
		ray     Ray
		wantT   float32
		wantHit bool
	}{
		{"hit from front", NewRay(math.Vec3{Z: 5}, math.Vec3{Z: -1}), 4, true},
		{"hit from inside", NewRay(math.Vec3{}, math.Vec3{X: 1}), 1, true},
		{"pointing away", NewRay(math.Vec3{Z: 5}, math.Vec3{Z: 1}), 0, false},
		{"parallel outside slab", NewRay(math.Vec3{Y: 2, Z: 5}, math.Vec3{Z: -1}), 0, false},
		{"miss", NewRay(math.Vec3{X: 3, Z: 5}, math.Vec3{Y: 1, Z: -1}), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			assert.Equal(t, tt.wantHit, hit)
			assert.InDelta(t, tt.wantT, got, 1e-6)
		})
	}

	_, hit := NewRay(math.Vec3{}, math.Vec3{X: 1}).IntersectAABB(EmptyAABB())
	assert.False(t, hit)
}

func TestRayWithoutDirection(t *testing.T) {
	r := NewRay(math.Vec3{}, math.Vec3{})
	assert.Equal(t, math.Vec3{}, r.Direction)

	d, hit := r.IntersectAABB(NewAABB(-1, -1, -1, 1, 1, 1))
	assert.False(t, hit)
	assert.Zero(t, d)

	d, hit = r.IntersectSphere(NewSphere(math.Vec3{}, 2))
	assert.False(t, hit)
	assert.Zero(t, d)
}

func TestRayIntersectSphere(t *testing.T) {
	s := NewSphere(math.Vec3{X: 10}, 2)

	d, hit := NewRay(math.Vec3{}, math.Vec3{X: 1}).IntersectSphere(s)
	assert.True(t, hit)
	assert.InDelta(t, 8, d, 1e-6)

	d, hit = NewRay(math.Vec3{X: 10}, math.Vec3{Y: 1}).IntersectSphere(s)
	assert.True(t, hit)
	assert.InDelta(t, 2, d, 1e-6)

	_, hit = NewRay(math.Vec3{}, math.Vec3{X: -1}).IntersectSphere(s)
	assert.False(t, hit)

	_, hit = NewRay(math.Vec3{}, math.Vec3{X: 1}).IntersectSphere(EmptySphere())
	assert.False(t, hit)
}

func TestRayIntersectPlaneY(t *testing.T) {
	r := NewRay(math.Vec3{X: 1, Y: 10, Z: 2}, math.Vec3{X: 1, Y: -1})
	x, z, ok := r.IntersectPlaneY(0)
	assert.True(t, ok)
	assert.InDelta(t, 11, x, 1e-5)
	assert.InDelta(t, 2, z, 1e-5)

	_, _, ok = NewRay(math.Vec3{Y: 10}, math.Vec3{X: 1}).IntersectPlaneY(0)
	assert.False(t, ok, "parallel")
	_, _, ok = NewRay(math.Vec3{Y: 10}, math.Vec3{Y: 1}).IntersectPlaneY(0)
	assert.False(t, ok, "behind")
}

func TestScreenToRay(t *testing.T) {
	proj := math.Perspective(math.Radians(60), 1, 0.1, 100)
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(50, 50, 100, 100, inv)
	assert.True(t, r.Direction.Compare(math.Vec3{Z: -1}, 1e-3), "direction %v", r.Direction)

	d, hit := r.IntersectAABB(NewAABB(-1, -1, -1, 1, 1, 1))
	assert.True(t, hit)
	assert.InDelta(t, 4-0.1, d, 1e-2)
}
