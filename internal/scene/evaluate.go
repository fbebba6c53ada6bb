package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/bounds"
	"github.com/Faultbox/midgard-geom/pkg/color"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// scope holds the resolved shapes and transforms of a document.
// Shapes are bounds.AABB, bounds.Sphere, bounds.Rect or bounds.Circle.
type scope struct {
	shapes     map[string]any
	kinds      map[string]string
	transforms map[string]math.Transform
}

// Evaluate resolves the document and runs every query in order. Any
// malformed shape, transform or query aborts evaluation with a wrapped error.
func Evaluate(doc *Document, epsilon float32) (*Report, error) {
	sc, err := resolve(doc)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]Result, 0, len(doc.Queries))}
	for i, q := range doc.Queries {
		value, err := sc.run(q)
		if err != nil {
			return nil, fmt.Errorf("query %d (%s): %w", i, q.Op, err)
		}

		res := Result{Query: describe(q), Value: formatValue(value), value: value}
		if q.Expect != nil {
			pass, err := matches(value, q.Expect, epsilon)
			if err != nil {
				return nil, fmt.Errorf("query %d (%s): %w", i, q.Op, err)
			}
			res.Pass = &pass
			if !pass {
				report.Failed++
			}
		}

		logger.Debug("query evaluated",
			zap.Int("index", i),
			zap.String("query", res.Query),
			zap.String("value", res.Value))
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func resolve(doc *Document) (*scope, error) {
	sc := &scope{
		shapes:     make(map[string]any, len(doc.Shapes)),
		kinds:      make(map[string]string, len(doc.Shapes)),
		transforms: make(map[string]math.Transform, len(doc.Transforms)),
	}

	for _, s := range doc.Shapes {
		if _, ok := sc.shapes[s.Name]; ok {
			return nil, fmt.Errorf("shape %q: %w", s.Name, ErrDuplicateName)
		}
		v, err := buildShape(s)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s.Name, err)
		}
		sc.shapes[s.Name] = v
		sc.kinds[s.Name] = s.Type
	}

	for _, t := range doc.Transforms {
		if _, ok := sc.transforms[t.Name]; ok {
			return nil, fmt.Errorf("transform %q: %w", t.Name, ErrDuplicateName)
		}
		v, err := buildTransform(t)
		if err != nil {
			return nil, fmt.Errorf("transform %q: %w", t.Name, err)
		}
		sc.transforms[t.Name] = v
	}

	return sc, nil
}

func buildShape(s Shape) (any, error) {
	switch s.Type {
	case TypeAABB:
		lo, err := vec3(s.Min, "min")
		if err != nil {
			return nil, err
		}
		hi, err := vec3(s.Max, "max")
		if err != nil {
			return nil, err
		}
		return bounds.AABB{Min: lo, Max: hi}, nil
	case TypeRect:
		lo, err := vec2(s.Min, "min")
		if err != nil {
			return nil, err
		}
		hi, err := vec2(s.Max, "max")
		if err != nil {
			return nil, err
		}
		return bounds.Rect{Min: lo, Max: hi}, nil
	case TypeSphere:
		c, err := vec3(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return bounds.NewSphere(c, s.Radius), nil
	case TypeCircle:
		c, err := vec2(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return bounds.NewCircle(c, s.Radius), nil
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnknownShape, s.Type)
	}
}

func buildTransform(t Transform) (math.Transform, error) {
	tr := math.NewTransform()

	if t.Position != nil {
		p, err := vec3(t.Position, "position")
		if err != nil {
			return tr, err
		}
		tr.Position = p
	}
	if t.Scale != nil {
		s, err := vec3(t.Scale, "scale")
		if err != nil {
			return tr, err
		}
		tr.Scale = s
	}
	if t.Rotation != nil {
		axis, err := vec3(t.Rotation.Axis, "rotation axis")
		if err != nil {
			return tr, err
		}
		tr.Rotation = math.QuatFromAxisAngle(axis.Normalize(), math.Radians(t.Rotation.Degrees))
	}
	return tr, nil
}

func (sc *scope) shape(name string) (any, error) {
	v, ok := sc.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return v, nil
}

func (sc *scope) pair(q Query) (any, any, error) {
	a, err := sc.shape(q.A)
	if err != nil {
		return nil, nil, err
	}
	b, err := sc.shape(q.B)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (sc *scope) incompatible(op string, q Query) error {
	if q.B == "" {
		return fmt.Errorf("%w: %s on %s", ErrIncompatible, op, sc.kinds[q.A])
	}
	return fmt.Errorf("%w: %s %s with %s", ErrIncompatible, op, sc.kinds[q.A], sc.kinds[q.B])
}

func (sc *scope) run(q Query) (any, error) {
	switch q.Op {
	case OpIntersects:
		return sc.intersects(q)
	case OpContains:
		if q.Point != nil {
			return sc.containsPoint(q)
		}
		return sc.containsShape(q)
	case OpVolume:
		return sc.volume(q)
	case OpCenter:
		return sc.center(q)
	case OpApply:
		return sc.apply(q)
	case OpColor:
		return color.FromHex(q.Hex), nil
	case OpRaycast:
		return sc.raycast(q)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, q.Op)
	}
}

func (sc *scope) intersects(q Query) (any, error) {
	a, b, err := sc.pair(q)
	if err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case bounds.AABB:
		switch b := b.(type) {
		case bounds.AABB:
			return a.Intersects(b), nil
		case bounds.Sphere:
			return a.IntersectsSphere(b), nil
		}
	case bounds.Sphere:
		switch b := b.(type) {
		case bounds.Sphere:
			return a.Intersects(b), nil
		case bounds.AABB:
			return b.IntersectsSphere(a), nil
		}
	case bounds.Rect:
		if b, ok := b.(bounds.Rect); ok {
			return a.Intersects(b), nil
		}
	case bounds.Circle:
		if b, ok := b.(bounds.Circle); ok {
			return a.Intersects(b), nil
		}
	}
	return nil, sc.incompatible(q.Op, q)
}

func (sc *scope) containsPoint(q Query) (any, error) {
	a, err := sc.shape(q.A)
	if err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case bounds.AABB:
		p, err := vec3(q.Point, "point")
		if err != nil {
			return nil, err
		}
		return a.Contains(p), nil
	case bounds.Sphere:
		p, err := vec3(q.Point, "point")
		if err != nil {
			return nil, err
		}
		return a.Contains(p), nil
	case bounds.Rect:
		p, err := vec2(q.Point, "point")
		if err != nil {
			return nil, err
		}
		return a.Contains(p), nil
	case bounds.Circle:
		p, err := vec2(q.Point, "point")
		if err != nil {
			return nil, err
		}
		return a.Contains(p), nil
	}
	return nil, sc.incompatible(q.Op, q)
}

func (sc *scope) containsShape(q Query) (any, error) {
	a, b, err := sc.pair(q)
	if err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case bounds.AABB:
		if b, ok := b.(bounds.AABB); ok {
			return a.ContainsAABB(b), nil
		}
	case bounds.Sphere:
		if b, ok := b.(bounds.Sphere); ok {
			return a.ContainsSphere(b), nil
		}
	case bounds.Rect:
		if b, ok := b.(bounds.Rect); ok {
			return a.ContainsRect(b), nil
		}
	case bounds.Circle:
		if b, ok := b.(bounds.Circle); ok {
			return a.ContainsCircle(b), nil
		}
	}
	return nil, sc.incompatible(q.Op, q)
}

func (sc *scope) volume(q Query) (any, error) {
	a, err := sc.shape(q.A)
	if err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case bounds.AABB:
		return a.Volume(), nil
	case bounds.Sphere:
		return a.Volume(), nil
	case bounds.Rect:
		return a.Area(), nil
	case bounds.Circle:
		return a.Area(), nil
	}
	return nil, sc.incompatible(q.Op, q)
}

func (sc *scope) center(q Query) (any, error) {
	a, err := sc.shape(q.A)
	if err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case bounds.AABB:
		return a.Center(), nil
	case bounds.Sphere:
		return a.Center, nil
	case bounds.Rect:
		return a.Center(), nil
	case bounds.Circle:
		return a.Center, nil
	}
	return nil, sc.incompatible(q.Op, q)
}

func (sc *scope) apply(q Query) (any, error) {
	t, ok := sc.transforms[q.Transform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, q.Transform)
	}

	if q.A != "" {
		a, err := sc.shape(q.A)
		if err != nil {
			return nil, err
		}
		box, ok := a.(bounds.AABB)
		if !ok {
			return nil, sc.incompatible(q.Op, q)
		}
		return box.Transform(t.Matrix()), nil
	}

	switch len(q.Point) {
	case 3:
		return t.TransformPoint(math.Vec3{X: q.Point[0], Y: q.Point[1], Z: q.Point[2]}), nil
	case 4:
		// w = 0 treats the point as a direction.
		v := math.Vec4{X: q.Point[0], Y: q.Point[1], Z: q.Point[2], W: q.Point[3]}
		return t.Matrix().MulVec4(v), nil
	default:
		return nil, fmt.Errorf("%w: point needs 3 or 4 components, got %d", ErrInvalidShape, len(q.Point))
	}
}

func (sc *scope) raycast(q Query) (any, error) {
	a, err := sc.shape(q.A)
	if err != nil {
		return nil, err
	}
	origin, err := vec3(q.Point, "point")
	if err != nil {
		return nil, err
	}
	dir, err := vec3(q.Direction, "direction")
	if err != nil {
		return nil, err
	}
	if dir == (math.Vec3{}) {
		return nil, fmt.Errorf("%w: direction is zero", ErrInvalidShape)
	}
	ray := bounds.NewRay(origin, dir)

	var (
		t   float32
		hit bool
	)
	switch a := a.(type) {
	case bounds.AABB:
		t, hit = ray.IntersectAABB(a)
	case bounds.Sphere:
		t, hit = ray.IntersectSphere(a)
	default:
		return nil, sc.incompatible(q.Op, q)
	}
	if !hit {
		return math.Inf(1), nil
	}
	return t, nil
}

func vec2(v []float32, field string) (math.Vec2, error) {
	if len(v) != 2 {
		return math.Vec2{}, fmt.Errorf("%w: %s needs 2 components, got %d", ErrInvalidShape, field, len(v))
	}
	return math.Vec2{X: v[0], Y: v[1]}, nil
}

func vec3(v []float32, field string) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidShape, field, len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
