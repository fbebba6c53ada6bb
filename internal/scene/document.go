// Package scene loads geometry documents and evaluates the queries they hold.
//
// A document declares named shapes and transforms, then a list of queries
// against them. Each query may carry an expected value; the report marks
// queries whose result differs from it by more than the configured epsilon.
package scene

import "errors"

// Shape types.
const (
	TypeAABB   = "aabb"
	TypeSphere = "sphere"
	TypeRect   = "rect"
	TypeCircle = "circle"
)

// Query operations.
const (
	OpIntersects = "intersects"
	OpContains   = "contains"
	OpVolume     = "volume"
	OpCenter     = "center"
	OpApply      = "apply"
	OpColor      = "color"
	OpRaycast    = "raycast"
)

var (
	ErrUnknownShape      = errors.New("unknown shape")
	ErrUnknownTransform  = errors.New("unknown transform")
	ErrUnknownOp         = errors.New("unknown query op")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrIncompatible      = errors.New("incompatible shapes")
	ErrBadExpectation    = errors.New("expectation does not match result type")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDuplicateName     = errors.New("duplicate name")
)

// Document is the decoded form of a scene file.
type Document struct {
	Shapes     []Shape     `yaml:"shapes" toml:"shapes"`
	Transforms []Transform `yaml:"transforms" toml:"transforms"`
	Queries    []Query     `yaml:"queries" toml:"queries"`
}

// Shape declares a bounding volume. Boxes and rects use Min/Max; spheres and
// circles use Center/Radius.
type Shape struct {
	Name   string    `yaml:"name" toml:"name"`
	Type   string    `yaml:"type" toml:"type"`
	Min    []float32 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max    []float32 `yaml:"max,omitempty" toml:"max,omitempty"`
	Center []float32 `yaml:"center,omitempty" toml:"center,omitempty"`
	Radius float32   `yaml:"radius,omitempty" toml:"radius,omitempty"`
}

// Transform declares a translate/rotate/scale transform. Missing parts
// default to identity.
type Transform struct {
	Name     string    `yaml:"name" toml:"name"`
	Position []float32 `yaml:"position,omitempty" toml:"position,omitempty"`
	Rotation *Rotation `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	Scale    []float32 `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// Rotation is an axis-angle rotation in degrees.
type Rotation struct {
	Axis    []float32 `yaml:"axis" toml:"axis"`
	Degrees float32   `yaml:"degrees" toml:"degrees"`
}

// Query is a single operation against the document's shapes.
//
//	intersects: A, B
//	contains:   A with Point or B
//	volume:     A (area for 2D shapes)
//	center:     A
//	apply:      Transform with Point (3 or 4 components) or an aabb A
//	color:      Hex
//	raycast:    A (aabb or sphere) from Point along Direction; +Inf on a miss
type Query struct {
	Op        string    `yaml:"op" toml:"op"`
	A         string    `yaml:"a,omitempty" toml:"a,omitempty"`
	B         string    `yaml:"b,omitempty" toml:"b,omitempty"`
	Point     []float32 `yaml:"point,omitempty" toml:"point,omitempty"`
	Transform string    `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Direction []float32 `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Hex       string    `yaml:"hex,omitempty" toml:"hex,omitempty"`
	Expect    any       `yaml:"expect,omitempty" toml:"expect,omitempty"`
}
