package math

// Transform is a position, rotation and scale. Matrices are derived on every
// call, nothing is cached.
//
// The zero value has zero scale; use NewTransform for the identity.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: Vec3One}
}

// NewTransformFrom returns a transform with the given components.
func NewTransformFrom(position Vec3, rotation Quat, scale Vec3) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

// Clear resets t to the identity transform.
func (t *Transform) Clear() {
	*t = NewTransform()
}

// Translate moves the position by delta.
func (t *Transform) Translate(delta Vec3) {
	t.Position.AddSelf(delta)
}

// Rotate applies rotation after the current one.
func (t *Transform) Rotate(rotation Quat) {
	t.Rotation = rotation.Mul(t.Rotation)
}

// ScaleBy multiplies the scale component-wise.
func (t *Transform) ScaleBy(factor Vec3) {
	t.Scale.MulSelf(factor)
}

// TranslationMatrix returns a matrix holding only the position.
func (t Transform) TranslationMatrix() Mat4 {
	return Translate(t.Position.X, t.Position.Y, t.Position.Z)
}

// RotationMatrix returns a matrix holding only the rotation.
func (t Transform) RotationMatrix() Mat4 {
	return t.Rotation.ToMat4()
}

// ScaleMatrix returns a matrix holding only the scale.
func (t Transform) ScaleMatrix() Mat4 {
	return Scale(t.Scale.X, t.Scale.Y, t.Scale.Z)
}

// Matrix returns the combined transformation: scale first, then rotation,
// then translation.
func (t Transform) Matrix() Mat4 {
	return t.TranslationMatrix().Mul(t.RotationMatrix()).Mul(t.ScaleMatrix())
}

// TransformPoint applies the full transform to a point.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Matrix().TransformPoint(p)
}

// TransformDirection applies scale and rotation but not translation.
func (t Transform) TransformDirection(d Vec3) Vec3 {
	return t.Matrix().TransformDirection(d)
}
