package evergreen

import "github.com/go-gl/mathgl/mgl32"

// Transform is the instantaneous pose of one instance.
//
// The animator keeps a single Transform as scratch space and reuses it for
// every particle of a frame; callers must not retain it.
type Transform struct {
	Position Vec3
	Rotation Euler
	Scale    Vec3
}

// Reset returns t to the identity pose.
func (t *Transform) Reset() {
	t.Position = Vec3{}
	t.Rotation = Euler{}
	t.Scale = Vec3{1, 1, 1}
}

// SetScalar sets a uniform scale.
func (t *Transform) SetScalar(s float64) {
	t.Scale = Vec3{s, s, s}
}

// Matrix composes the pose into a column-major model matrix.
//
// Composition order:
//
//	Translate(Position) * Rx * Ry * Rz * Scale
func (t *Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z))
	if t.Rotation != (Euler{}) {
		m = m.Mul4(mgl32.HomogRotate3DX(float32(t.Rotation.X)))
		m = m.Mul4(mgl32.HomogRotate3DY(float32(t.Rotation.Y)))
		m = m.Mul4(mgl32.HomogRotate3DZ(float32(t.Rotation.Z)))
	}
	return m.Mul4(mgl32.Scale3D(float32(t.Scale.X), float32(t.Scale.Y), float32(t.Scale.Z)))
}

// MatrixPosition extracts the translation column of a model matrix.
func MatrixPosition(m mgl32.Mat4) Vec3 {
	c := m.Col(3)
	return Vec3{float64(c[0]), float64(c[1]), float64(c[2])}
}

// MatrixScale extracts the per-axis scale of a model matrix without shear.
func MatrixScale(m mgl32.Mat4) Vec3 {
	return Vec3{
		float64(m.Col(0).Vec3().Len()),
		float64(m.Col(1).Vec3().Len()),
		float64(m.Col(2).Vec3().Len()),
	}
}
