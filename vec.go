package easyosc

// Aggregate is the adapter between fixed-size numeric types and the decoder.
// An aggregate destination consumes NumComponents consecutive float arguments
// from a message. The built-in vector and matrix types implement it on their
// pointer receivers; external math types can be adapted the same way.
type Aggregate interface {
	NumComponents() int
	Component(i int) float32
	SetComponent(i int, v float32)
}

// Vec2 is a 2D vector, decoded from two consecutive float arguments.
type Vec2 struct {
	X, Y float32
}

func (v *Vec2) NumComponents() int { return 2 }

func (v *Vec2) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	default:
		return v.Y
	}
}

func (v *Vec2) SetComponent(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	default:
		v.Y = f
	}
}

// Vec3 is a 3D vector, decoded from three consecutive float arguments.
type Vec3 struct {
	X, Y, Z float32
}

func (v *Vec3) NumComponents() int { return 3 }

func (v *Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vec3) SetComponent(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}

// Vec4 is a 4D vector, decoded from four consecutive float arguments.
type Vec4 struct {
	X, Y, Z, W float32
}

func (v *Vec4) NumComponents() int { return 4 }

func (v *Vec4) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

func (v *Vec4) SetComponent(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		v.W = f
	}
}

// Mat3 is a row-major 3x3 matrix, decoded from nine consecutive float
// arguments.
type Mat3 [9]float32

func (m *Mat3) NumComponents() int            { return len(m) }
func (m *Mat3) Component(i int) float32       { return m[i] }
func (m *Mat3) SetComponent(i int, f float32) { m[i] = f }

// Mat4 is a row-major 3x4 affine transform (rotation, scale and translation;
// the projective row is implied), decoded from twelve consecutive float
// arguments.
type Mat4 [12]float32

func (m *Mat4) NumComponents() int            { return len(m) }
func (m *Mat4) Component(i int) float32       { return m[i] }
func (m *Mat4) SetComponent(i int, f float32) { m[i] = f }

var (
	_ Aggregate = (*Vec2)(nil)
	_ Aggregate = (*Vec3)(nil)
	_ Aggregate = (*Vec4)(nil)
	_ Aggregate = (*Mat3)(nil)
	_ Aggregate = (*Mat4)(nil)
)
