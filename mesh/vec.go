package mesh

// Vec3 is a point in mesh space. The cave surface lies in the XZ plane at
// Y = 0 and walls hang down along -Y.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a texture coordinate
type Vec2 struct {
	U, V float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

var (
	up      = Vec3{Y: 1}
	forward = Vec3{Z: 1}
	right   = Vec3{X: 1}
)
