package geometry

import "math"

// Vector3D is a 3D vector or point.
type Vector3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// NewVector3D creates a vector, rejecting NaN and infinite components.
func NewVector3D(x, y, z float64) (Vector3D, error) {
	v := Vector3D{x, y, z}
	if err := v.Validate("vector"); err != nil {
		return Vector3D{}, err
	}
	return v, nil
}

// Validate returns an InvalidArgument error naming operand if any component
// is NaN or infinite.
func (v Vector3D) Validate(operand string) error {
	if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
		return invalidArg("", operand, "component is NaN or infinite")
	}
	return nil
}

// Add returns v + other.
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector3D) Negate() Vector3D {
	return Vector3D{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// MagnitudeSquared returns |v|².
func (v Vector3D) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v Vector3D) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize returns the unit vector along v.
// It fails with InvalidArgument when |v| < Epsilon.
func (v Vector3D) Normalize() (Vector3D, error) {
	m := v.Magnitude()
	if m < Epsilon {
		return Vector3D{}, invalidArg("normalize", "vector", "cannot normalize zero vector")
	}
	return v.Scale(1 / m), nil
}

// unit is Normalize for callers that have already rejected zero vectors.
func (v Vector3D) unit() Vector3D {
	return v.Scale(1 / v.Magnitude())
}

// IsZero reports whether |v| < Epsilon.
func (v Vector3D) IsZero() bool {
	return v.Magnitude() < Epsilon
}

// Distance returns the distance between two points.
func (v Vector3D) Distance(other Vector3D) float64 {
	return v.Sub(other).Magnitude()
}

// Lerp returns v + t*(other - v).
func (v Vector3D) Lerp(other Vector3D, t float64) Vector3D {
	return v.Add(other.Sub(v).Scale(t))
}

// AngleWith returns the angle between v and other in radians, in [0, π].
// It fails with InvalidArgument if either vector is zero.
func (v Vector3D) AngleWith(other Vector3D) (float64, error) {
	if v.IsZero() {
		return 0, invalidArg("angle_with", "a", "zero vector has no direction")
	}
	if other.IsZero() {
		return 0, invalidArg("angle_with", "b", "zero vector has no direction")
	}
	return clampedAcos(v.Dot(other) / math.Sqrt(v.MagnitudeSquared()*other.MagnitudeSquared())), nil
}

// AreParallel reports whether |a × b| < Epsilon.
func AreParallel(a, b Vector3D) bool {
	return a.Cross(b).Magnitude() < Epsilon
}

// ArePerpendicular reports whether |a · b| < Epsilon.
func ArePerpendicular(a, b Vector3D) bool {
	return math.Abs(a.Dot(b)) < Epsilon
}
