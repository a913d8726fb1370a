package geometry

import "math"

// Quaternion represents a rotation when it has unit magnitude.
// W is the scalar part.
type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle creates a rotation of angle radians about axis.
func QuaternionFromAxisAngle(axis Vector3D, angle float64) (Quaternion, error) {
	n, err := axis.Normalize()
	if err != nil {
		return Quaternion{}, withOp(err, "quaternion_from_axis_angle")
	}
	s := math.Sin(angle / 2)
	return Quaternion{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: math.Cos(angle / 2)}, nil
}

// Validate rejects NaN and infinite components.
func (q Quaternion) Validate(operand string) error {
	if !finite(q.X) || !finite(q.Y) || !finite(q.Z) || !finite(q.W) {
		return invalidArg("", operand, "component is NaN or infinite")
	}
	return nil
}

// Dot returns the 4D dot product.
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Magnitude returns the 4D length.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.Dot(q))
}

// Scale returns q * s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Add returns q + other.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns q - other.
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Negate returns -q, which encodes the same rotation.
func (q Quaternion) Negate() Quaternion {
	return q.Scale(-1)
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Normalize returns q scaled to unit magnitude.
// It fails with InvalidArgument when |q| < Epsilon.
func (q Quaternion) Normalize() (Quaternion, error) {
	m := q.Magnitude()
	if m < Epsilon {
		return Quaternion{}, invalidArg("normalize", "quaternion", "cannot normalize zero quaternion")
	}
	return q.Scale(1 / m), nil
}

// Mul multiplies two quaternions (combines rotations).
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation of unit quaternion q to v.
func (q Quaternion) Rotate(v Vector3D) Vector3D {
	r := q.Mul(Quaternion{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Conjugate())
	return Vector3D{r.X, r.Y, r.Z}
}

// SameRotation reports whether q and other encode the same rotation,
// i.e. are equal up to sign within tol.
func (q Quaternion) SameRotation(other Quaternion, tol float64) bool {
	return math.Abs(math.Abs(q.Dot(other))-q.Magnitude()*other.Magnitude()) < tol
}

// SlerpResult is the result of SlerpDetail.
type SlerpResult struct {
	Result       Quaternion `json:"result" yaml:"result"`
	T            float64    `json:"t" yaml:"t"`
	AngleRadians float64    `json:"angle_radians" yaml:"angle_radians"`
	UsedLinear   bool       `json:"used_linear_interpolation" yaml:"used_linear_interpolation"`
	Magnitude    float64    `json:"magnitude" yaml:"magnitude"`
}

// Slerp interpolates between the rotations q1 and q2 along the shorter arc.
// Both inputs are normalized first; t must lie in [0, 1].
func Slerp(q1, q2 Quaternion, t float64) (Quaternion, error) {
	r, err := SlerpDetail(q1, q2, t)
	if err != nil {
		return Quaternion{}, err
	}
	return r.Result, nil
}

// SlerpDetail is Slerp that also reports how the result was computed.
func SlerpDetail(q1, q2 Quaternion, t float64) (SlerpResult, error) {
	const op = "quaternion_slerp"
	if err := q1.Validate("q1"); err != nil {
		return SlerpResult{}, withOp(err, op)
	}
	if err := q2.Validate("q2"); err != nil {
		return SlerpResult{}, withOp(err, op)
	}
	if !finite(t) || t < 0 || t > 1 {
		return SlerpResult{}, invalidArg(op, "t", "must be in [0, 1]")
	}
	a, err := q1.Normalize()
	if err != nil {
		return SlerpResult{}, invalidArg(op, "q1", "zero quaternion")
	}
	b, err := q2.Normalize()
	if err != nil {
		return SlerpResult{}, invalidArg(op, "q2", "zero quaternion")
	}

	dot := a.Dot(b)
	// q and -q are the same rotation; flip to take the shorter arc.
	if dot < 0 {
		b = b.Negate()
		dot = -dot
	}

	res := SlerpResult{T: t, AngleRadians: 2 * clampedAcos(dot)}
	var out Quaternion
	if dot > SlerpLinearThreshold {
		res.UsedLinear = true
		out = a.Add(b.Sub(a).Scale(t))
	} else {
		theta0 := math.Acos(dot)
		theta := theta0 * t
		sinTheta := math.Sin(theta)
		sinTheta0 := math.Sin(theta0)

		s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
		s1 := sinTheta / sinTheta0
		out = a.Scale(s0).Add(b.Scale(s1))
	}

	out, err = out.Normalize()
	if err != nil {
		return SlerpResult{}, degenerate(op, "result", "interpolated quaternion collapsed to zero")
	}
	res.Result = out
	res.Magnitude = out.Magnitude()
	return res, nil
}
