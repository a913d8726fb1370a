package geometry

import "math"

// Plane3D is the plane {p | (p - Point)·Normal = 0}.
// Normal is never the zero vector for planes built with NewPlane3D.
type Plane3D struct {
	Point  Vector3D `json:"point" yaml:"point"`
	Normal Vector3D `json:"normal" yaml:"normal"`
}

// NewPlane3D creates a plane, failing with InvalidArgument on a zero or
// non-finite normal or a non-finite point.
func NewPlane3D(point, normal Vector3D) (Plane3D, error) {
	p := Plane3D{Point: point, Normal: normal}
	if err := p.Validate("plane"); err != nil {
		return Plane3D{}, err
	}
	return p, nil
}

// PlaneFromPoints creates the plane through three points.
// Collinear or coincident points fail with InvalidArgument.
func PlaneFromPoints(a, b, c Vector3D) (Plane3D, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.IsZero() {
		return Plane3D{}, invalidArg("plane_from_points", "points", "points are collinear")
	}
	return NewPlane3D(a, n)
}

// Validate checks finiteness and a non-zero normal.
func (p Plane3D) Validate(operand string) error {
	if err := p.Point.Validate(operand + ".point"); err != nil {
		return err
	}
	if err := p.Normal.Validate(operand + ".normal"); err != nil {
		return err
	}
	if p.Normal.IsZero() {
		return invalidArg("", operand+".normal", "normal is the zero vector")
	}
	return nil
}

// UnitNormal returns the normalized normal.
func (p Plane3D) UnitNormal() Vector3D {
	return p.Normal.unit()
}

// D returns the plane constant Normal·Point, so the plane is Normal·x = D.
func (p Plane3D) D() float64 {
	return p.Normal.Dot(p.Point)
}

// SignedDistanceToPoint is positive on the side Normal points to.
func (p Plane3D) SignedDistanceToPoint(q Vector3D) float64 {
	return q.Sub(p.Point).Dot(p.UnitNormal())
}

// DistanceToPoint returns the unsigned distance from q to the plane.
func (p Plane3D) DistanceToPoint(q Vector3D) float64 {
	return math.Abs(p.SignedDistanceToPoint(q))
}

// ProjectPoint returns the orthogonal projection of q onto the plane.
func (p Plane3D) ProjectPoint(q Vector3D) Vector3D {
	return q.Sub(p.UnitNormal().Scale(p.SignedDistanceToPoint(q)))
}

// IsParallelTo reports whether both planes have parallel normals.
func (p Plane3D) IsParallelTo(other Plane3D) bool {
	return AreParallel(p.Normal, other.Normal)
}
