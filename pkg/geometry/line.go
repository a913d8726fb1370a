package geometry

// Line3D is the infinite line {Point + t*Direction}.
// Direction is never the zero vector for lines built with NewLine3D.
type Line3D struct {
	Point     Vector3D `json:"point" yaml:"point"`
	Direction Vector3D `json:"direction" yaml:"direction"`
}

// NewLine3D creates a line, failing with InvalidArgument on a zero or
// non-finite direction or a non-finite point.
func NewLine3D(point, direction Vector3D) (Line3D, error) {
	l := Line3D{Point: point, Direction: direction}
	if err := l.Validate("line"); err != nil {
		return Line3D{}, err
	}
	return l, nil
}

// LineThrough creates the line through a and b with direction b - a.
func LineThrough(a, b Vector3D) (Line3D, error) {
	return NewLine3D(a, b.Sub(a))
}

// Validate checks finiteness and a non-zero direction.
func (l Line3D) Validate(operand string) error {
	if err := l.Point.Validate(operand + ".point"); err != nil {
		return err
	}
	if err := l.Direction.Validate(operand + ".direction"); err != nil {
		return err
	}
	if l.Direction.IsZero() {
		return invalidArg("", operand+".direction", "direction is the zero vector")
	}
	return nil
}

// PointAtParameter returns Point + t*Direction.
func (l Line3D) PointAtParameter(t float64) Vector3D {
	return l.Point.Add(l.Direction.Scale(t))
}

// IsParallelTo reports whether both lines share a direction up to sign.
func (l Line3D) IsParallelTo(other Line3D) bool {
	return AreParallel(l.Direction, other.Direction)
}

// closestParameter returns t such that PointAtParameter(t) is the point of l
// closest to p.
func (l Line3D) closestParameter(p Vector3D) float64 {
	return p.Sub(l.Point).Dot(l.Direction) / l.Direction.MagnitudeSquared()
}
