package geometry

import "math"

// PointLineDistance is the result of DistancePointLine.
type PointLineDistance struct {
	Distance      float64  `json:"distance" yaml:"distance"`
	ClosestPoint  Vector3D `json:"closest_point_on_line" yaml:"closest_point_on_line"`
	Parameter     float64  `json:"parameter" yaml:"parameter"`
	PointIsOnLine bool     `json:"point_is_on_line" yaml:"point_is_on_line"`
}

// DistancePointLine measures the perpendicular distance from p to l.
func DistancePointLine(p Vector3D, l Line3D) (PointLineDistance, error) {
	const op = "point_line_distance"
	if err := p.Validate("point"); err != nil {
		return PointLineDistance{}, withOp(err, op)
	}
	if err := l.Validate("line"); err != nil {
		return PointLineDistance{}, withOp(err, op)
	}

	t := l.closestParameter(p)
	closest := l.PointAtParameter(t)
	d := p.Sub(closest).Magnitude()
	return PointLineDistance{
		Distance:      d,
		ClosestPoint:  closest,
		Parameter:     t,
		PointIsOnLine: d < Epsilon,
	}, nil
}

// Side names the side of a plane a point lies on.
type Side string

const (
	SidePositive Side = "positive"
	SideNegative Side = "negative"
	SideOnPlane  Side = "on_plane"
)

// PointPlaneDistance is the result of DistancePointPlane.
type PointPlaneDistance struct {
	Distance       float64  `json:"distance" yaml:"distance"`
	SignedDistance float64  `json:"signed_distance" yaml:"signed_distance"`
	ClosestPoint   Vector3D `json:"closest_point_on_plane" yaml:"closest_point_on_plane"`
	Side           Side     `json:"side_of_plane" yaml:"side_of_plane"`
}

// DistancePointPlane measures the distance from p to the plane.
func DistancePointPlane(p Vector3D, pl Plane3D) (PointPlaneDistance, error) {
	const op = "point_plane_distance"
	if err := p.Validate("point"); err != nil {
		return PointPlaneDistance{}, withOp(err, op)
	}
	if err := pl.Validate("plane"); err != nil {
		return PointPlaneDistance{}, withOp(err, op)
	}

	sd := pl.SignedDistanceToPoint(p)
	res := PointPlaneDistance{
		Distance:       math.Abs(sd),
		SignedDistance: sd,
		ClosestPoint:   pl.ProjectPoint(p),
	}
	switch {
	case res.Distance < Epsilon:
		res.Side = SideOnPlane
	case sd > 0:
		res.Side = SidePositive
	default:
		res.Side = SideNegative
	}
	return res, nil
}

// LinePlaneDistance is the result of DistanceLinePlane.
type LinePlaneDistance struct {
	Distance   float64 `json:"distance" yaml:"distance"`
	Intersects bool    `json:"intersects" yaml:"intersects"`
	IsParallel bool    `json:"is_parallel" yaml:"is_parallel"`
}

// DistanceLinePlane is 0 when the line meets the plane and otherwise the
// distance from any point of the (parallel) line to the plane.
func DistanceLinePlane(l Line3D, p Plane3D) (LinePlaneDistance, error) {
	ix, err := LinePlaneIntersect(l, p)
	if err != nil {
		return LinePlaneDistance{}, withOp(err, "line_plane_distance")
	}
	res := LinePlaneDistance{Intersects: ix.Intersects, IsParallel: ix.IsParallel}
	if !ix.Intersects {
		res.Distance = p.DistanceToPoint(l.Point)
	}
	return res, nil
}

// Projection is the result of ProjectVector.
type Projection struct {
	ScalarProjection float64  `json:"scalar_projection" yaml:"scalar_projection"`
	VectorProjection Vector3D `json:"vector_projection" yaml:"vector_projection"`
	Rejection        Vector3D `json:"vector_rejection" yaml:"vector_rejection"`
	AngleRadians     float64  `json:"angle_radians" yaml:"angle_radians"`
	AngleDegrees     float64  `json:"angle_degrees" yaml:"angle_degrees"`
	AreParallel      bool     `json:"are_parallel" yaml:"are_parallel"`
	ArePerpendicular bool     `json:"are_perpendicular" yaml:"are_perpendicular"`
}

// ProjectVector projects a onto b. A zero a yields zero projections and a
// zero angle; a zero b fails with InvalidArgument.
func ProjectVector(a, b Vector3D) (Projection, error) {
	const op = "vector_projection"
	if err := a.Validate("a"); err != nil {
		return Projection{}, withOp(err, op)
	}
	if err := b.Validate("b"); err != nil {
		return Projection{}, withOp(err, op)
	}
	if b.IsZero() {
		return Projection{}, invalidArg(op, "b", "cannot project onto the zero vector")
	}

	ab := a.Dot(b)
	proj := b.Scale(ab / b.MagnitudeSquared())
	res := Projection{
		ScalarProjection: ab / b.Magnitude(),
		VectorProjection: proj,
		Rejection:        a.Sub(proj),
		AreParallel:      AreParallel(a, b),
		ArePerpendicular: ArePerpendicular(a, b),
	}
	if !a.IsZero() {
		angle, err := a.AngleWith(b)
		if err != nil {
			return Projection{}, withOp(err, op)
		}
		res.AngleRadians = angle
		res.AngleDegrees = Degrees(angle)
	}
	return res, nil
}

// LineProjection is the result of ProjectPointOntoLine.
type LineProjection struct {
	ProjectedPoint Vector3D `json:"projected_point" yaml:"projected_point"`
	Distance       float64  `json:"distance" yaml:"distance"`
	Parameter      float64  `json:"parameter" yaml:"parameter"`
	PointWasOnLine bool     `json:"point_was_on_line" yaml:"point_was_on_line"`
}

// ProjectPointOntoLine returns the foot of the perpendicular from p to l.
func ProjectPointOntoLine(p Vector3D, l Line3D) (LineProjection, error) {
	d, err := DistancePointLine(p, l)
	if err != nil {
		return LineProjection{}, withOp(err, "project_point_line")
	}
	return LineProjection{
		ProjectedPoint: d.ClosestPoint,
		Distance:       d.Distance,
		Parameter:      d.Parameter,
		PointWasOnLine: d.PointIsOnLine,
	}, nil
}

// PlaneProjection is the result of ProjectPointOntoPlane.
type PlaneProjection struct {
	ProjectedPoint  Vector3D `json:"projected_point" yaml:"projected_point"`
	Distance        float64  `json:"distance" yaml:"distance"`
	PointWasOnPlane bool     `json:"point_was_on_plane" yaml:"point_was_on_plane"`
}

// ProjectPointOntoPlane returns the orthogonal projection of p onto pl.
func ProjectPointOntoPlane(p Vector3D, pl Plane3D) (PlaneProjection, error) {
	d, err := DistancePointPlane(p, pl)
	if err != nil {
		return PlaneProjection{}, withOp(err, "project_point_plane")
	}
	return PlaneProjection{
		ProjectedPoint:  d.ClosestPoint,
		Distance:        d.Distance,
		PointWasOnPlane: d.Side == SideOnPlane,
	}, nil
}
