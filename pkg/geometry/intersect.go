package geometry

import "math"

// IntersectionType classifies the relationship between two objects.
type IntersectionType string

const (
	// Intersecting objects meet in a single point or line.
	Intersecting IntersectionType = "intersecting"
	// Parallel objects never meet.
	Parallel IntersectionType = "parallel"
	// Coincident lines or planes are the same set of points.
	Coincident IntersectionType = "coincident"
	// Skew lines are neither parallel nor intersecting.
	Skew IntersectionType = "skew"
	// InPlane marks a line lying inside a plane.
	InPlane IntersectionType = "in_plane"
)

// LineIntersection is the result of LineIntersect.
type LineIntersection struct {
	Type              IntersectionType `json:"intersection_type" yaml:"intersection_type"`
	Intersects        bool             `json:"intersects" yaml:"intersects"`
	IntersectionPoint *Vector3D        `json:"intersection_point,omitempty" yaml:"intersection_point,omitempty"`
	ClosestPoint1     Vector3D         `json:"closest_point_line1" yaml:"closest_point_line1"`
	ClosestPoint2     Vector3D         `json:"closest_point_line2" yaml:"closest_point_line2"`
	MinimumDistance   float64          `json:"minimum_distance" yaml:"minimum_distance"`
	Parameter1        float64          `json:"parameter_line1" yaml:"parameter_line1"`
	Parameter2        float64          `json:"parameter_line2" yaml:"parameter_line2"`
	AreParallel       bool             `json:"are_parallel" yaml:"are_parallel"`
	AreSkew           bool             `json:"are_skew" yaml:"are_skew"`
	AreCoincident     bool             `json:"are_coincident" yaml:"are_coincident"`
}

// closestParameters solves for the parameters of the mutually closest
// points of two non-parallel lines.
func closestParameters(l1, l2 Line3D) (t1, t2 float64) {
	w := l1.Point.Sub(l2.Point)
	a := l1.Direction.Dot(l1.Direction)
	b := l1.Direction.Dot(l2.Direction)
	c := l2.Direction.Dot(l2.Direction)
	d := l1.Direction.Dot(w)
	e := l2.Direction.Dot(w)

	// a·c - b² = |d1 × d2|², non-zero once AreParallel has said no.
	denom := a*c - b*b
	return (b*e - c*d) / denom, (a*e - b*d) / denom
}

// LineIntersect classifies two lines as coincident, parallel, intersecting
// or skew and reports their closest points.
func LineIntersect(l1, l2 Line3D) (LineIntersection, error) {
	const op = "line_intersection"
	if err := l1.Validate("line1"); err != nil {
		return LineIntersection{}, withOp(err, op)
	}
	if err := l2.Validate("line2"); err != nil {
		return LineIntersection{}, withOp(err, op)
	}

	if l1.IsParallelTo(l2) {
		diff := l2.Point.Sub(l1.Point)
		if diff.IsZero() || AreParallel(diff, l1.Direction) {
			p := l1.Point
			return LineIntersection{
				Type:              Coincident,
				Intersects:        true,
				IntersectionPoint: &p,
				ClosestPoint1:     p,
				ClosestPoint2:     p,
				Parameter2:        l2.closestParameter(p),
				AreParallel:       true,
				AreCoincident:     true,
			}, nil
		}

		t1 := l1.closestParameter(l2.Point)
		c1 := l1.PointAtParameter(t1)
		return LineIntersection{
			Type:            Parallel,
			ClosestPoint1:   c1,
			ClosestPoint2:   l2.Point,
			MinimumDistance: c1.Distance(l2.Point),
			Parameter1:      t1,
			AreParallel:     true,
		}, nil
	}

	t1, t2 := closestParameters(l1, l2)
	c1 := l1.PointAtParameter(t1)
	c2 := l2.PointAtParameter(t2)
	res := LineIntersection{
		ClosestPoint1:   c1,
		ClosestPoint2:   c2,
		MinimumDistance: c1.Distance(c2),
		Parameter1:      t1,
		Parameter2:      t2,
	}
	if res.MinimumDistance < Epsilon {
		res.Type = Intersecting
		res.Intersects = true
		res.IntersectionPoint = &c1
	} else {
		res.Type = Skew
		res.AreSkew = true
	}
	return res, nil
}

// SegmentIntersection is the result of SegmentIntersect. Parameters, closest
// points and distance are reported for the parameters clamped to [0, 1].
type SegmentIntersection struct {
	Intersects        bool      `json:"intersects" yaml:"intersects"`
	IntersectionPoint *Vector3D `json:"intersection_point,omitempty" yaml:"intersection_point,omitempty"`
	ClosestPoint1     Vector3D  `json:"closest_point_segment1" yaml:"closest_point_segment1"`
	ClosestPoint2     Vector3D  `json:"closest_point_segment2" yaml:"closest_point_segment2"`
	MinimumDistance   float64   `json:"minimum_distance" yaml:"minimum_distance"`
	Parameter1        float64   `json:"parameter_segment1" yaml:"parameter_segment1"`
	Parameter2        float64   `json:"parameter_segment2" yaml:"parameter_segment2"`
}

// SegmentIntersect tests whether segment a1-a2 meets segment b1-b2.
func SegmentIntersect(a1, a2, b1, b2 Vector3D) (SegmentIntersection, error) {
	const op = "segment_intersection"
	l1 := Line3D{Point: a1, Direction: a2.Sub(a1)}
	if err := l1.Validate("segment1"); err != nil {
		return SegmentIntersection{}, withOp(err, op)
	}
	l2 := Line3D{Point: b1, Direction: b2.Sub(b1)}
	if err := l2.Validate("segment2"); err != nil {
		return SegmentIntersection{}, withOp(err, op)
	}

	var t1, t2 float64
	var hit bool
	if l1.IsParallelTo(l2) {
		t1, t2 = parallelSegmentParameters(l1, l2)
		hit = l1.PointAtParameter(t1).Distance(l2.PointAtParameter(t2)) < Epsilon
	} else {
		t1, t2 = closestParameters(l1, l2)
		dist := l1.PointAtParameter(t1).Distance(l2.PointAtParameter(t2))
		hit = dist < Epsilon && inUnitInterval(t1) && inUnitInterval(t2)
	}

	t1, t2 = clamp01(t1), clamp01(t2)
	c1 := l1.PointAtParameter(t1)
	c2 := l2.PointAtParameter(t2)
	res := SegmentIntersection{
		Intersects:      hit,
		ClosestPoint1:   c1,
		ClosestPoint2:   c2,
		MinimumDistance: c1.Distance(c2),
		Parameter1:      t1,
		Parameter2:      t2,
	}
	if hit {
		res.IntersectionPoint = &c1
	}
	return res, nil
}

// parallelSegmentParameters picks closest parameters for two parallel
// segments. Segment 2 is projected onto segment 1; the start of the overlap
// of the two parameter intervals is used, or the nearer end of segment 1 when
// they do not overlap. Collinear overlapping segments therefore meet at the
// first shared point along segment 1.
func parallelSegmentParameters(l1, l2 Line3D) (t1, t2 float64) {
	s0 := l1.closestParameter(l2.Point)
	s1 := l1.closestParameter(l2.PointAtParameter(1))
	t1 = clamp01(math.Min(s0, s1))
	t2 = clamp01(l2.closestParameter(l1.PointAtParameter(t1)))
	return t1, t2
}

// inUnitInterval allows Epsilon slack so shared endpoints count as hits.
func inUnitInterval(t float64) bool {
	return t >= -Epsilon && t <= 1+Epsilon
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// LinePlaneIntersection is the result of LinePlaneIntersect.
type LinePlaneIntersection struct {
	Type              IntersectionType `json:"intersection_type" yaml:"intersection_type"`
	Intersects        bool             `json:"intersects" yaml:"intersects"`
	IntersectionPoint *Vector3D        `json:"intersection_point,omitempty" yaml:"intersection_point,omitempty"`
	Parameter         float64          `json:"parameter" yaml:"parameter"`
	Distance          float64          `json:"distance" yaml:"distance"`
	IsParallel        bool             `json:"is_parallel" yaml:"is_parallel"`
	LineInPlane       bool             `json:"line_in_plane" yaml:"line_in_plane"`
	AngleRadians      float64          `json:"angle_radians" yaml:"angle_radians"`
	AngleDegrees      float64          `json:"angle_degrees" yaml:"angle_degrees"`
}

// LinePlaneIntersect intersects a line with a plane. A line lying in the
// plane reports its own point at parameter 0.
func LinePlaneIntersect(l Line3D, p Plane3D) (LinePlaneIntersection, error) {
	const op = "line_plane_intersection"
	if err := l.Validate("line"); err != nil {
		return LinePlaneIntersection{}, withOp(err, op)
	}
	if err := p.Validate("plane"); err != nil {
		return LinePlaneIntersection{}, withOp(err, op)
	}

	n := p.UnitNormal()
	denom := l.Direction.Dot(n)
	// Angle between the line and the plane surface.
	angle := math.Asin(math.Min(1, math.Abs(denom)/l.Direction.Magnitude()))
	res := LinePlaneIntersection{
		AngleRadians: angle,
		AngleDegrees: Degrees(angle),
	}

	if math.Abs(denom) < Epsilon {
		res.IsParallel = true
		res.Distance = p.DistanceToPoint(l.Point)
		if res.Distance < Epsilon {
			pt := l.Point
			res.Type = InPlane
			res.Intersects = true
			res.LineInPlane = true
			res.IntersectionPoint = &pt
			res.Distance = 0
		} else {
			res.Type = Parallel
		}
		return res, nil
	}

	t := p.Point.Sub(l.Point).Dot(n) / denom
	pt := l.PointAtParameter(t)
	res.Type = Intersecting
	res.Intersects = true
	res.IntersectionPoint = &pt
	res.Parameter = t
	return res, nil
}

// PlaneIntersection is the result of PlaneIntersect.
type PlaneIntersection struct {
	Type             IntersectionType `json:"intersection_type" yaml:"intersection_type"`
	Intersects       bool             `json:"intersects" yaml:"intersects"`
	IntersectionLine *Line3D          `json:"intersection_line,omitempty" yaml:"intersection_line,omitempty"`
	AreParallel      bool             `json:"are_parallel" yaml:"are_parallel"`
	AreCoincident    bool             `json:"are_coincident" yaml:"are_coincident"`
	Distance         float64          `json:"distance_between_planes" yaml:"distance_between_planes"`
	AngleRadians     float64          `json:"angle_radians" yaml:"angle_radians"`
	AngleDegrees     float64          `json:"angle_degrees" yaml:"angle_degrees"`
}

// PlaneIntersect intersects two planes. Non-parallel planes yield a line
// whose direction is normal1 × normal2.
func PlaneIntersect(p1, p2 Plane3D) (PlaneIntersection, error) {
	const op = "plane_intersection"
	if err := p1.Validate("plane1"); err != nil {
		return PlaneIntersection{}, withOp(err, op)
	}
	if err := p2.Validate("plane2"); err != nil {
		return PlaneIntersection{}, withOp(err, op)
	}

	angle := clampedAcos(p1.UnitNormal().Dot(p2.UnitNormal()))
	res := PlaneIntersection{
		AngleRadians: angle,
		AngleDegrees: Degrees(angle),
	}

	dir := p1.Normal.Cross(p2.Normal)
	if dir.IsZero() {
		res.AreParallel = true
		res.Distance = p1.DistanceToPoint(p2.Point)
		if res.Distance < Epsilon {
			res.Type = Coincident
			res.Intersects = true
			res.AreCoincident = true
			res.Distance = 0
		} else {
			res.Type = Parallel
		}
		return res, nil
	}

	pt, err := planePairPoint(p1, p2, dir)
	if err != nil {
		return PlaneIntersection{}, withOp(err, op)
	}
	res.Type = Intersecting
	res.Intersects = true
	res.IntersectionLine = &Line3D{Point: pt, Direction: dir}
	return res, nil
}

// planePairPoint finds a point on both planes. The coordinate along the
// dominant axis of dir is fixed at 0 and the other two are solved for, which
// keeps the 2x2 determinant as large as possible.
func planePairPoint(p1, p2 Plane3D, dir Vector3D) (Vector3D, error) {
	n1, n2 := p1.Normal, p2.Normal
	d1, d2 := p1.D(), p2.D()

	ax, ay, az := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	switch {
	case ax >= ay && ax >= az:
		y, z, err := solve2x2(n1.Y, n1.Z, n2.Y, n2.Z, d1, d2)
		return Vector3D{0, y, z}, err
	case ay >= az:
		x, z, err := solve2x2(n1.X, n1.Z, n2.X, n2.Z, d1, d2)
		return Vector3D{x, 0, z}, err
	default:
		x, y, err := solve2x2(n1.X, n1.Y, n2.X, n2.Y, d1, d2)
		return Vector3D{x, y, 0}, err
	}
}

// solve2x2 solves [a b; c d]·[u v] = [e f]. Singularity is judged relative
// to the size of the products so small normals still solve.
func solve2x2(a, b, c, d, e, f float64) (u, v float64, err error) {
	det := a*d - b*c
	if math.Abs(det) <= Epsilon*math.Max(math.Abs(a*d), math.Abs(b*c)) {
		return 0, 0, degenerate("", "plane system", "2x2 determinant is near zero")
	}
	return (e*d - b*f) / det, (a*f - e*c) / det, nil
}
