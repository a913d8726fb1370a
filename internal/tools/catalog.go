package tools

import (
	"fmt"

	"github.com/Faultbox/geomkit/pkg/geometry"
)

type (
	vec   = geometry.Vector3D
	line  = geometry.Line3D
	plane = geometry.Plane3D
)

type vectorPairInput struct {
	A vec `yaml:"a"`
	B vec `yaml:"b"`
}

type linePairInput struct {
	Line1 line `yaml:"line1"`
	Line2 line `yaml:"line2"`
}

type segment struct {
	Start vec `yaml:"start"`
	End   vec `yaml:"end"`
}

type segmentPairInput struct {
	Segment1 segment `yaml:"segment1"`
	Segment2 segment `yaml:"segment2"`
}

type linePlaneInput struct {
	Line  line  `yaml:"line"`
	Plane plane `yaml:"plane"`
}

type planePairInput struct {
	Plane1 plane `yaml:"plane1"`
	Plane2 plane `yaml:"plane2"`
}

type pointLineInput struct {
	Point vec  `yaml:"point"`
	Line  line `yaml:"line"`
}

type pointPlaneInput struct {
	Point vec   `yaml:"point"`
	Plane plane `yaml:"plane"`
}

type multiLineInput struct {
	Lines []line `yaml:"lines"`
}

type rayPlaneInput struct {
	Ray   geometry.Ray3D `yaml:"ray"`
	Plane plane          `yaml:"plane"`
}

type rayBoxInput struct {
	Ray geometry.Ray3D `yaml:"ray"`
	Box geometry.AABB  `yaml:"box"`
}

type slerpInput struct {
	Q1 geometry.Quaternion `yaml:"q1"`
	Q2 geometry.Quaternion `yaml:"q2"`
	T  *float64            `yaml:"t"`
}

// VectorOps is the result of the vector_ops tool.
type VectorOps struct {
	Dot              float64 `json:"dot_product" yaml:"dot_product"`
	Cross            vec     `json:"cross_product" yaml:"cross_product"`
	MagnitudeA       float64 `json:"magnitude_a" yaml:"magnitude_a"`
	MagnitudeB       float64 `json:"magnitude_b" yaml:"magnitude_b"`
	AngleRadians     float64 `json:"angle_radians" yaml:"angle_radians"`
	AngleDegrees     float64 `json:"angle_degrees" yaml:"angle_degrees"`
	AreParallel      bool    `json:"are_parallel" yaml:"are_parallel"`
	ArePerpendicular bool    `json:"are_perpendicular" yaml:"are_perpendicular"`
	UnitA            vec     `json:"unit_a" yaml:"unit_a"`
	UnitB            vec     `json:"unit_b" yaml:"unit_b"`
}

func vectorOps(in vectorPairInput) (VectorOps, error) {
	if err := in.A.Validate("a"); err != nil {
		return VectorOps{}, err
	}
	if err := in.B.Validate("b"); err != nil {
		return VectorOps{}, err
	}
	angle, err := in.A.AngleWith(in.B)
	if err != nil {
		return VectorOps{}, err
	}
	// AngleWith already rejected zero vectors.
	ua, _ := in.A.Normalize()
	ub, _ := in.B.Normalize()
	return VectorOps{
		Dot:              in.A.Dot(in.B),
		Cross:            in.A.Cross(in.B),
		MagnitudeA:       in.A.Magnitude(),
		MagnitudeB:       in.B.Magnitude(),
		AngleRadians:     angle,
		AngleDegrees:     geometry.Degrees(angle),
		AreParallel:      geometry.AreParallel(in.A, in.B),
		ArePerpendicular: geometry.ArePerpendicular(in.A, in.B),
		UnitA:            ua,
		UnitB:            ub,
	}, nil
}

func init() {
	register(Tool{
		Name:        "vector_ops",
		Description: "Dot/cross product, magnitudes, angle and parallel/perpendicular tests",
		Example:     `{"a": {"x": 1, "y": 0, "z": 0}, "b": {"x": 0, "y": 1, "z": 0}}`,
		Run:         handler(vectorOps),
	})
	register(Tool{
		Name:        "line_intersection",
		Description: "Classify two 3D lines as intersecting, parallel, coincident or skew",
		Example:     `{"line1": {"point": {"x": 0, "y": 0, "z": 0}, "direction": {"x": 1, "y": 0, "z": 0}}, "line2": {"point": {"x": 0, "y": 0, "z": 1}, "direction": {"x": 0, "y": 1, "z": 0}}}`,
		Run: handler(func(in linePairInput) (geometry.LineIntersection, error) {
			return geometry.LineIntersect(in.Line1, in.Line2)
		}),
	})
	register(Tool{
		Name:        "segment_intersection",
		Description: "Test whether two 3D line segments intersect",
		Example:     `{"segment1": {"start": {"x": 0, "y": 0, "z": 0}, "end": {"x": 2, "y": 2, "z": 0}}, "segment2": {"start": {"x": 0, "y": 2, "z": 0}, "end": {"x": 2, "y": 0, "z": 0}}}`,
		Run: handler(func(in segmentPairInput) (geometry.SegmentIntersection, error) {
			return geometry.SegmentIntersect(in.Segment1.Start, in.Segment1.End, in.Segment2.Start, in.Segment2.End)
		}),
	})
	register(Tool{
		Name:        "line_plane_intersection",
		Description: "Intersect a line with a plane",
		Example:     `{"line": {"point": {"x": 0, "y": 0, "z": 5}, "direction": {"x": 0, "y": 0, "z": -1}}, "plane": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}}}`,
		Run: handler(func(in linePlaneInput) (geometry.LinePlaneIntersection, error) {
			return geometry.LinePlaneIntersect(in.Line, in.Plane)
		}),
	})
	register(Tool{
		Name:        "plane_intersection",
		Description: "Intersect two planes",
		Example:     `{"plane1": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}}, "plane2": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 1, "z": 0}}}`,
		Run: handler(func(in planePairInput) (geometry.PlaneIntersection, error) {
			return geometry.PlaneIntersect(in.Plane1, in.Plane2)
		}),
	})
	register(Tool{
		Name:        "point_line_distance",
		Description: "Distance from a point to a line",
		Example:     `{"point": {"x": 0, "y": 5, "z": 0}, "line": {"point": {"x": 0, "y": 0, "z": 0}, "direction": {"x": 1, "y": 0, "z": 0}}}`,
		Run: handler(func(in pointLineInput) (geometry.PointLineDistance, error) {
			return geometry.DistancePointLine(in.Point, in.Line)
		}),
	})
	register(Tool{
		Name:        "point_plane_distance",
		Description: "Distance, signed distance and side of a point relative to a plane",
		Example:     `{"point": {"x": 0, "y": 0, "z": 5}, "plane": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}}}`,
		Run: handler(func(in pointPlaneInput) (geometry.PointPlaneDistance, error) {
			return geometry.DistancePointPlane(in.Point, in.Plane)
		}),
	})
	register(Tool{
		Name:        "line_plane_distance",
		Description: "Distance between a line and a plane (0 unless parallel)",
		Example:     `{"line": {"point": {"x": 0, "y": 0, "z": 3}, "direction": {"x": 1, "y": 0, "z": 0}}, "plane": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}}}`,
		Run: handler(func(in linePlaneInput) (geometry.LinePlaneDistance, error) {
			return geometry.DistanceLinePlane(in.Line, in.Plane)
		}),
	})
	register(Tool{
		Name:        "vector_projection",
		Description: "Scalar/vector projection and rejection of a onto b",
		Example:     `{"a": {"x": 3, "y": 4, "z": 0}, "b": {"x": 1, "y": 0, "z": 0}}`,
		Run: handler(func(in vectorPairInput) (geometry.Projection, error) {
			return geometry.ProjectVector(in.A, in.B)
		}),
	})
	register(Tool{
		Name:        "project_point_line",
		Description: "Project a point onto a line",
		Example:     `{"point": {"x": 1, "y": 1, "z": 0}, "line": {"point": {"x": 0, "y": 0, "z": 0}, "direction": {"x": 1, "y": 1, "z": 1}}}`,
		Run: handler(func(in pointLineInput) (geometry.LineProjection, error) {
			return geometry.ProjectPointOntoLine(in.Point, in.Line)
		}),
	})
	register(Tool{
		Name:        "project_point_plane",
		Description: "Project a point onto a plane",
		Example:     `{"point": {"x": 1, "y": 2, "z": 3}, "plane": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}}}`,
		Run: handler(func(in pointPlaneInput) (geometry.PlaneProjection, error) {
			return geometry.ProjectPointOntoPlane(in.Point, in.Plane)
		}),
	})
	register(Tool{
		Name:        "multiple_line_intersection",
		Description: "Least-squares best intersection point of two or more lines",
		Example:     `{"lines": [{"point": {"x": 1, "y": 2, "z": 3}, "direction": {"x": 1, "y": 0, "z": 0}}, {"point": {"x": 1, "y": 2, "z": 3}, "direction": {"x": 0, "y": 1, "z": 0}}]}`,
		Run: handler(func(in multiLineInput) (geometry.MultiLineIntersection, error) {
			return geometry.MultiLineIntersect(in.Lines)
		}),
	})
	register(Tool{
		Name:        "quaternion_slerp",
		Description: "Spherical linear interpolation between two rotations",
		Example:     `{"q1": {"x": 0, "y": 0, "z": 0, "w": 1}, "q2": {"x": 0, "y": 0.7071, "z": 0, "w": 0.7071}, "t": 0.5}`,
		Run: handler(func(in slerpInput) (geometry.SlerpResult, error) {
			if in.T == nil {
				return geometry.SlerpResult{}, fmt.Errorf("%w: missing field t", ErrInput)
			}
			return geometry.SlerpDetail(in.Q1, in.Q2, *in.T)
		}),
	})
	register(Tool{
		Name:        "ray_plane_intersection",
		Description: "Cast a ray against a plane",
		Example:     `{"ray": {"origin": {"x": 0, "y": 10, "z": 0}, "direction": {"x": 0, "y": -1, "z": 0}}, "plane": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 1, "z": 0}}}`,
		Run: handler(func(in rayPlaneInput) (geometry.RayHit, error) {
			return in.Ray.IntersectPlane(in.Plane)
		}),
	})
	register(Tool{
		Name:        "ray_box_intersection",
		Description: "Cast a ray against an axis-aligned box",
		Example:     `{"ray": {"origin": {"x": -5, "y": 0, "z": 0}, "direction": {"x": 1, "y": 0, "z": 0}}, "box": {"min": {"x": -1, "y": -1, "z": -1}, "max": {"x": 1, "y": 1, "z": 1}}}`,
		Run: handler(func(in rayBoxInput) (geometry.RayHit, error) {
			return in.Ray.IntersectAABB(in.Box)
		}),
	})
}
