package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MultiLineIntersection is the result of MultiLineIntersect.
type MultiLineIntersection struct {
	BestPoint            Vector3D  `json:"best_intersection_point" yaml:"best_intersection_point"`
	Distances            []float64 `json:"distances_to_lines" yaml:"distances_to_lines"`
	TotalSquaredDistance float64   `json:"total_squared_distance" yaml:"total_squared_distance"`
	LineCount            int       `json:"lines_processed" yaml:"lines_processed"`
}

// MultiLineIntersect finds the point minimizing the sum of squared
// perpendicular distances to the given lines.
//
// Each line contributes the projector P = I - d·dᵀ/|d|² onto the plane
// perpendicular to its direction. The minimizer solves (ΣP)·x = Σ(P·p),
// which is solved here with Cramer's rule. Lines that are all parallel make
// the system singular and fail with Degenerate.
func MultiLineIntersect(lines []Line3D) (MultiLineIntersection, error) {
	const op = "multiple_line_intersection"
	if len(lines) < 2 {
		return MultiLineIntersection{}, invalidArg(op, "lines", fmt.Sprintf("need at least 2 lines, got %d", len(lines)))
	}
	for i, l := range lines {
		if err := l.Validate(fmt.Sprintf("lines[%d]", i)); err != nil {
			return MultiLineIntersection{}, withOp(err, op)
		}
	}

	var a [3][3]float64
	var b [3]float64
	for _, l := range lines {
		d := [3]float64{l.Direction.X, l.Direction.Y, l.Direction.Z}
		p := [3]float64{l.Point.X, l.Point.Y, l.Point.Z}
		dd := l.Direction.MagnitudeSquared()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				proj := -d[i] * d[j] / dd
				if i == j {
					proj += 1
				}
				a[i][j] += proj
				b[i] += proj * p[j]
			}
		}
	}

	x, err := solveCramer(a, b)
	if err != nil {
		return MultiLineIntersection{}, withOp(err, op)
	}
	best := Vector3D{x[0], x[1], x[2]}

	res := MultiLineIntersection{
		BestPoint: best,
		Distances: make([]float64, len(lines)),
		LineCount: len(lines),
	}
	for i, l := range lines {
		dist := best.Sub(l.PointAtParameter(l.closestParameter(best))).Magnitude()
		res.Distances[i] = dist
		res.TotalSquaredDistance += dist * dist
	}
	return res, nil
}

// solveCramer solves a·x = b for a 3x3 system.
func solveCramer(a [3][3]float64, b [3]float64) ([3]float64, error) {
	cols := [3]mgl64.Vec3{
		{a[0][0], a[1][0], a[2][0]},
		{a[0][1], a[1][1], a[2][1]},
		{a[0][2], a[1][2], a[2][2]},
	}
	det := mgl64.Mat3FromCols(cols[0], cols[1], cols[2]).Det()
	if math.Abs(det) < Epsilon {
		return [3]float64{}, degenerate("", "lines", "system is singular; lines may all be parallel")
	}

	rhs := mgl64.Vec3{b[0], b[1], b[2]}
	var x [3]float64
	for i := range x {
		c := cols
		c[i] = rhs
		x[i] = mgl64.Mat3FromCols(c[0], c[1], c[2]).Det() / det
	}
	return x, nil
}
