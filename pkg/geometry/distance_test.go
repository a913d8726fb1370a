package geometry

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDistancePointPlane(t *testing.T) {
	xy := plane(0, 0, 0, 0, 0, 1)
	tests := []struct {
		point  Vector3D
		dist   float64
		signed float64
		side   Side
	}{
		{Vector3D{0, 0, 5}, 5, 5, SidePositive},
		{Vector3D{7, -1, -2}, 2, -2, SideNegative},
		{Vector3D{3, 4, 0}, 0, 0, SideOnPlane},
		{Vector3D{3, 4, 1e-12}, 1e-12, 1e-12, SideOnPlane},
	}
	for _, tt := range tests {
		got, err := DistancePointPlane(tt.point, xy)
		if err != nil {
			t.Fatalf("DistancePointPlane(%v) error: %v", tt.point, err)
		}
		if got.Distance != tt.dist || got.SignedDistance != tt.signed {
			t.Errorf("DistancePointPlane(%v) = (%v, %v), want (%v, %v)", tt.point, got.Distance, got.SignedDistance, tt.dist, tt.signed)
		}
		if got.Side != tt.side {
			t.Errorf("DistancePointPlane(%v).Side = %v, want %v", tt.point, got.Side, tt.side)
		}
	}
}

func TestProjectionOntoPlaneIsIdempotent(t *testing.T) {
	planes := []Plane3D{
		plane(0, 0, 0, 0, 0, 1),
		plane(1, 2, 3, 1, 1, 1),
		plane(-4, 0, 2, 0.3, -2, 5),
	}
	points := []Vector3D{{0, 0, 5}, {10, -3, 2}, {-1, -1, -1}, {0.5, 8, -12}}
	for _, pl := range planes {
		for _, p := range points {
			proj, err := ProjectPointOntoPlane(p, pl)
			if err != nil {
				t.Fatalf("ProjectPointOntoPlane() error: %v", err)
			}
			again, err := DistancePointPlane(proj.ProjectedPoint, pl)
			if err != nil {
				t.Fatalf("DistancePointPlane() error: %v", err)
			}
			if again.Distance > tol {
				t.Errorf("projected point %v is %v from plane %v", proj.ProjectedPoint, again.Distance, pl)
			}
			if !scalar.EqualWithinAbs(proj.Distance, p.Distance(proj.ProjectedPoint), tol) {
				t.Errorf("projection distance %v does not match point offset", proj.Distance)
			}
		}
	}
}

func TestDistancePointLine(t *testing.T) {
	xAxis := line(0, 0, 0, 2, 0, 0)

	got, err := DistancePointLine(Vector3D{4, 5, 0}, xAxis)
	if err != nil {
		t.Fatalf("DistancePointLine() error: %v", err)
	}
	if got.Distance != 5 || got.PointIsOnLine {
		t.Errorf("DistancePointLine() = %+v, want distance 5 off line", got)
	}
	if got.ClosestPoint != (Vector3D{4, 0, 0}) || got.Parameter != 2 {
		t.Errorf("closest = %v at %v, want (4,0,0) at 2", got.ClosestPoint, got.Parameter)
	}

	on, _ := DistancePointLine(Vector3D{-3, 0, 0}, xAxis)
	if !on.PointIsOnLine || on.Distance != 0 {
		t.Errorf("point on line reported %+v", on)
	}

	if _, err := DistancePointLine(Vector3D{}, line(0, 0, 0, 0, 0, 0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero direction error = %v, want InvalidArgument", err)
	}
}

func TestDistanceLinePlane(t *testing.T) {
	xy := plane(0, 0, 0, 0, 0, 1)

	par, err := DistanceLinePlane(line(0, 0, -4, 1, 1, 0), xy)
	if err != nil {
		t.Fatalf("DistanceLinePlane() error: %v", err)
	}
	if par.Distance != 4 || par.Intersects || !par.IsParallel {
		t.Errorf("parallel line = %+v, want distance 4", par)
	}

	hit, _ := DistanceLinePlane(line(0, 0, -4, 1, 1, 1), xy)
	if hit.Distance != 0 || !hit.Intersects {
		t.Errorf("crossing line = %+v, want distance 0", hit)
	}
}

func TestProjectVector(t *testing.T) {
	got, err := ProjectVector(Vector3D{3, 4, 0}, Vector3D{2, 0, 0})
	if err != nil {
		t.Fatalf("ProjectVector() error: %v", err)
	}
	if got.ScalarProjection != 3 {
		t.Errorf("ScalarProjection = %v, want 3", got.ScalarProjection)
	}
	if got.VectorProjection != (Vector3D{3, 0, 0}) {
		t.Errorf("VectorProjection = %v, want (3,0,0)", got.VectorProjection)
	}
	if got.Rejection != (Vector3D{0, 4, 0}) {
		t.Errorf("Rejection = %v, want (0,4,0)", got.Rejection)
	}
	if !scalar.EqualWithinAbs(got.AngleRadians, math.Atan2(4, 3), 1e-12) {
		t.Errorf("AngleRadians = %v, want %v", got.AngleRadians, math.Atan2(4, 3))
	}
	if got.AreParallel || got.ArePerpendicular {
		t.Errorf("unexpected flags: %+v", got)
	}

	perp, _ := ProjectVector(Vector3D{0, 0, 7}, Vector3D{1, 1, 0})
	if !perp.ArePerpendicular || perp.VectorProjection != (Vector3D{}) {
		t.Errorf("perpendicular projection = %+v", perp)
	}

	zeroA, err := ProjectVector(Vector3D{}, Vector3D{1, 0, 0})
	if err != nil {
		t.Fatalf("ProjectVector(zero, b) error: %v", err)
	}
	if zeroA.AngleRadians != 0 || zeroA.VectorProjection != (Vector3D{}) {
		t.Errorf("zero a projection = %+v", zeroA)
	}

	if _, err := ProjectVector(Vector3D{1, 2, 3}, Vector3D{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ProjectVector(a, zero) error = %v, want InvalidArgument", err)
	}
}

func TestProjectPointOntoLine(t *testing.T) {
	got, err := ProjectPointOntoLine(Vector3D{1, 1, 0}, line(0, 0, 0, 1, 1, 1))
	if err != nil {
		t.Fatalf("ProjectPointOntoLine() error: %v", err)
	}
	want := Vector3D{2.0 / 3, 2.0 / 3, 2.0 / 3}
	if !vecNear(got.ProjectedPoint, want) {
		t.Errorf("ProjectedPoint = %v, want %v", got.ProjectedPoint, want)
	}
	if !scalar.EqualWithinAbs(got.Distance, math.Sqrt(6)/3, tol) {
		t.Errorf("Distance = %v, want %v", got.Distance, math.Sqrt(6)/3)
	}
	if got.PointWasOnLine {
		t.Error("point should not be on line")
	}
}
