package geometry

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMultiLineIntersectCommonPoint(t *testing.T) {
	lines := []Line3D{
		line(1, 2, 3, 1, 0, 0),
		line(0, 2, 3, 0, 1, 0),
		line(-1, 0, 1, 2, 2, 2),
	}
	got, err := MultiLineIntersect(lines)
	if err != nil {
		t.Fatalf("MultiLineIntersect() error: %v", err)
	}
	if !vecNear(got.BestPoint, Vector3D{1, 2, 3}) {
		t.Errorf("BestPoint = %v, want (1,2,3)", got.BestPoint)
	}
	if got.TotalSquaredDistance > tol {
		t.Errorf("TotalSquaredDistance = %v, want ~0", got.TotalSquaredDistance)
	}
	if got.LineCount != 3 || len(got.Distances) != 3 {
		t.Errorf("LineCount = %d, distances = %d, want 3", got.LineCount, len(got.Distances))
	}
}

func TestMultiLineIntersectSkewPair(t *testing.T) {
	got, err := MultiLineIntersect([]Line3D{
		line(0, 0, 0, 1, 0, 0),
		line(0, 0, 2, 0, 3, 0),
	})
	if err != nil {
		t.Fatalf("MultiLineIntersect() error: %v", err)
	}
	if !vecNear(got.BestPoint, Vector3D{0, 0, 1}) {
		t.Errorf("BestPoint = %v, want (0,0,1)", got.BestPoint)
	}
	for i, d := range got.Distances {
		if !scalar.EqualWithinAbs(d, 1, tol) {
			t.Errorf("Distances[%d] = %v, want 1", i, d)
		}
	}
	if !scalar.EqualWithinAbs(got.TotalSquaredDistance, 2, tol) {
		t.Errorf("TotalSquaredDistance = %v, want 2", got.TotalSquaredDistance)
	}
}

func TestMultiLineIntersectErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line3D
		want  error
	}{
		{"no lines", nil, ErrInvalidArgument},
		{"one line", []Line3D{line(0, 0, 0, 1, 0, 0)}, ErrInvalidArgument},
		{"zero direction", []Line3D{line(0, 0, 0, 1, 0, 0), line(1, 1, 1, 0, 0, 0)}, ErrInvalidArgument},
		{"all parallel", []Line3D{line(0, 0, 0, 1, 0, 0), line(0, 1, 0, 2, 0, 0), line(0, 0, 5, -1, 0, 0)}, ErrDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MultiLineIntersect(tt.lines)
			if !errors.Is(err, tt.want) {
				t.Errorf("MultiLineIntersect() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSolveCramer(t *testing.T) {
	a := [3][3]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	x, err := solveCramer(a, [3]float64{8, -11, -3})
	if err != nil {
		t.Fatalf("solveCramer() error: %v", err)
	}
	want := [3]float64{2, 3, -1}
	for i := range x {
		if !scalar.EqualWithinAbs(x[i], want[i], tol) {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
