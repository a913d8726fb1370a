package geometry

import "math"

// Ray3D is the half-line {Origin + t*Direction | t >= 0}.
type Ray3D struct {
	Origin    Vector3D `json:"origin" yaml:"origin"`
	Direction Vector3D `json:"direction" yaml:"direction"`
}

// Validate checks finiteness and a non-zero direction.
func (r Ray3D) Validate(operand string) error {
	return Line3D{Point: r.Origin, Direction: r.Direction}.Validate(operand)
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vector3D `json:"min" yaml:"min"`
	Max Vector3D `json:"max" yaml:"max"`
}

// NewAABB creates a box from two opposite corners in any order.
func NewAABB(a, b Vector3D) AABB {
	return AABB{
		Min: Vector3D{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vector3D{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p Vector3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// RayHit is the result of a ray cast.
type RayHit struct {
	Hit       bool      `json:"hit" yaml:"hit"`
	Point     *Vector3D `json:"hit_point,omitempty" yaml:"hit_point,omitempty"`
	Parameter float64   `json:"parameter" yaml:"parameter"`
	Distance  float64   `json:"distance" yaml:"distance"`
	Inside    bool      `json:"origin_inside,omitempty" yaml:"origin_inside,omitempty"`
}

func (r Ray3D) hitAt(t float64) RayHit {
	p := r.Origin.Add(r.Direction.Scale(t))
	return RayHit{Hit: true, Point: &p, Parameter: t, Distance: t * r.Direction.Magnitude()}
}

// IntersectPlane casts r against p. Hits behind the origin do not count;
// a ray lying in the plane hits at its origin.
func (r Ray3D) IntersectPlane(p Plane3D) (RayHit, error) {
	const op = "ray_plane_intersection"
	if err := r.Validate("ray"); err != nil {
		return RayHit{}, withOp(err, op)
	}
	ix, err := LinePlaneIntersect(Line3D{Point: r.Origin, Direction: r.Direction}, p)
	if err != nil {
		return RayHit{}, withOp(err, op)
	}
	if !ix.Intersects || ix.Parameter < 0 {
		return RayHit{}, nil
	}
	return r.hitAt(ix.Parameter), nil
}

// IntersectAABB casts r against box using the slab method. If the origin is
// inside the box the exit point is reported.
func (r Ray3D) IntersectAABB(box AABB) (RayHit, error) {
	const op = "ray_box_intersection"
	if err := r.Validate("ray"); err != nil {
		return RayHit{}, withOp(err, op)
	}
	if err := box.Min.Validate("box.min"); err != nil {
		return RayHit{}, withOp(err, op)
	}
	if err := box.Max.Validate("box.max"); err != nil {
		return RayHit{}, withOp(err, op)
	}
	box = NewAABB(box.Min, box.Max)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < Epsilon {
			// Parallel to this slab: must already be between its planes.
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return RayHit{}, nil
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return RayHit{}, nil
	}
	if tmin < 0 {
		h := r.hitAt(tmax)
		h.Inside = true
		return h, nil
	}
	return r.hitAt(tmin), nil
}
