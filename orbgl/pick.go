package orbgl

import "math"

// Ray is a half-line in world space.
type Ray struct {
	Origin Vec3
	Dir    Vec3 // unit length
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Scalar) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// ScreenRay casts a ray from the camera through a pixel. The pixel
// center is converted to normalized device coordinates and offset along
// the camera basis so the ray matches what Projection rasterizes there.
func (c Camera) ScreenRay(w, h, px, py int) Ray {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	ndcX := 2*(Scalar(px)+0.5)/Scalar(w) - 1
	ndcY := 1 - 2*(Scalar(py)+0.5)/Scalar(h)

	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	fwd := Normalize(c.Target.Sub(c.Position))
	right := Normalize(Cross(fwd, up))
	upv := Cross(right, fwd)

	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	tanHalf := Scalar(math.Tan(float64(fov) / 2))
	aspect := Scalar(w) / Scalar(h)

	dir := fwd.
		Add(right.Mul(ndcX * tanHalf * aspect)).
		Add(upv.Mul(ndcY * tanHalf))
	return Ray{Origin: c.Position, Dir: Normalize(dir)}
}

const hitEpsilon = 1e-4

// HitSphere intersects the ray with a sphere and returns the nearest
// intersection in front of the origin. The returned point is snapped
// onto the sphere surface, so its distance from the center is exactly
// the radius up to float rounding.
func (r Ray) HitSphere(center Vec3, radius Scalar) (Vec3, bool) {
	oc := r.Origin.Sub(center)
	a := Dot(r.Dir, r.Dir)
	halfB := Dot(oc, r.Dir)
	c := Dot(oc, oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Vec3{}, false
	}
	sq := Scalar(math.Sqrt(float64(discriminant)))

	t := (-halfB - sq) / a
	if t <= hitEpsilon {
		t = (-halfB + sq) / a
		if t <= hitEpsilon {
			return Vec3{}, false
		}
	}

	p := r.At(t)
	return center.Add(Normalize(p.Sub(center)).Mul(radius)), true
}
