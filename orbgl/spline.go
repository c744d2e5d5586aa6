package orbgl

import "math"

// CatmullRom samples a centripetal Catmull-Rom curve through the given
// control points. The curve interpolates every control point and is
// sampled at `samples` positions spread evenly over the segments,
// appended into dst (which may be nil or a reused buffer).
//
// Fewer than two control points yield no samples.
func CatmullRom(pts []Vec3, samples int, dst []Vec3) []Vec3 {
	dst = dst[:0]
	if len(pts) < 2 || samples < 2 {
		return dst
	}

	segs := len(pts) - 1
	for i := 0; i < samples; i++ {
		u := Scalar(i) / Scalar(samples-1) * Scalar(segs)
		seg := int(u)
		if seg >= segs {
			seg = segs - 1
		}
		local := u - Scalar(seg)

		p1 := pts[seg]
		p2 := pts[seg+1]
		p0 := p1
		if seg > 0 {
			p0 = pts[seg-1]
		}
		p3 := p2
		if seg+2 < len(pts) {
			p3 = pts[seg+2]
		}
		dst = append(dst, crSegment(p0, p1, p2, p3, local))
	}
	return dst
}

// crSegment evaluates one Catmull-Rom segment between p1 and p2 at
// t in [0,1], using the Barry-Goldman pyramid with centripetal knots
// (alpha = 0.5), which avoids cusps and self-intersection on uneven
// point spacing.
func crSegment(p0, p1, p2, p3 Vec3, t Scalar) Vec3 {
	t0 := Scalar(0)
	t1 := t0 + knotInterval(p0, p1)
	t2 := t1 + knotInterval(p1, p2)
	t3 := t2 + knotInterval(p2, p3)

	tt := t1 + t*(t2-t1)

	a1 := lerpKnot(p0, p1, t0, t1, tt)
	a2 := lerpKnot(p1, p2, t1, t2, tt)
	a3 := lerpKnot(p2, p3, t2, t3, tt)
	b1 := lerpKnot(a1, a2, t0, t2, tt)
	b2 := lerpKnot(a2, a3, t1, t3, tt)
	return lerpKnot(b1, b2, t1, t2, tt)
}

func knotInterval(a, b Vec3) Scalar {
	d := Scalar(math.Sqrt(float64(Dist(a, b))))
	if d < 1e-6 {
		// Coincident control points; keep knots strictly increasing.
		return 1e-6
	}
	return d
}

func lerpKnot(a, b Vec3, ta, tb, t Scalar) Vec3 {
	if tb == ta {
		return a
	}
	s := (t - ta) / (tb - ta)
	return a.Mul(1 - s).Add(b.Mul(s))
}
