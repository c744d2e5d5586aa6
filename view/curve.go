package view

import (
	"sync"

	"orbview/orbgl"
)

const (
	// minCurveSamples is the floor on curve resolution.
	minCurveSamples = 50
	// samplesPerPoint scales resolution with the control point count so
	// smoothness does not depend on point spacing.
	samplesPerPoint = 20
)

// Geometry is a sampled curve ready for drawing. Its sample buffer is
// pooled: call Release when the geometry is superseded or the view
// closes, or buffers accumulate across re-derivations.
type Geometry struct {
	Samples []orbgl.Vec3
}

var samplePool = sync.Pool{
	New: func() any {
		return make([]orbgl.Vec3, 0, minCurveSamples*4)
	},
}

// BuildCurve derives the marker curve for the current point sequence: a
// centripetal Catmull-Rom through the ordered positions, sampled at
// max(minCurveSamples, samplesPerPoint*n), with every sample
// re-projected onto the sphere of the given radius. The raw spline
// leaves the surface between control points; normalizing each sample
// back out makes the path hug the sphere instead of chording through it.
//
// Fewer than two points yield nil: there is no curve to draw.
func BuildCurve(points []Point, radius orbgl.Scalar) *Geometry {
	if len(points) < 2 {
		return nil
	}

	samples := samplesPerPoint * len(points)
	if samples < minCurveSamples {
		samples = minCurveSamples
	}

	ctrl := make([]orbgl.Vec3, len(points))
	for i, p := range points {
		ctrl[i] = p.Pos
	}

	buf := samplePool.Get().([]orbgl.Vec3)
	out := orbgl.CatmullRom(ctrl, samples, buf)
	for i := range out {
		out[i] = orbgl.Normalize(out[i]).Mul(radius)
	}
	return &Geometry{Samples: out}
}

// Release returns the sample buffer to the pool. The geometry must not
// be used afterwards.
func (g *Geometry) Release() {
	if g == nil || g.Samples == nil {
		return
	}
	samplePool.Put(g.Samples[:0])
	g.Samples = nil
}
