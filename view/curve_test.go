package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"orbview/orbgl"
)

func pointsAt(positions ...orbgl.Vec3) []Point {
	s := NewStore()
	for _, p := range positions {
		s.Add(p)
	}
	return s.Points()
}

func TestBuildCurveTooFewPoints(t *testing.T) {
	require.Nil(t, BuildCurve(nil, SphereRadius))
	require.Nil(t, BuildCurve(pointsAt(orbgl.V3(0, 0, 1)), SphereRadius))
}

func TestBuildCurveSampleCounts(t *testing.T) {
	onSphere := []orbgl.Vec3{
		orbgl.V3(1, 0, 0), orbgl.V3(0, 1, 0), orbgl.V3(0, 0, 1),
		orbgl.V3(-1, 0, 0), orbgl.V3(0, -1, 0), orbgl.V3(0, 0, -1),
		orbgl.Normalize(orbgl.V3(1, 1, 0)), orbgl.Normalize(orbgl.V3(0, 1, 1)),
		orbgl.Normalize(orbgl.V3(1, 0, 1)), orbgl.Normalize(orbgl.V3(1, 1, 1)),
	}

	cases := []struct {
		points int
		want   int
	}{
		{2, 50},  // floor wins: 2*20 < 50
		{3, 60},  // 3*20 > 50
		{10, 200},
	}
	for _, tc := range cases {
		g := BuildCurve(pointsAt(onSphere[:tc.points]...), SphereRadius)
		require.NotNil(t, g)
		require.Len(t, g.Samples, tc.want, "for %d points", tc.points)
		g.Release()
	}
}

func TestBuildCurveSamplesHugSphere(t *testing.T) {
	pts := pointsAt(
		orbgl.V3(1, 0, 0),
		orbgl.Normalize(orbgl.V3(0.2, 1, 0.3)),
		orbgl.V3(0, 0, 1),
		orbgl.Normalize(orbgl.V3(-1, 0.5, 0)),
	)
	g := BuildCurve(pts, SphereRadius)
	require.NotNil(t, g)
	defer g.Release()

	for i, s := range g.Samples {
		d := math.Abs(float64(orbgl.Len(s)) - float64(SphereRadius))
		require.LessOrEqual(t, d, 1e-3, "sample %d at %v left the surface", i, s)
	}
}

func TestGeometryReleaseIsSafe(t *testing.T) {
	g := BuildCurve(pointsAt(orbgl.V3(1, 0, 0), orbgl.V3(0, 1, 0)), SphereRadius)
	require.NotNil(t, g)
	g.Release()
	require.Nil(t, g.Samples)
	g.Release() // double release is a no-op
	var nilG *Geometry
	nilG.Release() // nil receiver is a no-op
}

func TestBuildCurveAfterReleaseReusesBuffers(t *testing.T) {
	pts := pointsAt(orbgl.V3(1, 0, 0), orbgl.V3(0, 1, 0), orbgl.V3(0, 0, 1))
	for i := 0; i < 100; i++ {
		g := BuildCurve(pts, SphereRadius)
		require.NotNil(t, g)
		require.Len(t, g.Samples, 60)
		g.Release()
	}
}
