package orbgl

import "testing"

func newTestTarget(w, h int) *RGBATarget {
	return &RGBATarget{Buf: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func (t *RGBATarget) pixel(x, y int) Color {
	off := y*t.Stride + x*4
	return Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}

// quadScene builds a camera-facing unit quad at the origin.
func quadScene() *Scene {
	s := CreateScene(1)
	s.Camera = testCamera()
	mesh := Mesh{
		Vertices: []Vertex{
			{Pos: V3(-0.5, -0.5, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(0.5, -0.5, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(0.5, 0.5, 0), Normal: V3(0, 0, 1)},
			{Pos: V3(-0.5, 0.5, 0), Normal: V3(0, 0, 1)},
		},
		Indices:  []uint16{0, 1, 2, 0, 2, 3},
		Material: Material{BaseColor: RGB(0xFF, 0x00, 0x00)},
	}
	s.AddMesh(mesh)
	return s
}

func TestRenderFillsCenterLeavesCorner(t *testing.T) {
	tgt := newTestTarget(64, 64)
	r := NewRenderer(64, 64, true)
	r.ClearColor = RGB(1, 2, 3)
	s := quadScene()

	r.Render(tgt, s)

	center := tgt.pixel(32, 32)
	if center.R == 0 {
		t.Fatalf("center pixel unlit: %+v", center)
	}
	corner := tgt.pixel(0, 0)
	if corner != r.ClearColor {
		t.Fatalf("corner pixel %+v, want clear color", corner)
	}
}

func TestRenderWindingIndependent(t *testing.T) {
	tgt := newTestTarget(64, 64)
	r := NewRenderer(64, 64, true)
	s := quadScene()
	// Reverse winding of both triangles.
	s.meshes[0].Indices = []uint16{2, 1, 0, 3, 2, 0}

	r.Render(tgt, s)
	if tgt.pixel(32, 32) == r.ClearColor {
		t.Fatal("reversed winding was culled")
	}
}

func TestDrawMarkerDepthOcclusion(t *testing.T) {
	tgt := newTestTarget(64, 64)
	r := NewRenderer(64, 64, true)
	s := quadScene()
	r.Render(tgt, s)

	marker := RGB(0x00, 0xFF, 0x00)
	// Behind the quad: must be occluded.
	r.DrawMarker(tgt, s, V3(0, 0, -0.5), 2, marker)
	if tgt.pixel(32, 32) == marker {
		t.Fatal("marker behind the quad should be occluded")
	}
	// In front of the quad: must be drawn.
	r.DrawMarker(tgt, s, V3(0, 0, 0.5), 2, marker)
	if tgt.pixel(32, 32) != marker {
		t.Fatalf("marker in front not drawn, pixel %+v", tgt.pixel(32, 32))
	}
}

func TestDrawPolylineVisible(t *testing.T) {
	tgt := newTestTarget(64, 64)
	r := NewRenderer(64, 64, true)
	s := quadScene()
	r.Render(tgt, s)

	c := RGB(0x00, 0x00, 0xFF)
	pts := []Vec3{V3(-0.2, 0, 0.5), V3(0, 0, 0.5), V3(0.2, 0, 0.5)}
	r.DrawPolyline(tgt, s, pts, c)
	if tgt.pixel(32, 32) != c {
		t.Fatalf("polyline through center not drawn, pixel %+v", tgt.pixel(32, 32))
	}
}

func TestWireframeModeDrawsEdges(t *testing.T) {
	tgt := newTestTarget(64, 64)
	r := NewRenderer(64, 64, true)
	r.Mode = RenderWireframe
	s := quadScene()

	r.Render(tgt, s)

	// The quad diagonal passes through the center region. Bresenham
	// steps one axis at a time, so a given pixel may be skipped; scan
	// the 3x3 window around the center instead.
	found := false
	for y := 31; y <= 33 && !found; y++ {
		for x := 31; x <= 33; x++ {
			if tgt.pixel(x, y) != r.ClearColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("wireframe left the diagonal empty")
	}
}
