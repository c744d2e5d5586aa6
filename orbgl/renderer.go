package orbgl

import "math"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations. Overlay primitives
// (DrawPolyline, DrawMarker) must be drawn after Render so they can be
// depth-tested against the mesh pass.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	lastW    int
	lastH    int
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolid,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}
	r.lastW, r.lastH = w, h

	vp := r.viewProj(s, w, h)
	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, vp, *m, s.Lights, s.Camera.Position)
	})
}

func (r *Renderer) viewProj(s *Scene, w, h int) Mat4 {
	aspect := Scalar(1)
	if h != 0 {
		aspect = Scalar(float32(w) / float32(h))
	}
	return Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())
}

func (r *Renderer) renderMesh(t Target, w, h int, vp Mat4, m Mesh, lights LightRig, camPos Vec3) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		w0 := m.Transform.MulPoint(m.Vertices[i0].Pos)
		w1 := m.Transform.MulPoint(m.Vertices[i1].Pos)
		w2 := m.Transform.MulPoint(m.Vertices[i2].Pos)

		p0 := Mat4MulV4(vp, Vec4{X: w0.X, Y: w0.Y, Z: w0.Z, W: 1})
		p1 := Mat4MulV4(vp, Vec4{X: w1.X, Y: w1.Y, Z: w1.Z, W: 1})
		p2 := Mat4MulV4(vp, Vec4{X: w2.X, Y: w2.Y, Z: w2.Z, W: 1})

		// Trivial clip: drop triangles crossing the near plane.
		if p0.W <= 0 || p1.W <= 0 || p2.W <= 0 {
			continue
		}

		ndc0, ok0 := clipToNDC(p0)
		ndc1, ok1 := clipToNDC(p1)
		ndc2, ok2 := clipToNDC(p2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		n0 := Normalize(m.Transform.MulDir(m.Vertices[i0].Normal))
		n1 := Normalize(m.Transform.MulDir(m.Vertices[i1].Normal))
		n2 := Normalize(m.Transform.MulDir(m.Vertices[i2].Normal))

		c0 := shadeVertex(m.Material, w0, n0, camPos, lights)
		c1 := shadeVertex(m.Material, w1, n1, camPos, lights)
		c2 := shadeVertex(m.Material, w2, n2, camPos, lights)

		if r.Mode == RenderWireframe {
			r.drawLine(t, x0, y0, x1, y1, c0)
			r.drawLine(t, x1, y1, x2, y2, c1)
			r.drawLine(t, x2, y2, x0, y0, c2)
			continue
		}
		r.fillTriangle(t, w, h,
			x0, y0, ndc0.Z, c0,
			x1, y1, ndc1.Z, c1,
			x2, y2, ndc2.Z, c2)
	}
}

// shadeVertex evaluates the light rig at a world-space vertex: ambient,
// two diffuse fills, and a key light with a Blinn-Phong highlight.
func shadeVertex(mat Material, pos, n, camPos Vec3, lights LightRig) Color {
	intensity := lights.Ambient
	diffuse := func(l DirLight) Scalar {
		if l.Intensity == 0 {
			return 0
		}
		d := Dot(n, Normalize(l.Dir).Mul(-1))
		if d < 0 {
			return 0
		}
		return d * l.Intensity
	}
	intensity += diffuse(lights.Fills[0])
	intensity += diffuse(lights.Fills[1])
	intensity += diffuse(lights.Key)

	c := mat.BaseColor.MulScalar(Clamp01(intensity))

	if mat.Specular > 0 && lights.Key.Intensity > 0 {
		viewDir := Normalize(camPos.Sub(pos))
		half := Normalize(viewDir.Sub(Normalize(lights.Key.Dir)))
		hd := Dot(n, half)
		if hd > 0 {
			shininess := mat.Shininess
			if shininess == 0 {
				shininess = 32
			}
			spec := Scalar(math.Pow(float64(hd), float64(shininess)))
			c = c.AddWhite(spec * mat.Specular * lights.Key.Intensity)
		}
	}
	return c
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	w := float32(p.W)
	if w == 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / w
	return ndcPoint{
		X: float32(p.X) * invW,
		Y: float32(p.Y) * invW,
		Z: float32(p.Z) * invW,
	}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	d := depth01(z)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// depthVisible is the read-only variant used by overlays. The bias lets
// geometry lying exactly on a surface win against it.
func (r *Renderer) depthVisible(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	const overlayBias = 5e-4
	return depth01(z)-overlayBias <= r.depthBuf[idx]
}

func depth01(z float32) float32 {
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	return d
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes with interpolated vertex colors and depth.
// It accepts either winding: the barycentric weights are normalized by
// the signed area.
func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a0 := float32(edgeFn(x1, y1, x2, y2, x, y)) * invArea
			a1 := float32(edgeFn(x2, y2, x0, y0, x, y)) * invArea
			a2 := float32(edgeFn(x0, y0, x1, y1, x, y)) * invArea
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

// projectPoint maps a world-space point to screen coordinates.
func projectPoint(vp Mat4, w, h int, p Vec3) (x, y int, z float32, ok bool) {
	clip := Mat4MulV4(vp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc, okN := clipToNDC(clip)
	if !okN {
		return 0, 0, 0, false
	}
	x, y = ndcToScreen(ndc, w, h)
	return x, y, ndc.Z, true
}

// DrawPolyline draws a depth-tested world-space polyline. Segments with
// an occluded endpoint are skipped rather than clipped; with dense
// sampling the gap is below a pixel.
func (r *Renderer) DrawPolyline(t Target, s *Scene, pts []Vec3, c Color) {
	if r == nil || t == nil || s == nil || len(pts) < 2 {
		return
	}
	w, h := t.Size()
	vp := r.viewProj(s, w, h)

	px, py, pz, pok := projectPoint(vp, w, h, pts[0])
	for i := 1; i < len(pts); i++ {
		x, y, z, ok := projectPoint(vp, w, h, pts[i])
		if ok && pok && r.depthVisible(w, x, y, z) && r.depthVisible(w, px, py, pz) {
			r.drawLine(t, px, py, x, y, c)
		}
		px, py, pz, pok = x, y, z, ok
	}
}

// DrawMarker draws a filled screen-space dot at a world position,
// depth-tested at its center.
func (r *Renderer) DrawMarker(t Target, s *Scene, pos Vec3, radiusPx int, c Color) {
	if r == nil || t == nil || s == nil || radiusPx <= 0 {
		return
	}
	w, h := t.Size()
	vp := r.viewProj(s, w, h)

	x, y, z, ok := projectPoint(vp, w, h, pos)
	if !ok || !r.depthVisible(w, x, y, z) {
		return
	}
	rr := radiusPx * radiusPx
	for dy := -radiusPx; dy <= radiusPx; dy++ {
		for dx := -radiusPx; dx <= radiusPx; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			t.SetPixel(x+dx, y+dy, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
