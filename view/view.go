package view

import (
	"fmt"
	"image/color"
	"math"

	"orbview/hal"
	"orbview/orbgl"
)

// SphereRadius is the radius of the scene sphere. Placed points and
// curve samples always lie at exactly this distance from the origin.
const SphereRadius orbgl.Scalar = 1.0

// Options are the viewer's cosmetic and interaction settings.
type Options struct {
	// ModifierName is the key label shown in the HUD ("Alt", "Ctrl", ...).
	ModifierName string
	// SpinSpeed is the sphere's idle rotation in radians per tick.
	SpinSpeed float32

	Background orbgl.Color
	Sphere     orbgl.Color
	Marker     orbgl.Color
	Curve      orbgl.Color

	MarkerRadiusPx int
}

func (o Options) withDefaults() Options {
	if o.ModifierName == "" {
		o.ModifierName = "Alt"
	}
	if o.SpinSpeed == 0 {
		o.SpinSpeed = 0.003
	}
	if o.Background == (orbgl.Color{}) {
		o.Background = orbgl.RGB(0x10, 0x14, 0x1E)
	}
	if o.Sphere == (orbgl.Color{}) {
		o.Sphere = orbgl.RGB(0x5A, 0x8F, 0xC8)
	}
	if o.Marker == (orbgl.Color{}) {
		o.Marker = orbgl.RGB(0xFF, 0x8C, 0x1A)
	}
	if o.Curve == (orbgl.Color{}) {
		o.Curve = orbgl.RGB(0xFF, 0xE0, 0x66)
	}
	if o.MarkerRadiusPx <= 0 {
		o.MarkerRadiusPx = 3
	}
	return o
}

// View composes the whole scene: the reflective sphere, the placed
// markers with their projected curve, the light rig, the orbit camera
// and the HUD. One View lives for the lifetime of the window.
type View struct {
	log hal.Logger
	in  hal.Input
	fb  hal.Framebuffer

	w, h int
	opts Options

	r       *orbgl.Renderer
	s       *orbgl.Scene
	orbit   orbgl.OrbitController
	tracker Tracker
	store   *Store

	curve        *Geometry
	curveVersion uint64

	sphereID int
	spin     orbgl.Scalar
}

// New builds the view against a HAL. The scene is ready after New;
// Step drives one tick of input, simulation and rendering.
func New(h hal.HAL, opts Options) *View {
	opts = opts.withDefaults()
	fb := h.Display().Framebuffer()

	v := &View{
		log:   h.Logger(),
		in:    h.Input(),
		fb:    fb,
		w:     fb.Width(),
		h:     fb.Height(),
		opts:  opts,
		store: NewStore(),
		orbit: orbgl.OrbitController{
			Enabled:   false,
			Radius:    3,
			MinRadius: 1.5,
			MaxRadius: 8,
		},
	}

	v.r = orbgl.NewRenderer(v.w, v.h, true)
	v.r.ClearColor = opts.Background

	v.s = orbgl.CreateScene(1)
	v.s.Camera.FOVYRad = 1.0
	v.s.Camera.Near = 0.05
	v.s.Camera.Far = 20

	// Ambient floor, two soft fills from the sides, one key from the
	// upper left that also carries the specular highlight.
	v.s.Lights = orbgl.LightRig{
		Ambient: 0.22,
		Fills: [2]orbgl.DirLight{
			{Dir: orbgl.Normalize(orbgl.V3(1, -0.2, -0.6)), Intensity: 0.25},
			{Dir: orbgl.Normalize(orbgl.V3(-1, -0.2, -0.6)), Intensity: 0.25},
		},
		Key: orbgl.DirLight{
			Dir:       orbgl.Normalize(orbgl.V3(-0.5, -0.8, -0.4)),
			Intensity: 0.65,
		},
	}

	sphere := newSphereMesh(SphereRadius, 48, 32)
	sphere.Material = orbgl.Material{
		BaseColor: opts.Sphere,
		Specular:  0.9,
		Shininess: 48,
	}
	v.sphereID = v.s.AddMesh(sphere)

	v.orbit.Apply(&v.s.Camera)
	v.curveVersion = v.store.Version()

	// First presented frame shows the background, not a black buffer.
	fb.ClearRGB(opts.Background.R, opts.Background.G, opts.Background.B)

	v.log.WriteLineString(fmt.Sprintf("view: ready %dx%d", v.w, v.h))
	return v
}

// Step runs one tick: poll-derived input, camera, picking, curve
// derivation, idle spin, and a full re-render. It is the per-frame
// callback of whichever runner hosts the view.
func (v *View) Step() error {
	in := v.in.State()

	if v.tracker.Update(in.ModifierHeld, in.Focused) {
		if v.tracker.OrbitEnabled() {
			v.log.WriteLineString("view: orbit enabled")
		} else {
			v.log.WriteLineString("view: orbit disabled")
		}
	}
	v.orbit.Enabled = v.tracker.OrbitEnabled()

	if in.Dragging {
		v.orbit.Drag(orbgl.Scalar(in.DragDX), orbgl.Scalar(in.DragDY))
	}
	if in.Wheel != 0 {
		v.orbit.Zoom(orbgl.Scalar(in.Wheel))
	}
	v.orbit.Apply(&v.s.Camera)

	if in.ToggleWireframe {
		if v.r.Mode == orbgl.RenderWireframe {
			v.r.Mode = orbgl.RenderSolid
		} else {
			v.r.Mode = orbgl.RenderWireframe
		}
	}
	if in.ClearMarkers {
		v.store.Clear()
		v.log.WriteLineString("view: markers cleared")
	}
	if in.Click {
		v.handleClick(in.ClickX, in.ClickY)
	}

	v.refreshCurve()

	v.spin += orbgl.Scalar(v.opts.SpinSpeed)
	if v.spin > 2*math.Pi {
		v.spin -= 2 * math.Pi
	}
	v.s.UpdateMeshTransform(v.sphereID, orbgl.Mat4RotateY(v.spin))

	v.render()
	return nil
}

// handleClick places a marker where the click ray meets the sphere.
// While orbiting the click belongs to the camera and is dropped here.
func (v *View) handleClick(x, y int) {
	if v.tracker.OrbitEnabled() {
		return
	}
	ray := v.s.Camera.ScreenRay(v.w, v.h, x, y)
	p, ok := ray.HitSphere(orbgl.Vec3{}, SphereRadius)
	if !ok {
		// Click off the sphere: nothing to place.
		return
	}
	pt := v.store.Add(p)
	v.log.WriteLineString(fmt.Sprintf("view: marker %s at (%.3f, %.3f, %.3f)", pt.ID, p.X, p.Y, p.Z))
}

// refreshCurve re-derives the curve when the store changed, releasing
// the superseded geometry so sample buffers do not accumulate.
func (v *View) refreshCurve() {
	ver := v.store.Version()
	if ver == v.curveVersion {
		return
	}
	old := v.curve
	v.curve = BuildCurve(v.store.Points(), SphereRadius)
	old.Release()
	v.curveVersion = ver
}

func (v *View) render() {
	target := &orbgl.RGBATarget{
		Buf:    v.fb.Buffer(),
		Stride: v.fb.StrideBytes(),
		W:      v.w,
		H:      v.h,
	}

	v.r.Render(target, v.s)

	if v.curve != nil {
		v.r.DrawPolyline(target, v.s, v.curve.Samples, v.opts.Curve)
	}
	for _, p := range v.store.points {
		v.r.DrawMarker(target, v.s, p.Pos, v.opts.MarkerRadiusPx, v.opts.Marker)
	}

	drawText(v.fb, 6, 6, v.IndicatorText(), color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF})
	drawText(v.fb, 6, 22, "click place marker   c clear   w wireframe", color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF})

	v.fb.Present()
}

// IndicatorText is the HUD hint for the current interaction state.
func (v *View) IndicatorText() string {
	if v.tracker.OrbitEnabled() {
		return "Hold " + v.opts.ModifierName + " + Drag to orbit"
	}
	return "Hold " + v.opts.ModifierName + " to enable orbit controls"
}

// Store exposes the point store, e.g. for pre-seeding a snapshot.
func (v *View) Store() *Store { return v.store }

// Curve returns the current curve geometry, or nil below two points.
func (v *View) Curve() *Geometry { return v.curve }

// SetOrbit poses the camera directly, bypassing the enable gate.
func (v *View) SetOrbit(yaw, pitch orbgl.Scalar) {
	v.orbit.Yaw = yaw
	v.orbit.Pitch = pitch
	v.orbit.Apply(&v.s.Camera)
}

// Close releases the curve geometry. The view is done afterwards.
func (v *View) Close() {
	v.curve.Release()
	v.curve = nil
}

// newSphereMesh builds a UV sphere with outward normals.
func newSphereMesh(radius orbgl.Scalar, segU, segV int) orbgl.Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 2 {
		segV = 2
	}

	verts := make([]orbgl.Vertex, 0, (segV+1)*segU)
	indices := make([]uint16, 0, segU*segV*6)

	for vi := 0; vi <= segV; vi++ {
		phi := math.Pi * float64(vi) / float64(segV)
		y := float32(math.Cos(phi))
		ring := float32(math.Sin(phi))
		for ui := 0; ui < segU; ui++ {
			theta := 2 * math.Pi * float64(ui) / float64(segU)
			x := ring * float32(math.Cos(theta))
			z := ring * float32(math.Sin(theta))

			n := orbgl.V3(x, y, z)
			verts = append(verts, orbgl.Vertex{
				Pos:    n.Mul(radius),
				Normal: n,
			})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16(v*segU + u%segU)
	}
	for vi := 0; vi < segV; vi++ {
		for ui := 0; ui < segU; ui++ {
			i0 := idx(ui, vi)
			i1 := idx(ui+1, vi)
			i2 := idx(ui+1, vi+1)
			i3 := idx(ui, vi+1)

			indices = append(indices, i0, i1, i2)
			indices = append(indices, i0, i2, i3)
		}
	}

	return orbgl.Mesh{Vertices: verts, Indices: indices}
}
