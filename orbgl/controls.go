package orbgl

// OrbitController rotates and zooms a camera around a fixed target.
//
// All motion is gated by Enabled: while disabled, Drag and Zoom are
// no-ops, so the owner can flip one flag to hand the pointer over to
// picking instead of orbiting.
type OrbitController struct {
	Enabled bool

	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
	// MaxPitch bounds |Pitch| short of the poles. Zero means 1.45 rad.
	MaxPitch Scalar

	// RotateSpeed is radians per pixel of drag. Zero means 0.008.
	RotateSpeed Scalar
	// ZoomSpeed is radius units per wheel notch. Zero means 0.25.
	ZoomSpeed Scalar
}

// Drag applies a pointer drag delta in pixels.
func (c *OrbitController) Drag(dx, dy Scalar) {
	if !c.Enabled {
		return
	}
	speed := c.RotateSpeed
	if speed == 0 {
		speed = 0.008
	}
	c.Yaw += dx * speed
	c.Pitch += dy * speed
	c.clampPitch()
}

// Zoom applies a wheel delta. Positive moves the camera closer.
func (c *OrbitController) Zoom(delta Scalar) {
	if !c.Enabled {
		return
	}
	speed := c.ZoomSpeed
	if speed == 0 {
		speed = 0.25
	}
	c.Radius -= delta * speed
	c.clampRadius()
}

// Apply positions the camera from the current yaw/pitch/radius.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	c.clampPitch()
	c.clampRadius()
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) clampPitch() {
	max := c.MaxPitch
	if max == 0 {
		max = 1.45
	}
	if c.Pitch > max {
		c.Pitch = max
	}
	if c.Pitch < -max {
		c.Pitch = -max
	}
}

func (c *OrbitController) clampRadius() {
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
