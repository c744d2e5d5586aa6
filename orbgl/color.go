package orbgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// MulScalar scales the color channels by s clamped to [0,1].
func (c Color) MulScalar(s Scalar) Color {
	s = Clamp01(s)
	t := uint32(s * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// AddWhite lifts all channels toward white by s clamped to [0,1].
// Used for specular highlights on top of a diffuse base.
func (c Color) AddWhite(s Scalar) Color {
	s = Clamp01(s)
	add := uint32(s * 255)
	lift := func(ch uint8) uint8 {
		v := uint32(ch) + add
		if v > 0xFF {
			v = 0xFF
		}
		return uint8(v)
	}
	return Color{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
