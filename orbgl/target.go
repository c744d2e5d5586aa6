package orbgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderSolid RenderMode = iota
	RenderWireframe
)

// RGBATarget renders into a raw RGBA8888 byte buffer, e.g. the HAL
// framebuffer.
type RGBATarget struct {
	Buf    []byte
	Stride int
	W, H   int
}

func (t *RGBATarget) Size() (int, int) { return t.W, t.H }

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off+0] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = c.A
}

func (t *RGBATarget) Clear(c Color) {
	for y := 0; y < t.H; y++ {
		row := t.Buf[y*t.Stride:]
		for x := 0; x < t.W; x++ {
			off := x * 4
			if off+3 >= len(row) {
				break
			}
			row[off+0] = c.R
			row[off+1] = c.G
			row[off+2] = c.B
			row[off+3] = c.A
		}
	}
}
