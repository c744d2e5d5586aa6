package hal

import "sync"

// framebuffer is the shared RGBA pixel buffer used by every runner.
// The mutex exists because the window runner snapshots the buffer from
// the draw callback while the step loop may be writing it.
type framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newFramebuffer(width, height int) *framebuffer {
	stride := width * 4
	return &framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *framebuffer) Width() int          { return f.width }
func (f *framebuffer) Height() int         { return f.height }
func (f *framebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *framebuffer) StrideBytes() int    { return f.stride }
func (f *framebuffer) Buffer() []byte      { return f.buf }
func (f *framebuffer) Present() error      { return nil }

func (f *framebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i < len(f.buf); i += 4 {
		f.buf[i+0] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = 0xFF
	}
}

func (f *framebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
