package hal

import (
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	opts   Options
	logger *hostLogger
	fb     *framebuffer
	in     *hostInput
}

// New returns a host HAL implementation backed by an Ebitengine window.
// The input side only produces data while RunWindow is driving it.
func New(opts Options) HAL {
	opts = opts.withDefaults()
	return &hostHAL{
		opts:   opts,
		logger: &hostLogger{w: os.Stdout},
		fb:     newFramebuffer(opts.Width, opts.Height),
		in:     newHostInput(opts.Modifier),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return display{fb: h.fb} }
func (h *hostHAL) Input() Input     { return h.in }

type display struct {
	fb *framebuffer
}

func (d display) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, "\n")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, "\n")
}
