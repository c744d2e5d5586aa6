package hal

import "sync"

// MemHAL is an in-memory HAL for tests and headless runs. Input is
// scripted: pushed states are consumed one per tick, after which the
// input settles on an idle, focused state.
type MemHAL struct {
	opts   Options
	logger *memLogger
	fb     *framebuffer
	in     *memInput
}

// NewMem returns a HAL with no outside-world contact.
func NewMem(opts Options) *MemHAL {
	opts = opts.withDefaults()
	return &MemHAL{
		opts:   opts,
		logger: &memLogger{},
		fb:     newFramebuffer(opts.Width, opts.Height),
		in:     &memInput{},
	}
}

func (h *MemHAL) Logger() Logger   { return h.logger }
func (h *MemHAL) Display() Display { return display{fb: h.fb} }
func (h *MemHAL) Input() Input     { return h.in }

// PushInput queues one tick's worth of input.
func (h *MemHAL) PushInput(s InputState) { h.in.push(s) }

// LogLines returns everything logged so far.
func (h *MemHAL) LogLines() []string { return h.logger.lines() }

type memInput struct {
	mu    sync.Mutex
	queue []InputState
}

func (in *memInput) push(s InputState) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.queue = append(in.queue, s)
}

func (in *memInput) State() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.queue) == 0 {
		return InputState{Focused: true}
	}
	s := in.queue[0]
	in.queue = in.queue[1:]
	return s
}

type memLogger struct {
	mu  sync.Mutex
	buf []string
}

func (l *memLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, s)
}

func (l *memLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *memLogger) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.buf))
	copy(out, l.buf)
	return out
}
