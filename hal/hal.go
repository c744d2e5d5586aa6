package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: one byte per channel, alpha last.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Modifier selects which modifier key gates orbiting.
type Modifier uint8

const (
	ModifierAlt Modifier = iota
	ModifierControl
	ModifierShift
)

// Name returns the key label shown in the HUD.
func (m Modifier) Name() string {
	switch m {
	case ModifierControl:
		return "Ctrl"
	case ModifierShift:
		return "Shift"
	default:
		return "Alt"
	}
}

// InputState holds the polled state of all inputs for a single tick.
// Polling keeps input handling synchronous with the step loop: every
// handler sees one consistent snapshot per tick.
type InputState struct {
	ModifierHeld bool
	Focused      bool

	// Click is set on the tick the left button went down.
	Click          bool
	ClickX, ClickY int

	// Dragging is set while the left button is held; the deltas are
	// cursor movement since the previous tick.
	Dragging       bool
	DragDX, DragDY float64

	// Wheel is the vertical scroll amount this tick.
	Wheel float64

	ToggleWireframe bool
	ClearMarkers    bool
}

// Input provides the per-tick input snapshot.
type Input interface {
	State() InputState
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Options configures a HAL instance.
type Options struct {
	// Width and Height are the framebuffer dimensions in pixels.
	Width  int
	Height int
	// Scale is the window pixel multiplier (window runner only).
	Scale int
	// Modifier is the key that gates orbit mode.
	Modifier Modifier
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 640
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	if o.Scale <= 0 {
		o.Scale = 2
	}
	return o
}

// HAL is the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
