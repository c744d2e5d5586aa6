package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"orbview/hal"
	"orbview/orbgl"
	"orbview/view"
)

func newTestView(t *testing.T) (*hal.MemHAL, *view.View) {
	t.Helper()
	h := hal.NewMem(hal.Options{Width: 200, Height: 150})
	v := view.New(h, view.Options{})
	t.Cleanup(v.Close)
	return h, v
}

func step(t *testing.T, h *hal.MemHAL, v *view.View, in hal.InputState) {
	t.Helper()
	h.PushInput(in)
	require.NoError(t, v.Step())
}

// clickAt is a focused, unmodified click; with the default camera the
// screen center lands on the sphere.
func clickAt(x, y int) hal.InputState {
	return hal.InputState{Focused: true, Click: true, ClickX: x, ClickY: y}
}

func TestNewPresentsBackgroundBeforeFirstStep(t *testing.T) {
	h := hal.NewMem(hal.Options{Width: 64, Height: 48})
	bg := orbgl.RGB(0x20, 0x30, 0x40)
	v := view.New(h, view.Options{Background: bg})
	defer v.Close()

	buf := h.Display().Framebuffer().Buffer()
	for off := 0; off < len(buf); off += 4 {
		require.Equal(t, []byte{bg.R, bg.G, bg.B, 0xFF}, buf[off:off+4],
			"pixel at byte offset %d not cleared to the background", off)
	}
}

func TestClicksPlaceMarkersOnSphere(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(100, 75))
	step(t, h, v, clickAt(110, 75))
	step(t, h, v, clickAt(100, 85))

	require.Equal(t, 3, v.Store().Len())
	for _, p := range v.Store().Points() {
		d := math.Abs(float64(orbgl.Len(p.Pos)) - float64(view.SphereRadius))
		require.LessOrEqual(t, d, 1e-5, "point %s off the surface", p.ID)
	}

	require.NotNil(t, v.Curve())
	require.GreaterOrEqual(t, len(v.Curve().Samples), 60)
}

func TestClickWhileOrbitingIsIgnored(t *testing.T) {
	h, v := newTestView(t)

	in := clickAt(100, 75)
	in.ModifierHeld = true
	step(t, h, v, in)

	require.Equal(t, 0, v.Store().Len(), "orbit-drag takes priority over placement")
	require.Nil(t, v.Curve())
}

func TestClickOffSphereIsNoOp(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(0, 0)) // corner: ray misses the sphere
	require.Equal(t, 0, v.Store().Len())
}

func TestSinglePointYieldsNoCurve(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(100, 75))
	require.Equal(t, 1, v.Store().Len())
	require.Nil(t, v.Curve())
}

func TestIndicatorTextFollowsOrbitState(t *testing.T) {
	h, v := newTestView(t)

	require.Equal(t, "Hold Alt to enable orbit controls", v.IndicatorText())

	step(t, h, v, hal.InputState{Focused: true, ModifierHeld: true})
	require.Equal(t, "Hold Alt + Drag to orbit", v.IndicatorText())

	step(t, h, v, hal.InputState{Focused: true})
	require.Equal(t, "Hold Alt to enable orbit controls", v.IndicatorText())
}

func TestFocusLossDisablesOrbit(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, hal.InputState{Focused: true, ModifierHeld: true})
	require.Equal(t, "Hold Alt + Drag to orbit", v.IndicatorText())

	// Key still down, focus gone.
	step(t, h, v, hal.InputState{Focused: false, ModifierHeld: true})
	require.Equal(t, "Hold Alt to enable orbit controls", v.IndicatorText())
}

func TestClearKeyEmptiesStoreAndCurve(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(100, 75))
	step(t, h, v, clickAt(110, 75))
	require.Equal(t, 2, v.Store().Len())
	require.NotNil(t, v.Curve())

	step(t, h, v, hal.InputState{Focused: true, ClearMarkers: true})
	require.Equal(t, 0, v.Store().Len())
	require.Nil(t, v.Curve())
}

func TestCurveRederivedPerPlacement(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(100, 75))
	step(t, h, v, clickAt(110, 75))
	first := v.Curve()
	require.Len(t, first.Samples, 50)

	step(t, h, v, clickAt(100, 85))
	second := v.Curve()
	require.NotSame(t, first, second, "geometry must be rebuilt, not mutated")
	require.Len(t, second.Samples, 60)
}

func TestWireframeToggleAndIdleTicksAreStable(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, hal.InputState{Focused: true, ToggleWireframe: true})
	for i := 0; i < 5; i++ {
		step(t, h, v, hal.InputState{Focused: true})
	}
	step(t, h, v, hal.InputState{Focused: true, ToggleWireframe: true})
}

func TestOrbitDragMovesCameraOnlyWhileEnabled(t *testing.T) {
	h, v := newTestView(t)

	// Drag without the modifier: a later center click still hits the
	// sphere dead on, proving the camera did not move.
	step(t, h, v, hal.InputState{Focused: true, Dragging: true, DragDX: 200, DragDY: 0})
	step(t, h, v, clickAt(100, 75))
	require.Equal(t, 1, v.Store().Len())
	p := v.Store().Points()[0]
	require.InDelta(t, 1.0, float64(p.Pos.Z), 0.05, "camera moved despite orbit being disabled")
}

func TestPlacementLogged(t *testing.T) {
	h, v := newTestView(t)

	step(t, h, v, clickAt(100, 75))
	lines := h.LogLines()
	require.NotEmpty(t, lines)
	found := false
	for _, l := range lines {
		if len(l) > 12 && l[:12] == "view: marker" {
			found = true
		}
	}
	require.True(t, found, "placement should be logged, got %v", lines)
}
