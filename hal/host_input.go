package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostInput polls Ebitengine once per tick and exposes the snapshot.
type hostInput struct {
	mod   Modifier
	state InputState

	lastX, lastY int
	wasDragging  bool
}

func newHostInput(mod Modifier) *hostInput {
	return &hostInput{mod: mod}
}

func (in *hostInput) State() InputState { return in.state }

func (in *hostInput) poll() {
	var s InputState

	s.Focused = ebiten.IsFocused()
	s.ModifierHeld = in.modifierHeld()

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Click = true
		s.ClickX = x
		s.ClickY = y
	}

	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if held {
		s.Dragging = true
		if in.wasDragging {
			s.DragDX = float64(x - in.lastX)
			s.DragDY = float64(y - in.lastY)
		}
	}
	in.wasDragging = held
	in.lastX, in.lastY = x, y

	_, wy := ebiten.Wheel()
	s.Wheel = wy

	s.ToggleWireframe = inpututil.IsKeyJustPressed(ebiten.KeyW)
	s.ClearMarkers = inpututil.IsKeyJustPressed(ebiten.KeyC)

	in.state = s
}

func (in *hostInput) modifierHeld() bool {
	switch in.mod {
	case ModifierControl:
		return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	case ModifierShift:
		return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	default:
		return ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	}
}
