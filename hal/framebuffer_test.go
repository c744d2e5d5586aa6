package hal

import "testing"

func TestFramebufferClear(t *testing.T) {
	fb := newFramebuffer(4, 2)
	if fb.StrideBytes() != 16 {
		t.Fatalf("stride = %d, want 16", fb.StrideBytes())
	}
	fb.ClearRGB(0x10, 0x20, 0x30)

	buf := fb.Buffer()
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0x10 || buf[i+1] != 0x20 || buf[i+2] != 0x30 || buf[i+3] != 0xFF {
			t.Fatalf("pixel %d = %v, want 10 20 30 FF", i/4, buf[i:i+4])
		}
	}
}

func TestFramebufferSnapshot(t *testing.T) {
	fb := newFramebuffer(2, 2)
	fb.ClearRGB(1, 2, 3)

	dst := make([]byte, len(fb.Buffer()))
	fb.snapshot(dst)

	fb.ClearRGB(9, 9, 9)
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("snapshot aliases the live buffer: %v", dst[:4])
	}
}

func TestMemInputScript(t *testing.T) {
	h := NewMem(Options{Width: 8, Height: 8})
	h.PushInput(InputState{ModifierHeld: true, Focused: true})
	h.PushInput(InputState{Click: true, ClickX: 3, ClickY: 4, Focused: true})

	s := h.Input().State()
	if !s.ModifierHeld {
		t.Fatal("first state should hold modifier")
	}
	s = h.Input().State()
	if !s.Click || s.ClickX != 3 || s.ClickY != 4 {
		t.Fatalf("second state = %+v, want click at 3,4", s)
	}
	s = h.Input().State()
	if s.Click || s.ModifierHeld || !s.Focused {
		t.Fatalf("drained input should be idle and focused, got %+v", s)
	}
}
