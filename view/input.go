package view

// Tracker derives the orbit-enabled flag from polled input. Orbiting is
// allowed exactly while the modifier is held and the window has focus;
// losing focus drops the flag no matter what the key state says, so a
// missed key-up can never leave the camera stuck in orbit mode.
type Tracker struct {
	enabled bool
}

// Update recomputes the flag from one input snapshot and reports
// whether it changed. Repeated identical snapshots are no-ops.
func (t *Tracker) Update(modifierHeld, focused bool) bool {
	next := modifierHeld && focused
	changed := next != t.enabled
	t.enabled = next
	return changed
}

// OrbitEnabled reports whether orbit mode is active.
func (t *Tracker) OrbitEnabled() bool { return t.enabled }
