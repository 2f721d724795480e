package willowpick

// InjectEvent queues a synthetic event. Queued events are consumed one per
// frame by Scene.Update, in FIFO order, and replace real input for that frame.
func (s *Scene) InjectEvent(ev InputEvent) {
	s.injectQueue = append(s.injectQueue, ev)
}

// InjectPress queues a button press at the given window coordinates.
func (s *Scene) InjectPress(x, y float64, button MouseButton, mods KeyModifiers) {
	s.InjectEvent(InputEvent{Kind: EventPress, Button: button, X: x, Y: y, Modifiers: mods})
}

// InjectRelease queues a button release at the given window coordinates.
func (s *Scene) InjectRelease(x, y float64, button MouseButton, mods KeyModifiers) {
	s.InjectEvent(InputEvent{Kind: EventRelease, Button: button, X: x, Y: y, Modifiers: mods})
}

// InjectMove queues a pointer move with no button held.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectEvent(InputEvent{Kind: EventMove, Button: ButtonNone, X: x, Y: y})
}

// InjectClick queues a left press followed by a release at the same
// position with the given modifiers. Consumes two frames.
func (s *Scene) InjectClick(x, y float64, mods KeyModifiers) {
	s.InjectPress(x, y, ButtonLeft, mods)
	s.InjectRelease(x, y, ButtonLeft, mods)
}

// PendingInjected returns the number of queued synthetic events.
func (s *Scene) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.DispatchEvent(ev)
	return true
}
