package willowpick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// InputEvent is a single pointer event in window coordinates. Events are
// values; handlers receive a copy and must not hold on to it.
type InputEvent struct {
	Kind      EventKind
	Button    MouseButton
	X, Y      float64
	Modifiers KeyModifiers
}

// View is the query surface handed to event handlers alongside each event.
// Scene implements it.
type View interface {
	// Intersect returns the drawables under window position (x, y),
	// nearest first.
	Intersect(x, y float64) Intersections
}

// EventHandler receives pointer events. Handle returns true to consume the
// event and stop delivery to handlers registered after it.
type EventHandler interface {
	Handle(ev InputEvent, view View) bool
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ev InputEvent, view View) bool

// Handle calls f(ev, view).
func (f HandlerFunc) Handle(ev InputEvent, view View) bool {
	return f(ev, view)
}

// --- Handler registry ---

type registeredHandler struct {
	id uint32
	h  EventHandler
}

type handlerRegistry struct {
	handlers []registeredHandler
	nextID   uint32
}

// HandlerHandle allows removing a registered event handler.
type HandlerHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters the handler so it no longer receives events.
func (h HandlerHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = registeredHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// AddEventHandler registers h. Handlers see events in registration order.
func (s *Scene) AddEventHandler(h EventHandler) HandlerHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.handlers = append(s.handlers.handlers, registeredHandler{id: id, h: h})
	return HandlerHandle{id: id, reg: &s.handlers}
}

// NumEventHandlers returns the number of registered handlers.
func (s *Scene) NumEventHandlers() int {
	return len(s.handlers.handlers)
}

// DispatchEvent delivers ev to the registered handlers in order, stopping at
// the first one that consumes it. Reports whether the event was consumed.
func (s *Scene) DispatchEvent(ev InputEvent) bool {
	// Handlers may unregister themselves or dispatch again; iterate a
	// snapshot that a nested dispatch cannot reuse.
	buf := append(s.handlerBuf[:0], s.handlers.handlers...)
	s.handlerBuf = nil
	defer func() { s.handlerBuf = buf[:0] }()
	for _, rh := range buf {
		if rh.h.Handle(ev, s) {
			s.logger.Debug("event consumed",
				zap.Stringer("kind", ev.Kind),
				zap.Uint32("handler", rh.id))
			return true
		}
	}
	return false
}

// --- Pointer polling ---

// pointerState tracks the mouse between frames so that edge events can be
// derived from ebiten's level-triggered state.
type pointerState struct {
	x, y    float64
	pressed [4]bool // indexed by MouseButton
	seen    bool
}

var ebitenButtons = [...]struct {
	button MouseButton
	eb     ebiten.MouseButton
}{
	{ButtonLeft, ebiten.MouseButtonLeft},
	{ButtonMiddle, ebiten.MouseButtonMiddle},
	{ButtonRight, ebiten.MouseButtonRight},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update. An injected event, if queued,
// replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.pollEnabled {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := [4]bool{}
	for _, b := range ebitenButtons {
		pressed[b.button] = ebiten.IsMouseButtonPressed(b.eb)
	}
	s.emitPointerEvents(float64(mx), float64(my), pressed, readModifiers())
}

// emitPointerEvents diffs the new pointer state against the previous frame
// and dispatches one event per change: a move first, then button edges in
// left, middle, right order.
func (s *Scene) emitPointerEvents(x, y float64, pressed [4]bool, mods KeyModifiers) {
	ps := &s.pointer
	if ps.seen && (x != ps.x || y != ps.y) {
		btn := ButtonNone
		for _, b := range ebitenButtons {
			if ps.pressed[b.button] {
				btn = b.button
				break
			}
		}
		s.DispatchEvent(InputEvent{Kind: EventMove, Button: btn, X: x, Y: y, Modifiers: mods})
	}
	ps.x, ps.y, ps.seen = x, y, true

	for _, b := range ebitenButtons {
		was, now := ps.pressed[b.button], pressed[b.button]
		switch {
		case now && !was:
			s.DispatchEvent(InputEvent{Kind: EventPress, Button: b.button, X: x, Y: y, Modifiers: mods})
		case !now && was:
			s.DispatchEvent(InputEvent{Kind: EventRelease, Button: b.button, X: x, Y: y, Modifiers: mods})
		}
		ps.pressed[b.button] = now
	}
}
