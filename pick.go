package willowpick

import (
	"go.uber.org/zap"
)

// Action is invoked with the nearest hit of a successful pick. Actions own
// whatever state they need; they must not keep the Intersection or a strong
// reference to its drawable past Perform.
type Action interface {
	Perform(hit Intersection)
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func(hit Intersection)

// Perform calls f(hit).
func (f ActionFunc) Perform(hit Intersection) {
	f(hit)
}

// ModifierMatch selects how the dispatcher compares held modifiers against
// the required set.
type ModifierMatch uint8

const (
	// MatchContains accepts the event when every required modifier is held.
	// Extra modifiers are allowed.
	MatchContains ModifierMatch = iota
	// MatchExact accepts the event only when the held set equals the
	// required set.
	MatchExact
)

func (m ModifierMatch) String() string {
	switch m {
	case MatchContains:
		return "contains"
	case MatchExact:
		return "exact"
	default:
		return "unknown"
	}
}

func (m ModifierMatch) matches(held, want KeyModifiers) bool {
	if m == MatchExact {
		return held == want
	}
	return held.Has(want)
}

// PickEvent summarizes a dispatched pick for observers. It carries
// identifiers only, never node pointers.
type PickEvent struct {
	DrawableID   uint32
	DrawableName string
	Distance     float64
	X, Y         float64
	Modifiers    KeyModifiers
}

// PickObserver is notified after each pick that reached the action.
type PickObserver interface {
	ObservePick(PickEvent)
}

// PickOption configures a PickDispatcher.
type PickOption func(*PickDispatcher)

// WithButton sets the button whose release triggers a pick. Default ButtonLeft.
func WithButton(b MouseButton) PickOption {
	return func(d *PickDispatcher) { d.button = b }
}

// WithModifiers sets the modifiers required to trigger a pick. Default ModCtrl.
func WithModifiers(m KeyModifiers) PickOption {
	return func(d *PickDispatcher) { d.modifiers = m }
}

// WithModifierMatch sets the modifier comparison rule. Default MatchContains.
func WithModifierMatch(m ModifierMatch) PickOption {
	return func(d *PickDispatcher) { d.match = m }
}

// WithLogger sets the dispatcher's logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) PickOption {
	return func(d *PickDispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithObserver registers an observer for dispatched picks.
func WithObserver(o PickObserver) PickOption {
	return func(d *PickDispatcher) { d.observer = o }
}

// PickDispatcher turns a pointer release into a scene intersection query and
// passes the nearest hit to its Action. It is an EventHandler and never
// consumes events, so handlers registered after it still see them.
type PickDispatcher struct {
	action    Action
	button    MouseButton
	modifiers KeyModifiers
	match     ModifierMatch
	logger    *zap.Logger
	observer  PickObserver
}

var _ EventHandler = (*PickDispatcher)(nil)

// NewPickDispatcher creates a dispatcher that runs action on ctrl + left
// release unless options say otherwise. Panics if action is nil.
func NewPickDispatcher(action Action, opts ...PickOption) *PickDispatcher {
	if action == nil {
		panic("willowpick: pick dispatcher needs an action")
	}
	d := &PickDispatcher{
		action:    action,
		button:    ButtonLeft,
		modifiers: ModCtrl,
		match:     MatchContains,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Triggers reports whether ev is the pick gesture.
func (d *PickDispatcher) Triggers(ev InputEvent) bool {
	return ev.Kind == EventRelease &&
		ev.Button == d.button &&
		d.match.matches(ev.Modifiers, d.modifiers)
}

// Handle implements EventHandler. It always returns false.
func (d *PickDispatcher) Handle(ev InputEvent, view View) bool {
	if !d.Triggers(ev) {
		if ce := d.logger.Check(zap.DebugLevel, "pick ignored"); ce != nil {
			ce.Write(zap.Stringer("kind", ev.Kind), zap.Uint8("button", uint8(ev.Button)))
		}
		return false
	}
	if view == nil {
		d.logger.Debug("pick without view")
		return false
	}
	hit, ok := view.Intersect(ev.X, ev.Y).Nearest()
	if !ok {
		d.logger.Debug("pick missed", zap.Float64("x", ev.X), zap.Float64("y", ev.Y))
		return false
	}
	if hit.Drawable == nil || hit.Drawable.IsDisposed() {
		d.logger.Debug("pick stale drawable", zap.Float64("distance", hit.Distance))
		return false
	}

	pe := PickEvent{
		DrawableID:   hit.Drawable.ID,
		DrawableName: hit.Drawable.Name,
		Distance:     hit.Distance,
		X:            ev.X,
		Y:            ev.Y,
		Modifiers:    ev.Modifiers,
	}
	d.logger.Debug("pick",
		zap.String("drawable", pe.DrawableName),
		zap.Uint32("id", pe.DrawableID),
		zap.Float64("distance", pe.Distance))

	d.action.Perform(hit)
	if d.observer != nil {
		d.observer.ObservePick(pe)
	}
	return false
}
