package willowpick

import "go.uber.org/zap"

// Complement returns white*2 - c, component-wise over RGBA. The result is
// not clamped: Complement(Complement(c)) == c for every c, and components
// may leave [0, 1] (opaque alpha 1 stays 1, alpha 0 becomes 2). Rendering
// clamps at submission.
func Complement(c Color) Color {
	return Color{R: 2 - c.R, G: 2 - c.G, B: 2 - c.B, A: 2 - c.A}
}

// Recolor replaces the hit drawable's color with its Complement. Applying
// it twice to the same drawable restores the original color.
type Recolor struct{}

// Perform implements Action.
func (Recolor) Perform(hit Intersection) {
	if hit.Drawable == nil || hit.Drawable.IsDisposed() {
		return
	}
	hit.Drawable.Color = Complement(hit.Drawable.Color)
}

// Remove detaches the hit drawable from its geode and disposes it. The last
// node on the path is taken as the drawable's parent. If that node is not a
// Geode that owns the drawable, Remove does nothing.
type Remove struct {
	Logger *zap.Logger
}

// Perform implements Action.
func (r Remove) Perform(hit Intersection) {
	d := hit.Drawable
	if d == nil || d.IsDisposed() {
		return
	}
	if len(hit.NodePath) == 0 {
		return
	}
	parent := hit.NodePath[len(hit.NodePath)-1]
	if parent == nil || parent.Type != NodeTypeGeode || !parent.HasChild(d) {
		return
	}
	if r.Logger != nil {
		r.Logger.Debug("remove drawable",
			zap.String("drawable", d.Name),
			zap.String("geode", parent.Name))
	}
	d.Dispose()
}

// SelectState is the state of a SelectWithRestore action.
type SelectState uint8

const (
	SelectIdle        SelectState = iota // nothing highlighted
	SelectOneSelected                    // exactly one drawable highlighted
)

func (s SelectState) String() string {
	if s == SelectOneSelected {
		return "one-selected"
	}
	return "idle"
}

// SelectWithRestore highlights the hit drawable and restores the previously
// highlighted one to Normal. At most one drawable is highlighted at a time.
// The previous selection is held through a NodeRef, so a drawable removed
// from the scene in the meantime is skipped instead of mutated.
type SelectWithRestore struct {
	Normal    Color
	Highlight Color

	// OnChange, if set, is called after each selection with the new
	// selection. It must not retain the node.
	OnChange func(selected *Node)

	selected NodeRef
}

// NewSelectWithRestore creates a select action with the given colors.
func NewSelectWithRestore(normal, highlight Color) *SelectWithRestore {
	return &SelectWithRestore{Normal: normal, Highlight: highlight}
}

// Perform implements Action. It restores then highlights even when the same
// drawable is picked twice in a row.
func (s *SelectWithRestore) Perform(hit Intersection) {
	if prev := s.selected.Get(); prev != nil {
		prev.Color = s.Normal
	}
	d := hit.Drawable
	if d == nil || d.IsDisposed() {
		s.selected = NodeRef{}
		return
	}
	d.Color = s.Highlight
	s.selected = Ref(d)
	if s.OnChange != nil {
		s.OnChange(d)
	}
}

// Selected returns the highlighted drawable, or nil when none is live.
func (s *SelectWithRestore) Selected() *Node {
	return s.selected.Get()
}

// State reports SelectOneSelected while the held selection is live. Once the
// selected drawable is disposed the action reads as idle again.
func (s *SelectWithRestore) State() SelectState {
	if s.selected.Valid() {
		return SelectOneSelected
	}
	return SelectIdle
}

// Chain runs several actions in order on the same hit.
type Chain []Action

// Perform implements Action.
func (c Chain) Perform(hit Intersection) {
	for _, a := range c {
		a.Perform(hit)
	}
}
