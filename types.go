package willowpick

import "image/color"

// Color represents an RGBA color. Components are nominally in [0, 1] but are
// not clamped on assignment; clamping happens at render submission time.
// Not premultiplied.
type Color struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

// ColorWhite is the default drawable color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA, clamping each component.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes the role of a Node in the tree.
type NodeType uint8

const (
	NodeTypeGroup NodeType = iota // holds groups and geodes, draws nothing
	NodeTypeGeode                 // holds drawables only
	NodeTypeQuad                  // solid-color rectangle drawable
	NodeTypeMesh                  // triangle mesh drawable
	NodeTypeLabel                 // text drawable
)

// IsDrawable reports whether nodes of this type are leaf drawables.
func (t NodeType) IsDrawable() bool {
	return t >= NodeTypeQuad
}

func (t NodeType) String() string {
	switch t {
	case NodeTypeGroup:
		return "group"
	case NodeTypeGeode:
		return "geode"
	case NodeTypeQuad:
		return "quad"
	case NodeTypeMesh:
		return "mesh"
	case NodeTypeLabel:
		return "label"
	default:
		return "unknown"
	}
}

// EventKind identifies the kind of pointer event.
type EventKind uint8

const (
	EventPress   EventKind = iota // a button went down
	EventRelease                  // a button went up
	EventMove                     // the pointer moved
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventMove:
		return "move"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonNone   MouseButton = iota // no button (hover moves)
	ButtonLeft                      // primary button
	ButtonMiddle                    // middle button (scroll wheel click)
	ButtonRight                     // secondary button
)

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
// The zero value means no modifier is held.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in want is held in m.
func (m KeyModifiers) Has(want KeyModifiers) bool {
	return m&want == want
}
