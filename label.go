package willowpick

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// NewLabel creates a text drawable rendered with face. The face is owned by
// the caller and may be shared between labels; there is no package-level
// default font.
func NewLabel(name, content string, face text.Face) *Node {
	n := &Node{Name: name, Type: NodeTypeLabel, Text: content, face: face}
	nodeDefaults(n)
	n.Pickable = false
	return n
}

// NewDebugFace returns the fixed 7x13 bitmap face from x/image, handy for
// HUD readouts that need no font assets.
func NewDebugFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// Face returns the label's font face.
func (n *Node) Face() text.Face {
	return n.face
}

// SetText replaces the label content.
func (n *Node) SetText(s string) {
	n.Text = s
}

// labelLineHeight derives the line advance from the face metrics.
func labelLineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
