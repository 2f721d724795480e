package willowpick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. A single flat struct is used for groups,
// geodes and every drawable kind to avoid interface dispatch on the hot path.
//
// Groups hold groups and geodes. Geodes hold drawables. Drawables are leaves.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Z is a depth offset added to the parent's world Z;
	// larger values are closer to the camera.
	X, Y, Z  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during Scene.Update
	worldTransform [6]float64
	worldZ         float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & picking
	Alpha    float64
	Visible  bool
	Pickable bool

	// Drawable appearance
	Color Color

	// Quad fields (NodeTypeQuad)
	Width, Height float64

	// Mesh fields (NodeTypeMesh)
	Vertices         []ebiten.Vertex
	Indices          []uint16
	transformedVerts []ebiten.Vertex
	meshBounds       Rect
	meshBoundsDirty  bool

	// Label fields (NodeTypeLabel)
	Text string
	face text.Face

	// Hit testing; overrides the drawable's own bounds when set.
	HitShape HitShape

	// Metadata
	UserData any

	updateCallbacks []UpdateCallback

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Pickable = true
	n.transformDirty = true
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewGeode creates a container node that holds drawables.
func NewGeode(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGeode}
	nodeDefaults(n)
	return n
}

// NewQuad creates a solid-color rectangle drawable of the given size.
func NewQuad(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeQuad, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewMesh creates a mesh drawable rendered with DrawTriangles against a
// solid white source. Vertex colors are multiplied by Color.
func NewMesh(name string, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:            name,
		Type:            NodeTypeMesh,
		Vertices:        vertices,
		Indices:         indices,
		meshBoundsDirty: true,
	}
	nodeDefaults(n)
	return n
}

// IsDrawable reports whether n is a leaf drawable.
func (n *Node) IsDrawable() bool {
	return n.Type.IsDrawable()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, if child is an ancestor of this node (cycle), or
// if the child kind is not allowed under this node: drawables go under a
// geode, and geodes accept nothing else.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowpick: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	checkContainment(n, child)
	if isAncestor(child, n) {
		panic("willowpick: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddDrawable is AddChild restricted to drawables. It reads better at call
// sites that build geodes.
func (n *Node) AddDrawable(d *Node) {
	if d != nil && !d.IsDrawable() {
		panic("willowpick: AddDrawable called with a non-drawable node")
	}
	n.AddChild(d)
}

func checkContainment(parent, child *Node) {
	switch {
	case parent.IsDrawable():
		panic("willowpick: drawables cannot have children")
	case parent.Type == NodeTypeGeode && !child.IsDrawable():
		panic("willowpick: a geode can only hold drawables")
	case parent.Type == NodeTypeGroup && child.IsDrawable():
		panic("willowpick: drawables must be added to a geode")
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("willowpick: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// HasChild reports whether child is a direct child of n.
func (n *Node) HasChild(child *Node) bool {
	for _, c := range n.children {
		if c == child {
			return true
		}
	}
	return false
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path returns the ancestors of n ordered root to leaf, excluding n itself.
// For a drawable this ends at its geode.
func (n *Node) Path() []*Node {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	path := make([]*Node, depth)
	for p := n.Parent; p != nil; p = p.Parent {
		depth--
		path[depth] = p
	}
	return path
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Any NodeRef to a disposed
// node reports it as stale.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.Vertices = nil
	n.Indices = nil
	n.transformedVerts = nil
	n.face = nil
	n.UserData = nil
	n.updateCallbacks = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
