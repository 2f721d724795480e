package willowpick

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Intersection results ---

// Intersection is one drawable crossed by a pick ray.
type Intersection struct {
	// Drawable is the hit leaf. It is owned by the scene graph.
	Drawable *Node
	// NodePath lists the drawable's ancestors, root first. The last element
	// is the drawable's container.
	NodePath []*Node
	// Distance from the ray origin to Point.
	Distance float64
	// Point is the world-space hit position.
	Point mgl64.Vec3
	// LocalX and LocalY are the hit position in the drawable's local space.
	LocalX, LocalY float64
}

// Intersections is a hit list ordered nearest first.
type Intersections []Intersection

// Nearest returns the hit with the smallest Distance, the earliest one on
// ties. It does not rely on the list being sorted, so View implementations
// other than Scene may return hits in any order. ok is false for an empty
// list.
func (hs Intersections) Nearest() (hit Intersection, ok bool) {
	if len(hs) == 0 {
		return Intersection{}, false
	}
	best := 0
	for i := 1; i < len(hs); i++ {
		if hs[i].Distance < hs[best].Distance {
			best = i
		}
	}
	return hs[best], true
}

// sortByDistance orders hits nearest first. The sort is stable so callers
// control tie order.
func (hs Intersections) sortByDistance() {
	slices.SortStableFunc(hs, func(a, b Intersection) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// --- Drawable collection ---

// drawEntry is a drawable together with its painter-order sequence number.
type drawEntry struct {
	node  *Node
	order int
}

// collectDrawables walks the tree depth-first, appending visible drawables
// to buf in tree order. When pickOnly is set, subtrees and drawables with
// Pickable=false are skipped.
func collectDrawables(n *Node, pickOnly bool, buf []drawEntry) []drawEntry {
	if !n.Visible || (pickOnly && !n.Pickable) {
		return buf
	}
	if n.IsDrawable() {
		return append(buf, drawEntry{node: n, order: len(buf)})
	}
	for _, child := range n.children {
		buf = collectDrawables(child, pickOnly, buf)
	}
	return buf
}

// sortPainterOrder orders entries back to front: lower world Z first, tree
// order within equal depth.
func sortPainterOrder(entries []drawEntry) {
	slices.SortStableFunc(entries, func(a, b drawEntry) int {
		if c := cmp.Compare(a.node.worldZ, b.node.worldZ); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
}

// drawableContainsLocal tests whether (lx, ly) falls inside the drawable.
// Uses HitShape if set; otherwise the drawable's own local bounds.
func drawableContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	b := drawableBounds(n)
	if b.Width == 0 && b.Height == 0 {
		return false
	}
	return b.Contains(lx, ly)
}

// drawableBounds returns the drawable's local-space bounds.
func drawableBounds(n *Node) Rect {
	switch n.Type {
	case NodeTypeQuad:
		return Rect{Width: n.Width, Height: n.Height}
	case NodeTypeMesh:
		n.recomputeMeshBounds()
		return n.meshBounds
	case NodeTypeLabel:
		if n.face == nil || n.Text == "" {
			return Rect{}
		}
		w, h := text.Measure(n.Text, n.face, labelLineHeight(n.face))
		return Rect{Width: w, Height: h}
	default:
		return Rect{}
	}
}

// --- Queries ---

// IntersectRay returns every pickable drawable under root crossed by ray,
// ordered nearest first. Drawables at equal distance are ordered top-most
// first, matching what is visible on screen. World transforms must be
// current.
func IntersectRay(root *Node, ray Ray) Intersections {
	entries := collectDrawables(root, true, nil)
	sortPainterOrder(entries)

	var hits Intersections
	// Reverse painter order so that, after the stable sort, ties favor the
	// node drawn last.
	for i := len(entries) - 1; i >= 0; i-- {
		n := entries[i].node
		pt, dist, ok := ray.IntersectPlaneZ(n.worldZ)
		if !ok {
			continue
		}
		lx, ly := n.WorldToLocal(pt.X(), pt.Y())
		if !drawableContainsLocal(n, lx, ly) {
			continue
		}
		hits = append(hits, Intersection{
			Drawable: n,
			NodePath: n.Path(),
			Distance: dist,
			Point:    pt,
			LocalX:   lx,
			LocalY:   ly,
		})
	}
	hits.sortByDistance()
	return hits
}

// Intersect casts a ray through window position (sx, sy) using the scene's
// camera and returns the drawables it crosses, nearest first.
func (s *Scene) Intersect(sx, sy float64) Intersections {
	if s == nil {
		return nil
	}
	updateWorldTransform(s.root, identityTransform, 1, 0, false)
	return IntersectRay(s.root, s.rayAt(sx, sy))
}

// rayAt builds the pick ray for a window position. Without a camera, screen
// and world coordinates coincide.
func (s *Scene) rayAt(sx, sy float64) Ray {
	if s.camera != nil {
		return s.camera.Ray(sx, sy)
	}
	return Ray{
		Origin: mgl64.Vec3{sx, sy, DefaultEyeZ},
		Dir:    mgl64.Vec3{0, 0, -1},
	}
}
