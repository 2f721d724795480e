package willowpick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Output colors are premultiplied: vertex color * tint, scaled by the tint's
// alpha. The tint is clamped to [0, 1] first.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(clamp01(tint.R))
	cg := float32(clamp01(tint.G))
	cb := float32(clamp01(tint.B))
	ca := float32(clamp01(tint.A))

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		alpha := s.ColorA * ca
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * alpha,
			ColorG: s.ColorG * cg * alpha,
			ColorB: s.ColorB * cb * alpha,
			ColorA: alpha,
		}
	}
}

// computeMeshBounds scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshBounds(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX, maxY := minX, minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices), using a high-water-mark strategy (never shrinks).
// Returns the resliced buffer.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// recomputeMeshBounds refreshes the cached local bounds if vertices changed.
func (n *Node) recomputeMeshBounds() {
	if !n.meshBoundsDirty {
		return
	}
	n.meshBounds = computeMeshBounds(n.Vertices)
	n.meshBoundsDirty = false
}

// SetVertices replaces the mesh vertices and indices.
func (n *Node) SetVertices(vertices []ebiten.Vertex, indices []uint16) {
	n.Vertices = vertices
	n.Indices = indices
	n.meshBoundsDirty = true
}

// InvalidateMeshBounds marks the cached bounds stale. Call it after editing
// Vertices in place.
func (n *Node) InvalidateMeshBounds() {
	n.meshBoundsDirty = true
}
