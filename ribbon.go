package willowpick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewRibbon creates a quad-strip mesh of numPoints vertices (rounded down to
// an even count, minimum 4) collapsed at the origin. Vertex pairs fade in and
// out along the strip: pair i has alpha sin(pi*i/numPoints). The ribbon is
// not pickable.
//
// Feed it with TrailerCallback to make it follow a moving node.
func NewRibbon(name string, c Color, numPoints int) *Node {
	numPoints &^= 1
	if numPoints < 4 {
		numPoints = 4
	}
	verts := make([]ebiten.Vertex, numPoints)
	for i := 0; i < numPoints-1; i += 2 {
		alpha := float32(math.Sin(math.Pi * float64(i) / float64(numPoints)))
		for j := i; j <= i+1; j++ {
			verts[j] = ebiten.Vertex{
				SrcX: 0.5, SrcY: 0.5,
				ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B),
				ColorA: alpha,
			}
		}
	}

	// Each quad (2k, 2k+1, 2k+2, 2k+3) becomes two triangles.
	quads := numPoints/2 - 1
	inds := make([]uint16, 0, quads*6)
	for k := 0; k < quads; k++ {
		i := uint16(2 * k)
		inds = append(inds, i, i+1, i+2, i+1, i+3, i+2)
	}

	n := NewMesh(name, verts, inds)
	n.Pickable = false
	return n
}

// TrailerCallback returns an update callback for a moving node that drags
// ribbon behind it. Every frame the strip shifts one vertex pair toward the
// tail and the head pair is placed halfWidth either side of the node's pivot
// along its local Y axis, expressed in its parent's space. The ribbon
// should therefore live under the same parent as the node.
//
// The callback holds only a NodeRef to the ribbon and stops once the ribbon
// is disposed.
func TrailerCallback(ribbon *Node, halfWidth float64) UpdateCallback {
	ref := Ref(ribbon)
	return func(n *Node, dt float64) {
		r := ref.Get()
		if r == nil {
			return
		}
		v := r.Vertices
		count := len(v)
		if count < 4 {
			return
		}
		for i := 0; i < count-3; i += 2 {
			v[i].DstX, v[i].DstY = v[i+2].DstX, v[i+2].DstY
			v[i+1].DstX, v[i+1].DstY = v[i+3].DstX, v[i+3].DstY
		}

		m := n.LocalMatrix()
		left := m.Mul3x1(mgl64.Vec3{n.PivotX, n.PivotY - halfWidth, 1})
		right := m.Mul3x1(mgl64.Vec3{n.PivotX, n.PivotY + halfWidth, 1})
		v[count-2].DstX, v[count-2].DstY = float32(left.X()), float32(left.Y())
		v[count-1].DstX, v[count-1].DstY = float32(right.X()), float32(right.Y())
		r.InvalidateMeshBounds()
	}
}
