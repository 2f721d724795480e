package willowpick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affineToMat3 converts the packed affine layout to a column-major mgl64.Mat3.
func affineToMat3(m [6]float64) mgl64.Mat3 {
	return mgl64.Mat3{
		m[0], m[1], 0,
		m[2], m[3], 0,
		m[4], m[5], 1,
	}
}

// updateWorldTransform recomputes world transform, alpha and depth for n and
// its subtree. parentRecomputed forces recomputation of clean children when
// an ancestor changed.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha, parentZ float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.worldZ = parentZ + n.Z
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, n.worldZ, recompute)
	}
}

// --- Transform accessors ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetDepth sets the node's local Z and marks it dirty.
func (n *Node) SetDepth(z float64) {
	n.Z = z
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation in radians and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// MarkDirty flags the node's transform for recomputation. Call it after
// assigning X, Y, Z, Scale or Rotation directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// LocalMatrix returns the node's local transform as a homogeneous 2D matrix.
func (n *Node) LocalMatrix() mgl64.Mat3 {
	return affineToMat3(computeLocalTransform(n))
}

// WorldMatrix returns the node's world transform as of the last update.
func (n *Node) WorldMatrix() mgl64.Mat3 {
	return affineToMat3(n.worldTransform)
}

// WorldDepth returns the node's accumulated Z as of the last update.
func (n *Node) WorldDepth() float64 {
	return n.worldZ
}

// WorldToLocal converts world coordinates to this node's local space.
func (n *Node) WorldToLocal(wx, wy float64) (float64, float64) {
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}

// LocalToWorld converts a point in this node's local space to world space.
func (n *Node) LocalToWorld(lx, ly float64) (float64, float64) {
	return transformPoint(n.worldTransform, lx, ly)
}
