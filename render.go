package willowpick

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// Draw renders visible drawables back to front: lower world Z first, tree
// order within equal depth. Colors are clamped to [0, 1] here, so
// out-of-range colors (see Complement) draw as their clamped value.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}

	updateWorldTransform(s.root, identityTransform, 1, 0, false)
	view := identityTransform
	if s.camera != nil {
		view = s.camera.computeViewMatrix()
	}

	s.drawBuf = collectDrawables(s.root, false, s.drawBuf[:0])
	sortPainterOrder(s.drawBuf)

	for _, e := range s.drawBuf {
		n := e.node
		m := multiplyAffine(view, n.worldTransform)
		tint := n.Color
		tint.A *= n.worldAlpha
		switch n.Type {
		case NodeTypeQuad:
			drawQuad(screen, s.pixel, n, m, tint)
		case NodeTypeMesh:
			drawMesh(screen, s.pixel, n, m, tint)
		case NodeTypeLabel:
			drawLabel(screen, n, m, tint)
		}
	}

	if s.debug {
		s.logger.Debug("draw",
			zap.Uint64("frame", s.frame),
			zap.Int("drawables", len(s.drawBuf)),
			zap.Duration("elapsed", time.Since(t0)))
	}
}

// geoM converts the packed affine layout to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// colorScale builds a premultiplied ebiten.ColorScale from a clamped tint.
func colorScale(c Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := clamp01(c.A)
	cs.Scale(float32(clamp01(c.R)*a), float32(clamp01(c.G)*a), float32(clamp01(c.B)*a), float32(a))
	return cs
}

func drawQuad(dst, pixel *ebiten.Image, n *Node, m [6]float64, tint Color) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(geoM(m))
	op.ColorScale = colorScale(tint)
	dst.DrawImage(pixel, op)
}

func drawMesh(dst, pixel *ebiten.Image, n *Node, m [6]float64, tint Color) {
	if len(n.Vertices) == 0 || len(n.Indices) == 0 {
		return
	}
	verts := ensureTransformedVerts(n)
	transformVertices(n.Vertices, verts, m, tint)
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, n.Indices, pixel, &op)
}

func drawLabel(dst *ebiten.Image, n *Node, m [6]float64, tint Color) {
	if n.face == nil || n.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(m)
	op.ColorScale = colorScale(tint)
	op.LineSpacing = labelLineHeight(n.face)
	text.Draw(dst, n.Text, n.face, op)
}
