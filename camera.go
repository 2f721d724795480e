package willowpick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEyeZ is the camera's depth when none is configured. Drawables must
// sit below it (Z < EyeZ) to be pickable.
const DefaultEyeZ = 1000.0

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is an orthographic camera looking down -Z onto the scene.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
	// EyeZ is the depth pick rays start from.
	EyeZ float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scroll *scrollAnim
}

// NewCamera creates a camera with the given viewport, centered on the
// viewport's middle so that world and screen coordinates coincide.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1,
		Viewport: viewport,
		EyeZ:     DefaultEyeZ,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// update advances the scroll animation. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	prevX, prevY := c.X, c.Y
	if s := c.scroll; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(dt)
			c.X = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(dt)
			c.Y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scroll = nil
		}
	}
	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	c.viewMatrix = [6]float64{
		z * cos,
		z * sin,
		-z * sin,
		z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// assigning X, Y, Zoom or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// Ray returns the pick ray through window position (sx, sy). The ray starts
// at EyeZ above the world point under the cursor and points down -Z.
func (c *Camera) Ray(sx, sy float64) Ray {
	wx, wy := c.ScreenToWorld(sx, sy)
	return Ray{
		Origin: mgl64.Vec3{wx, wy, c.EyeZ},
		Dir:    mgl64.Vec3{0, 0, -1},
	}
}

// Ray is a half-line used for intersection queries.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectPlaneZ intersects the ray with the plane z = depth. It returns
// the hit point and its distance from the origin. ok is false when the ray
// is parallel to the plane or the plane lies behind the origin.
func (r Ray) IntersectPlaneZ(depth float64) (pt mgl64.Vec3, dist float64, ok bool) {
	if math.Abs(r.Dir.Z()) < 1e-12 {
		return mgl64.Vec3{}, 0, false
	}
	t := (depth - r.Origin.Z()) / r.Dir.Z()
	if t < 0 {
		return mgl64.Vec3{}, 0, false
	}
	pt = r.At(t)
	return pt, pt.Sub(r.Origin).Len(), true
}
