package willowpick

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", cam.Zoom)
	}
	if cam.EyeZ != DefaultEyeZ {
		t.Errorf("EyeZ = %v, want %v", cam.EyeZ, DefaultEyeZ)
	}
	// Centered on the viewport, so screen and world coincide.
	wx, wy := cam.ScreenToWorld(123, 456)
	if !approxEqual(wx, 123, epsilon) || !approxEqual(wy, 456, epsilon) {
		t.Errorf("ScreenToWorld(123,456) = (%v, %v)", wx, wy)
	}
}

func TestCameraZoomAndPan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y, cam.Zoom = 100, 50, 2
	cam.MarkDirty()

	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(center) = (%v, %v), want (400, 300)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(110, 50)
	if !approxEqual(sx, 420, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(+10) = (%v, %v), want (420, 300)", sx, sy)
	}
	wx, wy := cam.ScreenToWorld(420, 300)
	if !approxEqual(wx, 110, epsilon) || !approxEqual(wy, 50, epsilon) {
		t.Errorf("ScreenToWorld = (%v, %v), want (110, 50)", wx, wy)
	}
}

func TestCameraRotationRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480})
	cam.Rotation = math.Pi / 3
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(17, 29)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, 17, 1e-9) || !approxEqual(wy, 29, 1e-9) {
		t.Errorf("round trip = (%v, %v), want (17, 29)", wx, wy)
	}
}

func TestCameraRay(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	r := cam.Ray(10, 20)
	if r.Origin.X() != 10 || r.Origin.Y() != 20 || r.Origin.Z() != DefaultEyeZ {
		t.Errorf("Origin = %v", r.Origin)
	}
	if r.Dir.Z() != -1 {
		t.Errorf("Dir = %v, want down -Z", r.Dir)
	}
}

func TestRayIntersectPlaneZ(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	r := cam.Ray(5, 5)

	pt, dist, ok := r.IntersectPlaneZ(10)
	if !ok {
		t.Fatal("expected intersection")
	}
	if dist != DefaultEyeZ-10 || pt.Z() != 10 {
		t.Errorf("dist = %v, pt = %v", dist, pt)
	}

	if _, _, ok := r.IntersectPlaneZ(DefaultEyeZ + 1); ok {
		t.Error("plane behind the eye should not intersect")
	}

	flat := Ray{Origin: r.Origin, Dir: r.Dir}
	flat.Dir[2] = 0
	flat.Dir[0] = 1
	if _, _, ok := flat.IntersectPlaneZ(0); ok {
		t.Error("parallel ray should not intersect")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.ScrollTo(250, 150, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("expected scrolling after ScrollTo")
	}
	cam.update(0.5)
	cam.update(0.5)
	if cam.Scrolling() {
		t.Error("scroll should finish after its duration")
	}
	if math.Abs(cam.X-250) > 0.5 || math.Abs(cam.Y-150) > 0.5 {
		t.Errorf("camera at (%v, %v), want ~(250, 150)", cam.X, cam.Y)
	}
}
