package willowpick

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// LoopMode controls what an AnimationPath does past its last control point.
type LoopMode uint8

const (
	Loop     LoopMode = iota // wrap back to the first point
	LoopSwing                // play forward then backward
	NoLoop                   // hold the last point
)

// ControlPoint is a pose on an animation path.
type ControlPoint struct {
	Position mgl64.Vec3
	Rotation float64 // radians
}

type timedPoint struct {
	time  float64
	point ControlPoint
}

// AnimationPath is a time-ordered list of control points. Poses between two
// points are interpolated with Ease, which defaults to linear.
type AnimationPath struct {
	LoopMode LoopMode
	Ease     ease.TweenFunc

	points []timedPoint
}

// NewAnimationPath creates an empty path with the given loop mode.
func NewAnimationPath(mode LoopMode) *AnimationPath {
	return &AnimationPath{LoopMode: mode, Ease: ease.Linear}
}

// Insert adds a control point at time t, replacing any point already at t.
func (p *AnimationPath) Insert(t float64, cp ControlPoint) {
	i := sort.Search(len(p.points), func(i int) bool { return p.points[i].time >= t })
	if i < len(p.points) && p.points[i].time == t {
		p.points[i].point = cp
		return
	}
	p.points = append(p.points, timedPoint{})
	copy(p.points[i+1:], p.points[i:])
	p.points[i] = timedPoint{time: t, point: cp}
}

// Len returns the number of control points.
func (p *AnimationPath) Len() int {
	return len(p.points)
}

// FirstTime returns the time of the first control point.
func (p *AnimationPath) FirstTime() float64 {
	if len(p.points) == 0 {
		return 0
	}
	return p.points[0].time
}

// LastTime returns the time of the last control point.
func (p *AnimationPath) LastTime() float64 {
	if len(p.points) == 0 {
		return 0
	}
	return p.points[len(p.points)-1].time
}

// Period returns the time span between the first and last points.
func (p *AnimationPath) Period() float64 {
	return p.LastTime() - p.FirstTime()
}

// wrapTime maps t into [FirstTime, LastTime] according to the loop mode.
func (p *AnimationPath) wrapTime(t float64) float64 {
	first := p.FirstTime()
	period := p.Period()
	if period <= 0 {
		return first
	}
	switch p.LoopMode {
	case Loop:
		m := math.Mod(t-first, period)
		if m < 0 {
			m += period
		}
		return first + m
	case LoopSwing:
		span := 2 * period
		m := math.Mod(t-first, span)
		if m < 0 {
			m += span
		}
		if m > period {
			m = span - m
		}
		return first + m
	default:
		return t
	}
}

// Interpolate returns the pose at time t. ok is false for an empty path.
func (p *AnimationPath) Interpolate(t float64) (cp ControlPoint, ok bool) {
	n := len(p.points)
	if n == 0 {
		return ControlPoint{}, false
	}
	t = p.wrapTime(t)
	if t <= p.points[0].time {
		return p.points[0].point, true
	}
	if t >= p.points[n-1].time {
		return p.points[n-1].point, true
	}

	i := sort.Search(n, func(i int) bool { return p.points[i].time > t })
	a, b := p.points[i-1], p.points[i]
	fn := p.Ease
	if fn == nil {
		fn = ease.Linear
	}
	f := float64(fn(float32(t-a.time), 0, 1, float32(b.time-a.time)))

	return ControlPoint{
		Position: a.point.Position.Add(b.point.Position.Sub(a.point.Position).Mul(f)),
		Rotation: a.point.Rotation + (b.point.Rotation-a.point.Rotation)*f,
	}, true
}

// NewCirclePath builds a looping path of samples points around a circle of
// the given radius, completing one lap in period seconds. Each point faces
// along the direction of travel.
func NewCirclePath(radius, period float64, samples int) *AnimationPath {
	p := NewAnimationPath(Loop)
	if samples < 2 {
		samples = 2
	}
	deltaYaw := 2 * math.Pi / float64(samples-1)
	deltaTime := period / float64(samples)
	for i := 0; i < samples; i++ {
		yaw := deltaYaw * float64(i)
		sin, cos := math.Sincos(yaw)
		p.Insert(deltaTime*float64(i), ControlPoint{
			Position: mgl64.Vec3{sin * radius, cos * radius, 0},
			Rotation: -yaw,
		})
	}
	return p
}

// AnimationPlayer drives a node along an AnimationPath from its update
// callback. Create one per animated node.
type AnimationPlayer struct {
	Path *AnimationPath
	// Offset is added to the node's X, Y and Z, e.g. a circle center.
	Offset mgl64.Vec3
	// Speed scales elapsed time. Default 1.
	Speed  float64
	Paused bool

	elapsed float64
}

// NewAnimationPlayer creates a player for path at normal speed.
func NewAnimationPlayer(path *AnimationPath) *AnimationPlayer {
	return &AnimationPlayer{Path: path, Speed: 1}
}

// Elapsed returns the playback time in seconds.
func (a *AnimationPlayer) Elapsed() float64 {
	return a.elapsed
}

// Reset rewinds playback to the start.
func (a *AnimationPlayer) Reset() {
	a.elapsed = 0
}

// Callback returns the update callback that advances playback and writes
// the interpolated pose to the node.
func (a *AnimationPlayer) Callback() UpdateCallback {
	return func(n *Node, dt float64) {
		if a.Paused || a.Path == nil {
			return
		}
		a.elapsed += dt * a.Speed
		cp, ok := a.Path.Interpolate(a.Path.FirstTime() + a.elapsed)
		if !ok {
			return
		}
		pos := cp.Position.Add(a.Offset)
		n.X, n.Y, n.Z = pos.X(), pos.Y(), pos.Z()
		n.Rotation = cp.Rotation
		n.MarkDirty()
	}
}
