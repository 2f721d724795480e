package willowpick

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is the top-level object that owns the node tree, the camera, input
// routing and per-frame callbacks. Scene is not safe for concurrent use; all
// calls happen on the game loop goroutine.
type Scene struct {
	root   *Node
	camera *Camera
	logger *zap.Logger
	debug  bool

	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color

	// Input state
	handlers    handlerRegistry
	handlerBuf  []registeredHandler
	pointer     pointerState
	pollEnabled bool
	injectQueue []InputEvent

	updateFunc func() error

	// Render state
	pixel   *ebiten.Image // 1x1 white source for quads and meshes
	drawBuf []drawEntry
	frame   uint64
}

// NewScene creates a new scene with an empty root group.
func NewScene() *Scene {
	return &Scene{
		root:   NewGroup("root"),
		logger: zap.NewNop(),
	}
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node {
	return s.root
}

// SetCamera sets the camera used for drawing and picking. A nil camera
// maps window coordinates straight to world coordinates.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the scene's camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetLogger replaces the scene's logger. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Logger returns the scene's logger. Never nil.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetUpdateFunc registers a function called once per frame after input
// handling and update callbacks. A returned error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed node in tree operations panics, deep trees are reported, and
// per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Update runs one frame: input events first, then update callbacks, then the
// user update function. dt comes from ebiten's TPS.
func (s *Scene) Update() error {
	return s.step(1.0 / float64(ebiten.TPS()))
}

// step is Update with an explicit frame time.
func (s *Scene) step(dt float64) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// Refresh world transforms so hit testing sees current positions.
	updateWorldTransform(s.root, identityTransform, 1, 0, false)
	if s.camera != nil {
		s.camera.update(float32(dt))
	}
	s.processInput()

	updated := runUpdateCallbacks(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1, 0, false)
	s.frame++

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	if s.debug {
		s.logger.Debug("update",
			zap.Uint64("frame", s.frame),
			zap.Int("handlers", len(s.handlers.handlers)),
			zap.Int("callbackNodes", updated),
			zap.Int("pendingInjected", len(s.injectQueue)),
			zap.Duration("elapsed", time.Since(t0)))
	}
	return nil
}
