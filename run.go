package willowpick

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrNoScene is returned by Run when called with a nil scene.
var ErrNoScene = errors.New("willowpick: nil scene")

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// Run opens a window and runs the scene until the window closes or the
// scene's update function returns an error. If the scene has no camera, one
// covering the window is created. cfg is validated first; zero Width or
// Height fall back to DefaultRunConfig.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		return ErrNoScene
	}
	def := DefaultRunConfig()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.ClearColor != (Color{}) {
		scene.ClearColor = cfg.ClearColor
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if scene.camera == nil {
		scene.SetCamera(NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}))
	}
	scene.pollEnabled = true

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	scene.logger.Info("starting",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	if err := ebiten.RunGame(&game{scene: scene, w: cfg.Width, h: cfg.Height}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
