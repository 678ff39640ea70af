// Package frontend runs a game in an ebiten window.
package frontend

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrita/config"
	"github.com/plus3/tetrita/frontend/debugui"
	"github.com/plus3/tetrita/frontend/input"
	"github.com/plus3/tetrita/frontend/render"
	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// Game implements ebiten.Game on top of a tetris.Game and a loop.Scheduler.
type Game struct {
	game      *tetris.Game
	scheduler *loop.Scheduler
	renderer  *render.Renderer
	overlay   *debugui.Overlay
	view      *ebiten.Image
	tickRate  int
	done      bool
	log       *slog.Logger
}

// Option configures a Game.
type Option func(*options)

type options struct {
	systems []loop.System
	log     *slog.Logger
}

// WithSystem registers an extra system after the built-in ones, for example an
// inspection publisher.
func WithSystem(s loop.System) Option {
	return func(o *options) { o.systems = append(o.systems, s) }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New builds the window, the input pipeline and the systems for g.
func New(g *tetris.Game, cfg *config.Config, opts ...Option) (*Game, error) {
	o := options{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	bound, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	bindings, err := input.NewBindings(bound, LookupKey)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	fg := &Game{
		game:      g,
		scheduler: loop.NewScheduler(g),
		renderer:  render.New(bound),
		view:      ebiten.NewImage(render.ViewWidth, render.ViewHeight),
		tickRate:  cfg.TickRate,
		log:       o.log,
	}

	w := int(render.ViewWidth * cfg.Window.Scale)
	h := int(render.ViewHeight * cfg.Window.Scale)
	if cfg.DebugUI {
		fg.overlay = debugui.New(cfg.Window.Title, w, h)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	in := &InputSystem{
		Game:    g,
		Mapper:  input.NewMapper(bindings, cfg.Input.RepeatDelay, cfg.Input.RepeatRate),
		Log:     o.log,
		focused: true,
	}
	if fg.overlay != nil {
		in.Captured = func() bool { return fg.overlay.Input().WantCaptureKeyboard }
	}

	fg.scheduler.Register(&loop.TickSystem{Game: g})
	fg.scheduler.Register(in)
	fg.scheduler.Register(&QuitSystem{Game: g, Done: func() { fg.done = true }})
	for _, s := range o.systems {
		fg.scheduler.Register(s)
	}
	if fg.overlay != nil {
		fg.overlay.Add(debugui.NewInspector(g.Snapshot))
		fg.overlay.Add(debugui.NewSchedulerStats(fg.scheduler.Stats, 120))
		fg.scheduler.Register(fg.overlay)
	}

	o.log.Info("frontend ready",
		"tick_rate", cfg.TickRate,
		"keys", bindings.Len(),
		"debug_ui", cfg.DebugUI,
	)
	return fg, nil
}

// Stats exposes the scheduler statistics.
func (fg *Game) Stats() *loop.Stats {
	return fg.scheduler.Stats()
}

// Run opens the window and blocks until the game is quit or the window closed.
func (fg *Game) Run() error {
	defer fg.game.Close()
	if err := ebiten.RunGame(fg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func (fg *Game) Update() error {
	if fg.overlay != nil {
		fg.overlay.BeginFrame()
	}
	fg.scheduler.Once(1 / float64(fg.tickRate))
	if fg.overlay != nil {
		fg.overlay.EndFrame()
	}

	if fg.done {
		fg.log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (fg *Game) Draw(screen *ebiten.Image) {
	snap := fg.game.Snapshot()
	fg.view.Clear()
	fg.renderer.Draw(fg.view, &snap)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(float64(sw)/render.ViewWidth, float64(sh)/render.ViewHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-render.ViewWidth*scale)/2, (float64(sh)-render.ViewHeight*scale)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(fg.view, op)

	if fg.overlay != nil {
		fg.overlay.Draw(screen)
	}
}

func (fg *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if fg.overlay != nil {
		fg.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
