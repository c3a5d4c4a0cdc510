package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/ecs/entity"
	"github.com/milk9111/lander/ecs/render"
	"github.com/milk9111/lander/ecs/system"
	"github.com/milk9111/lander/physics"
	"github.com/milk9111/lander/prefabs"
	"github.com/milk9111/lander/scenario"
	"go.uber.org/zap"
)

// watchDirs are the on-disk overrides of the embedded prefabs. fsnotify does
// not recurse, so each directory is listed.
var watchDirs = []string{"prefabs", "prefabs/profiles", "prefabs/scripts"}

type Game struct {
	cfg    Config
	logger *zap.Logger

	seed      int64
	world     *ecs.World
	scheduler *ecs.Scheduler
	layout    entity.Layout

	watcher *prefabs.Watcher

	ui     *ebitenui.UI
	paused bool
	quit   bool
}

func NewGame(cfg Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		seed:   seed,
	}
	if err := g.newRound(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher(watchDirs...)
		if err != nil {
			logger.Warn("prefab watch disabled", zap.Strings("dirs", watchDirs), zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// newRound builds a fresh world from the active profile and the current
// seed's layout.
func (g *Game) newRound() error {
	p, err := prefabs.LoadProfile(g.cfg.Profile)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, p, common.BaseWidth, common.BaseHeight); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	bodies, err := scenario.Generate(context.Background(), scenario.Config{
		Script: g.cfg.Scenario,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Seed:   g.seed,
	})
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	layout, err := entity.Spawn(w, bodies)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.world = w
	g.layout = layout
	g.scheduler = newScheduler(g.logger, nil, g.cfg.Debug)
	g.logger.Info("round ready",
		zap.String("profile", p.Name),
		zap.Int64("seed", g.seed),
		zap.Int("moons", len(layout.Moons)),
		zap.Int("asteroids", len(layout.Asteroids)),
	)
	return nil
}

// newScheduler lays out the frame. Order matters: gravity reads the bodies
// orbit just moved, flight reads gravity, crash effects read flight events.
// The render system is last and only acts on Draw.
func newScheduler(logger *zap.Logger, pointer system.PointerSource, debug bool) *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewInputSystem(pointer),
		system.NewLaunchSystem(logger),
		system.NewOrbitSystem(),
		system.NewGravitySystem(),
		system.NewAsteroidSystem(logger),
		system.NewFlightSystem(logger),
		system.NewCrashSystem(logger, entity.NewCrash),
		system.NewBoundsSystem(logger),
		system.NewScoreSystem(logger),
		system.NewAudioSystem(logger),
		system.NewIndicatorSystem(),
		system.NewSpeedometerSystem(),
		system.NewSyncSystem(),
		system.NewRenderSystem(debug),
	)
}

func (g *Game) Seed() int64 {
	return g.seed
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		if g.ui == nil {
			g.ui = NewPauseUI(g)
		}
		g.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ResetRocket()
	}
	g.drainWatcher()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.paused && g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Quit() {
	g.quit = true
}

// ResetRocket puts the rocket back on its pad without touching the layout.
func (g *Game) ResetRocket() {
	if system.ResetRocket(g.world) {
		g.logger.Info("rocket reset")
	}
}

// Restart lays out a new system from the next seed.
func (g *Game) Restart() error {
	prev := g.seed
	g.seed++
	if err := g.Reload(); err != nil {
		g.seed = prev
		return err
	}
	g.paused = false
	return nil
}

// Reload rebuilds the round from the same seed so prefab and script edits
// show up on the layout already in play. A failed rebuild keeps the old round.
func (g *Game) Reload() error {
	render.ForgetTextures()
	return g.newRound()
}

// drainWatcher applies any pending file edits without blocking the frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.logger.Warn("prefab watch", zap.Error(err))
			}
		default:
			return
		}
	}
}

// applyChange reloads what an edited file feeds. Profiles swap the live
// tuning in place; prefabs and the active scenario script rebuild the round.
func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeProfile:
		name, _ := prefabs.ProfileName(change.Path)
		if name == g.activeProfile() {
			g.reloadProfile(name)
		}
	case prefabs.ChangeScript:
		if scriptName(change.Path) != g.activeScenario() {
			return
		}
		g.reloadRound(change)
	case prefabs.ChangePrefab:
		g.reloadRound(change)
	}
}

func (g *Game) reloadRound(change prefabs.Change) {
	if err := g.Reload(); err != nil {
		g.logger.Warn("reload rejected",
			zap.String("file", change.Path),
			zap.Stringer("kind", change.Kind),
			zap.Error(err),
		)
		return
	}
	g.logger.Info("round reloaded", zap.String("file", change.Path), zap.Stringer("kind", change.Kind))
}

func scriptName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (g *Game) activeScenario() string {
	if g.cfg.Scenario == "" {
		return scenario.DefaultScript
	}
	return scriptName(g.cfg.Scenario)
}

func (g *Game) activeProfile() string {
	if g.cfg.Profile == "" {
		return physics.DefaultProfile().Name
	}
	return g.cfg.Profile
}

// reloadProfile swaps the live tuning. A broken file keeps the old values.
func (g *Game) reloadProfile(name string) {
	p, err := prefabs.LoadProfile(name)
	if err != nil {
		g.logger.Warn("profile reload rejected", zap.String("profile", name), zap.Error(err))
		return
	}
	e, ok := g.world.First(component.TuningComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(g.world, e, component.TuningComponent.Kind())
	if !ok {
		return
	}
	t.Profile = p
	t.Version++
	g.logger.Info("profile reloaded", zap.String("profile", name), zap.Int("version", t.Version))
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
