package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/scenekit/common"
	"github.com/milk9111/scenekit/hud"
	"github.com/milk9111/scenekit/input"
	"github.com/milk9111/scenekit/prefabs"
	"github.com/milk9111/scenekit/render"
	"github.com/milk9111/scenekit/scene"
	"github.com/milk9111/scenekit/script"
	"github.com/milk9111/scenekit/system"
)

// dt is the fixed simulation step, one Ebiten tick.
const dt = 1.0 / 60.0

// Game owns the registered scenes, the single active scene, and the frame
// loop wiring around the step systems.
type Game struct {
	scenes map[string]*scene.Scene
	active *scene.Scene

	sampler    input.Sampler
	runner     *system.Runner
	camera     *render.Camera
	renderer   *render.Renderer
	scoreboard *hud.Scoreboard
	scripts    *script.Runtime
	watcher    *prefabs.Watcher

	running bool
}

func NewGame(debug bool) *Game {
	g := &Game{
		scenes:     map[string]*scene.Scene{},
		sampler:    input.NewKeyboard(),
		camera:     render.NewCamera(common.BaseWidth, common.BaseHeight),
		renderer:   render.NewRenderer(),
		scoreboard: hud.NewScoreboard(),
		scripts:    script.NewRuntime(),
	}
	g.renderer.Debug = debug
	g.runner = &system.Runner{
		Sampler:     g.sampler,
		Multiplayer: true,
		Scoreboard:  g.scoreboard.SetEntries,
	}

	w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
	if err != nil {
		log.Printf("game: spec watcher unavailable: %v", err)
	}
	g.watcher = w

	return g
}

// Scene registers a scene under name and hands it to build for programmatic
// construction.
func (g *Game) Scene(name string, build func(*scene.Scene)) *scene.Scene {
	s := scene.New(name)
	if build != nil {
		build(s)
	}
	g.scenes[name] = s
	return s
}

// LoadScene reads a YAML scene spec by name and registers the result.
func (g *Game) LoadScene(name string) error {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return err
	}
	// Scenes loaded from disk register under their file basename, so hot
	// reload and -scene agree on the key regardless of the spec's name.
	key := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
	g.scenes[key] = prefabs.BuildScene(spec, g.scripts.Callback)
	return nil
}

// UseScene switches the active scene. Referencing an unregistered name is a
// configuration error and fails the call.
func (g *Game) UseScene(name string) error {
	s, ok := g.scenes[name]
	if !ok {
		return fmt.Errorf("game: scene %q is not registered", name)
	}
	g.active = s
	return nil
}

// Start sets the running flag; the next Update advances the simulation.
func (g *Game) Start() {
	g.running = true
}

// Stop clears the running flag. No in-flight step is preempted; the loop
// simply stops advancing.
func (g *Game) Stop() {
	g.running = false
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.sampler.JustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}

	g.scoreboard.Update()

	if !g.running || g.active == nil {
		return nil
	}

	g.runner.Step(g.active, dt)

	// Camera follows one frame behind combat-induced movement.
	g.camera.Follow(g.active)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.active == nil {
		screen.Fill(color.NRGBA{A: 0xff})
		return
	}
	g.renderer.Draw(screen, g.active, g.camera)
	g.scoreboard.Draw(screen)

	if g.renderer.Debug {
		render.Text(screen, fmt.Sprintf("fps %.1f  entities %d  t %.2f",
			ebiten.ActualFPS(), len(g.active.Entities), g.active.Elapsed),
			render.TextOptions{X: 10, Y: float64(common.BaseHeight) - 24})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// pollWatcher applies pending hot-reload events without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: spec watcher: %v", err)
		default:
			return
		}
	}
}

// reload rebuilds the active scene when its spec changes, or drops a cached
// script so its next fire recompiles.
func (g *Game) reload(path string) {
	base := filepath.Base(path)
	if strings.HasSuffix(base, ".tengo") {
		g.scripts.Invalidate(base)
		return
	}
	name := strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	if _, ok := g.scenes[name]; !ok {
		return
	}
	wasActive := g.active == g.scenes[name]
	if err := g.LoadScene(name); err != nil {
		log.Printf("game: reload scene %s: %v", name, err)
		return
	}
	log.Printf("game: reloaded scene %s", name)
	if wasActive {
		g.active = g.scenes[name]
	}
}
