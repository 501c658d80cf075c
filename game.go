package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/ecs/entity"
	"github.com/milk9111/pixelcam/ecs/system"
	"github.com/milk9111/pixelcam/prefabs"
	"github.com/milk9111/pixelcam/zoom"
)

const (
	cameraPrefab  = "camera.yaml"
	minimapPrefab = "minimap.yaml"
	scenePrefab   = "scene.yaml"
)

type GameOptions struct {
	Debug bool
	Watch bool
}

type Game struct {
	world   *ecs.World
	camera  ecs.Entity
	minimap ecs.Entity

	minimapImage *ebiten.Image

	// physical window size from the last Layout call
	windowW, windowH int

	hud          *hudSystem
	watcher      *prefabs.Watcher
	reloaded     map[string]time.Time
	settings     *ebitenui.UI
	showSettings bool
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{world: ecs.NewWorld(), hud: &hudSystem{}, reloaded: make(map[string]time.Time)}

	cameraSpec, err := prefabs.LoadCameraSpec(cameraPrefab)
	if err != nil {
		return nil, err
	}
	minimapSpec, err := prefabs.LoadCameraSpec(minimapPrefab)
	if err != nil {
		return nil, err
	}
	sceneSpec, err := prefabs.LoadSceneSpec(scenePrefab)
	if err != nil {
		return nil, err
	}

	if _, err := entity.NewWindowSurface(g.world); err != nil {
		return nil, err
	}
	if _, err := entity.NewScene(g.world, sceneSpec); err != nil {
		return nil, err
	}

	g.camera, err = entity.NewPixelCamera(g.world, cameraSpec, 0)
	if err != nil {
		return nil, err
	}
	if err := entity.AddZoomControl(g.world, g.camera, zoomDefaults); err != nil {
		return nil, err
	}

	if minimapSpec.Surface != nil {
		g.minimapImage = ebiten.NewImage(minimapSpec.Surface.Width, minimapSpec.Surface.Height)
		surface, err := entity.NewImageSurface(g.world, g.minimapImage)
		if err != nil {
			return nil, err
		}
		g.minimap, err = entity.NewPixelCamera(g.world, minimapSpec, surface)
		if err != nil {
			return nil, err
		}
	}

	g.world.AddSystemToStage(ecs.StageFirst, system.NewInputSystem())
	system.PixelCameraPlugin{WindowSize: g.windowSize, Verbose: opts.Debug}.Build(g.world)
	g.world.AddSystem(system.NewZoomControlSystem())
	g.world.AddSystem(system.NewMovementSystem())
	g.world.AddSystem(system.NewAnimationSystem())
	g.world.AddSystem(system.NewCameraSystem())
	g.world.AddSystemToStage(ecs.StageLast, g.hud)
	g.world.AddSystemToStage(ecs.StageLast, system.NewRenderSystem())

	g.settings = NewSettingsUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// zoomDefaults are the number-key presets after the prefab's own mode.
var zoomDefaults = []zoom.Mode{
	zoom.MustFitSize(320, 180),
	zoom.MustFitWidth(320),
	zoom.MustFitHeight(180),
	zoom.MustFixed(1),
	zoom.MustFixed(2),
}

func (g *Game) windowSize() (int, int) {
	return g.windowW, g.windowH
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showSettings = !g.showSettings
	}
	g.reloadPrefabs()
	if g.showSettings {
		g.settings.Update()
	}
	g.world.Update()
	return nil
}

// reloadPrefabs applies camera prefab edits picked up by the watcher. A bad
// edit is logged and the camera keeps its current settings.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadCamera(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadCamera(name string) {
	var target ecs.Entity
	switch name {
	case cameraPrefab:
		target = g.camera
	case minimapPrefab:
		target = g.minimap
	}
	if !target.Valid() {
		return
	}
	// editors often write a file more than once per save
	if mod, ok := prefabs.ModTime(name); ok {
		if !mod.After(g.reloaded[name]) {
			return
		}
		g.reloaded[name] = mod
	}
	spec, err := prefabs.LoadCameraSpec(name)
	if err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	if err := entity.ApplyCameraSpec(g.world, target, spec); err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	if target == g.camera {
		// preset buttons are labeled with the modes
		g.settings = NewSettingsUI(g)
	}
	log.Printf("reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)

	if g.minimapImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx()-g.minimapImage.Bounds().Dx()-8), 8)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(g.minimapImage, op)
	}

	ebitenutil.DebugPrint(screen, g.hudText())

	if g.showSettings {
		g.settings.Draw(screen)
	}
}

func (g *Game) hudText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.1f  window %dx%d\n", ebiten.ActualFPS(), g.windowW, g.windowH)
	if state, ok := ecs.Get(g.world, g.camera, component.PixelCameraStateComponent.Kind()); ok {
		fmt.Fprintf(&b, "%v scale %d viewport %v\n", state.Mode, state.Scale, state.Viewport)
	}
	fmt.Fprintf(&b, "viewport opt-in: %v\n", ecs.Has(g.world, g.camera, component.PixelViewportComponent.Kind()))
	b.WriteString("1-6 presets, V viewport, Tab settings, arrows move\n")
	for _, line := range g.hud.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Layout reports the physical window size, so one screen pixel is one
// device pixel and the pixel cameras own all scaling.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	g.windowW = int(math.Ceil(float64(outsideWidth) * s))
	g.windowH = int(math.Ceil(float64(outsideHeight) * s))
	return max(g.windowW, 1), max(g.windowH, 1)
}

// hudSystem keeps the last few rescale events for the debug overlay.
type hudSystem struct {
	lines []string
}

const hudLines = 4

func (h *hudSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventCameraRescaled {
			continue
		}
		r, ok := evt.Data.(ecs.CameraRescaled)
		if !ok {
			continue
		}
		h.lines = append(h.lines, fmt.Sprintf("camera %v: %v on %v -> x%d %v", r.Camera, r.Mode, r.Surface, r.Scale, r.Clamped))
		if len(h.lines) > hudLines {
			h.lines = h.lines[len(h.lines)-hudLines:]
		}
	}
}
