// Package game implements the main loop that connects the window, input,
// camera and renderer to the cube.
package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubikcube/internal/config"
	"github.com/Faultbox/rubikcube/internal/engine/audio"
	"github.com/Faultbox/rubikcube/internal/engine/camera"
	"github.com/Faultbox/rubikcube/internal/engine/debug"
	"github.com/Faultbox/rubikcube/internal/engine/input"
	"github.com/Faultbox/rubikcube/internal/engine/renderer"
	"github.com/Faultbox/rubikcube/internal/engine/window"
	"github.com/Faultbox/rubikcube/internal/logger"
	"github.com/Faultbox/rubikcube/internal/rubik"
)

// Title is the window title.
const Title = "Rubik's Cube"

// idleSleep is how long the loop sleeps per frame while the window is
// minimized or unfocused.
const idleSleep = 25 * time.Millisecond

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager

	camera   *camera.OrbitCamera
	viewport *camera.Viewport
	cube     *rubik.Cube
	shots    *debug.ScreenshotCapture

	orbiting bool // right button held
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since OpenGL context must exist.
	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:         dw,
		Height:        dh,
		ShowSelection: cfg.Debug.ShowSelection,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	g.camera = camera.NewOrbitCamera()
	g.camera.SetView(cfg.Camera.Distance, cfg.Camera.Pitch, cfg.Camera.Yaw)

	w, h := g.window.GetSize()
	g.viewport = camera.NewViewport(g.camera, w, h, cfg.Camera.FovDeg*math.Pi/180)

	g.cube = rubik.New(cubeOptions(cfg.Cube), g.viewport, w, h)
	if cfg.Cube.Seed != 0 {
		g.cube.SetRand(rand.New(rand.NewPCG(cfg.Cube.Seed, cfg.Cube.Seed)))
	}
	g.renderer.LoadCells(g.cube.Cells())

	g.audio = audio.New()
	g.audio.SetVolume(float64(cfg.Audio.Volume))
	g.audio.SetMuted(cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		// Sound is optional.
		logger.Warn("audio disabled", zap.Error(err))
	}
	g.cube.OnSettle(func(r rubik.Result) {
		if r.Turns != 0 && g.audio.IsInitialized() {
			g.audio.PlayClick(r.Turns)
		}
	})

	g.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "rubikcube")

	logger.Info("game initialized successfully")
	return g, nil
}

func cubeOptions(c config.CubeConfig) rubik.Options {
	return rubik.Options{
		CubeLength:   c.CubeLength,
		Gap:          c.Gap,
		RotateSpeed:  c.RotateSpeed,
		ShuffleSpeed: c.ShuffleSpeed,
	}
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			g.handleEvent(event)
		}

		g.cube.Advance(float32(dt))

		if !g.window.IsActive() {
			time.Sleep(idleSleep)
			continue
		}

		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		g.resize()

	case input.EventKeyDown:
		if !e.Repeat {
			g.handleKey(e.Key)
		}

	case input.EventMouseDown:
		switch e.Button {
		case input.ButtonLeft:
			g.cube.Begin(e.MouseX, e.MouseY)
		case input.ButtonRight:
			g.orbiting = true
		}

	case input.EventMouseMove:
		if g.cube.Session() != nil {
			g.cube.Update(e.MouseX, e.MouseY)
		} else if g.orbiting {
			g.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
		}

	case input.EventMouseUp:
		switch e.Button {
		case input.ButtonLeft:
			g.cube.End()
		case input.ButtonRight:
			g.orbiting = false
		}

	case input.EventMouseWheel:
		g.camera.HandleZoom(e.Wheel)
	}
}

func (g *Game) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		g.running = false
	case sdl.SCANCODE_F:
		if err := g.window.ToggleFullscreen(); err != nil {
			logger.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case sdl.SCANCODE_S:
		g.cube.Shuffle(g.cfg.Cube.ShuffleTurns)
	case sdl.SCANCODE_R:
		g.cube.Restore()
	case sdl.SCANCODE_C:
		g.camera.ResetView()
	case sdl.SCANCODE_TAB:
		g.cfg.Debug.ShowSelection = !g.cfg.Debug.ShowSelection
		g.renderer.SetShowSelection(g.cfg.Debug.ShowSelection)
	case sdl.SCANCODE_F12:
		g.screenshot()
	}
}

// resize propagates a window size change. Mouse events use window
// coordinates while the renderer works in drawable pixels.
func (g *Game) resize() {
	w, h := g.window.GetSize()
	g.viewport.Resize(w, h)
	g.cube.Resize(w, h)

	dw, dh := g.window.DrawableSize()
	g.renderer.Resize(dw, dh)
}

func (g *Game) render() {
	g.renderer.Begin()
	g.renderer.DrawCube(g.viewport.ViewProj(), g.cube.Cells())
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
