// Package app owns the window, the one-time scene preparation and the
// frame loop.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/config"
	"still-life/internal/geometry"
	"still-life/internal/graphics"
	"still-life/internal/profiling"
	"still-life/internal/render"
	"still-life/internal/scene"
)

// App ties together the window, the prepared scene and the frame renderer.
// Everything is created during New; Run only replays draws.
type App struct {
	window   *glfw.Window
	settings config.Settings

	shader   *graphics.Shader
	meshes   *geometry.Set
	textures *graphics.TextureRegistry
	camera   *graphics.Camera
	backend  *render.GLBackend
	renderer *render.Renderer

	timer    *profiling.FrameTimer
	limiter  *FPSLimiter
}

// New creates the window and runs the whole preparation phase: shader
// compile, mesh upload, texture loads, material/light definition and berry
// instance generation. Individual texture failures are logged and skipped;
// everything else is fatal to setup.
func New(settings config.Settings) (*App, error) {
	window, err := setupWindow(settings.Window)
	if err != nil {
		return nil, fmt.Errorf("window setup: %w", err)
	}

	shaderDir := filepath.Join(settings.Assets.Dir, "shaders")
	shader, err := graphics.NewShader(
		filepath.Join(shaderDir, "scene.vert"),
		filepath.Join(shaderDir, "scene.frag"),
	)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	shader.Use()

	meshes := geometry.NewSet()
	meshes.LoadAll()

	textures := graphics.NewTextureRegistry()
	for _, ref := range scene.StillLifeTextures() {
		if err := textures.Load(filepath.Join(settings.Assets.Dir, ref.Path), ref.Tag); err != nil {
			log.Warn("scene will render without texture", "tag", ref.Tag)
		}
	}
	textures.BindAll()

	gen := scene.NewGenerator(settings.Render.JitterSeed, scene.StillLifeClusters()...)
	still := scene.BuildStillLife(gen)
	log.Info("scene prepared",
		"objects", len(still.Objects),
		"materials", still.Materials.Len(),
		"textures", textures.Len(),
		"seed", settings.Render.JitterSeed)

	cc := settings.Render.ClearColor
	backend := render.NewGLBackend(shader, meshes, mgl32.Vec4{cc[0], cc[1], cc[2], cc[3]})

	camera := graphics.NewCamera(settings.Window.Width, settings.Window.Height)
	backend.ApplyCamera(camera.ViewMatrix(), camera.ProjectionMatrix(), camera.Position)
	backend.ApplyLights(still.Lights)

	a := &App{
		window:   window,
		settings: settings,
		shader:   shader,
		meshes:   meshes,
		textures: textures,
		camera:   camera,
		backend:  backend,
		renderer: render.New(backend, textures, still),
		timer:    profiling.NewFrameTimer(),
		limiter:  NewFPSLimiter(settings.Render.FPSLimit),
	}
	a.installCallbacks()
	return a, nil
}

// Run drives the frame loop until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	a.timer.Reset()
	start := time.Now()

	func() {
		defer a.timer.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()
	func() {
		defer a.timer.Track("render.RenderFrame")()
		a.renderer.RenderFrame()
	}()
	func() {
		defer a.timer.Track("glfw.SwapBuffers")()
		a.window.SwapBuffers()
	}()

	if took := time.Since(start); took > 16*time.Millisecond {
		log.Warn("slow frame", "took", took, "breakdown", a.timer.Breakdown())
	}

	a.limiter.Wait()
}

// Dispose releases GL resources. Safe to call once after Run returns.
func (a *App) Dispose() {
	a.textures.Destroy()
	a.meshes.Dispose()
	a.shader.Delete()
}

func (a *App) installCallbacks() {
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		resizeViewport(width, height)
		a.camera.SetViewport(width, height)
		a.backend.ApplyCamera(a.camera.ViewMatrix(), a.camera.ProjectionMatrix(), a.camera.Position)
	})
}
