package main

import (
	"flag"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/splurf/blazed-demo/glx"
	"github.com/splurf/blazed-demo/scene"
)

func init() {
	// GL and glfw want the main thread
	runtime.LockOSThread()
}

const (
	idFloor  scene.ID = 1
	idPlayer scene.ID = 2
	idLight  scene.ID = 3

	// orbiting cubes occupy 100..100+orbiterCount
	idOrbitBase   scene.ID = 100
	orbiterCount           = 4
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	window, err := initWindow(cfg)
	if err != nil {
		logger.Fatal("window init failed", zap.Error(err))
	}
	defer glfw.Terminate()

	simpleHandle, err := glx.CompileProgram(simpleVertexShader, simpleFragmentShader)
	if err != nil {
		logger.Fatal("simple program", zap.Error(err))
	}
	normalHandle, err := glx.CompileProgram(normalVertexShader, normalFragmentShader)
	if err != nil {
		logger.Fatal("normal program", zap.Error(err))
	}

	simple := scene.NewProgram(simpleHandle, scene.ProgramSimple)
	normal := scene.NewProgram(normalHandle, scene.ProgramNormal)

	ctx := glx.NewDebug(glx.OpenGL{}, logger.Sugar().Errorf)
	objects := scene.NewObjects(logger)

	if err := populate(ctx, objects, simple, normal); err != nil {
		logger.Fatal("populate scene", zap.Error(err))
	}

	locs := map[glx.Program]uniforms{
		simpleHandle: lookupUniforms(simpleHandle),
		normalHandle: lookupUniforms(normalHandle),
	}

	for !window.ShouldClose() {
		orbit(objects, glfw.GetTime())
		drawFrame(window, objects, locs)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	// both kinds removed through the registry, so the debug context should
	// see every name released exactly once
	objects.RemoveKind(ctx, scene.Player)
	objects.RemoveKind(ctx, scene.Basic)

	if arrays, buffers := ctx.Leaks(); arrays+buffers > 0 {
		logger.Warn("leaked GL objects", zap.Int("arrays", arrays), zap.Int("buffers", buffers))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func initWindow(cfg Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.ClearDepth(1)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.DEPTH_TEST)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	return window, nil
}

func populate(ctx glx.Context, objects *scene.Objects, simple, normal scene.Program) error {
	floorColor := scene.Color{0.4, 0.4, 0.45, 1}
	if err := objects.NewCube(ctx, idFloor, normal, scene.Vector{0, -2.1, 0}, scene.Vector{12, 0.1, 12}, floorColor, scene.Basic); err != nil {
		return err
	}

	playerColor := scene.Color{0.2, 0.5, 0.9, 1}
	if err := objects.NewCube(ctx, idPlayer, normal, scene.Vector{0, 0, 0}, scene.Vector{1, 1, 1}, playerColor, scene.Player); err != nil {
		return err
	}

	colors := []scene.Color{
		{0.9, 0.3, 0.3, 1},
		{0.3, 0.9, 0.3, 1},
		{0.9, 0.9, 0.3, 1},
		{0.7, 0.3, 0.9, 1},
	}
	for i := 0; i < orbiterCount; i++ {
		id := idOrbitBase + scene.ID(i)
		if err := objects.NewCube(ctx, id, normal, scene.Vector{}, scene.Vector{0.5, 0.5, 0.5}, colors[i%len(colors)], scene.Basic); err != nil {
			return err
		}
	}

	white := scene.Color{1, 1, 1, 1}
	return objects.NewLight(ctx, idLight, simple, scene.Vector{3, 5, 3}, scene.Vector{0.2, 0.2, 0.2}, white)
}

// orbit swings the basic cubes around the player.
func orbit(objects *scene.Objects, t float64) {
	for i := 0; i < orbiterCount; i++ {
		data, ok := objects.Data(idOrbitBase + scene.ID(i))
		if !ok {
			continue
		}

		angle := t*0.8 + float64(i)*(2*math.Pi/orbiterCount)
		data.SetPosition(scene.Vector{
			float32(4 * math.Cos(angle)),
			float32(0.5 * math.Sin(2*angle)),
			float32(4 * math.Sin(angle)),
		})
		data.Recompute()
	}
}

// sceneLight returns the position and color driving the shaded programs.
// The marker is looked up by id so every frame binds the same light; the
// registry views are unordered and must not pick it.
func sceneLight(objects *scene.Objects) (mgl32.Vec3, scene.Color) {
	if data, ok := objects.Data(idLight); ok {
		return data.Position(), data.Color()
	}
	return mgl32.Vec3{3, 5, 3}, scene.Color{1, 1, 1, 1}
}

type uniforms struct {
	projection, view, model, color int32
	lightPos, lightColor           int32
}

func lookupUniforms(prg glx.Program) uniforms {
	loc := func(name string) int32 {
		return gl.GetUniformLocation(uint32(prg), gl.Str(name+"\x00"))
	}
	return uniforms{
		projection: loc("projection"),
		view:       loc("view"),
		model:      loc("model"),
		color:      loc("color"),
		lightPos:   loc("lightPos"),
		lightColor: loc("lightColor"),
	}
}

func drawFrame(window *glfw.Window, objects *scene.Objects, locs map[glx.Program]uniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	width, height := window.GetFramebufferSize()
	if height < 1 {
		height = 1
	}
	projection := mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{8, 6, 8}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	lightPos, lightColor := sceneLight(objects)

	for obj := range objects.All() {
		prg := obj.Program()
		u := locs[prg.Handle()]

		gl.UseProgram(uint32(prg.Handle()))
		gl.UniformMatrix4fv(u.projection, 1, false, &projection[0])
		gl.UniformMatrix4fv(u.view, 1, false, &view[0])

		model := obj.Model()
		gl.UniformMatrix4fv(u.model, 1, false, &model[0])

		color := obj.Color()
		gl.Uniform4fv(u.color, 1, &color[0])

		if prg.Kind() == scene.ProgramNormal {
			gl.Uniform3fv(u.lightPos, 1, &lightPos[0])
			gl.Uniform4fv(u.lightColor, 1, &lightColor[0])
		}

		gl.BindVertexArray(uint32(obj.VAO()))
		gl.DrawElementsWithOffset(uint32(obj.Mode()), obj.Count(), uint32(obj.ElemType()), 0)
	}

	gl.BindVertexArray(0)
}
