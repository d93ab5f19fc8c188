// Package viewer embeds the canvas in an SDL2 window: each frame renders
// the caller's renderable tree with the previous frame's round-trip values,
// executes the command stream on the raster surface, and blits the result.
package viewer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"gocanvas/canvas"
	"gocanvas/command"
	"gocanvas/surface"
	"gocanvas/texture"
	"gocanvas/trace"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Viewer struct {
	window   *sdl.Window
	surface  *surface.Surface
	values   []command.CanvasValue
	runner   *FrameRunner
	measure  *trace.MeasureTime
	textures map[string]*texture.Texture

	width, height int32
	redMask       uint32
	greenMask     uint32
	blueMask      uint32
	alphaMask     uint32
}

func NewViewer(title string, width, height int) *Viewer {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		panic("Could not create sdl window")
	}

	v := &Viewer{
		window:   window,
		surface:  surface.New(width, height),
		runner:   NewFrameRunner(),
		measure:  trace.NewMeasureTime("canvas.trace"),
		textures: map[string]*texture.Texture{},
		width:    int32(width),
		height:   int32(height),
	}

	if sdl.BYTEORDER == sdl.BIG_ENDIAN {
		v.redMask = 0xff000000
		v.greenMask = 0x00ff0000
		v.blueMask = 0x0000ff00
		v.alphaMask = 0x000000ff
	} else {
		v.redMask = 0x000000ff
		v.greenMask = 0x0000ff00
		v.blueMask = 0x00ff0000
		v.alphaMask = 0xff000000
	}
	return v
}

func (v *Viewer) Surface() *surface.Surface { return v.surface }

// LoadTextures resolves declared sources in the background; each decoded
// texture attaches to the surface at the next frame boundary. Until then
// TextureNamed returns nil and texture renderables draw nothing.
func (v *Viewer) LoadTextures(sources []texture.Source) {
	for _, src := range sources {
		go func(src texture.Source) {
			t, err := texture.Load(src.Name, src.Path)
			if err != nil {
				fmt.Println("Error loading texture:", err)
				return
			}
			v.runner.Schedule(func() {
				v.surface.AddTexture(t.Name(), t.Image())
				v.textures[t.Name()] = t
			})
		}(src)
	}
}

// TextureNamed returns the handle for a loaded texture, nil while the
// source is still loading. Only call from the frame-building callback.
func (v *Viewer) TextureNamed(name string) *texture.Texture {
	return v.textures[name]
}

// Frame performs one full round trip: drain frame tasks, render the tree
// with last frame's values, execute, collect the new value batch, blit.
func (v *Viewer) Frame(renderables []canvas.Renderable) {
	v.runner.Drain()

	v.measure.Time("render")
	cmds := canvas.Render(renderables, v.values)
	v.measure.Stop("render")

	v.measure.Time("execute")
	v.surface.Execute(cmds)
	v.values = v.surface.Flush()
	v.measure.Stop("execute")

	v.measure.Time("blit")
	v.blit()
	v.measure.Stop("blit")
}

func (v *Viewer) blit() {
	img, ok := v.surface.Image().(*image.RGBA)
	if !ok {
		panic("Image is not RGBA")
	}

	depth := 32
	pitch := int(4 * v.width)
	sdlSurface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&img.Pix[0]),
		v.width, v.height, depth, pitch,
		v.redMask, v.greenMask, v.blueMask, v.alphaMask,
	)
	if err != nil {
		panic("Cannot create rgb surface")
	}
	defer sdlSurface.Free()

	rect := &sdl.Rect{X: 0, Y: 0, W: v.width, H: v.height}
	windowSurface, err := v.window.GetSurface()
	if err != nil {
		panic("Cannot get window surface")
	}
	sdlSurface.Blit(rect, windowSurface, rect)
	v.window.UpdateSurface()
}

// Run drives the SDL event loop, rebuilding the renderable tree every
// frame so text-reflow negotiations can converge across frames.
func (v *Viewer) Run(build func(frame int) []canvas.Renderable) {
	frame := 0
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				v.Close()
				return
			case *sdl.KeyboardEvent:
				if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_q {
					v.Close()
					return
				}
			}
		}
		v.Frame(build(frame))
		frame++
		sdl.Delay(16)
	}
}

func (v *Viewer) Close() {
	v.measure.Finish()
	v.window.Destroy()
}
