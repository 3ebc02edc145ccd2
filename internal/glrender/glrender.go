package glrender

import (
	"fmt"
	"image"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/gesture"
	"github.com/matjam/scalableview/internal/render"
	"github.com/matjam/scalableview/internal/types"
	"github.com/matjam/scalableview/internal/zoom"
	"golang.org/x/image/draw"
)

var logger = log.WithPrefix("glrender")

// Window is an interactive host: a glfw window whose framebuffer is drawn
// with legacy OpenGL and whose mouse input feeds a gesture.Pointer.
//
// All methods must be called from the goroutine that created the window.
type Window struct {
	win     *glfw.Window
	pointer *gesture.Pointer

	fbWidth  int
	fbHeight int

	tex    uint32
	texImg image.Image
}

// NewWindow opens a resizable window of the given size in screen
// coordinates. It locks the calling goroutine to its OS thread.
func NewWindow(title string, width, height int, clock clockwork.Clock) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init failed: %w", err)
	}
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	w := &Window{win: win, pointer: gesture.NewPointer(clock)}
	w.resize(win.GetFramebufferSize())

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resize(width, height)
	})
	win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action == glfw.Repeat {
			return
		}
		x, y := win.GetCursorPos()
		w.pointer.Button(action == glfw.Press, x, y)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.pointer.Cursor(x, y)
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			w.pointer.Cancel()
		}
	})
	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	logger.Info("Window opened", "width", width, "height", height, "framebuffer", fmt.Sprintf("%dx%d", w.fbWidth, w.fbHeight))
	return w, nil
}

// resize tracks the framebuffer size. Pointer positions arrive in window
// coordinates and are scaled to framebuffer pixels.
func (w *Window) resize(width, height int) {
	w.fbWidth, w.fbHeight = width, height
	ww, wh := w.win.GetSize()
	if ww > 0 && wh > 0 {
		w.pointer.Scale = types.Vec{X: float64(width) / float64(ww), Y: float64(height) / float64(wh)}
	}
	logger.Debug("framebuffer resized", "width", width, "height", height)
}

func (w *Window) Events() []gesture.Event {
	glfw.PollEvents()
	return w.pointer.Drain()
}

func (w *Window) Size() types.Size {
	return types.Size{W: float64(w.fbWidth), H: float64(w.fbHeight)}
}

func (w *Window) Canvas() render.Canvas { return w }

func (w *Window) Present() error {
	w.win.SwapBuffers()
	return nil
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) Clear() {
	gl.Viewport(0, 0, int32(w.fbWidth), int32(w.fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawImage paints img as a textured quad covering the rectangle t maps it
// to. The texture is uploaded once per distinct image.
func (w *Window) DrawImage(img image.Image, t zoom.Transform) error {
	if w.texImg != img {
		if w.tex != 0 {
			gl.DeleteTextures(1, &w.tex)
		}
		w.tex = createTexture(img)
		w.texImg = img
	}

	b := img.Bounds()
	r := t.Rect(types.Size{W: float64(b.Dx()), H: float64(b.Dy())})

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(w.fbWidth), float64(w.fbHeight), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.Color4f(1, 1, 1, 1)
	drawQuad(r)
	gl.Disable(gl.TEXTURE_2D)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", e)
	}
	return nil
}

// drawQuad draws r with the texture's first row at the top.
func drawQuad(r types.Bounds) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.End()
}

func createTexture(img image.Image) uint32 {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	return tex
}

func (w *Window) Cleanup() {
	if w.tex != 0 {
		gl.DeleteTextures(1, &w.tex)
	}
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
	logger.Info("Window closed")
}
