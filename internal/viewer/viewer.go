/*
Package viewer runs the frame loop of a zoomable image view. A Viewer owns
the zoom controller, the gesture translator and the renderer, and steps them
once per frame on a single goroutine. Other goroutines talk to it through a
command queue and a status snapshot.
*/
package viewer

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/anim"
	"github.com/matjam/scalableview/internal/config"
	"github.com/matjam/scalableview/internal/gesture"
	"github.com/matjam/scalableview/internal/render"
	"github.com/matjam/scalableview/internal/types"
	"github.com/matjam/scalableview/internal/zoom"
)

var logger = log.WithPrefix("viewer")

// Display is the host a Viewer draws into and receives pointer input from.
type Display interface {
	Events() []gesture.Event // Pointer events since the previous call
	Size() types.Size        // Current drawable size in pixels
	Canvas() render.Canvas   // Canvas for the next frame
	Present() error          // Show the frame drawn on Canvas
	ShouldClose() bool       // Whether the host asked to close
	Cleanup()                // Release host resources
}

type CommandType string

const (
	CommandToggle CommandType = "toggle"
	CommandReset  CommandType = "reset"
	CommandStop   CommandType = "stop"
)

// Command is a request applied on the frame loop goroutine.
type Command struct {
	Type CommandType `json:"type"`
	At   *types.Vec  `json:"at,omitempty"` // toggle anchor, viewport center when nil
}

// Status is a snapshot of the view state taken at the end of a frame.
type Status struct {
	Ready     bool         `json:"ready"`
	ZoomedIn  bool         `json:"zoomed_in"`
	Fraction  float64      `json:"fraction"`
	Scale     float64      `json:"scale"`
	Offset    types.Vec    `json:"offset"`
	Bounds    types.Bounds `json:"bounds"`
	Viewport  types.Size   `json:"viewport"`
	Image     types.Size   `json:"image"`
	Animating bool         `json:"animating"`
	Flinging  bool         `json:"flinging"`
	Frames    uint64       `json:"frames"`
}

type Viewer struct {
	mu     sync.Mutex
	cmds   []Command
	status Status

	clock    clockwork.Clock
	frame    time.Duration
	display  Display
	loop     *anim.Loop
	ctrl     *zoom.Controller
	tr       *gesture.Translator
	renderer *render.Renderer
	imgSize  types.Size
	viewport types.Size
	frames   uint64
}

// New returns a Viewer showing img on display. Nothing is drawn until the
// first Step.
func New(img image.Image, display Display, cfg config.Config, clock clockwork.Clock) (*Viewer, error) {
	v := &Viewer{
		clock:   clock,
		frame:   cfg.FrameInterval(),
		display: display,
		loop:    &anim.Loop{},
	}

	ctrl, err := zoom.NewController(cfg.OverFactor, v.loop.Invalidate)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(img, ctrl)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()

	v.ctrl = ctrl
	v.renderer = renderer
	v.imgSize = types.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	v.tr = gesture.New(ctrl, v.loop, clock, cfg.Gesture(), gesture.Hooks{
		SingleTap: func(p types.Vec) { logger.Debug("single tap", "at", p) },
		LongPress: func(p types.Vec) { logger.Debug("long press", "at", p) },
	})
	v.loop.Invalidate()
	return v, nil
}

// Enqueue queues cmd for the next frame. It is safe to call from any goroutine.
func (v *Viewer) Enqueue(cmd Command) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cmds = append(v.cmds, cmd)
}

// Status returns the state as of the last completed frame. It is safe to call
// from any goroutine.
func (v *Viewer) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Animating reports whether a zoom animation or fling is still running.
func (v *Viewer) Animating() bool { return v.tr.Animating() || v.loop.Pending() }

func (v *Viewer) takeCommands() []Command {
	v.mu.Lock()
	defer v.mu.Unlock()
	cmds := v.cmds
	v.cmds = nil
	return cmds
}

// Step runs a single frame: apply queued commands, feed host events to the
// translator, advance animations and draw if anything changed. running is
// false once a stop was requested or the host wants to close.
func (v *Viewer) Step() (running bool, err error) {
	for _, cmd := range v.takeCommands() {
		switch cmd.Type {
		case CommandStop:
			logger.Info("Stop requested")
			return false, nil
		case CommandToggle:
			at := v.ctrl.Viewport().Center()
			if cmd.At != nil {
				at = *cmd.At
			}
			v.tr.DoubleTap(at)
		case CommandReset:
			if v.ctrl.ZoomedIn() {
				v.tr.DoubleTap(v.ctrl.Viewport().Center())
			}
		default:
			logger.Error("Unknown command", "type", cmd.Type)
		}
	}

	events := v.display.Events()

	if size := v.display.Size(); size != v.viewport {
		if err := v.tr.SetGeometry(size, v.imgSize); err != nil {
			return true, fmt.Errorf("viewport %vx%v: %w", size.W, size.H, err)
		}
		v.viewport = size
		v.loop.Invalidate()
	}

	for _, e := range events {
		v.tr.HandleEvent(e)
	}

	v.loop.RunFrame(v.clock.Now())

	if v.loop.TakeDirty() {
		if err = v.renderer.Draw(v.display.Canvas()); err == nil {
			err = v.display.Present()
		}
		v.frames++
	}

	v.snapshot()
	return !v.display.ShouldClose(), err
}

func (v *Viewer) snapshot() {
	s := Status{
		Ready:     v.ctrl.Ready(),
		ZoomedIn:  v.ctrl.ZoomedIn(),
		Fraction:  v.ctrl.Fraction(),
		Scale:     v.ctrl.Transform().Scale,
		Offset:    v.ctrl.Offset(),
		Bounds:    v.ctrl.Bounds(),
		Viewport:  v.viewport,
		Image:     v.imgSize,
		Animating: v.tr.Animating(),
		Flinging:  v.tr.Flinging(),
		Frames:    v.frames,
	}
	v.mu.Lock()
	v.status = s
	v.mu.Unlock()
}

// Run steps frames until a stop command, the host closing or ctx being
// cancelled, sleeping one frame interval between steps. The display is
// cleaned up on return.
func (v *Viewer) Run(ctx context.Context) error {
	logger.Info("Starting viewer", "fps", int(time.Second/v.frame))
	defer v.display.Cleanup()

	for {
		running, err := v.Step()
		if err != nil {
			logger.Error("Frame failed", "err", err)
		}
		if !running {
			logger.Info("Viewer stopped")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-v.clock.After(v.frame):
		}
	}
}
