package viewer

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/gesture"
	"github.com/matjam/scalableview/internal/render"
	"github.com/matjam/scalableview/internal/types"
)

var (
	ErrBadScript      = errors.New("invalid event script")
	ErrReplayTooLong  = errors.New("replay did not settle")
	maxReplayDuration = 10 * time.Minute
)

// ScriptEvent is one timed entry of an event script. Pointer kinds use X and
// Y; "resize" uses W and H.
type ScriptEvent struct {
	At   int64   `json:"t"` // milliseconds from the start of the replay
	Kind string  `json:"kind"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
}

type Script struct {
	Events []ScriptEvent `json:"events"`
}

var scriptKinds = map[string]gesture.Kind{
	"press":   gesture.Press,
	"move":    gesture.Move,
	"release": gesture.Release,
	"cancel":  gesture.Cancel,
}

// ParseScript decodes and checks a JSON event script. Events must be in
// non-decreasing time order.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScript, err)
	}

	var last int64
	for i, e := range s.Events {
		if e.At < last {
			return nil, fmt.Errorf("%w: event %d at %dms is before %dms", ErrBadScript, i, e.At, last)
		}
		last = e.At

		if _, ok := scriptKinds[e.Kind]; ok {
			continue
		}
		if e.Kind != "resize" {
			return nil, fmt.Errorf("%w: event %d has unknown kind %q", ErrBadScript, i, e.Kind)
		}
		if e.W < 0 || e.H < 0 {
			return nil, fmt.Errorf("%w: event %d resizes to %vx%v", ErrBadScript, i, e.W, e.H)
		}
	}
	return &s, nil
}

// ScriptDisplay is a headless Display that plays back a Script against a
// clock and rasterizes frames with a SoftCanvas.
type ScriptDisplay struct {
	clock  clockwork.Clock
	start  time.Time
	events []ScriptEvent
	next   int
	size   types.Size
	canvas *render.SoftCanvas
	frames int

	// OnPresent, when set, receives every presented frame. The image is
	// reused by the following frame.
	OnPresent func(frame int, img *image.RGBA) error
}

func NewScriptDisplay(s *Script, size types.Size, clock clockwork.Clock) *ScriptDisplay {
	return &ScriptDisplay{
		clock:  clock,
		start:  clock.Now(),
		events: s.Events,
		size:   size,
		canvas: render.NewSoftCanvas(int(size.W), int(size.H)),
	}
}

// Events returns the script entries that are due. Resizes take effect
// immediately and are not reported as events.
func (d *ScriptDisplay) Events() []gesture.Event {
	now := d.clock.Now()
	var out []gesture.Event
	for ; d.next < len(d.events); d.next++ {
		e := d.events[d.next]
		at := d.start.Add(time.Duration(e.At) * time.Millisecond)
		if at.After(now) {
			break
		}
		if e.Kind == "resize" {
			d.size = types.Size{W: e.W, H: e.H}
			d.canvas.Resize(int(e.W), int(e.H))
			continue
		}
		out = append(out, gesture.Event{
			Kind:     scriptKinds[e.Kind],
			Position: types.Vec{X: e.X, Y: e.Y},
			Time:     at,
		})
	}
	return out
}

func (d *ScriptDisplay) Size() types.Size { return d.size }

func (d *ScriptDisplay) Canvas() render.Canvas { return d.canvas }

func (d *ScriptDisplay) Present() error {
	d.frames++
	if d.OnPresent != nil {
		return d.OnPresent(d.frames, d.canvas.Image())
	}
	return nil
}

func (d *ScriptDisplay) ShouldClose() bool { return false }

func (d *ScriptDisplay) Cleanup() {}

// Done reports whether every script entry has been delivered.
func (d *ScriptDisplay) Done() bool { return d.next >= len(d.events) }

// Image returns the last rasterized frame.
func (d *ScriptDisplay) Image() *image.RGBA { return d.canvas.Image() }

// Replay steps v frame by frame on clock until the script is exhausted and
// every animation has settled.
func (v *Viewer) Replay(d *ScriptDisplay, clock *clockwork.FakeClock) error {
	limit := int(maxReplayDuration / v.frame)
	for i := 0; i < limit; i++ {
		running, err := v.Step()
		if err != nil {
			return err
		}
		if !running || (d.Done() && !v.Animating()) {
			logger.Debug("replay finished", "frames", i+1)
			return nil
		}
		clock.Advance(v.frame)
	}
	return ErrReplayTooLong
}
