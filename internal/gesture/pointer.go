package gesture

import (
	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/types"
)

// Pointer turns host mouse callbacks into Events stamped with clock. Only
// the primary button is tracked; moves without the button held are dropped.
type Pointer struct {
	// Scale converts callback coordinates to drawable pixels, for hosts whose
	// framebuffer is denser than their window coordinates.
	Scale types.Vec

	clock   clockwork.Clock
	pressed bool
	at      types.Vec
	events  []Event
}

func NewPointer(clock clockwork.Clock) *Pointer {
	return &Pointer{Scale: types.Vec{X: 1, Y: 1}, clock: clock}
}

func (p *Pointer) push(kind Kind, at types.Vec) {
	p.events = append(p.events, Event{Kind: kind, Position: at, Time: p.clock.Now()})
}

func (p *Pointer) scaled(x, y float64) types.Vec {
	return types.Vec{X: x * p.Scale.X, Y: y * p.Scale.Y}
}

// Button records a primary button transition at (x, y).
func (p *Pointer) Button(down bool, x, y float64) {
	if down == p.pressed {
		return
	}
	p.pressed = down
	p.at = p.scaled(x, y)
	if down {
		p.push(Press, p.at)
	} else {
		p.push(Release, p.at)
	}
}

// Cursor records pointer motion to (x, y).
func (p *Pointer) Cursor(x, y float64) {
	at := p.scaled(x, y)
	if !p.pressed || at == p.at {
		return
	}
	p.at = at
	p.push(Move, at)
}

// Cancel aborts a press in progress, for example when the window loses focus.
func (p *Pointer) Cancel() {
	if !p.pressed {
		return
	}
	p.pressed = false
	p.push(Cancel, p.at)
}

// Drain returns the events recorded since the previous call.
func (p *Pointer) Drain() []Event {
	e := p.events
	p.events = nil
	return e
}
