// Package eventloop holds the page-side registry that window backends hand
// their surfaces to. It does not run a loop or translate input; it records
// which surfaces exist and drains pending redraw requests.
package eventloop

import (
	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
)

// Redrawer is a window with a pending-redraw flag.
type Redrawer interface {
	ID() platform.WindowID
	TakeRedrawRequest() bool
}

// Target records the surfaces registered by window constructors.
type Target struct {
	surfaces []dom.Element
	logger   *logging.Logger
}

// NewTarget creates an empty target. logger may be nil.
func NewTarget(logger *logging.Logger) *Target {
	return &Target{logger: logger}
}

// SetupWindow registers surface and makes it focusable so it can receive
// keyboard input.
func (t *Target) SetupWindow(surface dom.Element) {
	t.surfaces = append(t.surfaces, surface)
	details := map[string]interface{}{"canvas": surface.ID()}
	if err := surface.SetAttribute("tabindex", "0"); err != nil {
		details["error"] = err.Error()
	}
	t.logger.Log(logging.ActionRegister, 0, details)
}

// Surfaces returns the registered surfaces in registration order.
func (t *Target) Surfaces() []dom.Element {
	out := make([]dom.Element, len(t.surfaces))
	copy(out, t.surfaces)
	return out
}

// DrainRedraws calls redraw for every window with a pending redraw,
// clearing the flag, and returns how many were redrawn.
func (t *Target) DrainRedraws(windows []Redrawer, redraw func(platform.WindowID)) int {
	n := 0
	for _, w := range windows {
		if !w.TakeRedrawRequest() {
			continue
		}
		t.logger.Log(logging.ActionRedraw, uint32(w.ID()), nil)
		if redraw != nil {
			redraw(w.ID())
		}
		n++
	}
	return n
}
