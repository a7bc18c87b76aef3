// Package web is the browser backend of the window contract in
// internal/platform. A window is a canvas element in the page.
//
// Every method of platform.Window falls in one of four groups, reported by
// Window.Supports:
//
//   - full support: geometry queries, cursor icon and visibility, monitors
//   - no-op: SetMaximized, SetFullscreen, SetDecorations, SetAlwaysOnTop,
//     SetIMEPosition
//   - not supported (error wrapping platform.ErrNotSupported):
//     SetCursorPosition, SetCursorGrab
//   - not implemented (error wrapping platform.ErrNotImplemented):
//     SetOuterPosition, SetInnerSize, SetMinInnerSize, SetMaxInnerSize,
//     SetTitle, SetVisible, SetResizable, SetWindowIcon
//
// Methods must be called from the goroutine that drives the page's event
// loop.
package web

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
	"github.com/google/uuid"
)

// EventLoopTarget registers surfaces for per-frame and input processing.
type EventLoopTarget interface {
	SetupWindow(surface dom.Element)
}

// Window is a canvas element bound into the page.
type Window struct {
	host             dom.Host
	canvas           dom.Element
	redrawRequested  atomic.Bool
	cursorVisibility CursorVisibilityMode
	logger           *logging.Logger
}

var _ platform.Window = (*Window)(nil)

// NewWindow creates a window in the page the module runs in.
func NewWindow(target EventLoopTarget, attrs platform.WindowAttributes, ps PlatformSpecificAttributes) (*Window, error) {
	return NewWindowOnHost(dom.Default(), target, attrs, ps)
}

// NewWindowOnHost creates a window in the given host.
//
// A missing document, an unknown element id or an existing element that is
// not a canvas is a programming error and panics. Failing to append a new
// canvas to its container returns a *platform.OSError.
func NewWindowOnHost(host dom.Host, target EventLoopTarget, attrs platform.WindowAttributes, ps PlatformSpecificAttributes) (*Window, error) {
	if host == nil {
		panic("no global window object found")
	}
	doc, ok := host.Document()
	if !ok {
		panic("global window does not have a document")
	}
	if target == nil {
		panic("event loop target is required")
	}

	canvas, err := resolveSurface(doc, ps.Element)
	if err != nil {
		return nil, err
	}

	target.SetupWindow(canvas)

	w := &Window{
		host:             host,
		canvas:           canvas,
		cursorVisibility: ps.CursorVisibility,
		logger:           ps.Logger,
	}
	w.logger.Log(logging.ActionCreate, uint32(w.ID()), map[string]interface{}{
		"selection": ps.Element.String(),
		"canvas":    canvas.ID(),
	})
	for _, name := range ignoredAttributes(attrs) {
		w.logger.Log(logging.ActionIgnoredAttribute, uint32(w.ID()), map[string]interface{}{
			"attribute": name,
		})
	}
	return w, nil
}

func resolveSurface(doc dom.Document, sel ElementSelection) (dom.Element, error) {
	switch sel.Kind {
	case SelectCanvas:
		el, ok := doc.ElementByID(sel.ID)
		if !ok {
			panic(fmt.Sprintf("no canvas with id %q found", sel.ID))
		}
		if el.TagName() != dom.TagCanvas {
			panic(fmt.Sprintf("element %q is a <%s>, not a canvas", sel.ID, el.TagName()))
		}
		return el, nil
	case SelectContainer:
		parent, ok := doc.ElementByID(sel.ID)
		if !ok {
			panic(fmt.Sprintf("no container element with id %q found", sel.ID))
		}
		canvas, err := doc.CreateElement(dom.TagCanvas)
		if err != nil {
			panic(fmt.Sprintf("could not create a canvas: %v", err))
		}
		if canvas.TagName() != dom.TagCanvas {
			panic(fmt.Sprintf("created element is a <%s>, not a canvas", canvas.TagName()))
		}
		if err := canvas.SetAttribute("id", "webwin-"+uuid.NewString()); err != nil {
			panic(fmt.Sprintf("could not set canvas id: %v", err))
		}
		if err := parent.AppendChild(canvas); err != nil {
			return nil, &platform.OSError{Op: fmt.Sprintf("append canvas to %q", sel.ID), Err: err}
		}
		return canvas, nil
	default:
		panic(fmt.Sprintf("unknown element selection kind %d", int(sel.Kind)))
	}
}

// ignoredAttributes lists the attributes that ask for something this
// backend does not apply.
func ignoredAttributes(attrs platform.WindowAttributes) []string {
	var out []string
	if attrs.Title != "" {
		out = append(out, "title")
	}
	if attrs.InnerSize != nil {
		out = append(out, "inner_size")
	}
	if attrs.MinInnerSize != nil {
		out = append(out, "min_inner_size")
	}
	if attrs.MaxInnerSize != nil {
		out = append(out, "max_inner_size")
	}
	if !attrs.Resizable {
		out = append(out, "resizable")
	}
	if !attrs.Visible {
		out = append(out, "visible")
	}
	if !attrs.Decorations {
		out = append(out, "decorations")
	}
	if attrs.AlwaysOnTop {
		out = append(out, "always_on_top")
	}
	if attrs.Maximized {
		out = append(out, "maximized")
	}
	if attrs.Transparent {
		out = append(out, "transparent")
	}
	if attrs.WindowIcon != nil {
		out = append(out, "window_icon")
	}
	return out
}

// ID returns the window identity. See DummyWindowID.
func (w *Window) ID() platform.WindowID {
	return DummyWindowID()
}

// Canvas returns the surface element the window is bound to.
func (w *Window) Canvas() dom.Element {
	return w.canvas
}

// SetLogger replaces the window's logger; nil disables logging.
func (w *Window) SetLogger(l *logging.Logger) {
	w.logger = l
}

// HiDPIFactor is always 1.0: logical and physical pixels coincide.
func (w *Window) HiDPIFactor() float64 {
	return 1.0
}

// RequestRedraw marks the window as needing a redraw. The event loop
// clears the mark with TakeRedrawRequest after honoring it.
func (w *Window) RequestRedraw() {
	w.redrawRequested.Store(true)
}

// RedrawRequested reports whether a redraw is pending.
func (w *Window) RedrawRequested() bool {
	return w.redrawRequested.Load()
}

// TakeRedrawRequest clears the pending redraw and reports whether one was set.
func (w *Window) TakeRedrawRequest() bool {
	return w.redrawRequested.Swap(false)
}

// InnerPosition returns the canvas's top-left corner in the viewport.
func (w *Window) InnerPosition() (platform.LogicalPosition, error) {
	r := w.canvas.BoundingClientRect()
	return platform.LogicalPosition{X: r.X, Y: r.Y}, nil
}

// OuterPosition equals InnerPosition: a canvas has no decorations.
func (w *Window) OuterPosition() (platform.LogicalPosition, error) {
	return w.InnerPosition()
}

// InnerSize returns the canvas's rendered size.
func (w *Window) InnerSize() platform.LogicalSize {
	r := w.canvas.BoundingClientRect()
	return platform.LogicalSize{Width: r.Width, Height: r.Height}
}

// OuterSize equals InnerSize.
func (w *Window) OuterSize() platform.LogicalSize {
	return w.InnerSize()
}

// SetOuterPosition is not implemented; the page controls canvas placement.
func (w *Window) SetOuterPosition(pos platform.LogicalPosition) error {
	return w.unimplemented(platform.CapOuterPosition)
}

// SetInnerSize is not implemented.
func (w *Window) SetInnerSize(size platform.LogicalSize) error {
	return w.unimplemented(platform.CapInnerSize)
}

func (w *Window) SetMinInnerSize(size *platform.LogicalSize) error {
	return w.unimplemented(platform.CapMinInnerSize)
}

func (w *Window) SetMaxInnerSize(size *platform.LogicalSize) error {
	return w.unimplemented(platform.CapMaxInnerSize)
}

// SetTitle is not implemented; the page owns document.title.
func (w *Window) SetTitle(title string) error {
	return w.unimplemented(platform.CapTitle)
}

// SetVisible is not implemented.
func (w *Window) SetVisible(visible bool) error {
	return w.unimplemented(platform.CapVisible)
}

func (w *Window) SetResizable(resizable bool) error {
	return w.unimplemented(platform.CapResizable)
}

// SetWindowIcon is not implemented.
func (w *Window) SetWindowIcon(icon image.Image) error {
	return w.unimplemented(platform.CapWindowIcon)
}

// SetMaximized does nothing: a canvas cannot be maximized.
func (w *Window) SetMaximized(maximized bool) {}

// SetFullscreen does nothing. See Fullscreen.
func (w *Window) SetFullscreen(monitor platform.Monitor) {}

// Fullscreen always reports nil: the canvas is never fullscreen.
func (w *Window) Fullscreen() platform.Monitor {
	return nil
}

// SetDecorations does nothing: a canvas has no decorations.
func (w *Window) SetDecorations(decorations bool) {}

func (w *Window) SetAlwaysOnTop(alwaysOnTop bool) {}

// SetIMEPosition does nothing.
func (w *Window) SetIMEPosition(pos platform.LogicalPosition) {}

// CurrentMonitor returns the viewport monitor.
func (w *Window) CurrentMonitor() platform.Monitor {
	return MonitorHandle{host: w.host}
}

// PrimaryMonitor returns the viewport monitor.
func (w *Window) PrimaryMonitor() platform.Monitor {
	return MonitorHandle{host: w.host}
}

// AvailableMonitors returns a single viewport monitor.
func (w *Window) AvailableMonitors() []platform.Monitor {
	return Monitors(w.host)
}

func (w *Window) notSupported(c platform.Capability) error {
	w.logger.Log(logging.ActionUnsupported, uint32(w.ID()), map[string]interface{}{"op": c.String()})
	return &platform.NotSupportedError{Op: c.String()}
}

func (w *Window) unimplemented(c platform.Capability) error {
	w.logger.Log(logging.ActionUnimplemented, uint32(w.ID()), map[string]interface{}{"op": c.String()})
	return &platform.UnimplementedError{Op: c.String()}
}
