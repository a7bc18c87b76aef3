package web

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
)

type recordingTarget struct {
	surfaces []dom.Element
}

func (r *recordingTarget) SetupWindow(surface dom.Element) {
	r.surfaces = append(r.surfaces, surface)
}

func expectPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic")
			}
			msg = fmt.Sprint(r)
		}()
		fn()
	}()
	return msg
}

func newStageWindow(t *testing.T) (*Window, *dom.MemoryHost, *dom.MemoryElement) {
	t.Helper()
	host := dom.NewMemoryHost(1024, 768)
	stage := host.MemoryDocument().AddElement("canvas", "stage", dom.Rect{X: 100, Y: 50, Width: 800, Height: 600})
	w, err := NewWindowOnHost(host, &recordingTarget{}, platform.DefaultWindowAttributes(), PlatformSpecificAttributes{Element: CanvasID("stage")})
	if err != nil {
		t.Fatalf("NewWindowOnHost: %v", err)
	}
	return w, host, stage
}

func TestNewWindow_CanvasIDUsesExistingElement(t *testing.T) {
	host := dom.NewMemoryHost(1024, 768)
	doc := host.MemoryDocument()
	stage := doc.AddElement("canvas", "stage", dom.Rect{X: 100, Y: 50, Width: 800, Height: 600})
	target := &recordingTarget{}

	w, err := NewWindowOnHost(host, target, platform.DefaultWindowAttributes(), PlatformSpecificAttributes{Element: CanvasID("stage")})
	if err != nil {
		t.Fatalf("NewWindowOnHost: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("expected no new element, document has %d", doc.Len())
	}
	if w.Canvas() != dom.Element(stage) {
		t.Fatalf("window bound to %v, want stage", w.Canvas())
	}
	if len(target.surfaces) != 1 || target.surfaces[0] != dom.Element(stage) {
		t.Fatalf("SetupWindow calls = %v", target.surfaces)
	}
	if w.RedrawRequested() {
		t.Fatalf("redraw must start cleared")
	}
	if w.ID() != DummyWindowID() {
		t.Fatalf("ID() = %v", w.ID())
	}

	pos, err := w.InnerPosition()
	if err != nil {
		t.Fatalf("InnerPosition: %v", err)
	}
	if pos != (platform.LogicalPosition{X: 100, Y: 50}) {
		t.Fatalf("InnerPosition = %+v, want (100,50)", pos)
	}
	if size := w.InnerSize(); size != (platform.LogicalSize{Width: 800, Height: 600}) {
		t.Fatalf("InnerSize = %+v, want 800x600", size)
	}
}

func TestNewWindow_ContainerIDCreatesOneCanvas(t *testing.T) {
	host := dom.NewMemoryHost(1024, 768)
	doc := host.MemoryDocument()
	app := doc.AddElement("div", "app", dom.Rect{X: 0, Y: 0, Width: 1024, Height: 768})
	target := &recordingTarget{}

	w, err := NewWindowOnHost(host, target, platform.DefaultWindowAttributes(), PlatformSpecificAttributes{Element: ContainerID("app")})
	if err != nil {
		t.Fatalf("NewWindowOnHost: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected exactly one new element, document has %d", doc.Len())
	}
	children := app.Children()
	if len(children) != 1 {
		t.Fatalf("container has %d children, want 1", len(children))
	}
	canvas := children[0]
	if canvas.TagName() != dom.TagCanvas {
		t.Fatalf("created <%s>, want canvas", canvas.TagName())
	}
	if w.Canvas() != dom.Element(canvas) || target.surfaces[0] != dom.Element(canvas) {
		t.Fatalf("window and target must use the created canvas")
	}
	if !strings.HasPrefix(canvas.ID(), "webwin-") {
		t.Fatalf("created canvas id = %q", canvas.ID())
	}
	if found, ok := doc.ElementByID(canvas.ID()); !ok || found != dom.Element(canvas) {
		t.Fatalf("created canvas must be reachable by its id")
	}
	if size := w.InnerSize(); size != (platform.LogicalSize{}) {
		t.Fatalf("InnerSize = %+v, want 0x0", size)
	}
}

func TestNewWindow_ContainerCanvasIDsDiffer(t *testing.T) {
	host := dom.NewMemoryHost(0, 0)
	host.MemoryDocument().AddElement("div", "app", dom.Rect{})
	ps := PlatformSpecificAttributes{Element: ContainerID("app")}

	a, err := NewWindowOnHost(host, &recordingTarget{}, platform.WindowAttributes{}, ps)
	if err != nil {
		t.Fatalf("first window: %v", err)
	}
	b, err := NewWindowOnHost(host, &recordingTarget{}, platform.WindowAttributes{}, ps)
	if err != nil {
		t.Fatalf("second window: %v", err)
	}
	if a.Canvas().ID() == b.Canvas().ID() {
		t.Fatalf("created canvases share id %q", a.Canvas().ID())
	}
}

func TestNewWindow_PreconditionViolationsPanic(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*dom.MemoryHost)
		sel     ElementSelection
		wantMsg string
	}{
		{
			name:    "missing container",
			sel:     ContainerID("app"),
			wantMsg: `no container element with id "app"`,
		},
		{
			name:    "missing canvas",
			sel:     CanvasID("stage"),
			wantMsg: `no canvas with id "stage"`,
		},
		{
			name: "element is not a canvas",
			setup: func(h *dom.MemoryHost) {
				h.MemoryDocument().AddElement("div", "stage", dom.Rect{})
			},
			sel:     CanvasID("stage"),
			wantMsg: "not a canvas",
		},
		{
			name: "canvas creation fails",
			setup: func(h *dom.MemoryHost) {
				h.MemoryDocument().AddElement("div", "app", dom.Rect{})
				h.MemoryDocument().FailCreate(errors.New("out of memory"))
			},
			sel:     ContainerID("app"),
			wantMsg: "could not create a canvas",
		},
		{
			name:    "no document",
			setup:   func(h *dom.MemoryHost) { h.RemoveDocument() },
			sel:     CanvasID("stage"),
			wantMsg: "does not have a document",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host := dom.NewMemoryHost(0, 0)
			if tc.setup != nil {
				tc.setup(host)
			}
			target := &recordingTarget{}
			var w *Window
			msg := expectPanic(t, func() {
				w, _ = NewWindowOnHost(host, target, platform.WindowAttributes{}, PlatformSpecificAttributes{Element: tc.sel})
			})
			if !strings.Contains(msg, tc.wantMsg) {
				t.Fatalf("panic %q does not contain %q", msg, tc.wantMsg)
			}
			if w != nil {
				t.Fatalf("no window may be returned")
			}
			if len(target.surfaces) != 0 {
				t.Fatalf("nothing may be registered on failure")
			}
		})
	}
}

func TestNewWindow_NilHostAndTargetPanic(t *testing.T) {
	expectPanic(t, func() {
		NewWindowOnHost(nil, &recordingTarget{}, platform.WindowAttributes{}, PlatformSpecificAttributes{})
	})

	host := dom.NewMemoryHost(0, 0)
	host.MemoryDocument().AddElement("canvas", "", dom.Rect{})
	expectPanic(t, func() {
		NewWindowOnHost(host, nil, platform.WindowAttributes{}, PlatformSpecificAttributes{})
	})
}

func TestNewWindow_ZeroSelectionUsesCanvasWithEmptyID(t *testing.T) {
	host := dom.NewMemoryHost(0, 0)
	canvas := host.MemoryDocument().AddElement("canvas", "", dom.Rect{Width: 5, Height: 5})

	w, err := NewWindowOnHost(host, &recordingTarget{}, platform.WindowAttributes{}, PlatformSpecificAttributes{})
	if err != nil {
		t.Fatalf("NewWindowOnHost: %v", err)
	}
	if w.Canvas() != dom.Element(canvas) {
		t.Fatalf("zero selection did not bind the id-less canvas")
	}
}

func TestNewWindow_DetachedContainerIsOSError(t *testing.T) {
	host := dom.NewMemoryHost(0, 0)
	doc := host.MemoryDocument()
	outer := doc.AddElement("div", "outer", dom.Rect{})
	inner, _ := doc.CreateElement("div")
	inner.SetAttribute("id", "app")
	if err := outer.AppendChild(inner); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Look the container up while attached, then detach it, as a stale
	// container would be.
	stale := &staleDocument{Document: doc, id: "app", el: inner}
	outer.Detach()
	staleHost := &documentHost{MemoryHost: host, doc: stale}
	target := &recordingTarget{}

	w, err := NewWindowOnHost(staleHost, target, platform.WindowAttributes{}, PlatformSpecificAttributes{Element: ContainerID("app")})
	if w != nil {
		t.Fatalf("no window may be returned on error")
	}
	var osErr *platform.OSError
	if !errors.As(err, &osErr) {
		t.Fatalf("expected *platform.OSError, got %T %v", err, err)
	}
	if !errors.Is(err, dom.ErrDetached) {
		t.Fatalf("expected cause ErrDetached, got %v", err)
	}
	if errors.Is(err, platform.ErrNotSupported) || errors.Is(err, platform.ErrNotImplemented) {
		t.Fatalf("construction error must be distinct from capability errors")
	}
	if len(target.surfaces) != 0 {
		t.Fatalf("nothing may be registered on failure")
	}
}

// staleDocument returns a fixed element for one id even when that element
// is no longer in the tree.
type staleDocument struct {
	dom.Document
	id string
	el dom.Element
}

func (d *staleDocument) ElementByID(id string) (dom.Element, bool) {
	if id == d.id {
		return d.el, true
	}
	return d.Document.ElementByID(id)
}

type documentHost struct {
	*dom.MemoryHost
	doc dom.Document
}

func (h *documentHost) Document() (dom.Document, bool) { return h.doc, true }

func TestGeometry_OuterEqualsInnerAndTracksLiveElement(t *testing.T) {
	w, _, stage := newStageWindow(t)

	for _, r := range []dom.Rect{
		{X: 100, Y: 50, Width: 800, Height: 600},
		{X: -20, Y: 7.5, Width: 320.5, Height: 240},
	} {
		stage.SetRect(r)
		inner, err := w.InnerPosition()
		if err != nil {
			t.Fatalf("InnerPosition: %v", err)
		}
		outer, err := w.OuterPosition()
		if err != nil {
			t.Fatalf("OuterPosition: %v", err)
		}
		if inner != outer {
			t.Fatalf("outer position %+v != inner %+v", outer, inner)
		}
		if w.OuterSize() != w.InnerSize() {
			t.Fatalf("outer size %+v != inner %+v", w.OuterSize(), w.InnerSize())
		}
		if w.InnerSize() != (platform.LogicalSize{Width: r.Width, Height: r.Height}) {
			t.Fatalf("InnerSize = %+v, want %vx%v", w.InnerSize(), r.Width, r.Height)
		}
	}
}

func TestHiDPIFactorIsOne(t *testing.T) {
	w, _, _ := newStageWindow(t)
	if w.HiDPIFactor() != 1.0 {
		t.Fatalf("HiDPIFactor = %v", w.HiDPIFactor())
	}
	size := w.InnerSize()
	phys := size.ToPhysical(w.HiDPIFactor())
	if float64(phys.Width) != size.Width || float64(phys.Height) != size.Height {
		t.Fatalf("logical and physical sizes differ: %+v vs %+v", size, phys)
	}
}

func TestRedrawFlag(t *testing.T) {
	w, _, _ := newStageWindow(t)
	w.RequestRedraw()
	w.RequestRedraw()
	if !w.RedrawRequested() {
		t.Fatalf("expected pending redraw")
	}
	if !w.TakeRedrawRequest() {
		t.Fatalf("TakeRedrawRequest should report the pending redraw")
	}
	if w.RedrawRequested() || w.TakeRedrawRequest() {
		t.Fatalf("flag must be cleared after take")
	}
}

func TestUnimplementedOperationsAlwaysFail(t *testing.T) {
	w, _, stage := newStageWindow(t)
	size := platform.LogicalSize{Width: 10, Height: 10}

	ops := map[string]func() error{
		"set_outer_position": func() error { return w.SetOuterPosition(platform.LogicalPosition{X: 1, Y: 1}) },
		"set_inner_size":     func() error { return w.SetInnerSize(size) },
		"set_min_inner_size": func() error { return w.SetMinInnerSize(&size) },
		"set_max_inner_size": func() error { return w.SetMaxInnerSize(nil) },
		"set_title":          func() error { return w.SetTitle("hello") },
		"set_visible":        func() error { return w.SetVisible(false) },
		"set_resizable":      func() error { return w.SetResizable(true) },
		"set_window_icon":    func() error { return w.SetWindowIcon(nil) },
	}
	for op, call := range ops {
		err := call()
		if !errors.Is(err, platform.ErrNotImplemented) {
			t.Fatalf("%s: expected ErrNotImplemented, got %v", op, err)
		}
		var uerr *platform.UnimplementedError
		if !errors.As(err, &uerr) || uerr.Op != op {
			t.Fatalf("%s: error op = %v", op, err)
		}
	}
	if stage.BoundingClientRect() != (dom.Rect{X: 100, Y: 50, Width: 800, Height: 600}) {
		t.Fatalf("unimplemented operations must not touch the canvas")
	}
}

func TestNoOpOperationsHaveNoEffect(t *testing.T) {
	w, _, stage := newStageWindow(t)
	beforeCursor := stage.Style().PropertyValue("cursor")

	w.SetMaximized(true)
	w.SetFullscreen(w.CurrentMonitor())
	w.SetDecorations(false)
	w.SetAlwaysOnTop(true)
	w.SetIMEPosition(platform.LogicalPosition{X: 3, Y: 4})

	if w.Fullscreen() != nil {
		t.Fatalf("Fullscreen() must report not fullscreen")
	}
	if stage.BoundingClientRect() != (dom.Rect{X: 100, Y: 50, Width: 800, Height: 600}) {
		t.Fatalf("no-op changed geometry")
	}
	if stage.Style().PropertyValue("cursor") != beforeCursor {
		t.Fatalf("no-op changed style")
	}
}

func TestSupportsMatchesBehavior(t *testing.T) {
	w, _, _ := newStageWindow(t)

	calls := map[platform.Capability]func() error{
		platform.CapOuterPosition:  func() error { return w.SetOuterPosition(platform.LogicalPosition{}) },
		platform.CapInnerSize:      func() error { return w.SetInnerSize(platform.LogicalSize{}) },
		platform.CapMinInnerSize:   func() error { return w.SetMinInnerSize(nil) },
		platform.CapMaxInnerSize:   func() error { return w.SetMaxInnerSize(nil) },
		platform.CapTitle:          func() error { return w.SetTitle("") },
		platform.CapVisible:        func() error { return w.SetVisible(true) },
		platform.CapResizable:      func() error { return w.SetResizable(true) },
		platform.CapWindowIcon:     func() error { return w.SetWindowIcon(nil) },
		platform.CapMaximized:      func() error { w.SetMaximized(true); return nil },
		platform.CapFullscreen:     func() error { w.SetFullscreen(nil); return nil },
		platform.CapDecorations:    func() error { w.SetDecorations(true); return nil },
		platform.CapAlwaysOnTop:    func() error { w.SetAlwaysOnTop(true); return nil },
		platform.CapIMEPosition:    func() error { w.SetIMEPosition(platform.LogicalPosition{}); return nil },
		platform.CapCursorIcon:     func() error { w.SetCursorIcon(platform.CursorHand); return nil },
		platform.CapCursorVisible:  func() error { w.SetCursorVisible(true); return nil },
		platform.CapCursorPosition: func() error { return w.SetCursorPosition(platform.LogicalPosition{}) },
		platform.CapCursorGrab:     func() error { return w.SetCursorGrab(true) },
	}

	for _, c := range platform.Capabilities() {
		s := w.Supports(c)
		call, ok := calls[c]
		if !ok {
			if c != platform.CapMultipleMonitors || s != platform.SupportNotSupported {
				t.Fatalf("%v: unexpected support %v", c, s)
			}
			continue
		}
		err := call()
		switch s {
		case platform.SupportFull, platform.SupportNoOp:
			if err != nil {
				t.Fatalf("%v reported %v but returned %v", c, s, err)
			}
		case platform.SupportNotSupported:
			if !errors.Is(err, platform.ErrNotSupported) {
				t.Fatalf("%v reported not-supported but returned %v", c, err)
			}
		case platform.SupportNotImplemented:
			if !errors.Is(err, platform.ErrNotImplemented) {
				t.Fatalf("%v reported not-implemented but returned %v", c, err)
			}
		}
	}
	if w.Supports(platform.Capability(999)) != platform.SupportNotSupported {
		t.Fatalf("unknown capability must be not supported")
	}
}

func TestNewWindow_LogsCreationAndIgnoredAttributes(t *testing.T) {
	host := dom.NewMemoryHost(0, 0)
	host.MemoryDocument().AddElement("canvas", "stage", dom.Rect{})
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Enabled: true, Level: logging.LevelDebug}, &buf)

	attrs := platform.DefaultWindowAttributes()
	attrs.AlwaysOnTop = true
	w, err := NewWindowOnHost(host, &recordingTarget{}, attrs, PlatformSpecificAttributes{Element: CanvasID("stage"), Logger: logger})
	if err != nil {
		t.Fatalf("NewWindowOnHost: %v", err)
	}
	_ = w.SetCursorGrab(true)

	out := buf.String()
	for _, want := range []string{"[CREATE]", `selection="canvas#stage"`, "[IGNORED-ATTRIBUTE]", `attribute="always_on_top"`, `[UNSUPPORTED] window=0 op="set_cursor_grab"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestIgnoredAttributes(t *testing.T) {
	if got := ignoredAttributes(platform.DefaultWindowAttributes()); len(got) != 1 || got[0] != "title" {
		t.Fatalf("default attributes: ignored = %v, want [title]", got)
	}
	attrs := platform.WindowAttributes{Resizable: true, Visible: true, Decorations: true}
	if got := ignoredAttributes(attrs); len(got) != 0 {
		t.Fatalf("ignored = %v, want none", got)
	}
	attrs.Visible = false
	attrs.Maximized = true
	attrs.InnerSize = &platform.LogicalSize{Width: 1, Height: 1}
	got := strings.Join(ignoredAttributes(attrs), ",")
	if got != "inner_size,visible,maximized" {
		t.Fatalf("ignored = %q", got)
	}
}

func TestDummyIDs(t *testing.T) {
	if DummyWindowID() != DummyWindowID() {
		t.Fatalf("DummyWindowID must equal itself")
	}
	if DummyDeviceID() != platform.NoDevice {
		t.Fatalf("DummyDeviceID = %v, want NoDevice", DummyDeviceID())
	}
}

func TestSetLogger_ReplacesAndDisables(t *testing.T) {
	w, _, _ := newStageWindow(t)
	var buf bytes.Buffer
	w.SetLogger(logging.New(logging.Config{Enabled: true, Level: logging.LevelWarn}, &buf))

	_ = w.SetTitle("x")
	if !strings.Contains(buf.String(), `[UNIMPLEMENTED] window=0 op="set_title"`) {
		t.Fatalf("missing unimplemented log:\n%s", buf.String())
	}

	buf.Reset()
	w.SetLogger(nil)
	_ = w.SetTitle("x")
	w.SetCursorIcon(platform.CursorHand)
	if buf.Len() != 0 {
		t.Fatalf("nil logger wrote %q", buf.String())
	}
}
