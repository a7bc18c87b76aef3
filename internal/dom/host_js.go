//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"strings"
	"syscall/js"
)

// Default returns the page's global browsing context, or nil when the wasm
// module is not running inside a window (for example in a worker).
func Default() Host {
	win := js.Global().Get("window")
	if win.IsUndefined() || win.IsNull() {
		return nil
	}
	return &jsHost{win: win}
}

type jsHost struct {
	win js.Value
}

func (h *jsHost) Document() (Document, bool) {
	doc := h.win.Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, false
	}
	return &jsDocument{doc: doc}, true
}

func (h *jsHost) InnerWidth() (float64, error) {
	return numberProperty(h.win, "innerWidth")
}

func (h *jsHost) InnerHeight() (float64, error) {
	return numberProperty(h.win, "innerHeight")
}

func numberProperty(v js.Value, name string) (float64, error) {
	p := v.Get(name)
	if p.Type() != js.TypeNumber {
		return 0, fmt.Errorf("window.%s is %s, not a number", name, p.Type())
	}
	return p.Float(), nil
}

type jsDocument struct {
	doc js.Value
}

func (d *jsDocument) ElementByID(id string) (Element, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &jsElement{v: el}, true
}

func (d *jsDocument) CreateElement(tag string) (el Element, err error) {
	defer catch(&err)
	return &jsElement{v: d.doc.Call("createElement", tag)}, nil
}

type jsElement struct {
	v js.Value
}

func (e *jsElement) ID() string {
	return e.v.Get("id").String()
}

func (e *jsElement) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *jsElement) Attribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *jsElement) SetAttribute(name, value string) (err error) {
	defer catch(&err)
	e.v.Call("setAttribute", name, value)
	return nil
}

func (e *jsElement) AppendChild(child Element) (err error) {
	c, ok := child.(*jsElement)
	if !ok {
		return fmt.Errorf("appendChild: %T is not a page element", child)
	}
	defer catch(&err)
	e.v.Call("appendChild", c.v)
	return nil
}

func (e *jsElement) BoundingClientRect() Rect {
	r := e.v.Call("getBoundingClientRect")
	return Rect{
		X:      r.Get("x").Float(),
		Y:      r.Get("y").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *jsElement) Style() Style {
	return &jsStyle{v: e.v.Get("style")}
}

type jsStyle struct {
	v js.Value
}

func (s *jsStyle) SetProperty(name, value string) (err error) {
	defer catch(&err)
	s.v.Call("setProperty", name, value)
	return nil
}

func (s *jsStyle) PropertyValue(name string) string {
	return s.v.Call("getPropertyValue", name).String()
}

// catch turns a JavaScript exception thrown through syscall/js into an error.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var jsErr js.Error
	if e, ok := r.(error); ok && errors.As(e, &jsErr) {
		*err = fmt.Errorf("javascript: %s", jsErr.Value.Get("message").String())
		return
	}
	panic(r)
}
