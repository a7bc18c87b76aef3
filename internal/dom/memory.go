package dom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDetached is returned when appending to an element that is not part of
// the document tree.
var ErrDetached = errors.New("element is not attached to the document")

// MemoryHost is a Host backed by an in-memory document. It is used to drive
// the window backend outside a browser.
type MemoryHost struct {
	doc       *MemoryDocument
	width     float64
	height    float64
	widthErr  error
	heightErr error
}

var _ Host = (*MemoryHost)(nil)

// NewMemoryHost creates a host with an empty document and the given
// viewport size.
func NewMemoryHost(width, height float64) *MemoryHost {
	return &MemoryHost{
		doc:    &MemoryDocument{},
		width:  width,
		height: height,
	}
}

func (h *MemoryHost) Document() (Document, bool) {
	if h.doc == nil {
		return nil, false
	}
	return h.doc, true
}

// MemoryDocument returns the concrete document, or nil after RemoveDocument.
func (h *MemoryHost) MemoryDocument() *MemoryDocument {
	return h.doc
}

// RemoveDocument simulates a global context without a document.
func (h *MemoryHost) RemoveDocument() {
	h.doc = nil
}

// SetViewport changes the viewport size reported by InnerWidth/InnerHeight.
func (h *MemoryHost) SetViewport(width, height float64) {
	h.width, h.height = width, height
}

// FailViewport makes subsequent viewport reads fail with the given errors.
// A nil error restores normal reads for that axis.
func (h *MemoryHost) FailViewport(widthErr, heightErr error) {
	h.widthErr, h.heightErr = widthErr, heightErr
}

func (h *MemoryHost) InnerWidth() (float64, error) {
	if h.widthErr != nil {
		return 0, h.widthErr
	}
	return h.width, nil
}

func (h *MemoryHost) InnerHeight() (float64, error) {
	if h.heightErr != nil {
		return 0, h.heightErr
	}
	return h.height, nil
}

// MemoryDocument keeps every element ever created or added, in order.
type MemoryDocument struct {
	elements  []*MemoryElement
	createErr error
}

var _ Document = (*MemoryDocument)(nil)

// AddElement adds an element attached directly under the document body.
func (d *MemoryDocument) AddElement(tag, id string, rect Rect) *MemoryElement {
	el := d.newElement(tag)
	el.rooted = true
	el.rect = rect
	if id != "" {
		el.attrs["id"] = id
	}
	return el
}

// FailCreate makes CreateElement return err. A nil error restores it.
func (d *MemoryDocument) FailCreate(err error) {
	d.createErr = err
}

// Elements returns every element in creation order.
func (d *MemoryDocument) Elements() []*MemoryElement {
	out := make([]*MemoryElement, len(d.elements))
	copy(out, d.elements)
	return out
}

// Len returns the number of elements the document has ever held.
func (d *MemoryDocument) Len() int {
	return len(d.elements)
}

func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	for _, el := range d.elements {
		if el.Connected() && el.ID() == id {
			return el, true
		}
	}
	return nil, false
}

func (d *MemoryDocument) CreateElement(tag string) (Element, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	return d.newElement(tag), nil
}

func (d *MemoryDocument) newElement(tag string) *MemoryElement {
	el := &MemoryElement{
		doc:   d,
		tag:   strings.ToLower(tag),
		attrs: map[string]string{},
		style: &MemoryStyle{props: map[string]string{}},
	}
	d.elements = append(d.elements, el)
	return el
}

// MemoryElement is an element of a MemoryDocument.
type MemoryElement struct {
	doc      *MemoryDocument
	tag      string
	attrs    map[string]string
	style    *MemoryStyle
	rect     Rect
	parent   *MemoryElement
	children []*MemoryElement
	rooted   bool
}

var _ Element = (*MemoryElement)(nil)

func (e *MemoryElement) ID() string { return e.attrs["id"] }

func (e *MemoryElement) TagName() string { return e.tag }

func (e *MemoryElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *MemoryElement) SetAttribute(name, value string) error {
	if name == "" {
		return fmt.Errorf("setAttribute: empty attribute name")
	}
	e.attrs[name] = value
	return nil
}

func (e *MemoryElement) AppendChild(child Element) error {
	c, ok := child.(*MemoryElement)
	if !ok || c.doc != e.doc {
		return fmt.Errorf("appendChild: %T does not belong to this document", child)
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("appendChild: would create a cycle")
		}
	}
	if !e.Connected() {
		return fmt.Errorf("appendChild to <%s id=%q>: %w", e.tag, e.ID(), ErrDetached)
	}
	c.remove()
	c.parent = e
	e.children = append(e.children, c)
	return nil
}

func (e *MemoryElement) BoundingClientRect() Rect { return e.rect }

func (e *MemoryElement) Style() Style { return e.style }

// MemoryStyle returns the concrete style so tests can inject failures.
func (e *MemoryElement) MemoryStyle() *MemoryStyle { return e.style }

// SetRect sets the box returned by BoundingClientRect.
func (e *MemoryElement) SetRect(r Rect) { e.rect = r }

// Parent returns the parent element, or nil for body-level and detached elements.
func (e *MemoryElement) Parent() *MemoryElement { return e.parent }

// Children returns the element's children in insertion order.
func (e *MemoryElement) Children() []*MemoryElement {
	out := make([]*MemoryElement, len(e.children))
	copy(out, e.children)
	return out
}

// Connected reports whether the element is reachable from the document body.
func (e *MemoryElement) Connected() bool {
	for p := e; p != nil; p = p.parent {
		if p.rooted {
			return true
		}
	}
	return false
}

// Detach removes the element (and its subtree) from the document tree.
func (e *MemoryElement) Detach() {
	e.remove()
	e.rooted = false
}

func (e *MemoryElement) remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, s := range siblings {
		if s == e {
			e.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// MemoryStyle is an inline style map.
type MemoryStyle struct {
	props   map[string]string
	failErr error
}

var _ Style = (*MemoryStyle)(nil)

func (s *MemoryStyle) SetProperty(name, value string) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.props[name] = value
	return nil
}

func (s *MemoryStyle) PropertyValue(name string) string {
	return s.props[name]
}

// FailWrites makes SetProperty return err. A nil error restores it.
func (s *MemoryStyle) FailWrites(err error) {
	s.failErr = err
}
