// Package dom describes the slice of the browser document and viewport that
// the window backend consumes, so the backend can run against the real page
// (syscall/js) or an in-memory document.
package dom

// Rect is the result of getBoundingClientRect, in CSS pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Style is an element's inline CSS declaration block.
type Style interface {
	SetProperty(name, value string) error
	PropertyValue(name string) string
}

// Element is a node in the host document.
type Element interface {
	ID() string
	TagName() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string) error
	AppendChild(child Element) error
	BoundingClientRect() Rect
	Style() Style
}

// Document locates and creates elements.
type Document interface {
	ElementByID(id string) (Element, bool)
	CreateElement(tag string) (Element, error)
}

// Host is the global browsing context: the document plus the viewport.
type Host interface {
	Document() (Document, bool)
	InnerWidth() (float64, error)
	InnerHeight() (float64, error)
}

// TagCanvas is the tag name of drawable surface elements.
const TagCanvas = "canvas"
