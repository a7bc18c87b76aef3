package web

import (
	"fmt"

	"github.com/1broseidon/webwin/internal/logging"
)

// SelectionKind says how an ElementSelection locates the surface.
type SelectionKind int

const (
	// SelectCanvas uses an existing canvas element.
	SelectCanvas SelectionKind = iota
	// SelectContainer creates a new canvas inside a container element.
	SelectContainer
)

func (k SelectionKind) String() string {
	switch k {
	case SelectCanvas:
		return "canvas"
	case SelectContainer:
		return "container"
	default:
		return fmt.Sprintf("SelectionKind(%d)", int(k))
	}
}

// ElementSelection selects an existing canvas in the document, or a
// container in which to create one. The zero value selects the canvas with
// an empty id.
type ElementSelection struct {
	Kind SelectionKind
	ID   string
}

// CanvasID selects the existing canvas element with the given id.
func CanvasID(id string) ElementSelection {
	return ElementSelection{Kind: SelectCanvas, ID: id}
}

// ContainerID selects the element a new canvas is appended to.
func ContainerID(id string) ElementSelection {
	return ElementSelection{Kind: SelectContainer, ID: id}
}

func (s ElementSelection) String() string {
	return fmt.Sprintf("%s#%s", s.Kind, s.ID)
}

// CursorVisibilityMode picks the style written by Window.SetCursorVisible.
type CursorVisibilityMode int

const (
	// CursorVisibilityLiteral hides the cursor for true and shows it for
	// false. This is the historical behavior of the backend.
	CursorVisibilityLiteral CursorVisibilityMode = iota
	// CursorVisibilityCorrected shows the cursor for true and hides it for false.
	CursorVisibilityCorrected
)

// ParseCursorVisibilityMode parses "literal" or "corrected"; empty means literal.
func ParseCursorVisibilityMode(s string) (CursorVisibilityMode, error) {
	switch s {
	case "", "literal":
		return CursorVisibilityLiteral, nil
	case "corrected":
		return CursorVisibilityCorrected, nil
	default:
		return CursorVisibilityLiteral, fmt.Errorf("unknown cursor visibility mode %q (want literal or corrected)", s)
	}
}

// PlatformSpecificAttributes are the browser-only options for window creation.
type PlatformSpecificAttributes struct {
	Element          ElementSelection
	CursorVisibility CursorVisibilityMode
	// Logger receives backend actions; nil disables logging.
	Logger *logging.Logger
}
