package platform

import (
	"fmt"
	"strings"
)

// CursorIcon is the abstract cursor appearance requested by an application.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorCrosshair
	CursorHand
	CursorArrow
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
	CursorNotAllowed
	CursorContextMenu
	CursorCell
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
)

var cursorNames = []string{
	CursorDefault:      "default",
	CursorCrosshair:    "crosshair",
	CursorHand:         "hand",
	CursorArrow:        "arrow",
	CursorMove:         "move",
	CursorText:         "text",
	CursorWait:         "wait",
	CursorHelp:         "help",
	CursorProgress:     "progress",
	CursorNotAllowed:   "not-allowed",
	CursorContextMenu:  "context-menu",
	CursorCell:         "cell",
	CursorVerticalText: "vertical-text",
	CursorAlias:        "alias",
	CursorCopy:         "copy",
	CursorNoDrop:       "no-drop",
	CursorGrab:         "grab",
	CursorGrabbing:     "grabbing",
	CursorAllScroll:    "all-scroll",
	CursorZoomIn:       "zoom-in",
	CursorZoomOut:      "zoom-out",
	CursorEResize:      "e-resize",
	CursorNResize:      "n-resize",
	CursorNeResize:     "ne-resize",
	CursorNwResize:     "nw-resize",
	CursorSResize:      "s-resize",
	CursorSeResize:     "se-resize",
	CursorSwResize:     "sw-resize",
	CursorWResize:      "w-resize",
	CursorEwResize:     "ew-resize",
	CursorNsResize:     "ns-resize",
	CursorNeswResize:   "nesw-resize",
	CursorNwseResize:   "nwse-resize",
	CursorColResize:    "col-resize",
	CursorRowResize:    "row-resize",
}

// CursorIcons returns every defined cursor icon.
func CursorIcons() []CursorIcon {
	out := make([]CursorIcon, len(cursorNames))
	for i := range cursorNames {
		out[i] = CursorIcon(i)
	}
	return out
}

func (c CursorIcon) String() string {
	if c >= 0 && int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("CursorIcon(%d)", int(c))
}

// ParseCursorIcon converts a kebab-case name (as used in config files) to a
// CursorIcon.
func ParseCursorIcon(s string) (CursorIcon, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return CursorDefault, nil
	}
	for i, n := range cursorNames {
		if n == name {
			return CursorIcon(i), nil
		}
	}
	return CursorDefault, fmt.Errorf("unknown cursor icon %q", s)
}
