package web

import (
	"fmt"

	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
)

const cursorProperty = "cursor"

// CursorStyle returns the CSS cursor keyword for icon. Icons without a
// CSS equivalent map to "auto".
func CursorStyle(icon platform.CursorIcon) string {
	switch icon {
	case platform.CursorCrosshair:
		return "crosshair"
	case platform.CursorHand:
		return "pointer"
	case platform.CursorMove:
		return "move"
	case platform.CursorText:
		return "text"
	case platform.CursorWait:
		return "wait"
	case platform.CursorHelp:
		return "help"
	case platform.CursorProgress:
		return "progress"
	case platform.CursorNotAllowed:
		return "not-allowed"
	case platform.CursorContextMenu:
		return "context-menu"
	case platform.CursorCell:
		return "cell"
	case platform.CursorVerticalText:
		return "vertical-text"
	case platform.CursorAlias:
		return "alias"
	case platform.CursorCopy:
		return "copy"
	case platform.CursorNoDrop:
		return "no-drop"
	case platform.CursorEResize:
		return "e-resize"
	case platform.CursorNResize:
		return "n-resize"
	case platform.CursorNeResize:
		return "ne-resize"
	case platform.CursorNwResize:
		return "nw-resize"
	case platform.CursorSResize:
		return "s-resize"
	case platform.CursorSeResize:
		return "se-resize"
	case platform.CursorSwResize:
		return "sw-resize"
	case platform.CursorWResize:
		return "w-resize"
	case platform.CursorEwResize:
		return "ew-resize"
	case platform.CursorNsResize:
		return "ns-resize"
	case platform.CursorNeswResize:
		return "nesw-resize"
	case platform.CursorNwseResize:
		return "nwse-resize"
	case platform.CursorColResize:
		return "col-resize"
	case platform.CursorRowResize:
		return "row-resize"
	default:
		return "auto"
	}
}

// SetCursorIcon writes the CSS keyword for icon to the canvas style.
func (w *Window) SetCursorIcon(icon platform.CursorIcon) {
	w.setCursorStyle(CursorStyle(icon))
}

// SetCursorVisible writes a cursor style according to the window's
// CursorVisibilityMode. In literal mode (the default) true writes "none"
// and false writes "auto".
func (w *Window) SetCursorVisible(visible bool) {
	hide := visible
	if w.cursorVisibility == CursorVisibilityCorrected {
		hide = !visible
	}
	if hide {
		w.setCursorStyle("none")
	} else {
		w.setCursorStyle("auto")
	}
}

// SetCursorPosition is not supported in the browser.
func (w *Window) SetCursorPosition(pos platform.LogicalPosition) error {
	return w.notSupported(platform.CapCursorPosition)
}

// SetCursorGrab is not supported in the browser, whatever the value of grab.
func (w *Window) SetCursorGrab(grab bool) error {
	return w.notSupported(platform.CapCursorGrab)
}

func (w *Window) setCursorStyle(value string) {
	if err := w.canvas.Style().SetProperty(cursorProperty, value); err != nil {
		panic(fmt.Sprintf("set canvas style %s=%q: %v", cursorProperty, value, err))
	}
	w.logger.Log(logging.ActionStyle, uint32(w.ID()), map[string]interface{}{
		"property": cursorProperty,
		"value":    value,
	})
}
