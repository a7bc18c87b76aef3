package platform

// Capability names a window operation whose support varies by backend.
type Capability int

const (
	CapOuterPosition Capability = iota
	CapInnerSize
	CapMinInnerSize
	CapMaxInnerSize
	CapTitle
	CapVisible
	CapResizable
	CapWindowIcon
	CapMaximized
	CapFullscreen
	CapDecorations
	CapAlwaysOnTop
	CapIMEPosition
	CapCursorIcon
	CapCursorVisible
	CapCursorPosition
	CapCursorGrab
	CapMultipleMonitors
)

var capabilityNames = map[Capability]string{
	CapOuterPosition:    "set_outer_position",
	CapInnerSize:        "set_inner_size",
	CapMinInnerSize:     "set_min_inner_size",
	CapMaxInnerSize:     "set_max_inner_size",
	CapTitle:            "set_title",
	CapVisible:          "set_visible",
	CapResizable:        "set_resizable",
	CapWindowIcon:       "set_window_icon",
	CapMaximized:        "set_maximized",
	CapFullscreen:       "set_fullscreen",
	CapDecorations:      "set_decorations",
	CapAlwaysOnTop:      "set_always_on_top",
	CapIMEPosition:      "set_ime_position",
	CapCursorIcon:       "set_cursor_icon",
	CapCursorVisible:    "set_cursor_visible",
	CapCursorPosition:   "set_cursor_position",
	CapCursorGrab:       "set_cursor_grab",
	CapMultipleMonitors: "multiple_monitors",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "unknown"
}

// Capabilities returns every known capability in declaration order.
func Capabilities() []Capability {
	out := make([]Capability, 0, len(capabilityNames))
	for c := CapOuterPosition; c <= CapMultipleMonitors; c++ {
		out = append(out, c)
	}
	return out
}

// Support classifies how a backend handles a capability.
type Support int

const (
	// SupportFull means the operation has its documented effect.
	SupportFull Support = iota
	// SupportNoOp means the call is accepted and has no observable effect.
	SupportNoOp
	// SupportNotSupported means the call returns an error wrapping ErrNotSupported.
	SupportNotSupported
	// SupportNotImplemented means the call returns an error wrapping ErrNotImplemented.
	SupportNotImplemented
)

func (s Support) String() string {
	switch s {
	case SupportFull:
		return "full"
	case SupportNoOp:
		return "no-op"
	case SupportNotSupported:
		return "not-supported"
	case SupportNotImplemented:
		return "not-implemented"
	default:
		return "unknown"
	}
}
