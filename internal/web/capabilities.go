package web

import "github.com/1broseidon/webwin/internal/platform"

var support = map[platform.Capability]platform.Support{
	platform.CapOuterPosition:    platform.SupportNotImplemented,
	platform.CapInnerSize:        platform.SupportNotImplemented,
	platform.CapMinInnerSize:     platform.SupportNotImplemented,
	platform.CapMaxInnerSize:     platform.SupportNotImplemented,
	platform.CapTitle:            platform.SupportNotImplemented,
	platform.CapVisible:          platform.SupportNotImplemented,
	platform.CapResizable:        platform.SupportNotImplemented,
	platform.CapWindowIcon:       platform.SupportNotImplemented,
	platform.CapMaximized:        platform.SupportNoOp,
	platform.CapFullscreen:       platform.SupportNoOp,
	platform.CapDecorations:      platform.SupportNoOp,
	platform.CapAlwaysOnTop:      platform.SupportNoOp,
	platform.CapIMEPosition:      platform.SupportNoOp,
	platform.CapCursorIcon:       platform.SupportFull,
	platform.CapCursorVisible:    platform.SupportFull,
	platform.CapCursorPosition:   platform.SupportNotSupported,
	platform.CapCursorGrab:       platform.SupportNotSupported,
	platform.CapMultipleMonitors: platform.SupportNotSupported,
}

// Supports reports how this backend handles c. Unknown capabilities are
// reported as not supported.
func (w *Window) Supports(c platform.Capability) platform.Support {
	if s, ok := support[c]; ok {
		return s
	}
	return platform.SupportNotSupported
}
