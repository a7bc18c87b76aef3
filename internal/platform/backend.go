package platform

import "image"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// DeviceID identifies an input device.
type DeviceID uint32

// NoDevice is the device id reported when no real device is known.
const NoDevice DeviceID = 0

// WindowAttributes is the environment-agnostic window configuration a
// backend receives at construction time.
type WindowAttributes struct {
	Title        string
	InnerSize    *LogicalSize
	MinInnerSize *LogicalSize
	MaxInnerSize *LogicalSize
	Resizable    bool
	Visible      bool
	Decorations  bool
	AlwaysOnTop  bool
	Maximized    bool
	Transparent  bool
	WindowIcon   image.Image
}

// DefaultWindowAttributes returns the attributes a window gets when the
// caller does not override anything.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:       "webwin window",
		Resizable:   true,
		Visible:     true,
		Decorations: true,
	}
}

// Monitor describes a display a window can live on.
type Monitor interface {
	// Name returns a human-readable name, or false if the monitor is gone.
	Name() (string, bool)
	Dimensions() PhysicalSize
	Position() PhysicalPosition
	HiDPIFactor() float64
}

// Window is the method set every backend implements. Each backend decides,
// per method, whether it is fully supported, an inert no-op, a typed
// not-supported failure or not implemented; Supports reports that choice.
type Window interface {
	ID() WindowID
	HiDPIFactor() float64
	RequestRedraw()
	Supports(c Capability) Support

	InnerPosition() (LogicalPosition, error)
	OuterPosition() (LogicalPosition, error)
	SetOuterPosition(pos LogicalPosition) error
	InnerSize() LogicalSize
	OuterSize() LogicalSize
	SetInnerSize(size LogicalSize) error
	SetMinInnerSize(size *LogicalSize) error
	SetMaxInnerSize(size *LogicalSize) error

	SetTitle(title string) error
	SetVisible(visible bool) error
	SetResizable(resizable bool) error
	SetMaximized(maximized bool)
	SetFullscreen(monitor Monitor)
	Fullscreen() Monitor
	SetDecorations(decorations bool)
	SetAlwaysOnTop(alwaysOnTop bool)
	SetWindowIcon(icon image.Image) error
	SetIMEPosition(pos LogicalPosition)

	SetCursorIcon(icon CursorIcon)
	SetCursorPosition(pos LogicalPosition) error
	SetCursorGrab(grab bool) error
	SetCursorVisible(visible bool)

	CurrentMonitor() Monitor
	PrimaryMonitor() Monitor
	AvailableMonitors() []Monitor
}
