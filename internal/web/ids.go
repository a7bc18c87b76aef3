package web

import "github.com/1broseidon/webwin/internal/platform"

// DummyWindowID returns the window identity used by this backend. It is
// always equal to itself and to every other value it returns; nothing else
// is guaranteed, in particular not uniqueness between windows.
func DummyWindowID() platform.WindowID {
	return 0
}

// DummyDeviceID returns the id reported for input devices.
func DummyDeviceID() platform.DeviceID {
	return platform.NoDevice
}
