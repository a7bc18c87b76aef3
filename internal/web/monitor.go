package web

import (
	"math"

	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/platform"
)

// MonitorName is the name reported for the browser viewport.
const MonitorName = "Browser Window"

// MonitorHandle describes the single virtual display: the browser viewport.
// It holds no state of its own; every query reads the host again.
type MonitorHandle struct {
	host dom.Host
}

var _ platform.Monitor = MonitorHandle{}

// Monitors returns the monitors visible to the page. There is always
// exactly one.
func Monitors(host dom.Host) []platform.Monitor {
	return []platform.Monitor{MonitorHandle{host: host}}
}

func (m MonitorHandle) Name() (string, bool) {
	return MonitorName, true
}

// Dimensions returns the current viewport size. An axis the host cannot
// report is 0.
func (m MonitorHandle) Dimensions() platform.PhysicalSize {
	if m.host == nil {
		return platform.PhysicalSize{}
	}
	w, err := m.host.InnerWidth()
	if err != nil {
		w = 0
	}
	h, err := m.host.InnerHeight()
	if err != nil {
		h = 0
	}
	return platform.PhysicalSize{
		Width:  int(math.Round(w)),
		Height: int(math.Round(h)),
	}
}

func (m MonitorHandle) Position() platform.PhysicalPosition {
	return platform.PhysicalPosition{}
}

func (m MonitorHandle) HiDPIFactor() float64 {
	return 1.0
}
