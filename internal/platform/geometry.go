package platform

import (
	"fmt"
	"math"
)

// LogicalPosition is a position in DPI-independent pixels.
type LogicalPosition struct {
	X float64
	Y float64
}

// LogicalSize is a size in DPI-independent pixels.
type LogicalSize struct {
	Width  float64
	Height float64
}

// PhysicalPosition is a position in device pixels.
type PhysicalPosition struct {
	X int
	Y int
}

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width  int
	Height int
}

// ValidHiDPIFactor reports whether f can be used to convert between logical
// and physical pixels.
func ValidHiDPIFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func mustFactor(f float64) {
	if !ValidHiDPIFactor(f) {
		panic(fmt.Sprintf("invalid hidpi factor %v", f))
	}
}

// ToPhysical scales p by the given DPI factor, rounding to the nearest pixel.
func (p LogicalPosition) ToPhysical(f float64) PhysicalPosition {
	mustFactor(f)
	return PhysicalPosition{
		X: int(math.Round(p.X * f)),
		Y: int(math.Round(p.Y * f)),
	}
}

// ToLogical divides p by the given DPI factor.
func (p PhysicalPosition) ToLogical(f float64) LogicalPosition {
	mustFactor(f)
	return LogicalPosition{X: float64(p.X) / f, Y: float64(p.Y) / f}
}

// ToPhysical scales s by the given DPI factor, rounding to the nearest pixel.
func (s LogicalSize) ToPhysical(f float64) PhysicalSize {
	mustFactor(f)
	return PhysicalSize{
		Width:  int(math.Round(s.Width * f)),
		Height: int(math.Round(s.Height * f)),
	}
}

// ToLogical divides s by the given DPI factor.
func (s PhysicalSize) ToLogical(f float64) LogicalSize {
	mustFactor(f)
	return LogicalSize{Width: float64(s.Width) / f, Height: float64(s.Height) / f}
}
