package config

import (
	"fmt"

	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
)

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WindowConfig holds the environment-agnostic window attributes.
type WindowConfig struct {
	Title        string `yaml:"title"`
	InnerSize    *Size  `yaml:"inner_size,omitempty"`
	MinInnerSize *Size  `yaml:"min_inner_size,omitempty"`
	MaxInnerSize *Size  `yaml:"max_inner_size,omitempty"`
	Resizable    bool   `yaml:"resizable"`
	Visible      bool   `yaml:"visible"`
	Decorations  bool   `yaml:"decorations"`
	AlwaysOnTop  bool   `yaml:"always_on_top"`
	Maximized    bool   `yaml:"maximized"`
	Transparent  bool   `yaml:"transparent"`
}

// ElementConfig selects the canvas. At most one field may be set; with
// neither, the canvas with an empty id is selected.
type ElementConfig struct {
	CanvasID    string `yaml:"canvas_id,omitempty"`
	ContainerID string `yaml:"container_id,omitempty"`
}

// Cursor visibility modes.
const (
	CursorVisibilityLiteral   = "literal"
	CursorVisibilityCorrected = "corrected"
)

// CursorConfig configures the initial cursor.
type CursorConfig struct {
	// Icon is a kebab-case cursor icon name, e.g. "hand" or "ew-resize".
	Icon string `yaml:"icon"`
	// Visibility is "literal" (true hides the cursor) or "corrected".
	Visibility string `yaml:"visibility"`
}

// LoggingConfig configures backend action logging.
type LoggingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Level controls logging verbosity: debug, info, warn, error. Empty means info.
	Level string `yaml:"level"`
}

// Config is the effective configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Element ElementConfig `yaml:"element"`
	Cursor  CursorConfig  `yaml:"cursor"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	attrs := platform.DefaultWindowAttributes()
	return &Config{
		Window: WindowConfig{
			Title:       attrs.Title,
			Resizable:   attrs.Resizable,
			Visible:     attrs.Visible,
			Decorations: attrs.Decorations,
		},
		Cursor: CursorConfig{
			Icon:       "default",
			Visibility: CursorVisibilityLiteral,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// WindowAttributes converts the window section to platform attributes.
func (c *Config) WindowAttributes() platform.WindowAttributes {
	toSize := func(s *Size) *platform.LogicalSize {
		if s == nil {
			return nil
		}
		return &platform.LogicalSize{Width: s.Width, Height: s.Height}
	}
	return platform.WindowAttributes{
		Title:        c.Window.Title,
		InnerSize:    toSize(c.Window.InnerSize),
		MinInnerSize: toSize(c.Window.MinInnerSize),
		MaxInnerSize: toSize(c.Window.MaxInnerSize),
		Resizable:    c.Window.Resizable,
		Visible:      c.Window.Visible,
		Decorations:  c.Window.Decorations,
		AlwaysOnTop:  c.Window.AlwaysOnTop,
		Maximized:    c.Window.Maximized,
		Transparent:  c.Window.Transparent,
	}
}

// CursorIcon returns the parsed cursor icon.
func (c *Config) CursorIcon() platform.CursorIcon {
	icon, err := platform.ParseCursorIcon(c.Cursor.Icon)
	if err != nil {
		return platform.CursorDefault
	}
	return icon
}

// Validate checks the effective config.
func (c *Config) Validate() error {
	sizes := []struct {
		path string
		size *Size
	}{
		{"window.inner_size", c.Window.InnerSize},
		{"window.min_inner_size", c.Window.MinInnerSize},
		{"window.max_inner_size", c.Window.MaxInnerSize},
	}
	for _, s := range sizes {
		if s.size == nil {
			continue
		}
		if s.size.Width < 0 || s.size.Height < 0 {
			return &ValidationError{Path: s.path, Err: fmt.Errorf("width and height must be >= 0, got %vx%v", s.size.Width, s.size.Height)}
		}
	}
	if lo, hi := c.Window.MinInnerSize, c.Window.MaxInnerSize; lo != nil && hi != nil {
		if lo.Width > hi.Width || lo.Height > hi.Height {
			return &ValidationError{Path: "window.min_inner_size", Err: fmt.Errorf("must not exceed max_inner_size")}
		}
	}

	if c.Element.CanvasID != "" && c.Element.ContainerID != "" {
		return &ValidationError{Path: "element", Err: fmt.Errorf("set either canvas_id or container_id, not both")}
	}

	if _, err := platform.ParseCursorIcon(c.Cursor.Icon); err != nil {
		return &ValidationError{Path: "cursor.icon", Err: err}
	}
	switch c.Cursor.Visibility {
	case CursorVisibilityLiteral, CursorVisibilityCorrected:
	default:
		return &ValidationError{Path: "cursor.visibility", Err: fmt.Errorf("must be %q or %q, got %q", CursorVisibilityLiteral, CursorVisibilityCorrected, c.Cursor.Visibility)}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("must be one of debug, info, warn, error; got %q", c.Logging.Level)}
	}
	return nil
}
