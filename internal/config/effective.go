package config

import (
	"fmt"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if w := raw.Window; w != nil {
		if w.Title != nil {
			cfg.Window.Title = *w.Title
		}
		if w.InnerSize != nil {
			s := *w.InnerSize
			cfg.Window.InnerSize = &s
		}
		if w.MinInnerSize != nil {
			s := *w.MinInnerSize
			cfg.Window.MinInnerSize = &s
		}
		if w.MaxInnerSize != nil {
			s := *w.MaxInnerSize
			cfg.Window.MaxInnerSize = &s
		}
		if w.Resizable != nil {
			cfg.Window.Resizable = *w.Resizable
		}
		if w.Visible != nil {
			cfg.Window.Visible = *w.Visible
		}
		if w.Decorations != nil {
			cfg.Window.Decorations = *w.Decorations
		}
		if w.AlwaysOnTop != nil {
			cfg.Window.AlwaysOnTop = *w.AlwaysOnTop
		}
		if w.Maximized != nil {
			cfg.Window.Maximized = *w.Maximized
		}
		if w.Transparent != nil {
			cfg.Window.Transparent = *w.Transparent
		}
	}

	if el := raw.Element; el != nil {
		if el.CanvasID != nil {
			cfg.Element.CanvasID = *el.CanvasID
		}
		if el.ContainerID != nil {
			cfg.Element.ContainerID = *el.ContainerID
		}
		if el.CanvasID != nil && el.ContainerID != nil {
			return nil, &ValidationError{Path: "element", Err: fmt.Errorf("set either canvas_id or container_id, not both")}
		}
	}

	if c := raw.Cursor; c != nil {
		if c.Icon != nil {
			cfg.Cursor.Icon = *c.Icon
		}
		if c.Visibility != nil {
			cfg.Cursor.Visibility = *c.Visibility
		}
	}

	if l := raw.Logging; l != nil {
		if l.Enabled != nil {
			cfg.Logging.Enabled = *l.Enabled
		}
		if l.Level != nil {
			cfg.Logging.Level = *l.Level
		}
	}

	return cfg, nil
}
