package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		// Not present.
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawWindow struct {
	Title        *string `yaml:"title"`
	InnerSize    *Size   `yaml:"inner_size"`
	MinInnerSize *Size   `yaml:"min_inner_size"`
	MaxInnerSize *Size   `yaml:"max_inner_size"`
	Resizable    *bool   `yaml:"resizable"`
	Visible      *bool   `yaml:"visible"`
	Decorations  *bool   `yaml:"decorations"`
	AlwaysOnTop  *bool   `yaml:"always_on_top"`
	Maximized    *bool   `yaml:"maximized"`
	Transparent  *bool   `yaml:"transparent"`
}

type RawElement struct {
	CanvasID    *string `yaml:"canvas_id"`
	ContainerID *string `yaml:"container_id"`
}

type RawCursor struct {
	Icon       *string `yaml:"icon"`
	Visibility *string `yaml:"visibility"`
}

type RawLogging struct {
	Enabled *bool   `yaml:"enabled"`
	Level   *string `yaml:"level"`
}

// RawConfig mirrors the YAML file; nil fields were not set.
type RawConfig struct {
	Include IncludeList `yaml:"include"`
	Window  *RawWindow  `yaml:"window"`
	Element *RawElement `yaml:"element"`
	Cursor  *RawCursor  `yaml:"cursor"`
	Logging *RawLogging `yaml:"logging"`
}

// merge returns r with every field set in overlay replacing r's value.
func (r RawConfig) merge(overlay RawConfig) RawConfig {
	out := r
	out.Include = nil
	if overlay.Window != nil {
		out.Window = mergeRawWindow(r.Window, overlay.Window)
	}
	if overlay.Element != nil {
		// The element selection is one choice; a later file replaces it whole.
		el := *overlay.Element
		out.Element = &el
	}
	if overlay.Cursor != nil {
		c := RawCursor{}
		if r.Cursor != nil {
			c = *r.Cursor
		}
		setIf(&c.Icon, overlay.Cursor.Icon)
		setIf(&c.Visibility, overlay.Cursor.Visibility)
		out.Cursor = &c
	}
	if overlay.Logging != nil {
		l := RawLogging{}
		if r.Logging != nil {
			l = *r.Logging
		}
		setIf(&l.Enabled, overlay.Logging.Enabled)
		setIf(&l.Level, overlay.Logging.Level)
		out.Logging = &l
	}
	return out
}

func mergeRawWindow(base, overlay *RawWindow) *RawWindow {
	w := RawWindow{}
	if base != nil {
		w = *base
	}
	setIf(&w.Title, overlay.Title)
	setIf(&w.InnerSize, overlay.InnerSize)
	setIf(&w.MinInnerSize, overlay.MinInnerSize)
	setIf(&w.MaxInnerSize, overlay.MaxInnerSize)
	setIf(&w.Resizable, overlay.Resizable)
	setIf(&w.Visible, overlay.Visible)
	setIf(&w.Decorations, overlay.Decorations)
	setIf(&w.AlwaysOnTop, overlay.AlwaysOnTop)
	setIf(&w.Maximized, overlay.Maximized)
	setIf(&w.Transparent, overlay.Transparent)
	return &w
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
