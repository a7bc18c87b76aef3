package config

import (
	"fmt"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	window.title
//	window.inner_size
//	window.min_inner_size
//	window.max_inner_size
//	window.resizable
//	window.visible
//	window.decorations
//	window.always_on_top
//	window.maximized
//	window.transparent
//	element.canvas_id
//	element.container_id
//	cursor.icon
//	cursor.visibility
//	logging.enabled
//	logging.level
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	w := cfg.Window
	values := map[string]any{
		"window.title":          w.Title,
		"window.inner_size":     w.InnerSize,
		"window.min_inner_size": w.MinInnerSize,
		"window.max_inner_size": w.MaxInnerSize,
		"window.resizable":      w.Resizable,
		"window.visible":        w.Visible,
		"window.decorations":    w.Decorations,
		"window.always_on_top":  w.AlwaysOnTop,
		"window.maximized":      w.Maximized,
		"window.transparent":    w.Transparent,
		"element.canvas_id":     cfg.Element.CanvasID,
		"element.container_id":  cfg.Element.ContainerID,
		"cursor.icon":           cfg.Cursor.Icon,
		"cursor.visibility":     cfg.Cursor.Visibility,
		"logging.enabled":       cfg.Logging.Enabled,
		"logging.level":         cfg.Logging.Level,
	}
	v, ok := values[path]
	if !ok {
		return nil, fmt.Errorf("unknown config path %q", path)
	}
	return v, nil
}
