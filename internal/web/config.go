package web

import (
	"io"

	"github.com/1broseidon/webwin/internal/config"
	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/logging"
	"github.com/1broseidon/webwin/internal/platform"
)

// SelectionFromConfig converts the element section to an ElementSelection.
func SelectionFromConfig(el config.ElementConfig) ElementSelection {
	if el.ContainerID != "" {
		return ContainerID(el.ContainerID)
	}
	return CanvasID(el.CanvasID)
}

// LoggerFromConfig builds the logger described by the logging section.
func LoggerFromConfig(lc config.LoggingConfig, out io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Enabled: lc.Enabled, Level: level}, out), nil
}

// AttributesFromConfig converts a loaded config to construction attributes.
func AttributesFromConfig(cfg *config.Config, logger *logging.Logger) (platform.WindowAttributes, PlatformSpecificAttributes, error) {
	mode, err := ParseCursorVisibilityMode(cfg.Cursor.Visibility)
	if err != nil {
		return platform.WindowAttributes{}, PlatformSpecificAttributes{}, err
	}
	ps := PlatformSpecificAttributes{
		Element:          SelectionFromConfig(cfg.Element),
		CursorVisibility: mode,
		Logger:           logger,
	}
	return cfg.WindowAttributes(), ps, nil
}

// NewWindowFromConfig creates a window on host as described by cfg and
// applies the configured cursor icon.
func NewWindowFromConfig(host dom.Host, target EventLoopTarget, cfg *config.Config, logger *logging.Logger) (*Window, error) {
	attrs, ps, err := AttributesFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	w, err := NewWindowOnHost(host, target, attrs, ps)
	if err != nil {
		return nil, err
	}
	if icon := cfg.CursorIcon(); icon != platform.CursorDefault {
		w.SetCursorIcon(icon)
	}
	return w, nil
}
