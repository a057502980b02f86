package flowgui

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithStyle sets the engine metrics.
func WithStyle(style Style) Option {
	return func(e *Engine) { e.style = style }
}

// WithConfig applies the style section of a loaded config. The theme is
// for backends and is not used by the engine.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.style = cfg.Style }
}

// WithLogger replaces the package logger for this engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithInvalidate sets the callback the engine uses to ask the host for a
// paint when a repaint is requested outside of OnPaint, for example by an
// input event.
func WithInvalidate(fn func()) Option {
	return func(e *Engine) { e.invalidate = fn }
}

// WithSize sets the initial surface size.
func WithSize(size Vec2) Option {
	return func(e *Engine) { e.size = size }
}
